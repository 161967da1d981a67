package deck

// Layout identifies one of the fixed visual templates a slide can use.
// The values are the wire values the generation schema produces.
type Layout string

const (
	LayoutTitle         Layout = "title"
	LayoutBulletPoints  Layout = "bullet-points"
	LayoutBigNumber     Layout = "big-number"
	LayoutSplitImage    Layout = "split-image"
	LayoutSectionHeader Layout = "section-header"
	LayoutVisualFocus   Layout = "visual-focus"
)

// Layouts lists every known layout, in schema order.
var Layouts = []Layout{
	LayoutTitle,
	LayoutBulletPoints,
	LayoutBigNumber,
	LayoutSplitImage,
	LayoutSectionHeader,
	LayoutVisualFocus,
}

// Known reports whether l is one of the closed layout set.
// Unknown layouts still render, via a fallback region.
func (l Layout) Known() bool {
	for _, k := range Layouts {
		if l == k {
			return true
		}
	}
	return false
}

// Field names an editable slide field. The values double as JSON keys.
type Field string

const (
	FieldTitle             Field = "title"
	FieldSubtitle          Field = "subtitle"
	FieldPoints            Field = "points"
	FieldVisualDescription Field = "visualDescription"
	FieldSpeakerNotes      Field = "speakerNotes"
	FieldImageURL          Field = "imageUrl"
)

// Slide is one visual unit of the deck.
//
// Title is always present; its meaning depends on the layout (headline,
// stat caption, section name). Points is a bullet list for most layouts
// and a single highlighted value (index 0) for big-number.
type Slide struct {
	ID                string   `json:"id"`
	Layout            Layout   `json:"layout"`
	Title             string   `json:"title"`
	Subtitle          string   `json:"subtitle,omitempty"`
	Points            []string `json:"points,omitempty"`
	VisualDescription string   `json:"visualDescription"`
	SpeakerNotes      string   `json:"speakerNotes"`
	ImageURL          string   `json:"imageUrl,omitempty"`

	// ImageGenerating only affects rendering while an image request is in
	// flight. It carries no persistent meaning.
	ImageGenerating bool `json:"isImageGenerating,omitempty"`
}

// Presentation is an ordered slide sequence. Slide order is both the
// editing navigation order and the exported slide order.
type Presentation struct {
	Topic  string  `json:"topic"`
	Theme  string  `json:"theme,omitempty"`
	Slides []Slide `json:"slides"`
}

// SlideByID returns the slide with the given id, or nil.
func (p *Presentation) SlideByID(id string) *Slide {
	for i := range p.Slides {
		if p.Slides[i].ID == id {
			return &p.Slides[i]
		}
	}
	return nil
}
