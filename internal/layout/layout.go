// Package layout maps a slide to the ordered visual regions that render it.
// The mapping is the single source of truth shared by the terminal editor,
// the standalone HTML viewer and the pptx encoder; none of those surfaces
// hard-code per-layout field semantics themselves.
package layout

import "github.com/kiminote/kiminote/internal/deck"

// Kind is the semantic role of a resolved region.
type Kind int

const (
	// KindLabel is a small fixed caption above the main content
	// ("Presentation", "Section", "Visual Focus").
	KindLabel Kind = iota
	// KindTitle is the slide's dominant heading.
	KindTitle
	// KindSubtitle is the secondary line under a title.
	KindSubtitle
	// KindBulletList is an ordered item list with bullet glyphs, each
	// item independently editable.
	KindBulletList
	// KindPlainList is an item list rendered without glyph emphasis.
	KindPlainList
	// KindCalloutList is a list of individually framed callout lines.
	KindCalloutList
	// KindBigStat is a single large emphasized value.
	KindBigStat
	// KindSupport is secondary supporting prose.
	KindSupport
	// KindImage is an image slot; when no URL is bound the region's
	// Placeholder flag is set and the surface renders its fallback fill.
	KindImage
	// KindAccent marks a full-bleed accent panel (section headers).
	KindAccent
	// KindUnknown is the fallback for an unrecognized layout value.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindTitle:
		return "title"
	case KindSubtitle:
		return "subtitle"
	case KindBulletList:
		return "bullet-list"
	case KindPlainList:
		return "plain-list"
	case KindCalloutList:
		return "callout-list"
	case KindBigStat:
		return "big-stat"
	case KindSupport:
		return "support"
	case KindImage:
		return "image"
	case KindAccent:
		return "accent"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Region is a renderer-agnostic visual slot bound to slide content.
type Region struct {
	Kind Kind

	// Text is the bound content for single-text regions.
	Text string
	// Items is the bound content for list regions.
	Items []string

	// Field names the slide field an edit to this region writes back to.
	// Empty means the region is not editable (fixed labels, images).
	Field deck.Field

	// URL and Placeholder describe image regions. Placeholder is set when
	// no usable image reference is bound.
	URL         string
	Placeholder bool
	// Caption is overlay text for image regions.
	Caption string
}

// BigNumberDefault is shown when a big-number slide has no stat value.
const BigNumberDefault = "100%"

// Resolve deterministically produces the ordered region list for a slide.
// It never fails: absent optional fields resolve to placeholders and an
// unrecognized layout resolves to a marked fallback region.
func Resolve(s deck.Slide) []Region {
	points := s.Points
	if points == nil {
		points = []string{}
	}

	switch s.Layout {
	case deck.LayoutTitle:
		return []Region{
			{Kind: KindLabel, Text: "Presentation"},
			{Kind: KindTitle, Text: s.Title, Field: deck.FieldTitle},
			{Kind: KindSubtitle, Text: s.Subtitle, Field: deck.FieldSubtitle},
		}

	case deck.LayoutBulletPoints:
		return []Region{
			{Kind: KindTitle, Text: s.Title, Field: deck.FieldTitle},
			{Kind: KindBulletList, Items: points, Field: deck.FieldPoints},
			imageRegion(s, s.VisualDescription),
		}

	case deck.LayoutBigNumber:
		stat := BigNumberDefault
		if len(points) > 0 && points[0] != "" {
			stat = points[0]
		}
		return []Region{
			{Kind: KindLabel, Text: s.Title, Field: deck.FieldTitle},
			{Kind: KindBigStat, Text: stat, Field: deck.FieldPoints},
			{Kind: KindSupport, Text: s.VisualDescription, Field: deck.FieldVisualDescription},
		}

	case deck.LayoutSplitImage:
		return []Region{
			{Kind: KindTitle, Text: s.Title, Field: deck.FieldTitle},
			{Kind: KindPlainList, Items: points, Field: deck.FieldPoints},
			imageRegion(s, ""),
		}

	case deck.LayoutSectionHeader:
		return []Region{
			{Kind: KindAccent},
			{Kind: KindLabel, Text: "Section"},
			{Kind: KindTitle, Text: s.Title, Field: deck.FieldTitle},
		}

	case deck.LayoutVisualFocus:
		return []Region{
			imageRegion(s, ""),
			{Kind: KindLabel, Text: "Visual Focus"},
			{Kind: KindTitle, Text: s.Title, Field: deck.FieldTitle},
			{Kind: KindCalloutList, Items: points, Field: deck.FieldPoints},
		}

	default:
		return []Region{
			{Kind: KindUnknown, Text: s.Title, Field: deck.FieldTitle},
		}
	}
}

func imageRegion(s deck.Slide, caption string) Region {
	r := Region{Kind: KindImage, URL: s.ImageURL, Caption: caption}
	if s.ImageURL == "" {
		r.Placeholder = true
	}
	return r
}
