package deck

import "fmt"

// SetField replaces a single scalar field on the slide with the given id.
// Every other field is left untouched; a slide's id and layout are not
// editable through this channel.
func (p *Presentation) SetField(id string, field Field, value string) error {
	s := p.SlideByID(id)
	if s == nil {
		return fmt.Errorf("no slide with id %q", id)
	}

	switch field {
	case FieldTitle:
		s.Title = value
	case FieldSubtitle:
		s.Subtitle = value
	case FieldVisualDescription:
		s.VisualDescription = value
	case FieldSpeakerNotes:
		s.SpeakerNotes = value
	case FieldImageURL:
		s.ImageURL = value
	case FieldPoints:
		return fmt.Errorf("points are edited by index, use SetPoint")
	default:
		return fmt.Errorf("field %q is not editable", field)
	}
	return nil
}

// SetPoint replaces one bullet item, preserving every other index. An
// index one past the end appends, so a big-number slide generated with no
// points gains its stat value on first edit.
func (p *Presentation) SetPoint(id string, index int, value string) error {
	s := p.SlideByID(id)
	if s == nil {
		return fmt.Errorf("no slide with id %q", id)
	}
	if index < 0 || index > len(s.Points) {
		return fmt.Errorf("point index %d out of range (slide has %d)", index, len(s.Points))
	}
	if index == len(s.Points) {
		s.Points = append(s.Points, value)
		return nil
	}
	s.Points[index] = value
	return nil
}
