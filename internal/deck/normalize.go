package deck

import (
	"fmt"
	"time"
)

// DefaultImageURL returns the placeholder image reference for a slide,
// seeded by its id so repeated renders fetch the same picture.
func DefaultImageURL(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/1920/1080", id)
}

// Normalize repairs a freshly generated presentation in place: every slide
// gets a unique id (the model occasionally omits or repeats them) and a
// default image reference when none was supplied.
func (p *Presentation) Normalize() {
	p.normalizeAt(time.Now())
}

func (p *Presentation) normalizeAt(now time.Time) {
	seen := make(map[string]bool, len(p.Slides))
	for i := range p.Slides {
		s := &p.Slides[i]
		if s.ID == "" || seen[s.ID] {
			s.ID = fmt.Sprintf("slide-%d-%d", now.UnixMilli(), i)
		}
		seen[s.ID] = true

		if s.ImageURL == "" {
			s.ImageURL = DefaultImageURL(s.ID)
		}
	}
}
