package export

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"text/template"

	"github.com/kiminote/kiminote/internal/deck"
)

//go:embed viewer.html.tmpl
var viewerTemplate string

var viewerTmpl = template.Must(template.New("viewer").Parse(viewerTemplate))

// WriteHTML emits the standalone viewer: one HTML document embedding the
// presentation data verbatim plus the navigation and per-layout rendering
// it needs, so the deck plays without the generation pipeline. Referenced
// images remain external; everything else is inline.
func WriteHTML(w io.Writer, p *deck.Presentation) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode presentation: %w", err)
	}

	title := p.Topic
	if title == "" {
		title = "KIMINOTE Presentation"
	}

	// json.Marshal HTML-escapes "<" to \u003c, so a literal </script>
	// inside slide text cannot end the inline script block early.
	return viewerTmpl.Execute(w, struct {
		Title string
		JSON  string
	}{
		Title: html.EscapeString(title),
		JSON:  string(data),
	})
}
