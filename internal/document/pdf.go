package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the embedded text layer out of a PDF. Scanned,
// image-only documents come back empty and are reported upstream as an
// input error.
func extractPDF(path string) (string, *int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	var parts []string

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", nil, fmt.Errorf("failed to read pdf page %d: %w", i, pageErr)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, "\n\n"), &numPages, nil
}
