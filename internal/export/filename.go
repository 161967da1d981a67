package export

import "strings"

// Filename derives an export file name from the deck topic: whitespace
// collapses to underscores, path-hostile characters are dropped.
func Filename(topic, ext string) string {
	name := strings.Join(strings.Fields(topic), "_")

	var b strings.Builder
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			continue
		default:
			b.WriteRune(r)
		}
	}
	name = b.String()

	if name == "" {
		name = "Presentation"
	}
	return "KIMINOTE_" + name + "." + strings.TrimPrefix(ext, ".")
}
