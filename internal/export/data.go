package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kiminote/kiminote/internal/deck"
)

// WriteJSON serializes the full presentation as an indented interchange
// file, the secondary export path for debugging and external players.
func WriteJSON(w io.Writer, p *deck.Presentation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode presentation: %w", err)
	}
	return nil
}
