// Package generate turns extracted document text into a structured
// presentation by way of the configured LLM provider.
package generate

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kiminote/kiminote/internal/deck"
	"github.com/kiminote/kiminote/internal/document"
	"github.com/kiminote/kiminote/internal/llm"
)

//go:embed system.md
var systemPrompt string

// maxSourceChars bounds how much document text is submitted per request.
const maxSourceChars = 30000

const defaultTheme = "banana-pro"

// Generator produces presentations from document text.
type Generator struct {
	provider llm.Provider
	model    string
	log      zerolog.Logger
}

// New creates a generator for the given provider and model.
func New(provider llm.Provider, model string, log zerolog.Logger) *Generator {
	return &Generator{
		provider: provider,
		model:    model,
		log:      log,
	}
}

// Generate asks the model for a full slide deck and returns it normalized:
// unique slide ids, placeholder image references filled in. A malformed or
// empty response is an error; no partial presentation ever comes back.
func (g *Generator) Generate(ctx context.Context, doc *document.Document) (*deck.Presentation, error) {
	text := Truncate(doc.Content, maxSourceChars)

	req := llm.NewRequest(g.model, strings.TrimSpace(systemPrompt),
		"Create a presentation from this text:\n\n"+text)
	req.ResponseSchema = ResponseSchema()

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("slide generation failed: %w", err)
	}

	g.log.Debug().
		Str("provider", g.provider.Name()).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("generation complete")

	p, err := Parse(resp.Content)
	if err != nil {
		return nil, err
	}

	if p.Topic == "" {
		p.Topic = doc.Metadata.Title
	}
	if p.Theme == "" {
		p.Theme = defaultTheme
	}

	p.Normalize()
	return p, nil
}

// Parse decodes a model response into a presentation. It tolerates code
// fences around the JSON but nothing else.
func Parse(raw string) (*deck.Presentation, error) {
	raw = stripFences(strings.TrimSpace(raw))
	if raw == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var p deck.Presentation
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("malformed slide data from model: %w", err)
	}

	if len(p.Slides) == 0 {
		return nil, fmt.Errorf("model returned no slides")
	}

	return &p, nil
}

// Truncate caps text at max runes, cutting on a rune boundary.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
