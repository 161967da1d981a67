package generate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kiminote/kiminote/internal/deck"
	"github.com/kiminote/kiminote/internal/document"
	"github.com/kiminote/kiminote/internal/llm"
)

type stubProvider struct {
	content string
	err     error
	lastReq *llm.CompletionRequest
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content}, nil
}

func (s *stubProvider) Ping(context.Context) error { return nil }

const validResponse = `{
  "topic": "Solar Power",
  "slides": [
    {"id": "s1", "layout": "title", "title": "Solar Power", "visualDescription": "sunrise", "speakerNotes": "welcome"},
    {"id": "s2", "layout": "big-number", "title": "Capacity", "points": ["300 GW"], "visualDescription": "panels", "speakerNotes": ""}
  ]
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSlides int
		wantErr    string
	}{
		{
			name:       "plain json",
			raw:        validResponse,
			wantSlides: 2,
		},
		{
			name:       "json code fence",
			raw:        "```json\n" + validResponse + "\n```",
			wantSlides: 2,
		},
		{
			name:       "bare code fence",
			raw:        "```\n" + validResponse + "\n```",
			wantSlides: 2,
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: "empty response",
		},
		{
			name:    "whitespace only",
			raw:     "  \n\t ",
			wantErr: "empty response",
		},
		{
			name:    "malformed json",
			raw:     `{"topic": "x", "slides": [`,
			wantErr: "malformed",
		},
		{
			name:    "prose instead of json",
			raw:     "Here is your presentation!",
			wantErr: "malformed",
		},
		{
			name:    "zero slides",
			raw:     `{"topic": "x", "slides": []}`,
			wantErr: "no slides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.raw)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() succeeded, want error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(p.Slides) != tt.wantSlides {
				t.Errorf("slides = %d, want %d", len(p.Slides), tt.wantSlides)
			}
		})
	}
}

func TestParsePreservesUnknownLayout(t *testing.T) {
	raw := `{"topic": "x", "slides": [{"id": "s1", "layout": "timeline", "title": "T", "visualDescription": "d", "speakerNotes": ""}]}`
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := p.Slides[0].Layout; got != deck.Layout("timeline") {
		t.Errorf("layout = %q, want the unrecognized value kept verbatim", got)
	}
	if p.Slides[0].Layout.Known() {
		t.Error("unrecognized layout reported as known")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{name: "under limit", text: "short", max: 10, want: "short"},
		{name: "at limit", text: "exact", max: 5, want: "exact"},
		{name: "over limit", text: "overflowing", max: 4, want: "over"},
		{name: "zero max keeps all", text: "keep", max: 0, want: "keep"},
		{name: "multibyte boundary", text: "héllo wörld", max: 6, want: "héllo "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	doc := &document.Document{
		Content:  "Solar adoption is rising fast.",
		Metadata: document.Metadata{Title: "solar-report"},
	}

	t.Run("success normalizes the deck", func(t *testing.T) {
		provider := &stubProvider{content: validResponse}
		g := New(provider, "test-model", zerolog.Nop())

		p, err := g.Generate(context.Background(), doc)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if p.Topic != "Solar Power" {
			t.Errorf("topic = %q, want the model's topic", p.Topic)
		}
		if p.Theme != "banana-pro" {
			t.Errorf("theme = %q, want default filled in", p.Theme)
		}
		for i, s := range p.Slides {
			if s.ImageURL == "" {
				t.Errorf("slide %d has no image url after normalization", i)
			}
		}
		if provider.lastReq.ResponseSchema == nil {
			t.Error("request carried no response schema")
		}
	})

	t.Run("missing topic falls back to document title", func(t *testing.T) {
		provider := &stubProvider{content: `{"slides": [{"id": "s1", "layout": "title", "title": "T", "visualDescription": "d", "speakerNotes": ""}]}`}
		g := New(provider, "test-model", zerolog.Nop())

		p, err := g.Generate(context.Background(), doc)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if p.Topic != "solar-report" {
			t.Errorf("topic = %q, want document title fallback", p.Topic)
		}
	})

	t.Run("provider failure wrapped", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("rate limit")}
		g := New(provider, "test-model", zerolog.Nop())

		if _, err := g.Generate(context.Background(), doc); err == nil {
			t.Fatal("Generate() succeeded with a failing provider")
		}
	})

	t.Run("zero slides is an error", func(t *testing.T) {
		provider := &stubProvider{content: `{"topic": "x", "slides": []}`}
		g := New(provider, "test-model", zerolog.Nop())

		if _, err := g.Generate(context.Background(), doc); err == nil {
			t.Fatal("Generate() accepted an empty deck")
		}
	})

	t.Run("long document truncated in prompt", func(t *testing.T) {
		provider := &stubProvider{content: validResponse}
		g := New(provider, "test-model", zerolog.Nop())

		big := &document.Document{
			Content:  strings.Repeat("x", maxSourceChars+5000),
			Metadata: document.Metadata{Title: "big"},
		}
		if _, err := g.Generate(context.Background(), big); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		user := provider.lastReq.Messages[len(provider.lastReq.Messages)-1].Content
		if len(user) > maxSourceChars+100 {
			t.Errorf("user prompt length = %d, want document text truncated to %d", len(user), maxSourceChars)
		}
	})
}

func TestResponseSchemaIsValidJSON(t *testing.T) {
	var decoded map[string]any
	if err := json.Unmarshal(ResponseSchema(), &decoded); err != nil {
		t.Fatalf("response schema is not valid JSON: %v", err)
	}

	schema := string(ResponseSchema())
	for _, want := range []string{`"slides"`, `"layout"`, "bullet-points", "visual-focus"} {
		if !strings.Contains(schema, want) {
			t.Errorf("response schema missing %q", want)
		}
	}
}
