package generate

import "encoding/json"

// responseSchema constrains the model to the slide schema. The layout enum
// is closed; anything else the model invents still renders through the
// unknown-layout fallback, but the schema keeps that rare.
const responseSchema = `{
  "type": "OBJECT",
  "properties": {
    "topic": {"type": "STRING", "description": "The main topic/title of the presentation"},
    "theme": {"type": "STRING", "description": "The visual theme name"},
    "slides": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "id": {"type": "STRING"},
          "layout": {
            "type": "STRING",
            "enum": ["title", "bullet-points", "big-number", "split-image", "section-header", "visual-focus"]
          },
          "title": {"type": "STRING"},
          "subtitle": {"type": "STRING"},
          "points": {"type": "ARRAY", "items": {"type": "STRING"}},
          "visualDescription": {"type": "STRING"},
          "speakerNotes": {"type": "STRING"}
        },
        "required": ["id", "layout", "title", "visualDescription", "speakerNotes"]
      }
    }
  },
  "required": ["topic", "slides"]
}`

// ResponseSchema returns the generation response schema as raw JSON.
func ResponseSchema() json.RawMessage {
	return json.RawMessage(responseSchema)
}
