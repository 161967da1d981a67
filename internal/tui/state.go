package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"

	"github.com/kiminote/kiminote/internal/config"
	"github.com/kiminote/kiminote/internal/document"
	"github.com/kiminote/kiminote/internal/llm"
	"github.com/kiminote/kiminote/internal/session"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Document
	document *document.Document

	// Generation progress
	stage int // 0 reading, 1 designing

	// Editor
	rowCursor int
	editing   bool
	editInput textinput.Model
	statusMsg string

	// Input
	input textinput.Model

	// Provider
	provider      llm.Provider
	providerReady bool
	providerError error

	// Session
	session *session.Session

	log zerolog.Logger
}

func newState(log zerolog.Logger) *state {
	input := textinput.New()
	input.Placeholder = "Path to a document (pdf, md, txt)..."
	input.CharLimit = 500
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	edit := textinput.New()
	edit.CharLimit = 500
	edit.Width = 60

	return &state{
		input:       input,
		apiKeyInput: apiKey,
		editInput:   edit,
		session:     session.New(log),
		log:         log,
	}
}
