package tui

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kiminote/kiminote/internal/config"
	"github.com/kiminote/kiminote/internal/deck"
	"github.com/kiminote/kiminote/internal/document"
	"github.com/kiminote/kiminote/internal/export"
	"github.com/kiminote/kiminote/internal/generate"
	"github.com/kiminote/kiminote/internal/llm"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewProcessing
	viewEditor
	viewError
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(log zerolog.Logger) *App {
	s := newState(log)

	// Check if setup needed
	cfg, _ := config.Load()
	if cfg == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = cfg
	}

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	// Test provider connection
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.testProvider(),
	)
}

func (a *App) testProvider() tea.Cmd {
	return func() tea.Msg {
		provider, err := llm.NewProvider(a.state.config)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewWelcome
		return a, a.testProvider()

	case setupErrorMsg:
		a.state.providerError = msg.error
		a.view = viewError
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		provider, _ := llm.NewProvider(a.state.config)
		a.state.provider = provider
		a.state.input.Focus()
		return a, textinput.Blink

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case documentReadMsg:
		if msg.epoch != a.state.session.Epoch() {
			return a, nil
		}
		a.state.document = msg.doc
		a.state.stage = 1
		return a, a.designSlides(msg.doc, msg.epoch)

	case generateDoneMsg:
		if a.state.session.Finish(msg.presentation, msg.epoch) {
			a.view = viewEditor
			a.state.rowCursor = 0
			a.state.statusMsg = ""
		}
		return a, nil

	case generateErrMsg:
		if a.state.session.Fail(msg.err, msg.epoch) {
			a.view = viewError
		}
		return a, nil

	case exportDoneMsg:
		a.state.statusMsg = "Saved " + msg.path
		return a, nil

	case exportErrMsg:
		a.state.statusMsg = "Export failed: " + msg.err.Error()
		return a, nil
	}

	// Update text inputs based on view
	if a.view == viewSetup && a.state.setupStep == 1 {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewWelcome {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewEditor && a.state.editing {
		var cmd tea.Cmd
		a.state.editInput, cmd = a.state.editInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp || a.view == viewError {
			a.view = a.homeView()
			return nil
		}
		if a.view == viewSetup && a.state.setupStep == 1 {
			// Go back to provider selection
			a.state.setupStep = 0
			a.state.apiKeyInput.Reset()
			return nil
		}
		if a.view == viewEditor && a.state.editing {
			a.state.editing = false
			a.state.editInput.Reset()
			return nil
		}
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewWelcome:
		if key.Matches(msg, keys.Enter) && a.state.providerReady {
			return a.handleInput()
		}
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewEditor:
		return a.handleEditorKey(msg)
	}

	return nil
}

// homeView is where help and error screens return to.
func (a *App) homeView() view {
	if a.state.session.Presentation() != nil {
		return viewEditor
	}
	return viewWelcome
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	// Handle slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
		a.state.input.Reset()
		return nil
	}

	// Anything else is a document path
	a.state.input.Reset()
	return a.startGeneration(input)
}

func (a *App) startGeneration(path string) tea.Cmd {
	epoch := a.state.session.Begin()
	a.state.stage = 0
	a.state.document = nil
	a.view = viewProcessing

	return func() tea.Msg {
		doc, err := document.Extract(path)
		if err != nil {
			return generateErrMsg{err, epoch}
		}
		return documentReadMsg{doc, epoch}
	}
}

func (a *App) designSlides(doc *document.Document, epoch int) tea.Cmd {
	gen := generate.New(a.state.provider, a.state.config.Model, a.state.log)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		p, err := gen.Generate(ctx, doc)
		if err != nil {
			return generateErrMsg{err, epoch}
		}
		return generateDoneMsg{p, epoch}
	}
}

func (a *App) exportDeck(ext string) tea.Cmd {
	p := a.state.session.Presentation()
	if p == nil {
		return nil
	}
	name := export.Filename(p.Topic, ext)

	return func() tea.Msg {
		f, err := os.Create(name)
		if err != nil {
			return exportErrMsg{err}
		}
		defer f.Close()

		switch ext {
		case "pptx":
			err = export.WritePPTX(f, p)
		case "html":
			err = export.WriteHTML(f, p)
		default:
			err = export.WriteJSON(f, p)
		}
		if err != nil {
			return exportErrMsg{err}
		}
		return exportDoneMsg{name}
	}
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel

			if provider.NeedsAPIKey {
				a.state.setupStep = 1
				a.state.apiKeyInput.Focus()
				return textinput.Blink
			}
			return a.finishSetup()
		}

	case 1: // API key entry
		switch msg.String() {
		case "enter":
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			return a.finishSetup()
		}
	}

	return nil
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	if s.editing {
		if key.Matches(msg, keys.Enter) {
			return a.commitEdit()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Left):
		s.session.Prev()
		s.rowCursor = 0
		return nil
	case key.Matches(msg, keys.Right):
		s.session.Next()
		s.rowCursor = 0
		return nil
	case key.Matches(msg, keys.Up):
		if s.rowCursor > 0 {
			s.rowCursor--
		}
		return nil
	case key.Matches(msg, keys.Down), key.Matches(msg, keys.Tab):
		rows := editRows(s.session.CurrentSlide())
		if s.rowCursor < len(rows)-1 {
			s.rowCursor++
		} else if key.Matches(msg, keys.Tab) {
			s.rowCursor = 0
		}
		return nil
	case key.Matches(msg, keys.Enter):
		return a.beginEdit()
	}

	switch msg.String() {
	case "p":
		return a.exportDeck("pptx")
	case "w":
		return a.exportDeck("html")
	case "d":
		return a.exportDeck("json")
	case "n":
		s.session.Reset()
		s.document = nil
		s.statusMsg = ""
		a.view = viewWelcome
		s.input.Focus()
		return textinput.Blink
	case "?":
		a.view = viewHelp
		return nil
	}

	return nil
}

func (a *App) beginEdit() tea.Cmd {
	s := a.state
	rows := editRows(s.session.CurrentSlide())
	if s.rowCursor >= len(rows) {
		return nil
	}
	row := rows[s.rowCursor]
	if !row.editable() {
		return nil
	}

	s.editing = true
	s.editInput.SetValue(row.value)
	s.editInput.CursorEnd()
	s.editInput.Focus()
	return textinput.Blink
}

func (a *App) commitEdit() tea.Cmd {
	s := a.state
	s.editing = false
	value := s.editInput.Value()
	s.editInput.Reset()

	slide := s.session.CurrentSlide()
	if slide == nil {
		return nil
	}
	rows := editRows(slide)
	if s.rowCursor >= len(rows) {
		return nil
	}
	row := rows[s.rowCursor]

	var err error
	if row.pointIndex >= 0 {
		err = s.session.EditPoint(slide.ID, row.pointIndex, value)
	} else {
		err = s.session.EditField(slide.ID, row.field, value)
	}
	if err != nil {
		s.statusMsg = "Edit failed: " + err.Error()
	} else {
		s.statusMsg = ""
	}
	return nil
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{}
type providerErrorMsg struct{ error }

type documentReadMsg struct {
	doc   *document.Document
	epoch int
}

type generateDoneMsg struct {
	presentation *deck.Presentation
	epoch        int
}

type generateErrMsg struct {
	err   error
	epoch int
}

type exportDoneMsg struct{ path string }
type exportErrMsg struct{ err error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewSetup:
		return a.renderSetup()
	case viewProcessing:
		return a.renderProcessing()
	case viewEditor:
		return a.renderEditor()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
