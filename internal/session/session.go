// Package session owns one end-to-end cycle from document ingestion
// through editing to export: the in-memory presentation, the navigation
// cursor and the processing state machine.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kiminote/kiminote/internal/deck"
)

// State is the session's position in the upload → processing → editor cycle.
type State int

const (
	// StateUpload is waiting for a document. Also the state after any
	// input or generation failure.
	StateUpload State = iota
	// StateProcessing has a generation request in flight. Editing is
	// unavailable until it resolves.
	StateProcessing
	// StateEditor holds a live presentation being edited.
	StateEditor
)

func (s State) String() string {
	switch s {
	case StateUpload:
		return "upload"
	case StateProcessing:
		return "processing"
	case StateEditor:
		return "editor"
	default:
		return "invalid"
	}
}

// Session exclusively owns a presentation for its lifetime. Renderers and
// exporters read it through Presentation; only the edit operations mutate
// it. Generation results carry the epoch they were started under, so a
// resolution arriving after a reset is ignored instead of resurrecting a
// discarded session.
type Session struct {
	id    uuid.UUID
	log   zerolog.Logger
	state State
	epoch int

	presentation *deck.Presentation
	cursor       int
	err          error
}

// New creates an empty session in the upload state.
func New(log zerolog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:  id,
		log: log.With().Str("session", id.String()).Logger(),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) State() State { return s.state }

// Epoch is the current generation epoch. Intermediate pipeline stages can
// compare against it to drop work started before a reset.
func (s *Session) Epoch() int { return s.epoch }

// Err returns the most recent input or generation error, cleared on the
// next successful generation or reset.
func (s *Session) Err() error { return s.err }

// Begin moves to processing and returns the generation epoch the caller
// must hand back to Finish or Fail. Starting a new generation implicitly
// abandons interest in any earlier unresolved one.
func (s *Session) Begin() int {
	s.epoch++
	s.state = StateProcessing
	s.err = nil
	s.log.Debug().Int("epoch", s.epoch).Msg("generation started")
	return s.epoch
}

// Finish installs a generated presentation. A stale epoch, or a session no
// longer processing, makes this a recorded no-op and returns false. No
// partial presentation is ever applied.
func (s *Session) Finish(p *deck.Presentation, epoch int) bool {
	if !s.resolvable(epoch) {
		return false
	}
	s.presentation = p
	s.cursor = 0
	s.err = nil
	s.state = StateEditor
	s.log.Debug().Int("epoch", epoch).Int("slides", len(p.Slides)).Msg("generation finished")
	return true
}

// Fail records a generation or input failure and returns to upload. Stale
// epochs are ignored exactly like Finish.
func (s *Session) Fail(err error, epoch int) bool {
	if !s.resolvable(epoch) {
		return false
	}
	s.err = err
	s.state = StateUpload
	s.log.Debug().Int("epoch", epoch).Err(err).Msg("generation failed")
	return true
}

func (s *Session) resolvable(epoch int) bool {
	if epoch != s.epoch || s.state != StateProcessing {
		s.log.Debug().Int("epoch", epoch).Int("current", s.epoch).Msg("stale generation resolution ignored")
		return false
	}
	return true
}

// Reset discards the presentation and returns to upload. The epoch bump
// invalidates any in-flight generation.
func (s *Session) Reset() {
	s.epoch++
	s.presentation = nil
	s.cursor = 0
	s.err = nil
	s.state = StateUpload
	s.log.Debug().Msg("session reset")
}

// Presentation returns the session's deck, or nil outside the editor
// state. Callers other than the edit operations treat it as read-only.
func (s *Session) Presentation() *deck.Presentation {
	return s.presentation
}

func (s *Session) SlideCount() int {
	if s.presentation == nil {
		return 0
	}
	return len(s.presentation.Slides)
}

// Cursor returns the current slide index.
func (s *Session) Cursor() int { return s.cursor }

// CurrentSlide returns the slide under the cursor, or nil.
func (s *Session) CurrentSlide() *deck.Slide {
	if s.presentation == nil || s.cursor >= len(s.presentation.Slides) {
		return nil
	}
	return &s.presentation.Slides[s.cursor]
}

// Next advances the cursor, clamped at the last slide.
func (s *Session) Next() { s.Goto(s.cursor + 1) }

// Prev moves the cursor back, clamped at zero.
func (s *Session) Prev() { s.Goto(s.cursor - 1) }

// Goto moves the cursor to i, clamped to [0, slideCount-1].
func (s *Session) Goto(i int) {
	n := s.SlideCount()
	if n == 0 {
		s.cursor = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	s.cursor = i
}

// EditField replaces one scalar field on one slide.
func (s *Session) EditField(id string, field deck.Field, value string) error {
	if s.state != StateEditor {
		return fmt.Errorf("no presentation to edit")
	}
	return s.presentation.SetField(id, field, value)
}

// EditPoint replaces one bullet item on one slide.
func (s *Session) EditPoint(id string, index int, value string) error {
	if s.state != StateEditor {
		return fmt.Errorf("no presentation to edit")
	}
	return s.presentation.SetPoint(id, index, value)
}
