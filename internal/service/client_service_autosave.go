package service

import (
	"context"
	"sync"
	"time"

	"github.com/avlasov/go-notes-keeper/models"
)

// defaultAutosaveDelay is the quiet period after the last keystroke before
// the buffer is saved.
const defaultAutosaveDelay = time.Second

// BufferState describes the editor buffer relative to the server copy.
type BufferState int

const (
	// BufferClean means the buffer matches the last saved state.
	BufferClean BufferState = iota
	// BufferSaveScheduled means edits are pending and the debounce timer
	// is armed.
	BufferSaveScheduled
	// BufferSaving means a save request is in flight.
	BufferSaving
	// BufferSaveError means the last save attempt failed; the buffer still
	// holds the unsaved edits.
	BufferSaveError
)

// SaveResult is emitted on the Results channel after every save attempt.
type SaveResult struct {
	// Note is the server copy after a successful save.
	Note models.Note
	// Created reports that this save created the note (the buffer had no
	// id yet). The note's server-assigned id has already been adopted by
	// the scheduler for subsequent saves.
	Created bool
	// Err is non-nil when the save failed. The edits stay in the buffer;
	// the next edit re-arms the timer and retries.
	Err error
}

// AutosaveScheduler debounces editor keystrokes into save requests.
//
// Every Edit re-arms a timer; the save fires only after a full quiet period,
// so a burst of keystrokes produces a single request carrying the final
// buffer content. A buffer without a note id is created on first save and
// the returned id adopted, so one editing session never produces duplicate
// notes. In-flight saves are never cancelled; when a save completes after
// further edits the buffer simply stays scheduled.
//
// Results of save attempts are delivered on the Results channel, which the
// UI event loop is expected to drain.
type AutosaveScheduler struct {
	notes   ClientNotesService
	delay   time.Duration
	results chan SaveResult

	mu    sync.Mutex
	timer *time.Timer
	state BufferState
	draft models.NoteDraft
}

// NewAutosaveScheduler constructs a scheduler saving through the given
// notes service. A non-positive delay falls back to one second.
func NewAutosaveScheduler(notes ClientNotesService, delay time.Duration) *AutosaveScheduler {
	if delay <= 0 {
		delay = defaultAutosaveDelay
	}

	return &AutosaveScheduler{
		notes:   notes,
		delay:   delay,
		results: make(chan SaveResult, 8),
		state:   BufferClean,
	}
}

// Results returns the channel on which save outcomes are delivered.
func (s *AutosaveScheduler) Results() <-chan SaveResult {
	return s.results
}

// State reports the current buffer state.
func (s *AutosaveScheduler) State() BufferState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Edit replaces the buffered draft and re-arms the debounce timer. The timer
// restarts from zero on every call, so the save fires one full delay after
// the last keystroke.
func (s *AutosaveScheduler) Edit(draft models.NoteDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a draft created during this session keeps its adopted id
	if draft.NoteID == "" && s.draft.NoteID != "" {
		draft.NoteID = s.draft.NoteID
	}
	s.draft = draft
	s.state = BufferSaveScheduled

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Flush cancels the pending timer and saves the buffer immediately. It is a
// no-op unless a save is scheduled.
func (s *AutosaveScheduler) Flush() {
	s.mu.Lock()

	if s.state != BufferSaveScheduled {
		s.mu.Unlock()
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	draft := s.draft
	s.state = BufferSaving
	s.mu.Unlock()

	s.save(draft)
}

// Discard abandons the buffered edits, used when the user switches to
// another note. Any in-flight save still completes on the server; its result
// is delivered but the buffer stays clean.
func (s *AutosaveScheduler) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.draft = models.NoteDraft{}
	s.state = BufferClean
}

func (s *AutosaveScheduler) fire() {
	s.mu.Lock()
	if s.state != BufferSaveScheduled {
		s.mu.Unlock()
		return
	}
	draft := s.draft
	s.state = BufferSaving
	s.mu.Unlock()

	s.save(draft)
}

func (s *AutosaveScheduler) save(draft models.NoteDraft) {
	// a buffer that was never typed into is not worth a note
	if draft.NoteID == "" && draft.Empty() {
		s.mu.Lock()
		if s.state == BufferSaving {
			s.state = BufferClean
		}
		s.mu.Unlock()
		return
	}

	ctx := context.Background()
	payload := models.NotePayload{Title: draft.Title, Document: draft.Document}

	var (
		note    models.Note
		err     error
		created bool
	)
	if draft.NoteID == "" {
		note, err = s.notes.CreateNote(ctx, payload)
		created = err == nil
	} else {
		note, err = s.notes.UpdateNote(ctx, draft.NoteID, payload)
	}

	s.mu.Lock()
	switch {
	case err != nil:
		if s.state == BufferSaving {
			s.state = BufferSaveError
		}
	default:
		if created && s.draft.NoteID == "" {
			s.draft.NoteID = note.ID
		}
		if s.state == BufferSaving {
			s.state = BufferClean
		}
	}
	s.mu.Unlock()

	s.results <- SaveResult{Note: note, Created: created, Err: err}
}
