package tui

import (
	"github.com/avlasov/go-notes-keeper/internal/service"
	"github.com/avlasov/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. An optional payload
// is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an async login attempt. On success the root router
// quits the auth program and hands the session to the caller.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult finishes an async registration attempt.
type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is shown on the welcome page after a successful
// registration.
type RegisterSuccessNotice struct {
	Email string
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteDeletedMsg struct {
	noteID string
	err    error
}

type saveResultMsg service.SaveResult

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
