package service

import (
	"context"

	"github.com/avlasov/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration,
// authentication and session persistence. A successful login is persisted in
// the local session store so that a restart does not require a new login.
type ClientAuthService interface {
	// Register creates a new account on the server. It does not log the
	// user in.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login authenticates against the server, stores the bearer token in
	// the transport adapter, persists the session locally and returns it.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// RestoreSession loads the locally persisted session. An expired token
	// clears the stored session and yields ErrSessionExpired; a missing one
	// yields store.ErrLocalSessionNotFound.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the persisted session and the adapter token.
	Logout(ctx context.Context) error
}

// ClientNotesService is the client-side note CRUD surface backed by the
// server adapter.
type ClientNotesService interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, payload models.NotePayload) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}
