// Package adapter provides transport-layer abstractions for communicating
// with the notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avlasov/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// Registration does not log the user in; a Login call must follow.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the full login response (token
	// plus the server-side user record).
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// ListNotes fetches all notes of the authenticated user, most recently
	// updated first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note by id. Returns [ErrNotFound] (wrapped)
	// when the note does not exist or belongs to another user.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// CreateNote persists a new note and returns it with the server-assigned
	// id and timestamps.
	CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error)

	// UpdateNote replaces title and document of an existing note.
	UpdateNote(ctx context.Context, noteID string, payload models.NotePayload) (models.Note, error)

	// DeleteNote removes a note by id.
	DeleteNote(ctx context.Context, noteID string) error
}
