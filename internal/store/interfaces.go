package store

import (
	"context"

	"github.com/avlasov/go-notes-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its exact, case-sensitive
	// email. Returns ErrNoUserWasFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository persists notes. Every operation takes the owning user's id
// and restricts its WHERE clause to it: a note belonging to someone else is
// indistinguishable from a note that does not exist.
type NoteRepository interface {
	// ListNotes returns all notes of the owner ordered by update recency,
	// most recent first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// GetNote returns a single owned note or ErrNoteNotFound.
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)

	// CreateNote inserts the note and returns it with the server-assigned
	// timestamps.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote replaces title and document of an owned note, refreshes
	// updated_at, and returns the stored row. Returns ErrNoteNotFound when
	// the note is absent or owned by someone else.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes an owned note or returns ErrNoteNotFound.
	DeleteNote(ctx context.Context, userID int64, noteID string) error
}
