package service

import (
	"context"

	"github.com/avlasov/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NotesService is the owner-scoped note CRUD surface. Every operation takes
// the authenticated owner id; a note belonging to another owner behaves
// exactly like a missing one.
type NotesService interface {
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error)
	UpdateNote(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) error
}
