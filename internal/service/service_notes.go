package service

import (
	"context"
	"fmt"

	"github.com/avlasov/go-notes-keeper/internal/logger"
	"github.com/avlasov/go-notes-keeper/internal/store"
	"github.com/avlasov/go-notes-keeper/internal/utils"
	"github.com/avlasov/go-notes-keeper/models"
)

// defaultNoteTitle is substituted whenever a note is saved with an empty
// title.
const defaultNoteTitle = "Untitled Note"

// notesService is the concrete implementation of NotesService. All
// operations run against a NoteRepository that scopes every statement to the
// owner id, so ownership enforcement happens below this layer; the service
// only shapes the data (ids, default title).
type notesService struct {
	noteRepository store.NoteRepository
	uuidGenerator  utils.UUIDGenerator
	logger         *logger.Logger
}

// NewNotesService constructs a NotesService backed by the given repository.
func NewNotesService(noteRepository store.NoteRepository, uuidGenerator utils.UUIDGenerator, logger *logger.Logger) NotesService {
	return &notesService{
		noteRepository: noteRepository,
		uuidGenerator:  uuidGenerator,
		logger:         logger,
	}
}

// ListNotes returns every note of the owner, most recently updated first.
// An owner with no notes gets an empty slice, not an error.
func (n *notesService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

func (n *notesService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	if noteID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	return n.noteRepository.GetNote(ctx, userID, noteID)
}

// CreateNote persists a new note for the owner. The id is generated here
// (UUIDv7) rather than in the database, and an empty title is replaced with
// the default before the note is stored.
func (n *notesService) CreateNote(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error) {
	log := logger.FromContext(ctx)

	note := models.Note{
		ID:       n.uuidGenerator.Generate(),
		UserID:   userID,
		Title:    titleOrDefault(payload.Title),
		Document: payload.Document,
	}

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// UpdateNote replaces both title and document of the note. There is no
// partial patch; the payload is the full new state of the note.
func (n *notesService) UpdateNote(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error) {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	note := models.Note{
		ID:       noteID,
		UserID:   userID,
		Title:    titleOrDefault(payload.Title),
		Document: payload.Document,
	}

	updated, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (n *notesService) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return ErrInvalidDataProvided
	}

	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

func titleOrDefault(title string) string {
	if title == "" {
		return defaultNoteTitle
	}
	return title
}
