package service

import (
	"context"

	"github.com/avlasov/go-notes-keeper/internal/adapter"
	"github.com/avlasov/go-notes-keeper/models"
)

// clientNotesService delegates note CRUD to the server adapter. It exists so
// the TUI and the autosave scheduler depend on a service interface rather
// than on the transport directly.
type clientNotesService struct {
	adapter adapter.ServerAdapter
}

func NewClientNotesService(serverAdapter adapter.ServerAdapter) ClientNotesService {
	return &clientNotesService{adapter: serverAdapter}
}

func (n *clientNotesService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return n.adapter.ListNotes(ctx)
}

func (n *clientNotesService) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	return n.adapter.GetNote(ctx, noteID)
}

func (n *clientNotesService) CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error) {
	return n.adapter.CreateNote(ctx, payload)
}

func (n *clientNotesService) UpdateNote(ctx context.Context, noteID string, payload models.NotePayload) (models.Note, error) {
	return n.adapter.UpdateNote(ctx, noteID, payload)
}

func (n *clientNotesService) DeleteNote(ctx context.Context, noteID string) error {
	return n.adapter.DeleteNote(ctx, noteID)
}
