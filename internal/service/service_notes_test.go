package service

import (
	"context"
	"testing"
	"time"

	"github.com/avlasov/go-notes-keeper/internal/logger"
	"github.com/avlasov/go-notes-keeper/internal/mock"
	"github.com/avlasov/go-notes-keeper/internal/store"
	"github.com/avlasov/go-notes-keeper/internal/utils"
	"github.com/avlasov/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotesService(t *testing.T, ctrl *gomock.Controller) (NotesService, *mock.MockNoteRepository) {
	t.Helper()

	mockRepo := mock.NewMockNoteRepository(ctrl)
	svc := NewNotesService(mockRepo, utils.UUIDGenerator{}, logger.NewLogger("test"))

	return svc, mockRepo
}

func TestNotesService_CreateNote_GeneratesIDAndDefaultTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNotesService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, note models.Note) (models.Note, error) {
			assert.NotEmpty(t, note.ID, "id must be generated before persistence")
			assert.Equal(t, int64(5), note.UserID)
			assert.Equal(t, "Untitled Note", note.Title)
			assert.Equal(t, "body text", note.Document)
			return note, nil
		},
	)

	created, err := svc.CreateNote(ctx, 5, models.NotePayload{Title: "", Document: "body text"})
	require.NoError(t, err)
	assert.Equal(t, "Untitled Note", created.Title)
}

func TestNotesService_CreateNote_KeepsProvidedTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNotesService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, "groceries", note.Title)
			return note, nil
		},
	)

	_, err := svc.CreateNote(ctx, 5, models.NotePayload{Title: "groceries", Document: "milk"})
	require.NoError(t, err)
}

func TestNotesService_UpdateNote_FullReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNotesService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, "note-1", note.ID)
			assert.Equal(t, int64(5), note.UserID)
			assert.Equal(t, "new title", note.Title)
			assert.Equal(t, "", note.Document, "empty document must replace the old one")
			note.UpdatedAt = time.Now()
			return note, nil
		},
	)

	updated, err := svc.UpdateNote(ctx, 5, "note-1", models.NotePayload{Title: "new title", Document: ""})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestNotesService_UpdateNote_EmptyTitleDefaulted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNotesService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, "Untitled Note", note.Title)
			return note, nil
		},
	)

	_, err := svc.UpdateNote(ctx, 5, "note-1", models.NotePayload{Document: "body"})
	require.NoError(t, err)
}

func TestNotesService_UpdateNote_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotesService(t, ctrl)

	_, err := svc.UpdateNote(context.Background(), 5, "", models.NotePayload{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNotesService_GetNote_ForeignNoteIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNotesService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetNote(ctx, int64(5), "someone-elses-note").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(ctx, 5, "someone-elses-note")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNotesService_ListNotes_PreservesRepositoryOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNotesService(t, ctrl)
	ctx := context.Background()

	fromRepo := []models.Note{
		{ID: "newest"},
		{ID: "older"},
		{ID: "oldest"},
	}
	mockRepo.EXPECT().ListNotes(ctx, int64(5)).Return(fromRepo, nil)

	notes, err := svc.ListNotes(ctx, 5)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "newest", notes[0].ID)
}

func TestNotesService_DeleteNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNotesService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteNote(ctx, int64(5), "missing").Return(store.ErrNoteNotFound)

	err := svc.DeleteNote(ctx, 5, "missing")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}
