package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avlasov/go-notes-keeper/internal/logger"
	"github.com/avlasov/go-notes-keeper/internal/service"
	"github.com/avlasov/go-notes-keeper/internal/store"
	"github.com/avlasov/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock NotesService
// ─────────────────────────────────────────────

type mockNotesService struct {
	listNotesFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	getNoteFn    func(ctx context.Context, userID int64, noteID string) (models.Note, error)
	createNoteFn func(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error)
	updateNoteFn func(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error)
	deleteNoteFn func(ctx context.Context, userID int64, noteID string) error
}

func (m *mockNotesService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listNotesFn(ctx, userID)
}

func (m *mockNotesService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	return m.getNoteFn(ctx, userID, noteID)
}

func (m *mockNotesService) CreateNote(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error) {
	return m.createNoteFn(ctx, userID, payload)
}

func (m *mockNotesService) UpdateNote(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error) {
	return m.updateNoteFn(ctx, userID, noteID, payload)
}

func (m *mockNotesService) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	return m.deleteNoteFn(ctx, userID, noteID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 42

// newNotesRouter wires the full router so that the auth middleware and
// chi URL params behave exactly as in production. Every request carrying
// the "Bearer good" token is attributed to testUserID.
func newNotesRouter(t *testing.T, notes service.NotesService) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good" {
				return models.Token{}, service.ErrTokenInvalid
			}
			return models.Token{UserID: testUserID}, nil
		},
	}

	svcs := &service.Services{
		AuthService:  auth,
		NotesService: notes,
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

func doAuthedRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	now := time.Now()
	notes := &mockNotesService{
		listNotesFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			require.Equal(t, testUserID, userID)
			return []models.Note{
				{ID: "newest", UserID: userID, Title: "a", UpdatedAt: now},
				{ID: "older", UserID: userID, Title: "b", UpdatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodGet, "/api/notes", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Note
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].ID)
}

func TestListNotes_Empty(t *testing.T) {
	notes := &mockNotesService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodGet, "/api/notes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListNotes_Unauthorized(t *testing.T) {
	router := newNotesRouter(t, &mockNotesService{})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// get
// ─────────────────────────────────────────────

func TestGetNote_Success(t *testing.T) {
	notes := &mockNotesService{
		getNoteFn: func(_ context.Context, userID int64, noteID string) (models.Note, error) {
			require.Equal(t, testUserID, userID)
			require.Equal(t, "note-1", noteID)
			return models.Note{ID: noteID, UserID: userID, Title: "groceries", Document: "milk"}, nil
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodGet, "/api/notes/note-1", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Note
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "groceries", got.Title)
	assert.Equal(t, "milk", got.Document)
}

func TestGetNote_ForeignNoteIsNotFound(t *testing.T) {
	notes := &mockNotesService{
		getNoteFn: func(_ context.Context, _ int64, _ string) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodGet, "/api/notes/foreign", "")

	// no existence leak: foreign and missing both read as 404
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	notes := &mockNotesService{
		createNoteFn: func(_ context.Context, userID int64, payload models.NotePayload) (models.Note, error) {
			require.Equal(t, testUserID, userID)
			return models.Note{ID: "fresh-id", UserID: userID, Title: payload.Title, Document: payload.Document}, nil
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodPost, "/api/notes", `{"Title":"groceries","Document":"milk"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Note
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "fresh-id", got.ID)
	assert.Equal(t, "groceries", got.Title)
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	rec := doAuthedRequest(t, newNotesRouter(t, &mockNotesService{}), http.MethodPost, "/api/notes", "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// update
// ─────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	notes := &mockNotesService{
		updateNoteFn: func(_ context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error) {
			require.Equal(t, testUserID, userID)
			require.Equal(t, "note-1", noteID)
			return models.Note{ID: noteID, UserID: userID, Title: payload.Title, Document: payload.Document}, nil
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodPut, "/api/notes/note-1", `{"Title":"new","Document":""}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Note
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "new", got.Title)
	assert.Empty(t, got.Document)
}

func TestUpdateNote_NotFound(t *testing.T) {
	notes := &mockNotesService{
		updateNoteFn: func(_ context.Context, _ int64, _ string, _ models.NotePayload) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodPut, "/api/notes/missing", `{"Title":"x","Document":"y"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// delete
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	notes := &mockNotesService{
		deleteNoteFn: func(_ context.Context, userID int64, noteID string) error {
			require.Equal(t, testUserID, userID)
			require.Equal(t, "note-1", noteID)
			return nil
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodDelete, "/api/notes/note-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Note deleted successfully", decodeMessage(t, rec))
}

func TestDeleteNote_NotFound(t *testing.T) {
	notes := &mockNotesService{
		deleteNoteFn: func(_ context.Context, _ int64, _ string) error {
			return store.ErrNoteNotFound
		},
	}

	rec := doAuthedRequest(t, newNotesRouter(t, notes), http.MethodDelete, "/api/notes/missing", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}
