package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avlasov/go-notes-keeper/internal/service"
	"github.com/avlasov/go-notes-keeper/internal/utils"
	"github.com/avlasov/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T, parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)) (http.Handler, *bool) {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok, "user id must be present after auth")
		assert.Equal(t, int64(42), userID)
		w.WriteHeader(http.StatusOK)
	})

	h := newHandlerWithAuth(t, &mockAuthService{parseTokenFn: parseTokenFn})
	return h.auth(next), &called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mw, called := newAuthMiddleware(t, func(_ context.Context, tokenString string) (models.Token, error) {
		require.Equal(t, "valid-token", tokenString)
		return models.Token{UserID: 42}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw, called := newAuthMiddleware(t, func(_ context.Context, _ string) (models.Token, error) {
		t.Fatal("ParseToken must not be called without a header")
		return models.Token{}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mw, called := newAuthMiddleware(t, func(_ context.Context, _ string) (models.Token, error) {
		t.Fatal("ParseToken must not be called with a malformed header")
		return models.Token{}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	mw, called := newAuthMiddleware(t, func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{}, service.ErrTokenExpired
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mw, called := newAuthMiddleware(t, func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{}, service.ErrTokenInvalid
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer tampered-token")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
