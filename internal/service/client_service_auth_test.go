package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avlasov/go-notes-keeper/internal/mock"
	"github.com/avlasov/go-notes-keeper/internal/store"
	"github.com/avlasov/go-notes-keeper/internal/utils"
	"github.com/avlasov/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter, *mock.MockLocalSessionRepository) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockLocalSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockSessions}
	svc := NewClientAuthService(storages, mockAdapter)

	return svc, mockAdapter, mockSessions
}

func signedTestToken(t *testing.T, userID int64, duration time.Duration) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("go-notes-keeper", userID, duration, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestClientAuth_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "a@b.c", Password: "secret"}
	mockAdapter.EXPECT().Register(ctx, credentials).Return(nil)

	require.NoError(t, svc.Register(ctx, credentials))
}

func TestClientAuth_Register_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(errors.New("boom"))

	err := svc.Register(ctx, models.Credentials{Email: "a@b.c", Password: "secret"})
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

func TestClientAuth_Login_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "a@b.c", Password: "secret"}
	loginResp := models.LoginResponse{
		Token: "issued-token",
		User:  models.User{UserID: 42, Email: "a@b.c"},
	}

	mockAdapter.EXPECT().Login(ctx, credentials).Return(loginResp, nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Session) error {
			assert.Equal(t, int64(42), s.UserID)
			assert.Equal(t, "a@b.c", s.Email)
			assert.Equal(t, "issued-token", s.Token)
			assert.False(t, s.SavedAt.IsZero())
			return nil
		},
	)

	session, err := svc.Login(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", session.Token)
}

func TestClientAuth_Login_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, errors.New("401"))

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrLoginOnServer)
}

func TestClientAuth_RestoreSession_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	token := signedTestToken(t, 42, time.Hour)
	stored := models.Session{UserID: 42, Email: "a@b.c", Token: token, SavedAt: time.Now()}

	mockSessions.EXPECT().LoadSession(ctx).Return(stored, nil)
	mockAdapter.EXPECT().SetToken(token)

	session, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.UserID)
}

func TestClientAuth_RestoreSession_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	token := signedTestToken(t, 42, -time.Minute)
	stored := models.Session{UserID: 42, Email: "a@b.c", Token: token, SavedAt: time.Now().Add(-time.Hour)}

	mockSessions.EXPECT().LoadSession(ctx).Return(stored, nil)
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuth_RestoreSession_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().LoadSession(ctx).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestClientAuth_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}
