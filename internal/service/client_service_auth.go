package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avlasov/go-notes-keeper/internal/adapter"
	"github.com/avlasov/go-notes-keeper/internal/store"
	"github.com/avlasov/go-notes-keeper/internal/utils"
	"github.com/avlasov/go-notes-keeper/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) error {
	if err := a.adapter.Register(ctx, credentials); err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return nil
}

// Login authenticates on the server and persists the resulting session
// locally so the next start can skip the login screen.
func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	session := models.Session{
		UserID:  resp.User.UserID,
		Email:   resp.User.Email,
		Token:   resp.Token,
		SavedAt: time.Now(),
	}

	if err = a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persisting session: %w", err)
	}

	return session, nil
}

// RestoreSession loads the persisted session and checks the token expiry
// locally (without the signing key) before handing the token to the
// transport adapter. The server still has the final word: a revoked or
// otherwise rejected token surfaces as 401 on the first request.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	expiry, err := utils.ParseExpiryFromJWT(session.Token)
	if err != nil || !expiry.After(time.Now()) {
		// stale session is useless, drop it
		_ = a.localStore.SessionRepository.ClearSession(ctx)
		return models.Session{}, ErrSessionExpired
	}

	a.adapter.SetToken(session.Token)

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.localStore.SessionRepository.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	return nil
}
