package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlasov/go-notes-keeper/internal/logger"
	"github.com/avlasov/go-notes-keeper/internal/service"
	"github.com/avlasov/go-notes-keeper/internal/store"
	"github.com/avlasov/go-notes-keeper/internal/tui"
	"github.com/avlasov/go-notes-keeper/models"
)

// App ties the client services and the terminal UI together.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives the client lifecycle: a stored session is restored when still
// valid, otherwise the login flow runs first. After a logout (explicit or
// forced by an expired token) the loop starts over with a fresh login.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.establishSession(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.tui.MainLoop(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("clearing local session on logout")
		}
	}
}

func (a *App) establishSession(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		return session, nil
	}

	if !errors.Is(err, store.ErrLocalSessionNotFound) && !errors.Is(err, service.ErrSessionExpired) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.tui.LoginFlow(ctx)
}
