package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avlasov/go-notes-keeper/internal/logger"
	"github.com/avlasov/go-notes-keeper/models"
)

const (
	upsertSession = `
INSERT INTO session (id, user_id, email, token, saved_at)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    user_id  = excluded.user_id,
    email    = excluded.email,
    token    = excluded.token,
    saved_at = excluded.saved_at;`

	selectSession = `SELECT user_id, email, token, saved_at FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession stores the session as the single row of the session table,
// replacing any previous one.
func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertSession, session.UserID, session.Email, session.Token, session.SavedAt)
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to persist session")
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := l.DB.QueryRowContext(ctx, selectSession)
	if err := row.Scan(&session.UserID, &session.Email, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}

		log.Err(err).
			Str("func", "localSessionRepository.LoadSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.ClearSession").
			Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
