package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
)

// UpsertSession сохраняет сессию пользователя. Повторный вход с тем же
// токеном продлевает существующую сессию вместо создания дубликата.
func (s *Storage) UpsertSession(ctx context.Context, session models.Session) error {
	const op = "storage.UpsertSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO sessions (uuid, user_uuid, session_token, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (session_token)
			  DO UPDATE SET user_uuid = EXCLUDED.user_uuid,
			                expires_at = EXCLUDED.expires_at`
	_, err := s.Db.ExecContext(ctx, query,
		session.UUID, session.UserUUID, session.SessionToken, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetSessionByToken возвращает сессию по её токену.
// Возвращает ErrSessionNotFound, если сессии с таким токеном нет.
// Срок действия сессии здесь не проверяется, это забота вызывающего кода.
func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	const op = "storage.GetSessionByToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uuid, user_uuid, session_token, expires_at, created_at
			  FROM sessions
			  WHERE session_token = $1`
	session := &models.Session{}
	row := s.Db.QueryRowContext(ctx, query, token)

	if err := row.Scan(&session.UUID, &session.UserUUID, &session.SessionToken,
		&session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return session, nil
}

// DeleteExpiredSessions удаляет истёкшие сессии и возвращает их количество.
func (s *Storage) DeleteExpiredSessions(ctx context.Context) (int, error) {
	const op = "storage.DeleteExpiredSessions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM sessions WHERE expires_at < now()`
	result, err := s.Db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
