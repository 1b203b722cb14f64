package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (uuid, email, name, picture, subscription_status,
			      referral_code, discount_amount, preferred_language, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.Db.ExecContext(ctx, query,
		user.UUID, user.Email, user.Name, user.Picture, user.SubscriptionStatus,
		user.ReferralCode, user.DiscountAmount, user.PreferredLanguage, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByEmail возвращает пользователя по его email.
// Возвращает ErrUserNotFound, если пользователя с таким email нет.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uuid, email, name, picture, subscription_status,
			      referral_code, discount_amount, preferred_language, created_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.Db.QueryRowContext(ctx, query, email)

	if err := row.Scan(&u.UUID, &u.Email, &u.Name, &u.Picture, &u.SubscriptionStatus,
		&u.ReferralCode, &u.DiscountAmount, &u.PreferredLanguage, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его UID.
// Возвращает ErrUserNotFound, если пользователя нет.
func (s *Storage) GetUser(ctx context.Context, userUUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uuid, email, name, picture, subscription_status,
			      referral_code, discount_amount, preferred_language, created_at
			  FROM users
			  WHERE uuid = $1`
	u := &models.User{}
	row := s.Db.QueryRowContext(ctx, query, userUUID)

	if err := row.Scan(&u.UUID, &u.Email, &u.Name, &u.Picture, &u.SubscriptionStatus,
		&u.ReferralCode, &u.DiscountAmount, &u.PreferredLanguage, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdatePreferredLanguage меняет предпочитаемый язык пользователя
// и возвращает количество изменённых строк.
func (s *Storage) UpdatePreferredLanguage(ctx context.Context, userUUID, language string) (int, error) {
	const op = "storage.UpdatePreferredLanguage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET preferred_language = $1
			  WHERE uuid = $2`
	result, err := s.Db.ExecContext(ctx, query, language, userUUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// FindTrialsExpiringTomorrow находит пользователей, у которых завтра
// заканчивается пробный период. Пробный период длится 14 дней с момента регистрации.
func (s *Storage) FindTrialsExpiringTomorrow(ctx context.Context) ([]*models.TrialNotice, error) {
	const op = "storage.FindTrialsExpiringTomorrow"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      email,
			      name,
			      (created_at + INTERVAL '14 days')::DATE AS trial_end_date
			  FROM users
			  WHERE subscription_status = 'trial'
			    AND (created_at + INTERVAL '14 days')::DATE = CURRENT_DATE + INTERVAL '1 day';`
	rows, err := s.Db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TrialNotice
	for rows.Next() {
		var n models.TrialNotice
		if err = rows.Scan(&n.Email, &n.Name, &n.TrialEndDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
