// Package services содержит логику бизнес-уровня для сессий и демо-пользователя.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
	"github.com/magabrotheeeer/smartnotes-backend/internal/transcriber"
)

// Демо-пользователь, под которым работает мобильный клиент без регистрации.
const (
	demoEmail   = "demo@smartnotes.com"
	demoName    = "Demo User"
	demoPicture = "https://via.placeholder.com/150"
)

// sessionCacheTTL ограничивает время жизни сессии в кеше.
const sessionCacheTTL = time.Hour

// ErrInvalidSession возвращается, когда токен сессии неизвестен, просрочен
// или пользователь сессии не существует.
var ErrInvalidSession = errors.New("invalid or expired session")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail возвращает пользователя по адресу почты.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUser возвращает пользователя по идентификатору.
	GetUser(ctx context.Context, userUUID string) (*models.User, error)
}

// SessionRepository описывает контракт для работы с сессиями.
type SessionRepository interface {
	// UpsertSession сохраняет сессию, продлевая существующую с тем же токеном.
	UpsertSession(ctx context.Context, session models.Session) error
	// GetSessionByToken возвращает сессию по токену.
	GetSessionByToken(ctx context.Context, token string) (*models.Session, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// AuthService отвечает за выдачу сессий и проверку токенов.
type AuthService struct {
	users      UserRepository
	sessions   SessionRepository
	cache      Cache
	sessionTTL time.Duration
	log        *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionRepository, cache Cache,
	sessionTTL time.Duration, log *slog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		cache:      cache,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Bootstrap возвращает демо-пользователя, создавая его при первом обращении,
// и привязывает к нему сессию с токеном клиента.
func (s *AuthService) Bootstrap(ctx context.Context, sessionToken string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, demoEmail)
	if errors.Is(err, repository.ErrUserNotFound) {
		user, err = s.createDemoUser(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := models.Session{
		UUID:         uuid.NewString(),
		UserUUID:     user.UUID,
		SessionToken: sessionToken,
		ExpiresAt:    now.Add(s.sessionTTL),
		CreatedAt:    now,
	}
	if err := s.sessions.UpsertSession(ctx, session); err != nil {
		return nil, err
	}
	s.log.Info("session issued", slog.String("user_uid", user.UUID))

	if err := s.cache.Set("session:"+sessionToken, session, sessionCacheTTL); err != nil {
		s.log.Warn("failed to cache session", slog.Any("err", err))
	}
	if err := s.cache.Set("user:"+user.UUID, user, sessionCacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.Any("err", err))
	}
	return user, nil
}

func (s *AuthService) createDemoUser(ctx context.Context) (*models.User, error) {
	user := models.User{
		UUID:               uuid.NewString(),
		Email:              demoEmail,
		Name:               demoName,
		Picture:            demoPicture,
		SubscriptionStatus: models.SubscriptionTrial,
		ReferralCode:       newReferralCode(),
		DiscountAmount:     0,
		PreferredLanguage:  transcriber.DefaultLanguage,
		CreatedAt:          time.Now().UTC(),
	}
	err := s.users.CreateUser(ctx, user)
	if err == nil {
		s.log.Info("created demo user", slog.String("uid", user.UUID))
		return &user, nil
	}
	// Параллельный запрос мог создать пользователя первым
	existing, getErr := s.users.GetUserByEmail(ctx, demoEmail)
	if getErr != nil {
		return nil, err
	}
	return existing, nil
}

// ResolveSession проверяет токен и возвращает пользователя сессии.
// Просроченный или неизвестный токен дает ErrInvalidSession.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	var session *models.Session
	found, err := s.cache.Get("session:"+token, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		session, err = s.sessions.GetSessionByToken(ctx, token)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		if err != nil {
			return nil, err
		}
	}

	remaining := time.Until(session.ExpiresAt)
	if remaining <= 0 {
		if err := s.cache.Invalidate("session:" + token); err != nil {
			s.log.Warn("failed to invalidate session cache", slog.Any("err", err))
		}
		return nil, ErrInvalidSession
	}

	if !found {
		expiration := min(remaining, sessionCacheTTL)
		if err := s.cache.Set("session:"+token, session, expiration); err != nil {
			s.log.Warn("failed to cache session", slog.Any("err", err))
		}
	}

	var user *models.User
	found, err = s.cache.Get("user:"+session.UserUUID, &user)
	if err != nil {
		return nil, err
	}
	if found {
		return user, nil
	}
	user, err = s.users.GetUser(ctx, session.UserUUID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set("user:"+session.UserUUID, user, sessionCacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.Any("err", err))
	}
	return user, nil
}

// newReferralCode возвращает короткий код для реферальной программы.
func newReferralCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
