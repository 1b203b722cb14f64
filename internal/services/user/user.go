// Package services содержит бизнес-логику профиля пользователя.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
	"github.com/magabrotheeeer/smartnotes-backend/internal/transcriber"
)

// Стоимость подписки до применения реферальной скидки и нижняя граница цены.
const (
	baseMonthlyCost = 2.0
	minMonthlyCost  = 1.0
)

// userCacheTTL ограничивает время жизни профиля в кеше.
const userCacheTTL = time.Hour

// ErrUnsupportedLanguage возвращается при попытке выбрать язык вне
// поддерживаемого набора.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// GetUser возвращает пользователя по идентификатору.
	GetUser(ctx context.Context, userUUID string) (*models.User, error)
	// UpdatePreferredLanguage сохраняет язык обработки по умолчанию.
	UpdatePreferredLanguage(ctx context.Context, userUUID, language string) (int, error)
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

// UserService реализует операции над профилем пользователя.
type UserService struct {
	repo  UserRepository
	cache Cache
	log   *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, cache Cache, log *slog.Logger) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Profile возвращает профиль пользователя, используя кеш или репозиторий.
func (s *UserService) Profile(ctx context.Context, userUUID string) (*models.User, error) {
	var user *models.User
	cacheKey := "user:" + userUUID
	found, err := s.cache.Get(cacheKey, &user)
	if err != nil {
		return nil, err
	}
	if found {
		return user, nil
	}

	user, err = s.repo.GetUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, user, userCacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return user, nil
}

// UpdateLanguage меняет язык обработки по умолчанию и инвалидирует кеш профиля.
// Язык вне поддерживаемого набора дает ErrUnsupportedLanguage, прежнее
// значение при этом сохраняется.
func (s *UserService) UpdateLanguage(ctx context.Context, userUUID, language string) error {
	if !transcriber.IsSupportedLanguage(language) {
		return ErrUnsupportedLanguage
	}

	count, err := s.repo.UpdatePreferredLanguage(ctx, userUUID, language)
	if err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrUserNotFound
	}

	cacheKey := "user:" + userUUID
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	s.log.Info("updated preferred language",
		slog.String("user_uid", userUUID), slog.String("language", language))
	return nil
}

// Referral возвращает реферальный код пользователя и стоимость подписки
// с учетом накопленной скидки.
func (s *UserService) Referral(ctx context.Context, userUUID string) (*models.ReferralInfo, error) {
	user, err := s.Profile(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	monthlyCost := baseMonthlyCost - user.DiscountAmount
	if monthlyCost < minMonthlyCost {
		monthlyCost = minMonthlyCost
	}
	return &models.ReferralInfo{
		ReferralCode:   user.ReferralCode,
		DiscountAmount: user.DiscountAmount,
		MonthlyCost:    monthlyCost,
	}, nil
}
