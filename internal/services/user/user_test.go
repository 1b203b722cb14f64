package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetUser(ctx context.Context, userUUID string) (*models.User, error) {
	args := m.Called(ctx, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) UpdatePreferredLanguage(ctx context.Context, userUUID, language string) (int, error) {
	args := m.Called(ctx, userUUID, language)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func testUser(discount float64) *models.User {
	return &models.User{
		UUID:               "user-1",
		Email:              "demo@smartnotes.com",
		Name:               "Demo User",
		SubscriptionStatus: models.SubscriptionTrial,
		ReferralCode:       "AB12CD34",
		DiscountAmount:     discount,
		PreferredLanguage:  "en",
	}
}

func TestUserService_Profile(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*RepoMock, *CacheMock)
		wantErr    bool
	}{
		{
			name: "Профиль взят из кеша",
			setupMocks: func(_ *RepoMock, c *CacheMock) {
				c.On("Get", "user:user-1", mock.Anything).
					Run(func(args mock.Arguments) {
						ptr := args.Get(1).(**models.User)
						*ptr = testUser(0)
					}).Return(true, nil).Once()
			},
		},
		{
			name: "Профиль читается из базы и кешируется",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "user:user-1", mock.Anything).Return(false, nil).Once()
				r.On("GetUser", mock.Anything, "user-1").Return(testUser(0), nil).Once()
				c.On("Set", "user:user-1", mock.Anything, time.Hour).Return(nil).Once()
			},
		},
		{
			name: "Пользователь не найден",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "user:user-1", mock.Anything).Return(false, nil).Once()
				r.On("GetUser", mock.Anything, "user-1").
					Return(nil, repository.ErrUserNotFound).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			tt.setupMocks(repo, cache)

			service := NewUserService(repo, cache, newNoopLogger())
			user, err := service.Profile(context.Background(), "user-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", user.UUID)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateLanguage(t *testing.T) {
	tests := []struct {
		name       string
		language   string
		setupMocks func(*RepoMock, *CacheMock)
		wantErr    error
	}{
		{
			name:     "Успешная смена языка",
			language: "it",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("UpdatePreferredLanguage", mock.Anything, "user-1", "it").Return(1, nil).Once()
				c.On("Invalidate", "user:user-1").Return(nil).Once()
			},
		},
		{
			name:     "Неподдерживаемый язык отклоняется без обращения к базе",
			language: "jp",
			setupMocks: func(_ *RepoMock, _ *CacheMock) {
			},
			wantErr: ErrUnsupportedLanguage,
		},
		{
			name:     "Пользователь не найден",
			language: "de",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("UpdatePreferredLanguage", mock.Anything, "user-1", "de").Return(0, nil).Once()
			},
			wantErr: repository.ErrUserNotFound,
		},
		{
			name:     "Ошибка хранилища",
			language: "fr",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("UpdatePreferredLanguage", mock.Anything, "user-1", "fr").
					Return(0, errors.New("db is down")).Once()
			},
			wantErr: errors.New("db is down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			tt.setupMocks(repo, cache)

			service := NewUserService(repo, cache, newNoopLogger())
			err := service.UpdateLanguage(context.Background(), "user-1", tt.language)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

// Повторная установка того же языка проходит так же, как первая.
func TestUserService_UpdateLanguage_Idempotent(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	repo.On("UpdatePreferredLanguage", mock.Anything, "user-1", "it").Return(1, nil).Twice()
	cache.On("Invalidate", "user:user-1").Return(nil).Twice()

	service := NewUserService(repo, cache, newNoopLogger())

	assert.NoError(t, service.UpdateLanguage(context.Background(), "user-1", "it"))
	assert.NoError(t, service.UpdateLanguage(context.Background(), "user-1", "it"))

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUserService_Referral(t *testing.T) {
	tests := []struct {
		name         string
		discount     float64
		expectedCost float64
	}{
		{name: "Без скидки", discount: 0, expectedCost: 2.0},
		{name: "Частичная скидка", discount: 0.5, expectedCost: 1.5},
		{name: "Скидка не опускает цену ниже минимума", discount: 5.0, expectedCost: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			cache.On("Get", "user:user-1", mock.Anything).Return(false, nil).Once()
			repo.On("GetUser", mock.Anything, "user-1").Return(testUser(tt.discount), nil).Once()
			cache.On("Set", "user:user-1", mock.Anything, time.Hour).Return(nil).Once()

			service := NewUserService(repo, cache, newNoopLogger())
			info, err := service.Referral(context.Background(), "user-1")

			assert.NoError(t, err)
			assert.Equal(t, "AB12CD34", info.ReferralCode)
			assert.Equal(t, tt.discount, info.DiscountAmount)
			assert.Equal(t, tt.expectedCost, info.MonthlyCost)
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}
