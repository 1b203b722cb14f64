// Package services содержит периодические задачи сервиса: рассылку
// уведомлений об окончании пробного периода и очистку просроченных сессий.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/rabbitmq"
)

// Repository определяет методы хранилища, необходимые планировщику.
type Repository interface {
	// FindTrialsExpiringTomorrow возвращает пользователей,
	// у которых пробный период заканчивается завтра.
	FindTrialsExpiringTomorrow(ctx context.Context) ([]*models.TrialNotice, error)
	// DeleteExpiredSessions удаляет просроченные сессии.
	DeleteExpiredSessions(ctx context.Context) (int, error)
}

// SchedulerService запускает периодические задачи по расписанию.
type SchedulerService struct {
	repo Repository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo Repository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// NotifyExpiringTrials рассылает уведомления об окончании пробного периода.
// Первый проход выполняется сразу, затем раз в сутки до отмены ctx.
func (s *SchedulerService) NotifyExpiringTrials(ctx context.Context, channel rabbitmq.Publisher) {
	s.runNotifyExpiringTrials(ctx, channel)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runNotifyExpiringTrials(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runNotifyExpiringTrials(ctx context.Context, channel rabbitmq.Publisher) {
	s.log.Info("starting service to find trials expiring tomorrow")
	notices, err := s.repo.FindTrialsExpiringTomorrow(ctx)
	if err != nil {
		s.log.Error("failed to find expiring trials", sl.Err(err))
		return
	}
	if len(notices) == 0 {
		s.log.Info("no expiring trials found")
		return
	}
	s.log.Info("found expiring trials", "count", len(notices))
	for _, notice := range notices {
		err = rabbitmq.PublishMessage(channel, "notifications", "trial", notice)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}

// PurgeExpiredSessions удаляет просроченные сессии. Первый проход
// выполняется сразу, затем каждые 12 часов до отмены ctx.
func (s *SchedulerService) PurgeExpiredSessions(ctx context.Context) {
	s.runPurgeExpiredSessions(ctx)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runPurgeExpiredSessions(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runPurgeExpiredSessions(ctx context.Context) {
	s.log.Info("starting service to purge expired sessions")
	count, err := s.repo.DeleteExpiredSessions(ctx)
	if err != nil {
		s.log.Error("failed to delete expired sessions", sl.Err(err))
		return
	}
	if count == 0 {
		s.log.Info("no expired sessions found")
		return
	}
	s.log.Info("deleted expired sessions", "count", count)
}
