// Package services содержит бизнес-логику работы с голосовыми заметками.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/transcriber"
	"github.com/magabrotheeeer/smartnotes-backend/internal/worker"
)

// listLimit ограничивает размер списка записей пользователя.
const listLimit = 100

var (
	// ErrAlreadyProcessing возвращается при попытке запустить обработку записи,
	// которая уже обрабатывается.
	ErrAlreadyProcessing = errors.New("recording is already processing")
	// ErrProcessingUnavailable возвращается, когда очередь обработки переполнена.
	ErrProcessingUnavailable = errors.New("processing is temporarily unavailable")
)

// RecordingRepository определяет методы для работы с записями в хранилище.
type RecordingRepository interface {
	// CreateRecording сохраняет новую запись.
	CreateRecording(ctx context.Context, rec models.Recording) error
	// GetRecording возвращает запись пользователя по идентификатору.
	GetRecording(ctx context.Context, uid, userUUID string) (*models.Recording, error)
	// ListRecordingsByUser возвращает записи пользователя, новые первыми.
	ListRecordingsByUser(ctx context.Context, userUUID string, limit int) ([]*models.Recording, error)
	// MarkRecordingProcessing переводит запись в статус processing,
	// если она не обрабатывается прямо сейчас.
	MarkRecordingProcessing(ctx context.Context, uid, userUUID string) (bool, error)
	// UpdateRecordingStatus выставляет статус записи.
	UpdateRecordingStatus(ctx context.Context, uid, status string) (int, error)
	// UpdateRecordingFields обновляет редактируемые поля записи.
	UpdateRecordingFields(ctx context.Context, uid, userUUID string, upd models.DummyRecordingUpdate) (int, error)
	// DeleteRecording удаляет запись пользователя.
	DeleteRecording(ctx context.Context, uid, userUUID string) (int, error)
}

// UserRepository нужен для определения языка обработки по умолчанию.
type UserRepository interface {
	GetUser(ctx context.Context, userUUID string) (*models.User, error)
}

// Queue описывает очередь фоновой обработки записей.
type Queue interface {
	Submit(job worker.Job) error
}

// RecordingService реализует операции над голосовыми заметками.
type RecordingService struct {
	repo  RecordingRepository
	users UserRepository
	queue Queue
	log   *slog.Logger
}

// NewRecordingService создает новый экземпляр RecordingService.
func NewRecordingService(repo RecordingRepository, users UserRepository, queue Queue, log *slog.Logger) *RecordingService {
	return &RecordingService{
		repo:  repo,
		users: users,
		queue: queue,
		log:   log,
	}
}

// Create сохраняет новую запись со статусом uploaded и пустыми
// транскриптом и конспектом.
func (s *RecordingService) Create(ctx context.Context, userUUID string, req models.DummyRecording) (*models.Recording, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	rec := models.Recording{
		UUID:      uuid.NewString(),
		UserUUID:  userUUID,
		Title:     req.Title,
		AudioData: req.AudioData,
		Tags:      tags,
		Notes:     req.Notes,
		Duration:  req.Duration,
		Status:    models.StatusUploaded,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateRecording(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("created new recording", slog.String("uid", rec.UUID))
	return &rec, nil
}

// List возвращает записи пользователя, не более listLimit, новые первыми.
func (s *RecordingService) List(ctx context.Context, userUUID string) ([]*models.Recording, error) {
	return s.repo.ListRecordingsByUser(ctx, userUUID, listLimit)
}

// Read возвращает одну запись пользователя.
func (s *RecordingService) Read(ctx context.Context, uid, userUUID string) (*models.Recording, error) {
	return s.repo.GetRecording(ctx, uid, userUUID)
}

// Process запускает фоновую обработку записи. Язык берется из запроса,
// иначе из профиля пользователя. Повторный запуск во время обработки
// отклоняется с ErrAlreadyProcessing.
func (s *RecordingService) Process(ctx context.Context, uid, userUUID string, req models.DummyProcessRequest) (string, error) {
	rec, err := s.repo.GetRecording(ctx, uid, userUUID)
	if err != nil {
		return "", err
	}

	mode := req.Type
	if mode == "" {
		mode = transcriber.ModeFull
	}

	language := req.Language
	if language == "" {
		user, err := s.users.GetUser(ctx, userUUID)
		if err != nil {
			return "", err
		}
		language = user.PreferredLanguage
	}
	if language == "" {
		language = transcriber.DefaultLanguage
	}

	claimed, err := s.repo.MarkRecordingProcessing(ctx, uid, userUUID)
	if err != nil {
		return "", err
	}
	if !claimed {
		return "", ErrAlreadyProcessing
	}

	err = s.queue.Submit(worker.Job{RecordingUUID: uid, Mode: mode, Language: language})
	if err != nil {
		// Возвращаем записи прежний статус, очередь переполнена
		if _, rollbackErr := s.repo.UpdateRecordingStatus(ctx, uid, rec.Status); rollbackErr != nil {
			s.log.Error("failed to restore recording status",
				slog.String("uid", uid), slog.Any("err", rollbackErr))
		}
		if errors.Is(err, worker.ErrQueueFull) {
			return "", ErrProcessingUnavailable
		}
		return "", err
	}

	s.log.Info("recording processing started",
		slog.String("uid", uid),
		slog.String("mode", mode),
		slog.String("language", language))
	return language, nil
}

// Update изменяет название, теги и заметки записи.
func (s *RecordingService) Update(ctx context.Context, uid, userUUID string, req models.DummyRecordingUpdate) (int, error) {
	count, err := s.repo.UpdateRecordingFields(ctx, uid, userUUID, req)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Info("updated recording", slog.String("uid", uid))
	}
	return count, nil
}

// Remove удаляет запись пользователя.
func (s *RecordingService) Remove(ctx context.Context, uid, userUUID string) (int, error) {
	count, err := s.repo.DeleteRecording(ctx, uid, userUUID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Info("deleted recording", slog.String("uid", uid))
	}
	return count, nil
}
