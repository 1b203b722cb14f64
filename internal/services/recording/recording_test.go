package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
	"github.com/magabrotheeeer/smartnotes-backend/internal/worker"
)

type MockRecordingRepository struct {
	mock.Mock
}

func (m *MockRecordingRepository) CreateRecording(ctx context.Context, rec models.Recording) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecordingRepository) GetRecording(ctx context.Context, uid, userUUID string) (*models.Recording, error) {
	args := m.Called(ctx, uid, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recording), args.Error(1)
}

func (m *MockRecordingRepository) ListRecordingsByUser(ctx context.Context, userUUID string, limit int) ([]*models.Recording, error) {
	args := m.Called(ctx, userUUID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recording), args.Error(1)
}

func (m *MockRecordingRepository) MarkRecordingProcessing(ctx context.Context, uid, userUUID string) (bool, error) {
	args := m.Called(ctx, uid, userUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordingRepository) UpdateRecordingStatus(ctx context.Context, uid, status string) (int, error) {
	args := m.Called(ctx, uid, status)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordingRepository) UpdateRecordingFields(ctx context.Context, uid, userUUID string, upd models.DummyRecordingUpdate) (int, error) {
	args := m.Called(ctx, uid, userUUID, upd)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordingRepository) DeleteRecording(ctx context.Context, uid, userUUID string) (int, error) {
	args := m.Called(ctx, uid, userUUID)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, userUUID string) (*models.User, error) {
	args := m.Called(ctx, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockQueue struct {
	mock.Mock
}

func (m *MockQueue) Submit(job worker.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(repo *MockRecordingRepository, users *MockUserRepository, queue *MockQueue) *RecordingService {
	return NewRecordingService(repo, users, queue, newNoopLogger())
}

func TestRecordingService_Create(t *testing.T) {
	duration := 12.5
	tests := []struct {
		name          string
		req           models.DummyRecording
		repoErr       error
		expectedError bool
	}{
		{
			name: "Успешное создание записи",
			req: models.DummyRecording{
				Title:     "Лекция по физике",
				AudioData: "dGVzdC1hdWRpbw==",
				Tags:      []string{"физика"},
				Notes:     "законы Ньютона",
				Duration:  &duration,
			},
		},
		{
			name: "Создание без тегов подставляет пустой список",
			req: models.DummyRecording{
				Title:     "Лекция",
				AudioData: "dGVzdA==",
			},
		},
		{
			name: "Ошибка хранилища",
			req: models.DummyRecording{
				Title:     "Лекция",
				AudioData: "dGVzdA==",
			},
			repoErr:       errors.New("db is down"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRecordingRepository)
			repo.On("CreateRecording", mock.Anything, mock.AnythingOfType("models.Recording")).
				Return(tt.repoErr).Once()

			service := newService(repo, new(MockUserRepository), new(MockQueue))
			rec, err := service.Create(context.Background(), "user-1", tt.req)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, rec)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, rec.UUID)
				assert.Equal(t, "user-1", rec.UserUUID)
				assert.Equal(t, tt.req.Title, rec.Title)
				assert.Equal(t, models.StatusUploaded, rec.Status)
				assert.Nil(t, rec.Transcript)
				assert.Nil(t, rec.Summary)
				assert.NotNil(t, rec.Tags)
				assert.False(t, rec.CreatedAt.IsZero())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRecordingService_List(t *testing.T) {
	repo := new(MockRecordingRepository)
	expected := []*models.Recording{{UUID: "rec-1"}, {UUID: "rec-2"}}
	repo.On("ListRecordingsByUser", mock.Anything, "user-1", 100).Return(expected, nil).Once()

	service := newService(repo, new(MockUserRepository), new(MockQueue))
	recs, err := service.List(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, recs)
	repo.AssertExpectations(t)
}

func TestRecordingService_Process(t *testing.T) {
	uploaded := &models.Recording{UUID: "rec-1", UserUUID: "user-1", Status: models.StatusUploaded}

	tests := []struct {
		name          string
		req           models.DummyProcessRequest
		setupMocks    func(*MockRecordingRepository, *MockUserRepository, *MockQueue)
		expectedLang  string
		expectedError error
	}{
		{
			name: "Язык берется из запроса",
			req:  models.DummyProcessRequest{Type: "summary", Language: "es"},
			setupMocks: func(r *MockRecordingRepository, _ *MockUserRepository, q *MockQueue) {
				r.On("GetRecording", mock.Anything, "rec-1", "user-1").Return(uploaded, nil).Once()
				r.On("MarkRecordingProcessing", mock.Anything, "rec-1", "user-1").Return(true, nil).Once()
				q.On("Submit", worker.Job{RecordingUUID: "rec-1", Mode: "summary", Language: "es"}).
					Return(nil).Once()
			},
			expectedLang: "es",
		},
		{
			name: "Без языка в запросе берется язык профиля",
			req:  models.DummyProcessRequest{Type: "full"},
			setupMocks: func(r *MockRecordingRepository, u *MockUserRepository, q *MockQueue) {
				r.On("GetRecording", mock.Anything, "rec-1", "user-1").Return(uploaded, nil).Once()
				u.On("GetUser", mock.Anything, "user-1").
					Return(&models.User{UUID: "user-1", PreferredLanguage: "it"}, nil).Once()
				r.On("MarkRecordingProcessing", mock.Anything, "rec-1", "user-1").Return(true, nil).Once()
				q.On("Submit", worker.Job{RecordingUUID: "rec-1", Mode: "full", Language: "it"}).
					Return(nil).Once()
			},
			expectedLang: "it",
		},
		{
			name: "Пустой тип обработки означает полный транскрипт",
			req:  models.DummyProcessRequest{Language: "en"},
			setupMocks: func(r *MockRecordingRepository, _ *MockUserRepository, q *MockQueue) {
				r.On("GetRecording", mock.Anything, "rec-1", "user-1").Return(uploaded, nil).Once()
				r.On("MarkRecordingProcessing", mock.Anything, "rec-1", "user-1").Return(true, nil).Once()
				q.On("Submit", worker.Job{RecordingUUID: "rec-1", Mode: "full", Language: "en"}).
					Return(nil).Once()
			},
			expectedLang: "en",
		},
		{
			name: "Запись не найдена",
			req:  models.DummyProcessRequest{Type: "full", Language: "en"},
			setupMocks: func(r *MockRecordingRepository, _ *MockUserRepository, _ *MockQueue) {
				r.On("GetRecording", mock.Anything, "rec-1", "user-1").
					Return(nil, repository.ErrRecordingNotFound).Once()
			},
			expectedError: repository.ErrRecordingNotFound,
		},
		{
			name: "Запись уже обрабатывается",
			req:  models.DummyProcessRequest{Type: "full", Language: "en"},
			setupMocks: func(r *MockRecordingRepository, _ *MockUserRepository, _ *MockQueue) {
				r.On("GetRecording", mock.Anything, "rec-1", "user-1").Return(uploaded, nil).Once()
				r.On("MarkRecordingProcessing", mock.Anything, "rec-1", "user-1").Return(false, nil).Once()
			},
			expectedError: ErrAlreadyProcessing,
		},
		{
			name: "Очередь переполнена, статус откатывается",
			req:  models.DummyProcessRequest{Type: "full", Language: "en"},
			setupMocks: func(r *MockRecordingRepository, _ *MockUserRepository, q *MockQueue) {
				r.On("GetRecording", mock.Anything, "rec-1", "user-1").Return(uploaded, nil).Once()
				r.On("MarkRecordingProcessing", mock.Anything, "rec-1", "user-1").Return(true, nil).Once()
				q.On("Submit", mock.AnythingOfType("worker.Job")).Return(worker.ErrQueueFull).Once()
				r.On("UpdateRecordingStatus", mock.Anything, "rec-1", models.StatusUploaded).
					Return(1, nil).Once()
			},
			expectedError: ErrProcessingUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRecordingRepository)
			users := new(MockUserRepository)
			queue := new(MockQueue)
			tt.setupMocks(repo, users, queue)

			service := newService(repo, users, queue)
			lang, err := service.Process(context.Background(), "rec-1", "user-1", tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLang, lang)
			}
			repo.AssertExpectations(t)
			users.AssertExpectations(t)
			queue.AssertExpectations(t)
		})
	}
}

func TestRecordingService_Update(t *testing.T) {
	title := "Новое название"
	req := models.DummyRecordingUpdate{Title: &title}

	repo := new(MockRecordingRepository)
	repo.On("UpdateRecordingFields", mock.Anything, "rec-1", "user-1", req).Return(1, nil).Once()

	service := newService(repo, new(MockUserRepository), new(MockQueue))
	count, err := service.Update(context.Background(), "rec-1", "user-1", req)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	repo.AssertExpectations(t)
}

func TestRecordingService_Remove(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		repoErr       error
		expectedError bool
	}{
		{name: "Успешное удаление", count: 1},
		{name: "Запись не найдена", count: 0},
		{name: "Ошибка хранилища", repoErr: errors.New("db is down"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRecordingRepository)
			repo.On("DeleteRecording", mock.Anything, "rec-1", "user-1").
				Return(tt.count, tt.repoErr).Once()

			service := newService(repo, new(MockUserRepository), new(MockQueue))
			count, err := service.Remove(context.Background(), "rec-1", "user-1")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.count, count)
			}
			repo.AssertExpectations(t)
		})
	}
}
