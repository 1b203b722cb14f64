package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/smartnotes-backend/internal/config"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/transcriber"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveTranscript(ctx context.Context, uid, transcript string) error {
	args := m.Called(ctx, uid, transcript)
	return args.Error(0)
}

func (m *MockRepository) SaveSummary(ctx context.Context, uid, summary string) error {
	args := m.Called(ctx, uid, summary)
	return args.Error(0)
}

func (m *MockRepository) UpdateRecordingStatus(ctx context.Context, uid, status string) (int, error) {
	args := m.Called(ctx, uid, status)
	return args.Int(0), args.Error(1)
}

type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Generate(ctx context.Context, mode, language string) (string, error) {
	args := m.Called(ctx, mode, language)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestPool(repo Repository, gen Transcriber) *Pool {
	return New(newNoopLogger(), repo, gen, config.Processing{
		Workers:         2,
		QueueSize:       8,
		JobTimeout:      time.Second,
		ProcessingDelay: time.Millisecond,
	})
}

func TestPool_ProcessModes(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		language   string
		setupMocks func(*MockRepository, *MockTranscriber)
	}{
		{
			name:     "Режим full сохраняет транскрипт",
			mode:     transcriber.ModeFull,
			language: "en",
			setupMocks: func(r *MockRepository, g *MockTranscriber) {
				g.On("Generate", mock.Anything, transcriber.ModeFull, "en").
					Return("transcript text", nil).Once()
				r.On("SaveTranscript", mock.Anything, "rec-1", "transcript text").Return(nil).Once()
			},
		},
		{
			name:     "Режим summary сохраняет конспект",
			mode:     transcriber.ModeSummary,
			language: "it",
			setupMocks: func(r *MockRepository, g *MockTranscriber) {
				g.On("Generate", mock.Anything, transcriber.ModeSummary, "it").
					Return("summary text", nil).Once()
				r.On("SaveSummary", mock.Anything, "rec-1", "summary text").Return(nil).Once()
			},
		},
		{
			name:     "Режим chapters сохраняет разбивку по главам",
			mode:     transcriber.ModeChapters,
			language: "de",
			setupMocks: func(r *MockRepository, g *MockTranscriber) {
				g.On("Generate", mock.Anything, transcriber.ModeChapters, "de").
					Return("chapters text", nil).Once()
				r.On("SaveSummary", mock.Anything, "rec-1", "chapters text").Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			gen := new(MockTranscriber)
			tt.setupMocks(repo, gen)

			pool := newTestPool(repo, gen)
			pool.Start(context.Background())

			err := pool.Submit(Job{RecordingUUID: "rec-1", Mode: tt.mode, Language: tt.language})
			assert.NoError(t, err)

			// Stop дожидается обработки поставленной задачи
			pool.Stop()

			repo.AssertExpectations(t)
			gen.AssertExpectations(t)
		})
	}
}

func TestPool_RetriesGenerationOnFailure(t *testing.T) {
	repo := new(MockRepository)
	gen := new(MockTranscriber)

	gen.On("Generate", mock.Anything, transcriber.ModeFull, "en").
		Return("", errors.New("model overloaded")).Once()
	gen.On("Generate", mock.Anything, transcriber.ModeFull, "en").
		Return("transcript text", nil).Once()
	repo.On("SaveTranscript", mock.Anything, "rec-1", "transcript text").Return(nil).Once()

	pool := newTestPool(repo, gen)
	pool.Start(context.Background())

	err := pool.Submit(Job{RecordingUUID: "rec-1", Mode: transcriber.ModeFull, Language: "en"})
	assert.NoError(t, err)

	pool.Stop()

	repo.AssertExpectations(t)
	gen.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdateRecordingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPool_GenerationFailureMarksRecordingFailed(t *testing.T) {
	repo := new(MockRepository)
	gen := new(MockTranscriber)

	gen.On("Generate", mock.Anything, transcriber.ModeFull, "en").
		Return("", errors.New("model overloaded")).Times(3)
	repo.On("UpdateRecordingStatus", mock.Anything, "rec-1", models.StatusFailed).
		Return(1, nil).Once()

	pool := newTestPool(repo, gen)
	pool.Start(context.Background())

	err := pool.Submit(Job{RecordingUUID: "rec-1", Mode: transcriber.ModeFull, Language: "en"})
	assert.NoError(t, err)

	pool.Stop()

	repo.AssertExpectations(t)
	gen.AssertExpectations(t)
	repo.AssertNotCalled(t, "SaveTranscript", mock.Anything, mock.Anything, mock.Anything)
}

func TestPool_SaveErrorMarksRecordingFailed(t *testing.T) {
	repo := new(MockRepository)
	gen := new(MockTranscriber)

	gen.On("Generate", mock.Anything, transcriber.ModeFull, "en").
		Return("transcript text", nil).Once()
	repo.On("SaveTranscript", mock.Anything, "rec-1", "transcript text").
		Return(errors.New("db is down")).Once()
	repo.On("UpdateRecordingStatus", mock.Anything, "rec-1", models.StatusFailed).
		Return(1, nil).Once()

	pool := newTestPool(repo, gen)
	pool.Start(context.Background())

	err := pool.Submit(Job{RecordingUUID: "rec-1", Mode: transcriber.ModeFull, Language: "en"})
	assert.NoError(t, err)

	pool.Stop()

	repo.AssertExpectations(t)
	gen.AssertExpectations(t)
}

func TestPool_SubmitReturnsErrQueueFull(t *testing.T) {
	repo := new(MockRepository)
	gen := new(MockTranscriber)

	// Пул не запущен, очередь вмещает ровно одну задачу
	pool := New(newNoopLogger(), repo, gen, config.Processing{
		Workers:    1,
		QueueSize:  1,
		JobTimeout: time.Second,
	})

	err := pool.Submit(Job{RecordingUUID: "rec-1", Mode: transcriber.ModeFull, Language: "en"})
	assert.NoError(t, err)

	err = pool.Submit(Job{RecordingUUID: "rec-2", Mode: transcriber.ModeFull, Language: "en"})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestPool_StopDrainsQueue(t *testing.T) {
	repo := new(MockRepository)
	gen := new(MockTranscriber)

	gen.On("Generate", mock.Anything, transcriber.ModeFull, "en").Return("transcript text", nil)
	repo.On("SaveTranscript", mock.Anything, mock.AnythingOfType("string"), "transcript text").Return(nil)

	pool := newTestPool(repo, gen)
	pool.Start(context.Background())

	for i := range 5 {
		err := pool.Submit(Job{
			RecordingUUID: string(rune('a' + i)),
			Mode:          transcriber.ModeFull,
			Language:      "en",
		})
		assert.NoError(t, err)
	}

	pool.Stop()

	repo.AssertNumberOfCalls(t, "SaveTranscript", 5)
}

func TestPool_NewAppliesDefaults(t *testing.T) {
	pool := New(newNoopLogger(), new(MockRepository), new(MockTranscriber), config.Processing{})

	assert.Equal(t, 4, pool.workers)
	assert.Equal(t, 64, cap(pool.jobs))
	assert.Equal(t, 30*time.Second, pool.jobTimeout)
	assert.Equal(t, 3, pool.attempts)
}
