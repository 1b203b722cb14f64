// Package worker реализует фоновую обработку голосовых заметок.
// Задачи ставятся в буферизованный канал HTTP-обработчиком и выполняются
// фиксированным числом горутин, чтобы наплыв запросов не порождал
// неограниченное число одновременных обработок.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/smartnotes-backend/internal/config"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/transcriber"
)

// ErrQueueFull возвращается из Submit, когда очередь обработки заполнена.
var ErrQueueFull = errors.New("processing queue is full")

// Job описывает одну задачу обработки записи.
type Job struct {
	RecordingUUID string
	Mode          string
	Language      string
}

// Repository описывает методы хранилища, необходимые обработчику.
type Repository interface {
	SaveTranscript(ctx context.Context, uid, transcript string) error
	SaveSummary(ctx context.Context, uid, summary string) error
	UpdateRecordingStatus(ctx context.Context, uid, status string) (int, error)
}

// Transcriber выдает результат обработки для пары (режим, язык).
type Transcriber interface {
	Generate(ctx context.Context, mode, language string) (string, error)
}

// Pool управляет горутинами-обработчиками и очередью задач.
type Pool struct {
	log        *slog.Logger
	repo       Repository
	gen        Transcriber
	jobs       chan Job
	wg         sync.WaitGroup
	workers    int
	jobTimeout time.Duration
	delay      time.Duration
	attempts   int
	retryDelay time.Duration
}

// New создает пул обработки с настройками cfg. Нулевые значения
// заменяются умолчаниями: 4 горутины, очередь на 64 задачи, 30 секунд
// на задачу, 3 попытки генерации. ProcessingDelay имитирует длительность
// работы языковой модели.
func New(log *slog.Logger, repo Repository, gen Transcriber, cfg config.Processing) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	jobTimeout := cfg.JobTimeout
	if jobTimeout <= 0 {
		jobTimeout = 30 * time.Second
	}
	attempts := cfg.MaxRetries
	if attempts <= 0 {
		attempts = 3
	}
	return &Pool{
		log:        log,
		repo:       repo,
		gen:        gen,
		jobs:       make(chan Job, queueSize),
		workers:    workers,
		jobTimeout: jobTimeout,
		delay:      cfg.ProcessingDelay,
		attempts:   attempts,
		retryDelay: cfg.RetryDelay,
	}
}

// Start запускает горутины-обработчики. Они работают до закрытия
// очереди через Stop или до отмены ctx.
func (p *Pool) Start(ctx context.Context) {
	for range p.workers {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					p.process(job)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

// Stop закрывает очередь и дожидается завершения взятых в работу задач.
// После Stop вызывать Submit нельзя.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit ставит задачу в очередь, не блокируя вызывающего.
// Если очередь заполнена, возвращает ErrQueueFull.
func (p *Pool) Submit(job Job) error {
	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *Pool) process(job Job) {
	const op = "worker.process"
	log := p.log.With(
		slog.String("op", op),
		slog.String("recording_uid", job.RecordingUUID),
		slog.String("mode", job.Mode),
		slog.String("language", job.Language),
	)

	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()

	// Имитация времени работы модели
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		log.Error("processing interrupted", sl.Err(ctx.Err()))
		p.markFailed(job.RecordingUUID)
		return
	}

	text, err := p.generate(ctx, job)
	if err != nil {
		log.Error("content generation failed", sl.Err(err))
		p.markFailed(job.RecordingUUID)
		return
	}

	switch job.Mode {
	case transcriber.ModeSummary, transcriber.ModeChapters:
		err = p.repo.SaveSummary(ctx, job.RecordingUUID, text)
	default:
		err = p.repo.SaveTranscript(ctx, job.RecordingUUID, text)
	}
	if err != nil {
		log.Error("failed to save processing result", sl.Err(err))
		p.markFailed(job.RecordingUUID)
		return
	}
	log.Info("processing completed")
}

// generate вызывает генератор, повторяя попытки с паузой retryDelay,
// пока не выйдет время задачи или число попыток.
func (p *Pool) generate(ctx context.Context, job Job) (string, error) {
	var err error
	for range p.attempts {
		var text string
		text, err = p.gen.Generate(ctx, job.Mode, job.Language)
		if err == nil {
			return text, nil
		}
		select {
		case <-time.After(p.retryDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", err
}

func (p *Pool) markFailed(uid string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := p.repo.UpdateRecordingStatus(ctx, uid, models.StatusFailed); err != nil {
		p.log.Error("failed to mark recording as failed", sl.Err(err))
	}
}
