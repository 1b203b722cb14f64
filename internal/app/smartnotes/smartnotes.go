// Package smartnotes собирает основное HTTP-приложение сервиса голосовых
// заметок: хранилище, кеш, пул фоновой обработки, сервисы и маршруты.
package smartnotes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/smartnotes-backend/internal/cache"
	"github.com/magabrotheeeer/smartnotes-backend/internal/config"
	"github.com/magabrotheeeer/smartnotes-backend/internal/migrations"
	authservice "github.com/magabrotheeeer/smartnotes-backend/internal/services/auth"
	recordingservice "github.com/magabrotheeeer/smartnotes-backend/internal/services/recording"
	userservice "github.com/magabrotheeeer/smartnotes-backend/internal/services/user"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
	"github.com/magabrotheeeer/smartnotes-backend/internal/transcriber"
	"github.com/magabrotheeeer/smartnotes-backend/internal/worker"
)

// App объединяет HTTP-сервер и ресурсы, которые нужно освободить при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	pool   *worker.Pool
}

// New собирает приложение: подключает PostgreSQL и Redis, прогоняет
// миграции, создает пул обработки и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.Db, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	pool := worker.New(logger, db, transcriber.New(), cfg.Processing)

	authService := authservice.NewAuthService(db, db, cacheRedis, cfg.SessionTTL, logger)
	recordingService := recordingservice.NewRecordingService(db, db, pool, logger)
	userService := userservice.NewUserService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, recordingService, userService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		pool:   pool,
	}, nil
}

// Run запускает пул обработки и HTTP-сервер и блокируется до отмены ctx
// или ошибки сервера. При остановке сначала дожидается активных запросов,
// затем останавливает пул.
func (a *App) Run(ctx context.Context) error {
	a.pool.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.pool.Stop()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		// Останавливать пул можно только после Shutdown:
		// обработчики запросов еще могут добавлять задачи в очередь.
		a.pool.Stop()
		if closeErr := a.db.Db.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
