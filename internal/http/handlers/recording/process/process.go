// Package process реализует HTTP-обработчик запуска фоновой обработки записи.
//
// Handler принимает режим обработки и язык, переводит запись в статус
// processing через сервис и отвечает сразу, не дожидаясь окончания
// обработки. Результат клиент наблюдает, опрашивая запись по ID.
package process

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/smartnotes-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/response"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	services "github.com/magabrotheeeer/smartnotes-backend/internal/services/recording"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
	"github.com/magabrotheeeer/smartnotes-backend/internal/transcriber"
)

// Handler управляет HTTP-запросами на запуск обработки записей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики обработки записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики запуска обработки.
type Service interface {
	Process(ctx context.Context, uid, userUUID string, req models.DummyProcessRequest) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Запустить обработку записи
// @Description Переводит запись в статус processing и запускает фоновую генерацию транскрипта или конспекта. Ответ возвращается сразу, результат доступен при последующем чтении записи.
// @Tags Recordings
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор записи"
// @Param request body models.DummyProcessRequest true "Режим и язык обработки"
// @Success 200 {object} map[string]any "Обработка запущена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 409 {object} response.ErrorResponse "Запись уже обрабатывается"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при запуске обработки"
// @Failure 503 {object} response.ErrorResponse "Очередь обработки переполнена"
// @Router /recordings/{id}/process [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recording.process"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	uid := chi.URLParam(r, "id")

	language, err := h.service.Process(r.Context(), uid, userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordingNotFound):
			log.Info("recording not found", slog.String("uid", uid))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recording not found"))
		case errors.Is(err, services.ErrAlreadyProcessing):
			log.Info("recording is already processing", slog.String("uid", uid))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("recording is already processing"))
		case errors.Is(err, services.ErrProcessingUnavailable):
			log.Warn("processing queue is full", slog.String("uid", uid))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("processing is temporarily unavailable"))
		default:
			log.Error("failed to start processing", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not start processing"))
		}
		return
	}

	mode := req.Type
	if mode == "" {
		mode = transcriber.ModeFull
	}

	log.Info("processing started", slog.String("uid", uid),
		slog.String("mode", mode), slog.String("language", language))
	render.JSON(w, r, map[string]any{
		"message":      fmt.Sprintf("Processing started for %s transcription in %s", mode, language),
		"recording_id": uid,
		"status":       models.StatusProcessing,
	})
}
