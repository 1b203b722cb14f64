// Package read реализует HTTP-обработчик для получения конкретной записи по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения
// записи по идентификатору и возвращает данные записи в JSON-формате.
//
// В случае ошибок формирует соответствующие HTTP-ответы с описанием проблемы.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/smartnotes-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/response"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
)

// Handler обрабатывает запросы на получение записи по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения записи по ID
}

// Service описывает интерфейс бизнес-логики чтения записи.
type Service interface {
	Read(ctx context.Context, uid, userUUID string) (*models.Recording, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение записи по ID.
//
// Выполняет:
// - Извлечение ID из URL.
// - Вызов бизнес-логики для чтения записи.
// - Формирование JSON-ответа с данными или ошибкой.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recording.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	uid := chi.URLParam(r, "id")

	rec, err := h.service.Read(r.Context(), uid, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordingNotFound) {
			log.Info("recording not found", slog.String("uid", uid))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recording not found"))
			return
		}
		log.Error("failed to read recording", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read recording"))
		return
	}

	log.Info("success to read recording", slog.String("uid", rec.UUID))
	render.JSON(w, r, rec)
}
