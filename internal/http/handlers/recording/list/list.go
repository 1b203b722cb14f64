// Package list реализует HTTP-обработчик для получения списка записей пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/smartnotes-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/response"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
)

// Handler обрабатывает запросы на получение списка записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения списка записей
}

// Service описывает интерфейс бизнес-логики чтения списка записей.
type Service interface {
	List(ctx context.Context, userUUID string) ([]*models.Recording, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей пользователя
// @Description Возвращает до 100 последних записей текущего пользователя, новые первыми.
// @Tags Recordings
// @Produce  json
// @Success 200 {array} models.Recording "Записи пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении списка"
// @Router /recordings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recording.list"

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

	recs, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list recordings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list recordings"))
		return
	}
	if recs == nil {
		// Пустой список сериализуется как [], а не null
		recs = []*models.Recording{}
	}

	log.Info("success to list recordings", slog.Int("count", len(recs)))
	render.JSON(w, r, recs)
}
