// Package create реализует HTTP-обработчик для загрузки новых голосовых заметок.
//
// Handler принимает JSON-запрос с данными заметки, валидирует их, извлекает
// идентификатор пользователя из контекста, вызывает бизнес-логику создания
// записи через сервис и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/smartnotes-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/response"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
)

// Handler управляет HTTP-запросами на создание новых записей.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания записи,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записи.
type Service interface {
	Create(ctx context.Context, userUUID string, req models.DummyRecording) (*models.Recording, error)
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
// @Summary Загрузить новую запись
// @Description Создает новую голосовую заметку текущего пользователя. Возвращает созданную запись со статусом uploaded.
// @Tags Recordings
// @Accept  json
// @Produce  json
// @Param request body models.DummyRecording true "Данные новой записи"
// @Success 200 {object} models.Recording "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /recordings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recording.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRecording
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	// Аудио в лог не пишем, там base64 на сотни килобайт
	log.Info("request body decoded", slog.String("title", req.Title))

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

	rec, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		log.Error("failed to create recording", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create recording"))
		return
	}

	log.Info("success to create recording", slog.String("uid", rec.UUID))
	render.JSON(w, r, rec)
}
