// Package userlanguage реализует HTTP-обработчик смены языка обработки по умолчанию.
//
// Handler принимает код языка, валидирует его по поддерживаемому набору
// и сохраняет в профиле пользователя. Выбранный язык используется при
// обработке записей, когда язык в запросе не указан.
package userlanguage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/smartnotes-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/response"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
	services "github.com/magabrotheeeer/smartnotes-backend/internal/services/user"
	"github.com/magabrotheeeer/smartnotes-backend/internal/storage/repository"
)

// Handler обрабатывает запросы на смену языка обработки.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики профиля
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики смены языка.
type Service interface {
	UpdateLanguage(ctx context.Context, userUUID, language string) error
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
// @Summary Сменить язык обработки
// @Description Сохраняет язык обработки по умолчанию для текущего пользователя. Код вне поддерживаемого набора отклоняется, прежнее значение при этом сохраняется.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body models.DummyLanguage true "Код языка"
// @Success 200 {object} map[string]any "Язык обновлен"
// @Failure 400 {object} response.ErrorResponse "Неподдерживаемый язык"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при смене языка"
// @Router /user/language [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.language"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLanguage
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

	err := h.service.UpdateLanguage(r.Context(), userUID, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedLanguage):
			log.Info("unsupported language", slog.String("language", req.Language))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unsupported language"))
		case errors.Is(err, repository.ErrUserNotFound):
			log.Info("user not found", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		default:
			log.Error("failed to update language", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update language"))
		}
		return
	}

	log.Info("success to update language", slog.String("language", req.Language))
	render.JSON(w, r, map[string]any{
		"message":  "Language updated successfully",
		"language": req.Language,
	})
}
