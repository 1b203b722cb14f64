// Package profile реализует HTTP-обработчик начальной авторизации клиента.
//
// Клиент передает свой идентификатор сессии в заголовке X-Session-ID.
// Обработчик выдаёт по нему сессию на стороне сервера, при первом обращении
// создавая демо-пользователя, и возвращает профиль вместе с токеном сессии.
//
// Это заглушка авторизации: токен клиента принимается без проверки
// подлинности и заменяется полноценной OAuth/OIDC-интеграцией отдельно.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/smartnotes-backend/internal/http/response"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
)

// Response — профиль пользователя вместе с токеном выданной сессии.
type Response struct {
	models.User
	SessionToken string `json:"session_token"`
}

// Handler обрабатывает запросы начальной авторизации.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики авторизации
}

// Service описывает интерфейс бизнес-логики авторизации.
type Service interface {
	Bootstrap(ctx context.Context, sessionToken string) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль по идентификатору сессии
// @Description Выдает сессию по клиентскому X-Session-ID и возвращает профиль пользователя с токеном сессии.
// @Tags Auth
// @Produce  json
// @Param X-Session-ID header string true "Идентификатор сессии клиента"
// @Success 200 {object} Response "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Не передан идентификатор сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выдаче сессии"
// @Router /auth/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessionToken := r.Header.Get("X-Session-ID")
	if sessionToken == "" {
		log.Error("session id header is missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("session id required"))
		return
	}

	user, err := h.service.Bootstrap(r.Context(), sessionToken)
	if err != nil {
		log.Error("failed to bootstrap session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load profile"))
		return
	}

	log.Info("session bootstrapped", slog.String("user_uid", user.UUID))
	render.JSON(w, r, Response{
		User:         *user,
		SessionToken: sessionToken,
	})
}
