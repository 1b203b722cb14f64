package smartnotes

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	authprofile "github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/auth/profile"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/health"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/recording/create"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/recording/list"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/recording/process"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/recording/read"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/recording/remove"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/recording/update"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/user/userlanguage"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/user/userprofile"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/handlers/user/userreferral"
	"github.com/magabrotheeeer/smartnotes-backend/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/smartnotes-backend/internal/services/auth"
	recordingservice "github.com/magabrotheeeer/smartnotes-backend/internal/services/recording"
	userservice "github.com/magabrotheeeer/smartnotes-backend/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, recordingService *recordingservice.RecordingService, userService *userservice.UserService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/", health.New(logger).ServeHTTP)
		r.Get("/auth/profile", authprofile.New(logger, authService).ServeHTTP)

		// Группа с проверкой токена сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/recordings", create.New(logger, recordingService).ServeHTTP)
			r.Get("/recordings", list.New(logger, recordingService).ServeHTTP)
			r.Get("/recordings/{id}", read.New(logger, recordingService).ServeHTTP)
			r.Post("/recordings/{id}/process", process.New(logger, recordingService).ServeHTTP)
			r.Put("/recordings/{id}", update.New(logger, recordingService).ServeHTTP)
			r.Delete("/recordings/{id}", remove.New(logger, recordingService).ServeHTTP)
			r.Get("/user/profile", userprofile.New(logger, userService).ServeHTTP)
			r.Put("/user/language", userlanguage.New(logger, userService).ServeHTTP)
			r.Get("/user/referral", userreferral.New(logger, userService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
