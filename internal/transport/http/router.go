package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"huntquest/internal/handler"
	"huntquest/internal/httputil"
	authmw "huntquest/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	HuntHandler         *handler.HuntHandler
	ReviewHandler       *handler.ReviewHandler
	NotificationHandler *handler.NotificationHandler
	JWTSecret           string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	// Public hunt reads
	r.Get("/hunts", cfg.HuntHandler.List)
	r.Get("/hunts/{id}", cfg.HuntHandler.GetByID)
	r.Get("/hunts/{id}/reviews", cfg.ReviewHandler.ListByHunt)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		// Debug view of the notification audit trail. Records carry FCM
		// device tokens, so this stays behind authentication.
		r.Get("/debug/notifications", cfg.NotificationHandler.ListDebug)

		// Current user endpoint
		r.Get("/me", cfg.AuthHandler.Me)

		// Hunt endpoints
		r.Post("/hunts", cfg.HuntHandler.Create)
		r.Post("/hunts/{id}/cover", cfg.HuntHandler.UploadCover)

		// Review endpoints
		r.Post("/hunts/{id}/reviews", cfg.ReviewHandler.Create)

		// Push token endpoints
		r.Route("/notifications", func(r chi.Router) {
			r.Post("/token", cfg.NotificationHandler.RegisterToken)
			r.Delete("/token", cfg.NotificationHandler.RemoveToken)
		})
	})

	return r
}
