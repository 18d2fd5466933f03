package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"message-relay/internal/handlers"
	"message-relay/internal/middleware"
)

// ChatPaths are interchangeable. The aliases exist because some browser
// ad-blockers drop requests to /api/chat.
var ChatPaths = []string{"/chat", "/message", "/send"}

func New(
	chatHandler *handlers.ChatHandler,
	allowedOrigins []string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.AccessLog(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(chimiddleware.StripSlashes)

	// Health check
	r.Get("/", handlers.Health)
	r.Options("/", handlers.HealthPreflight)
	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		for _, p := range ChatPaths {
			r.Post(p, chatHandler.Send)
		}
	})

	return r
}
