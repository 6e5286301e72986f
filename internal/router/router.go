package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/service"
)

// Config holds the rate limit applied to session creation.
type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// Services are the core services the routes call into.
type Services struct {
	Generator *service.GeneratorService
	History   *service.HistoryService
	Sessions  *service.SessionService
}

// New builds the PassForge HTTP API.
func New(cfg Config, svc Services) http.Handler {
	genHandler := handler.NewGeneratorHandler(svc.Generator)
	historyHandler := handler.NewHistoryHandler(svc.History)
	sessionHandler := handler.NewSessionHandler(svc.Sessions)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/strength", genHandler.HandleStrength)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/sessions", sessionHandler.HandleOpen)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(svc.Sessions))

		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Get("/api/v1/current", historyHandler.HandleCurrent)

		r.Route("/api/v1/history", func(r chi.Router) {
			r.Get("/", historyHandler.HandleList)
			r.Delete("/", historyHandler.HandleClear)
			r.Get("/export", historyHandler.HandleExport)
			r.Post("/import", historyHandler.HandleImport)
		})
	})

	return r
}
