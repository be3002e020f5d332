package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// RouterConfig carries what NewRouter needs beyond the services.
type RouterConfig struct {
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Services bundles the API's services. The /saved routes are only mounted when Archive is set.
type Services struct {
	Generator *service.GeneratorService
	Sessions  *service.SessionService
	Archive   *service.ArchiveService
}

// NewRouter builds the API routes. Background work started here stops when ctx is cancelled.
func NewRouter(ctx context.Context, cfg RouterConfig, svc Services) http.Handler {
	genHandler := NewGeneratorHandler(svc.Generator, svc.Sessions)
	sessionHandler := NewSessionHandler(svc.Sessions)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/evaluate", genHandler.HandleEvaluate)
	r.Post("/api/v1/sessions", sessionHandler.HandleStart)

	limit := middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Group(func(r chi.Router) {
		r.Use(limit)
		r.Use(middleware.OptionalSessionAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.JWTSecret))
		r.Get("/api/v1/history", sessionHandler.HandleHistory)
		r.Delete("/api/v1/sessions", sessionHandler.HandleEnd)
	})

	if svc.Archive != nil {
		savedHandler := NewSavedHandler(svc.Archive)
		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Use(middleware.SessionAuth(cfg.JWTSecret))
			r.Post("/api/v1/saved", savedHandler.HandleSave)
			r.Get("/api/v1/saved", savedHandler.HandleList)
		})
	}

	return r
}
