package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"gameforge/internal/projectmanager"
)

// application holds the application-wide dependencies.
type application struct {
	manager *projectmanager.Manager
	logger  zerolog.Logger
	metrics *metrics
	timeout time.Duration
}

func newApplication(manager *projectmanager.Manager, logger zerolog.Logger, timeout time.Duration) *application {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &application{
		manager: manager,
		logger:  logger,
		metrics: newMetrics(),
		timeout: timeout,
	}
}

// routes sets up the HTTP router for the API server.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(app.logger))
	r.Use(hlog.RequestIDHandler("request_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(app.timeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorCode(w, r, http.StatusNotFound, "not_found", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorCode(w, r, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" is not allowed on "+r.URL.Path)
	})

	r.Get("/health", app.healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", app.listTemplatesHandler)
		r.Get("/templates/{templateID}", app.getTemplateHandler)
		r.Get("/templates/{templateID}/preview/*", app.previewTemplateHandler)

		r.Post("/generate", app.generateHandler)

		r.Get("/projects", app.listProjectsHandler)
		r.Get("/projects/{projectID}", app.getProjectHandler)
		r.Get("/projects/{projectID}/files/*", app.getProjectFileHandler)
		r.Delete("/projects/{projectID}", app.deleteProjectHandler)
	})

	return r
}
