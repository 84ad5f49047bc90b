package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/justinas/nosurf"
	"github.com/rs/zerolog/hlog"
)

// routes sets up the HTTP router for the admin application.
func (app *adminApplication) routes() http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(app.logger))
	r.Use(hlog.RequestIDHandler("request_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// --- Handlers ---
	r.Get("/", app.dashboardHandler)

	// Project generation
	r.Get("/admin/generate", app.generateFormHandler)
	r.Post("/admin/generate", app.generateHandler)

	// Project pages
	r.Get("/admin/projects/{projectID}", app.projectHandler)
	r.Post("/admin/projects/{projectID}/delete", app.projectDeleteHandler)
	r.Get("/admin/projects/{projectID}/play/*", app.playHandler)

	return app.csrf(r)
}

// csrf wraps h with nosurf. Failed checks get a plain 400.
func (app *adminApplication) csrf(h http.Handler) http.Handler {
	handler := nosurf.New(h)
	handler.SetBaseCookie(http.Cookie{
		HttpOnly: true,
		Secure:   app.secureCookies,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	handler.SetFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.logger.Warn().Str("path", r.URL.Path).Str("reason", errString(nosurf.Reason(r))).Msg("CSRF check failed")
		http.Error(w, "Bad Request - invalid CSRF token", http.StatusBadRequest)
	}))
	return handler
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
