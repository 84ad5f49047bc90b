package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/justinas/nosurf"
	"github.com/rs/zerolog"

	"gameforge/internal/config"
	"gameforge/internal/logging"
	"gameforge/internal/projectmanager"
)

//go:embed templates/*.html
var templateFS embed.FS

// adminApplication holds the application-wide dependencies for the admin server.
type adminApplication struct {
	logger        zerolog.Logger
	manager       *projectmanager.Manager
	templateCache map[string]*template.Template
	secureCookies bool // CSRF cookie only sent over HTTPS
}

// newTemplateData creates a map of data to pass to templates, including CSRF token and active nav item.
func (app *adminApplication) newTemplateData(r *http.Request, activeNav string) map[string]any {
	return map[string]any{
		"CSRFToken":   nosurf.Token(r),
		"ActiveNav":   activeNav,
		"CurrentYear": time.Now().Year(),
		"Notice":      r.URL.Query().Get("notice"),
		"Error":       r.URL.Query().Get("error"),
	}
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	// Pages use layout.html as a base and define their own "content" block.
	pages := []string{
		"dashboard.html",
		"generate_form.html",
		"project.html",
	}

	for _, page := range pages {
		ts, err := template.New(page).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing page template %s: %w", page, err)
		}
		cache[page] = ts
	}
	return cache, nil
}

func newAdminApplication(manager *projectmanager.Manager, logger zerolog.Logger) (*adminApplication, error) {
	templateCache, err := newTemplateCache()
	if err != nil {
		return nil, err
	}
	return &adminApplication{
		logger:        logger,
		manager:       manager,
		templateCache: templateCache,
	}, nil
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (GAMEFORGE_* env vars override it)")
	port := flag.Int("port", 0, "Port to listen on (overrides admin.port)")
	flag.Parse()

	if err := run(*configPath, *port); err != nil {
		fmt.Fprintf(os.Stderr, "admin: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, port int) error {
	// --- Configuration and Logger ---
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Admin.Port = port
	}
	logger := logging.WithComponent(logging.New(cfg.Logging), "admin")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Project Manager ---
	manager, err := projectmanager.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer manager.Close()

	app, err := newAdminApplication(manager, logger)
	if err != nil {
		return err
	}
	app.secureCookies = cfg.IsProduction()
	logger.Info().Msg("Admin UI templates cached successfully")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Admin.Port),
		Handler:      app.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// --- Start Server ---
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", fmt.Sprintf("http://localhost%s", srv.Addr)).Msg("Starting admin server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("admin server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
