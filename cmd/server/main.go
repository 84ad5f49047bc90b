package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gameforge/internal/config"
	"gameforge/internal/logging"
	"gameforge/internal/projectmanager"
)

func main() {
	// 1. Define and parse command-line flags
	configPath := flag.String("config", "", "Path to a YAML config file (GAMEFORGE_* env vars override it)")
	port := flag.Int("port", 0, "Port to listen on (overrides server.port)")
	flag.Parse()

	if err := run(*configPath, *port); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, port int) error {
	// 2. Load configuration and logger
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	logger := logging.WithComponent(logging.New(cfg.Logging), "server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire catalog, generator and store
	manager, err := projectmanager.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer manager.Close()

	app := newApplication(manager, logger, cfg.Server.WriteTimeout-5*time.Second)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 4. Start the HTTP server and wait for a signal
	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Int("templates", manager.Catalog().Len()).
			Str("store", cfg.Storage.Driver).
			Str("enrichment", cfg.Enrichment.Provider).
			Msg("Starting API server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Gracefully shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info().Msg("HTTP server gracefully shut down")
	return nil
}
