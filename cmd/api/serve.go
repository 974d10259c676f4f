package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"zoo-dashboard/internal/config"
	"zoo-dashboard/internal/platform/logger"
	"zoo-dashboard/internal/platform/metrics"
	"zoo-dashboard/internal/router"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta la API HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()

	h, err := router.NewRouter(router.Options{
		Config:  cfg,
		Logger:  log,
		Metrics: metrics.New(),
	})
	if err != nil {
		return err
	}

	// Solo el nivel de log se aplica en caliente; el resto requiere reinicio.
	if _, statErr := os.Stat(configPath); statErr == nil {
		go func() {
			err := config.Watch(ctx, configPath, log, func(next *config.Config) {
				lvl := logger.ParseLevel(next.Log.Level)
				if lvl != log.Level() {
					log.SetLevel(lvl)
					log.Info("log level changed", map[string]any{"level": lvl.String()})
				}
			})
			if err != nil {
				log.Warn("config watch stopped", map[string]any{"error": err.Error()})
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "dev_auth": cfg.Auth.DevMode})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}
