package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"simplenotes/config"
	"simplenotes/repository"
	"simplenotes/usecase"
	"simplenotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/juju/clock"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("notes")

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warningf("Error loading .env file: %v", err)
	}

	optionalEnvVars := []string{
		"PORT",
		"GIN_MODE",
		"LOG_CONFIG",
		"MAX_BODY_BYTES",
		"METRICS_ENABLED",
	}
	for _, envVar := range optionalEnvVars {
		if os.Getenv(envVar) == "" {
			logger.Debugf("%s: not set, using default", envVar)
		} else {
			logger.Debugf("%s: set", envVar)
		}
	}

	utils.InitValidator()
}

func main() {
	cfg := config.LoadServerConfig()
	if err := utils.ConfigureLogging(cfg.LogConfig); err != nil {
		logger.Warningf("invalid LOG_CONFIG %q: %v", cfg.LogConfig, err)
	}
	gin.SetMode(cfg.GinMode)

	notesService := usecase.NewNotesService(repository.NewNotesRepo(), clock.WallClock)
	router := setupRouter(cfg, notesService)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Criticalf("Failed to start server: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Infof("Caught shutdown signal, draining requests")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
		return
	}
	logger.Infof("Server shutdown complete")
}
