package main

// @title           Library Catalogue API
// @version         1.0
// @description     API for managing authors and books in the library catalogue.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/library-api/internal/config"
	"github.com/snnyvrz/library-api/internal/db"
	"github.com/snnyvrz/library-api/internal/logger"
	"github.com/snnyvrz/library-api/internal/metrics"
	"github.com/snnyvrz/library-api/internal/server"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		l := bootstrapLogger()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	zerolog.DefaultContextLogger = &log

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.ConnectWithRetry(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	router := server.NewRouter(server.Options{
		DB:        database,
		Logger:    log,
		Metrics:   metrics.New(),
		StartTime: startTime,
		Version:   appVersion,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("version", appVersion).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("server exited")
}

// bootstrapLogger is used before the config is available.
func bootstrapLogger() zerolog.Logger {
	return logger.New(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
}
