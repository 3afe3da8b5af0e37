package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"lg/fitness-plan-go-api/internal/config"
	"lg/fitness-plan-go-api/internal/logging"
)

func gracefulShutdown(srv *http.Server, log zerolog.Logger, done chan<- struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// In-flight plan requests get 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	close(done)
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.AppEnv, os.Stdout)
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set; plan requests must send " + openAIKeyHeader)
	}

	h, err := newHandler(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to build handler")
	}

	router := newRouter(h)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", openAIKeyHeader, requestIDHeader},
		ExposedHeaders: []string{requestIDHeader, "Content-Disposition"},
	}).Handler(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.PlanTimeout + 15*time.Second,
		IdleTimeout:  time.Minute,
	}

	done := make(chan struct{})
	go gracefulShutdown(srv, log, done)

	log.Info().Str("addr", srv.Addr).Str("model", cfg.OpenAIModel).Msg("starting gin app")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server error")
	}

	<-done
	log.Info().Msg("graceful shutdown complete")
}
