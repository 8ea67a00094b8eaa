// Package main is the entry point for the Travel Booklet API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/acourtney/travel-booklet/internal/config"
	"github.com/acourtney/travel-booklet/internal/handler"
	"github.com/acourtney/travel-booklet/internal/llm"
	"github.com/acourtney/travel-booklet/internal/middleware"
	"github.com/acourtney/travel-booklet/internal/service"
	"github.com/acourtney/travel-booklet/internal/store"
)

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional: local development convenience only. Real deployments
	// set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before the real one is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Upstream clients & pipeline --------------------------------------
	// Two credentials, three calls: the general model composes the research
	// prompt and formats the booklet; the search model fetches
	// recommendations. Each call is bounded by UpstreamTimeout.
	general := llm.NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.UpstreamTimeout)
	search := llm.NewPerplexity(cfg.PerplexityBaseURL, cfg.PerplexityAPIKey, cfg.UpstreamTimeout)

	booklets := service.NewBookletService(general, search, store.NewMemoryStore(), logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(booklets).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout must cover the whole synchronous pipeline (three
	// sequential upstream calls), so it is derived from the upstream budget
	// rather than a fixed few seconds.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 3*cfg.UpstreamTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
