// Package main is the entry point for the trip planner API server.
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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-retry"

	"github.com/csaszi/trip-planner/internal/adapters/distance"
	"github.com/csaszi/trip-planner/internal/config"
	"github.com/csaszi/trip-planner/internal/handler"
	"github.com/csaszi/trip-planner/internal/middleware"
	"github.com/csaszi/trip-planner/internal/ports"
	"github.com/csaszi/trip-planner/internal/repo"
	"github.com/csaszi/trip-planner/internal/service"
)

// maxBodyBytes caps incoming request bodies. Nothing this API accepts is
// anywhere near 1 MiB.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is for local development; missing files are not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
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

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic. The database may
	// still be starting (docker compose), so ping with backoff.
	pingBackoff := retry.WithMaxDuration(30*time.Second, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(context.Background(), pingBackoff, func(ctx context.Context) error {
		return retry.RetryableError(pool.Ping(ctx))
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Repos, services, handlers ----------------------------------------
	trips := repo.NewTripRepo(pool)
	lodgings := repo.NewLodgingRepo(pool)
	activities := repo.NewActivityRepo(pool)
	plans := repo.NewDayPlanRepo(pool)

	var estimator ports.DistanceEstimator
	if cfg.ORSAPIKey != "" {
		baseURL := cfg.ORSBaseURL
		if baseURL == "" {
			baseURL = distance.DefaultORSBaseURL
		}
		estimator = distance.NewORSEstimator(baseURL, cfg.ORSAPIKey)
	} else {
		slog.Warn("ORS_API_KEY not set; distance estimation disabled")
		estimator = distance.NewStaticEstimator(nil)
	}

	server := handler.NewServer(
		service.NewTripService(trips),
		service.NewLodgingService(trips, lodgings),
		service.NewActivityService(trips, activities),
		service.NewDayPlanService(trips, plans),
		service.NewSummaryService(trips, lodgings, activities, plans),
		service.NewEstimateService(estimator),
	)

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
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
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
