// Package main is the entry point for the russia-map API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/russia-map/backend/internal/config"
	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/handler"
	"github.com/pkordes/russia-map/backend/internal/middleware"
	"github.com/pkordes/russia-map/backend/internal/service"
	"github.com/pkordes/russia-map/backend/internal/store"
	"github.com/pkordes/russia-map/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A missing .env file is normal in containers.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	backend, closeBackend, err := openBackend(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeBackend()

	st := store.New(backend)
	if err := st.Init(context.Background(), store.Markers, store.Comments, store.Routes); err != nil {
		slog.Error("failed to initialise collections", "error", err)
		os.Exit(1)
	}
	slog.Info("storage ready", "driver", cfg.StoreDriver)

	markers := store.NewCollection[domain.Marker](st, store.Markers)
	comments := store.NewCollection[domain.Comment](st, store.Comments)
	routes := store.NewCollection[domain.Route](st, store.Routes)

	srv := handler.NewServer(
		service.NewMarkerService(markers, comments),
		service.NewCommentService(markers, comments),
		service.NewRouteService(routes),
		service.NewStatsService(markers, comments, routes),
	)

	// --- Router -----------------------------------------------------------
	// RequestID must precede SlogLogger so every log line carries the ID.
	// The body limit sits before the handlers that decode JSON.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewPrometheusMetrics())
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openBackend builds the storage backend selected by STORE_DRIVER.
// The returned func releases everything opened here.
func openBackend(ctx context.Context, cfg config.Config) (store.Backend, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverBadger:
		b, err := store.OpenBadger(cfg.BadgerDir)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { _ = b.Close() }, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("connect: %w", err)
		}
		// goose needs database/sql; share the pool's connections.
		db := stdlib.OpenDBFromPool(pool)
		if err := migrations.Up(ctx, db); err != nil {
			_ = db.Close()
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return store.NewPostgresBackend(pool), func() {
			_ = db.Close()
			pool.Close()
		}, nil

	default:
		b, err := store.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { _ = b.Close() }, nil
	}
}
