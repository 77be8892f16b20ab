package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openjournal/journal-backend/internal/adapter/kafka"
	"github.com/openjournal/journal-backend/internal/adapter/postgres"
	entryrepo "github.com/openjournal/journal-backend/internal/adapter/postgres/entry"
	"github.com/openjournal/journal-backend/internal/auth"
	"github.com/openjournal/journal-backend/internal/config"
	"github.com/openjournal/journal-backend/internal/service/journal"
	"github.com/openjournal/journal-backend/internal/transport/middleware"
	"github.com/openjournal/journal-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage, messaging, and HTTP layers, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	publisher := kafka.NewPublisher(cfg.Kafka)
	defer publisher.Close() //nolint:errcheck
	if publisher == nil {
		logger.Info("event publishing disabled, no kafka brokers configured")
	}

	entries := entryrepo.New(pool)
	journalSvc := journal.NewService(logger, entries, publisher, cfg.Journal)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Entries: rest.NewEntryHandler(journalSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Base: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		},
		Protected: []middleware.Middleware{
			middleware.Identity(verifier, cfg.Auth.AllowUserIDHeader),
			middleware.RequireUser(),
		},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
