// Package app wires configuration, storage, services, and the HTTP server
// into a running application.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"

	"github.com/textwarden/obscenity-backend/internal/adapter/postgres"
	"github.com/textwarden/obscenity-backend/internal/adapter/postgres/obsceneword"
	"github.com/textwarden/obscenity-backend/internal/adapter/postgres/suspiciousword"
	"github.com/textwarden/obscenity-backend/internal/adapter/provider/anthropic"
	"github.com/textwarden/obscenity-backend/internal/config"
	"github.com/textwarden/obscenity-backend/internal/service/moderation"
	"github.com/textwarden/obscenity-backend/internal/service/obscenity"
	"github.com/textwarden/obscenity-backend/internal/transport/middleware"
	"github.com/textwarden/obscenity-backend/internal/transport/rest"
	"github.com/textwarden/obscenity-backend/migrations"
)

// Run is the application entry point. It loads configuration, initializes the
// logger, connects to the database, applies migrations, builds the services,
// and serves HTTP until ctx is cancelled. Shutdown drains in-flight harvest
// tasks before returning.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("suspicious_words_check", cfg.Filter.SuspiciousWordsCheck),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	wordRepo := obsceneword.New(pool)
	suspiciousRepo := suspiciousword.New(pool)
	txm := postgres.NewTxManager(pool)

	obscenityCfg := obscenity.Config{
		ObscenityIndicator:   cfg.Filter.ObscenityIndicator,
		SuspiciousWordsCheck: cfg.Filter.SuspiciousWordsCheck,
		HarvestTimeout:       cfg.Filter.HarvestTimeout,
	}

	var obscenitySvc *obscenity.Service
	if cfg.Filter.SuspiciousWordsCheck {
		proposer := anthropic.New(cfg.LLM)
		obscenitySvc, err = obscenity.NewService(logger, wordRepo, suspiciousRepo, proposer, obscenityCfg)
	} else {
		obscenitySvc, err = obscenity.NewService(logger, wordRepo, suspiciousRepo, nil, obscenityCfg)
	}
	if err != nil {
		return err
	}

	moderationSvc := moderation.NewService(logger, suspiciousRepo, obscenitySvc, txm)

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
	}

	handler := buildHandler(cfg, logger, pool, obscenitySvc, moderationSvc, limiter)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
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
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}

	// Let in-flight harvest goroutines finish before the pool closes.
	obscenitySvc.Wait()

	logger.Info("stopped")
	return nil
}

// migrate applies embedded goose migrations. goose requires database/sql, so
// a short-lived stdlib connection is used alongside the pgx pool.
func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	if len(results) > 0 {
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}
	return nil
}

func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	obscenitySvc *obscenity.Service,
	moderationSvc *moderation.Service,
	limiter *middleware.RateLimiter,
) http.Handler {
	textHandler := rest.NewTextHandler(obscenitySvc, logger)
	wordsHandler := rest.NewWordsHandler(obscenitySvc, logger)
	moderationHandler := rest.NewModerationHandler(moderationSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()

	mux.HandleFunc("POST /text/check", textHandler.Check)
	mux.HandleFunc("POST /text/obscene-words", textHandler.SimilarWords)

	mux.HandleFunc("GET /admin/words", wordsHandler.List)
	mux.HandleFunc("POST /admin/words", wordsHandler.Create)
	mux.HandleFunc("POST /admin/words/import", wordsHandler.Import)

	mux.HandleFunc("GET /admin/suspicious", moderationHandler.List)
	mux.HandleFunc("POST /admin/suspicious/{id}/approve", moderationHandler.Approve)
	mux.HandleFunc("POST /admin/suspicious/{id}/decline", moderationHandler.Decline)

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if limiter != nil {
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	return middleware.Chain(mws...)(mux)
}
