// Package app wires configuration, storage, oracles, services, and the
// HTTP server into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/relationship"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/usage"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/wordprofile"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/provider/freedict"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/provider/llm"
	"github.com/vocabguru/vocabguru-backend/internal/analysis/etymology"
	"github.com/vocabguru/vocabguru-backend/internal/analysis/semantics"
	"github.com/vocabguru/vocabguru-backend/internal/config"
	"github.com/vocabguru/vocabguru-backend/internal/service/enrichment"
	"github.com/vocabguru/vocabguru-backend/internal/transport/middleware"
	"github.com/vocabguru/vocabguru-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, runs migrations, builds the service graph, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	svc := BuildEnrichment(pool, cfg, logger)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Words:  rest.NewWordsHandler(svc, cfg.Enrichment.MaxBatchWords, logger),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMinute),
	)(rest.NewRouter(handlers))

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
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// BuildEnrichment assembles the enrichment service with whichever
// oracles the configuration enables. Shared by the server and the CLIs.
func BuildEnrichment(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *enrichment.Service {
	profiles := wordprofile.New(pool)
	relationships := relationship.New(pool)
	usages := usage.New(pool)
	tx := postgres.NewTxManager(pool)

	var (
		etymologyOracle    etymology.Oracle
		relationshipOracle semantics.Oracle
		exampleOracle      enrichment.ExampleOracle
		dictOracle         enrichment.DictionaryOracle
	)
	if cfg.Oracle.LLMEnabled() {
		oracle := llm.NewOracle(cfg.Oracle, logger)
		etymologyOracle = oracle
		relationshipOracle = oracle
		exampleOracle = oracle
	}
	if cfg.Oracle.FreeDictEnabled {
		dictOracle = freedict.NewProviderWithURL(cfg.Oracle.FreeDictBaseURL, logger)
	}

	return enrichment.NewService(
		logger,
		profiles,
		relationships,
		usages,
		tx,
		etymology.NewResolver(etymologyOracle, logger),
		semantics.NewClassifier(relationshipOracle, logger),
		dictOracle,
		exampleOracle,
		cfg.Enrichment,
	)
}
