// Command import loads vocabulary words from a CSV file into the
// database. The CSV must have a header with a word column (word, term,
// vocabulary, or name); a definition column is optional. Imported words
// are created as pending profiles for later enrichment.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/wordprofile"
	"github.com/vocabguru/vocabguru-backend/internal/config"
	"github.com/vocabguru/vocabguru-backend/internal/service/importer"
)

func main() {
	filePath := flag.String("file", "", "path to CSV file (required)")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *filePath == "" {
		logger.Error("missing required -file flag")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Error("open csv file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := importer.NewService(logger, wordprofile.New(pool), postgres.NewTxManager(pool), cfg.Import)

	result, err := svc.Import(ctx, f)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("total", result.Total),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)
	for _, rowErr := range result.Errors {
		logger.Warn("row error",
			slog.Int("line", rowErr.LineNumber),
			slog.String("reason", rowErr.Reason),
		)
	}
}
