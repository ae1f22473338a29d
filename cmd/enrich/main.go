// Command enrich runs a batch enrichment pass over a word list.
// Words are read one per line from -file, or from stdin when -file is
// omitted. Blank lines are skipped. Progress is reported per word.
//
// Exit codes: 0 = all words enriched, 1 = error or any word failed.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres"
	"github.com/vocabguru/vocabguru-backend/internal/app"
	"github.com/vocabguru/vocabguru-backend/internal/config"
	"github.com/vocabguru/vocabguru-backend/internal/service/enrichment"
)

func main() {
	filePath := flag.String("file", "", "path to word list (one word per line, default stdin)")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	words, err := readWords(*filePath)
	if err != nil {
		logger.Error("read word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(words) == 0 {
		logger.Info("no words to enrich")
		return
	}

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

	svc := app.BuildEnrichment(pool, cfg, logger)

	onProgress := func(p enrichment.BatchProgress) {
		fmt.Printf("[%d/%d] %s (ok: %d, failed: %d)\n",
			p.Processed, p.Total, p.CurrentWord, p.Successful, p.Failed)
	}

	outcomes, err := svc.EnrichBatch(ctx, words, enrichment.DefaultOptions(), onProgress)
	if err != nil {
		logger.Error("batch enrichment failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	failed := 0
	for _, o := range outcomes {
		if !o.Success {
			failed++
			logger.Warn("word failed", slog.String("word", o.Word), slog.String("error", o.Error))
		}
	}

	logger.Info("batch enrichment finished",
		slog.Int("total", len(outcomes)),
		slog.Int("failed", failed),
	)
	if failed > 0 {
		os.Exit(1)
	}
}

func readWords(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}
