package enrichment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// EnrichBatch enriches words in batches. Words within a batch run
// concurrently; batches are separated by the configured delay so
// external oracles are not hammered. A failing or panicking word is
// recorded in its outcome and never aborts the rest of the batch. The
// progress callback, when non-nil, fires after every word settles.
func (s *Service) EnrichBatch(ctx context.Context, words []string, opts Options, onProgress ProgressFunc) ([]WordOutcome, error) {
	if len(words) == 0 {
		return nil, domain.NewValidationError("words", "required")
	}
	if opts.IsZero() {
		opts = DefaultOptions()
	}

	batchSize := s.cfg.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	log := s.log.With("op", "EnrichBatch")
	log.Info("batch started", "words", len(words), "batch_size", batchSize)

	outcomes := make([]WordOutcome, len(words))
	var (
		mu       sync.Mutex
		progress = BatchProgress{Total: len(words)}
	)
	report := func(outcome WordOutcome) {
		mu.Lock()
		defer mu.Unlock()
		progress.Processed++
		if outcome.Success {
			progress.Successful++
		} else {
			progress.Failed++
		}
		progress.CurrentWord = outcome.Word
		if onProgress != nil {
			onProgress(progress)
		}
	}

	for offset := 0; offset < len(words); offset += batchSize {
		if err := ctx.Err(); err != nil {
			return outcomes[:offset], err
		}
		if offset > 0 && s.cfg.BatchDelay > 0 {
			select {
			case <-time.After(s.cfg.BatchDelay):
			case <-ctx.Done():
				return outcomes[:offset], ctx.Err()
			}
		}

		end := offset + batchSize
		if end > len(words) {
			end = len(words)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := offset; i < end; i++ {
			g.Go(func() error {
				outcomes[i] = s.enrichOne(gctx, words[i], opts)
				report(outcomes[i])
				return nil
			})
		}
		_ = g.Wait() // enrichOne never returns an error
	}

	mu.Lock()
	log.Info("batch finished",
		"processed", progress.Processed,
		"successful", progress.Successful,
		"failed", progress.Failed,
	)
	mu.Unlock()

	return outcomes, nil
}

// enrichOne contains every failure mode of a single word, panics
// included, in the returned outcome.
func (s *Service) enrichOne(ctx context.Context, word string, opts Options) (outcome WordOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("enrichment panic", "word", word, "panic", r)
			outcome = WordOutcome{Word: word, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()

	outcome, err := s.EnrichWord(ctx, word, opts)
	if err != nil {
		outcome.Success = false
		outcome.Error = err.Error()
	}
	return outcome
}
