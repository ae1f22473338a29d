package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vocabguru/vocabguru-backend/internal/analysis/morphology"
	"github.com/vocabguru/vocabguru-backend/internal/analysis/phonetics"
	"github.com/vocabguru/vocabguru-backend/internal/analysis/semantics"
	"github.com/vocabguru/vocabguru-backend/internal/analysis/syntax"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/provider"
)

const (
	stageMorphology    = "morphology"
	stageEtymology     = "etymology"
	stagePhonetics     = "phonetics"
	stageSemantics     = "semantics"
	stageSyntax        = "syntax"
	stageDefinitions   = "definitions"
	stageUsageExamples = "usage_examples"
)

// stageOutputs carries the settled results of one pipeline pass. Each
// stage goroutine writes only its own slot.
type stageOutputs struct {
	morphology     *domain.MorphemeBreakdown
	etymology      *domain.Etymology
	phonetics      *domain.PhoneticData
	classification *semantics.Classification
	relationships  []domain.WordRelationship
	syntax         *syntax.Profile
	dictionary     *provider.DictionaryResult
	examples       []provider.ExampleResult

	mu   sync.Mutex
	errs map[string]error
}

func newStageOutputs() *stageOutputs {
	return &stageOutputs{errs: make(map[string]error)}
}

func (out *stageOutputs) fail(stage string, err error) {
	out.mu.Lock()
	out.errs[stage] = err
	out.mu.Unlock()
}

// runStages executes the enabled stages concurrently and waits for all
// of them to settle. A failed or panicking stage records its error and
// leaves its output slot empty; it never aborts the pass.
func (s *Service) runStages(ctx context.Context, profile *domain.WordProfile, opts Options) *stageOutputs {
	word := profile.Word
	pos := primaryPOS(profile)
	out := newStageOutputs()

	var wg sync.WaitGroup
	run := func(stage string, fn func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			err := s.runStage(ctx, stage, fn)
			s.observeStage(stage, word, start, err)
			if err != nil {
				out.fail(stage, err)
			}
		}()
	}

	if opts.EnhanceDefinitions && s.dict != nil {
		run(stageDefinitions, func(ctx context.Context) error {
			res, err := s.dict.FetchEntry(ctx, word)
			if err != nil {
				return err
			}
			out.dictionary = res
			return nil
		})
	}

	if opts.FillMissingFields {
		run(stageMorphology, func(context.Context) error {
			breakdown, err := morphology.Analyze(word)
			if err != nil {
				return err
			}
			out.morphology = &breakdown
			return nil
		})
		run(stagePhonetics, func(context.Context) error {
			data := phonetics.Transcribe(word)
			out.phonetics = &data
			return nil
		})
		run(stageSemantics, func(context.Context) error {
			cls := s.semantics.Classify(word, pos)
			out.classification = &cls
			return nil
		})
		run(stageSyntax, func(context.Context) error {
			p := syntax.Analyze(word, pos)
			out.syntax = &p
			return nil
		})
	}

	if opts.ImproveEtymology {
		run(stageEtymology, func(ctx context.Context) error {
			ety := s.etymology.Resolve(ctx, word, profile.Etymology.LanguageOfOrigin)
			out.etymology = &ety
			return nil
		})
	}

	if opts.GenerateSynonyms {
		run(stageSemantics+"_relationships", func(ctx context.Context) error {
			out.relationships = s.semantics.Relationships(ctx, profile.ID, word)
			return nil
		})
	}

	if opts.AddUsageExamples && s.examples != nil {
		run(stageUsageExamples, func(ctx context.Context) error {
			examples, err := s.examples.GenerateExamples(ctx, word, pos)
			if err != nil {
				return err
			}
			out.examples = examples
			return nil
		})
	}

	wg.Wait()
	return out
}

// runStage applies the oracle timeout and converts a stage panic into
// an error.
func (s *Service) runStage(ctx context.Context, stage string, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage %s panicked: %v", stage, r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.OracleTimeout)
	defer cancel()
	return fn(ctx)
}

func (s *Service) observeStage(stage, word string, start time.Time, err error) {
	outcome := "ok"
	level := slog.LevelDebug
	if err != nil {
		outcome = "failed"
		level = slog.LevelWarn
	}
	s.log.Log(context.Background(), level, "stage settled",
		"stage", stage,
		"word", word,
		"outcome", outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if err != nil {
		s.log.Warn("stage error", "stage", stage, "word", word, "error", err)
	}
}

// primaryPOS returns the profile's first known part of speech, or
// POSOther when none is recorded yet.
func primaryPOS(profile *domain.WordProfile) domain.PartOfSpeech {
	if len(profile.Analysis.PartsOfSpeech) > 0 {
		return profile.Analysis.PartsOfSpeech[0]
	}
	return domain.PartOfSpeechOther
}
