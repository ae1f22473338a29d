package enrichment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// EnrichWord runs one full enrichment pass for a single word: the
// profile is loaded or created, the enabled stages run concurrently and
// settle individually, their results merge into the profile, scores are
// recomputed, and the profile with its satellites is persisted in one
// transaction. Stage failures degrade the result; only validation and
// persistence errors fail the call.
func (s *Service) EnrichWord(ctx context.Context, word string, opts Options) (WordOutcome, error) {
	log := s.log.With("op", "EnrichWord")

	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return WordOutcome{Word: word}, domain.NewValidationError("word", "required")
	}
	if opts.IsZero() {
		opts = DefaultOptions()
	}

	profile, err := s.profiles.GetOrCreate(ctx, uuid.New(), normalized)
	if err != nil {
		return WordOutcome{Word: normalized}, fmt.Errorf("get or create profile: %w", err)
	}

	if err := s.profiles.SetStatus(ctx, profile.ID, domain.EnrichmentStatusInProgress); err != nil {
		return WordOutcome{Word: normalized}, fmt.Errorf("mark in progress: %w", err)
	}

	start := time.Now()
	out := s.runStages(ctx, &profile, opts)
	found := s.applyStageOutputs(&profile, out)
	if opts.CleanData {
		cleanProfile(&profile)
	}

	existingRels, err := s.relationships.ListByWord(ctx, profile.ID)
	if err != nil {
		return WordOutcome{Word: normalized}, fmt.Errorf("list relationships: %w", err)
	}
	rels := mergeRelationships(existingRels, out.relationships)

	existingUsages, err := s.usages.ListByWord(ctx, profile.ID)
	if err != nil {
		return WordOutcome{Word: normalized}, fmt.Errorf("list usage contexts: %w", err)
	}
	now := time.Now().UTC()
	usages := buildUsageContexts(profile.ID, existingUsages, out.examples, now)

	quality, completeness, _ := Score(&profile)
	profile.QualityScore = quality
	profile.CompletenessScore = completeness
	profile.EnrichmentStatus = domain.EnrichmentStatusCompleted
	profile.LastEnrichmentAt = &now

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.profiles.Update(ctx, &profile); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if err := s.relationships.ReplaceForWord(ctx, profile.ID, rels); err != nil {
			return fmt.Errorf("replace relationships: %w", err)
		}
		if err := s.usages.ReplaceForWord(ctx, profile.ID, usages); err != nil {
			return fmt.Errorf("replace usage contexts: %w", err)
		}
		return nil
	})
	if err != nil {
		return WordOutcome{Word: normalized}, err
	}

	log.Info("word enriched",
		"word", normalized,
		"quality", quality,
		"completeness", completeness,
		"components", found.Count(),
		"stage_errors", len(out.errs),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return WordOutcome{
		Word:              normalized,
		Success:           true,
		QualityScore:      quality,
		CompletenessScore: completeness,
		Components:        found,
	}, nil
}
