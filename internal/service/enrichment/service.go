// Package enrichment orchestrates the word-enrichment pipeline: it loads
// or creates a word profile, fans its analysis stages out concurrently,
// merges the partial results under a per-stage ownership policy, recomputes
// quality and completeness scores, and persists the result. Individual
// stage failures are contained at the stage boundary and never abort the
// pass.
package enrichment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vocabguru/vocabguru-backend/internal/analysis/etymology"
	"github.com/vocabguru/vocabguru-backend/internal/analysis/semantics"
	"github.com/vocabguru/vocabguru-backend/internal/config"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/provider"
)

type profileRepo interface {
	GetByWord(ctx context.Context, word string) (*domain.WordProfile, error)
	GetOrCreate(ctx context.Context, id uuid.UUID, word string) (domain.WordProfile, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.EnrichmentStatus) error
	Update(ctx context.Context, profile *domain.WordProfile) error
}

type relationshipRepo interface {
	ReplaceForWord(ctx context.Context, wordID uuid.UUID, rels []domain.WordRelationship) error
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.WordRelationship, error)
}

type usageRepo interface {
	ReplaceForWord(ctx context.Context, wordID uuid.UUID, contexts []domain.UsageContext) error
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.UsageContext, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DictionaryOracle supplies definitions, parts of speech, and
// pronunciation transcriptions. Optional.
type DictionaryOracle interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

// ExampleOracle generates usage example sentences. Optional.
type ExampleOracle interface {
	GenerateExamples(ctx context.Context, word string, pos domain.PartOfSpeech) ([]provider.ExampleResult, error)
}

// Service implements the enrichment orchestrator.
type Service struct {
	log           *slog.Logger
	profiles      profileRepo
	relationships relationshipRepo
	usages        usageRepo
	tx            txManager

	etymology *etymology.Resolver
	semantics *semantics.Classifier

	dict     DictionaryOracle // nil when unconfigured
	examples ExampleOracle    // nil when unconfigured

	cfg config.EnrichmentConfig
}

// NewService creates the enrichment orchestrator. The dict and examples
// oracles may be nil; the pipeline then runs heuristic-only.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	relationships relationshipRepo,
	usages usageRepo,
	tx txManager,
	etymologyResolver *etymology.Resolver,
	semanticsClassifier *semantics.Classifier,
	dict DictionaryOracle,
	examples ExampleOracle,
	cfg config.EnrichmentConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "enrichment"),
		profiles:      profiles,
		relationships: relationships,
		usages:        usages,
		tx:            tx,
		etymology:     etymologyResolver,
		semantics:     semanticsClassifier,
		dict:          dict,
		examples:      examples,
		cfg:           cfg,
	}
}

// GetProfile returns the profile for a word together with its
// relationship edges and stored usage contexts. Returns
// domain.ErrNotFound for unknown words.
func (s *Service) GetProfile(ctx context.Context, word string) (*domain.WordProfile, []domain.WordRelationship, []domain.UsageContext, error) {
	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return nil, nil, nil, domain.NewValidationError("word", "required")
	}

	profile, err := s.profiles.GetByWord(ctx, normalized)
	if err != nil {
		return nil, nil, nil, err
	}

	rels, err := s.relationships.ListByWord(ctx, profile.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	usages, err := s.usages.ListByWord(ctx, profile.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return profile, rels, usages, nil
}
