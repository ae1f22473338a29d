// Package importer loads vocabulary lists from CSV files into word
// profiles. Imported profiles start in the pending state with only a
// primary definition; the enrichment pipeline fills in the rest later.
package importer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vocabguru/vocabguru-backend/internal/config"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

type profileRepo interface {
	GetByWord(ctx context.Context, word string) (*domain.WordProfile, error)
	GetOrCreate(ctx context.Context, id uuid.UUID, word string) (domain.WordProfile, error)
	Update(ctx context.Context, profile *domain.WordProfile) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements CSV vocabulary import.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	tx       txManager
	cfg      config.ImportConfig
}

// NewService creates the import service.
func NewService(logger *slog.Logger, profiles profileRepo, tx txManager, cfg config.ImportConfig) *Service {
	return &Service{
		log:      logger.With("service", "importer"),
		profiles: profiles,
		tx:       tx,
		cfg:      cfg,
	}
}
