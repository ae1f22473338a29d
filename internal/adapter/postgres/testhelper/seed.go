package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWordProfile creates a minimal pending word profile with a unique word.
// Returns the filled domain.WordProfile.
func SeedWordProfile(t *testing.T, pool *pgxpool.Pool) domain.WordProfile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.WordProfile{
		ID:               uuid.New(),
		Word:             "seedword" + uniqueSuffix(),
		EnrichmentStatus: domain.EnrichmentStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO word_profiles (id, word, enrichment_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		profile.ID, profile.Word, string(profile.EnrichmentStatus), profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWordProfile insert: %v", err)
	}

	return profile
}
