package relationship_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/relationship"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/testhelper"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

func newRepo(t *testing.T) (*relationship.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return relationship.New(pool), pool
}

func edge(wordID uuid.UUID, target string, typ domain.RelationType) domain.WordRelationship {
	return domain.WordRelationship{
		ID:         uuid.New(),
		WordID:     wordID,
		TargetWord: target,
		Type:       typ,
		Strength:   0.8,
		Confidence: 0.6,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestRepo_ReplaceForWord_AndListByWord(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	profile := testhelper.SeedWordProfile(t, pool)

	rels := []domain.WordRelationship{
		edge(profile.ID, "trailer", domain.RelationSynonym),
		edge(profile.ID, "review", domain.RelationRelated),
	}
	if err := repo.ReplaceForWord(ctx, profile.ID, rels); err != nil {
		t.Fatalf("ReplaceForWord: %v", err)
	}

	got, err := repo.ListByWord(ctx, profile.ID)
	if err != nil {
		t.Fatalf("ListByWord: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(got))
	}
	// Ordered by target word.
	if got[0].TargetWord != "review" || got[1].TargetWord != "trailer" {
		t.Errorf("unexpected order: %q, %q", got[0].TargetWord, got[1].TargetWord)
	}
	if got[1].Type != domain.RelationSynonym {
		t.Errorf("type: got %s, want SYNONYM", got[1].Type)
	}
	if got[1].Strength != 0.8 || got[1].Confidence != 0.6 {
		t.Errorf("strength/confidence: got %v/%v", got[1].Strength, got[1].Confidence)
	}
}

func TestRepo_ReplaceForWord_SwapsEdgeSet(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	profile := testhelper.SeedWordProfile(t, pool)

	if err := repo.ReplaceForWord(ctx, profile.ID, []domain.WordRelationship{
		edge(profile.ID, "old", domain.RelationSynonym),
	}); err != nil {
		t.Fatalf("first ReplaceForWord: %v", err)
	}

	if err := repo.ReplaceForWord(ctx, profile.ID, []domain.WordRelationship{
		edge(profile.ID, "new", domain.RelationAntonym),
	}); err != nil {
		t.Fatalf("second ReplaceForWord: %v", err)
	}

	got, err := repo.ListByWord(ctx, profile.ID)
	if err != nil {
		t.Fatalf("ListByWord: %v", err)
	}
	if len(got) != 1 || got[0].TargetWord != "new" {
		t.Fatalf("expected the old edge set to be replaced, got %+v", got)
	}
}

func TestRepo_ReplaceForWord_EmptyClears(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	profile := testhelper.SeedWordProfile(t, pool)

	if err := repo.ReplaceForWord(ctx, profile.ID, []domain.WordRelationship{
		edge(profile.ID, "target", domain.RelationSynonym),
	}); err != nil {
		t.Fatalf("ReplaceForWord: %v", err)
	}
	if err := repo.ReplaceForWord(ctx, profile.ID, nil); err != nil {
		t.Fatalf("ReplaceForWord(nil): %v", err)
	}

	got, err := repo.ListByWord(ctx, profile.ID)
	if err != nil {
		t.Fatalf("ListByWord: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no edges, got %d", len(got))
	}
}

func TestRepo_ListByWord_EmptyForUnknownWord(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	got, err := repo.ListByWord(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ListByWord: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no edges, got %d", len(got))
	}
}
