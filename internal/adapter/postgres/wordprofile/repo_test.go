package wordprofile_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/testhelper"
	"github.com/vocabguru/vocabguru-backend/internal/adapter/postgres/wordprofile"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo.
func newRepo(t *testing.T) *wordprofile.Repo {
	t.Helper()
	return wordprofile.New(testhelper.SetupTestDB(t))
}

func uniqueWord(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

func TestRepo_GetOrCreate_CreatesPending(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	id := uuid.New()
	word := uniqueWord("create")

	profile, err := repo.GetOrCreate(ctx, id, word)
	if err != nil {
		t.Fatalf("GetOrCreate: unexpected error: %v", err)
	}

	if profile.ID != id {
		t.Errorf("ID mismatch: got %s, want %s", profile.ID, id)
	}
	if profile.Word != word {
		t.Errorf("Word mismatch: got %q, want %q", profile.Word, word)
	}
	if profile.EnrichmentStatus != domain.EnrichmentStatusPending {
		t.Errorf("status: got %s, want pending", profile.EnrichmentStatus)
	}
	if profile.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
}

func TestRepo_GetOrCreate_ReturnsExisting(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	word := uniqueWord("existing")
	first, err := repo.GetOrCreate(ctx, uuid.New(), word)
	if err != nil {
		t.Fatalf("first GetOrCreate: %v", err)
	}

	second, err := repo.GetOrCreate(ctx, uuid.New(), word)
	if err != nil {
		t.Fatalf("second GetOrCreate: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected the stored profile back, got ID %s, want %s", second.ID, first.ID)
	}
}

func TestRepo_GetOrCreate_ConcurrentCallersConverge(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	word := uniqueWord("race")

	const callers = 8
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[uuid.UUID]int)
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := repo.GetOrCreate(ctx, uuid.New(), word)
			if err != nil {
				t.Errorf("GetOrCreate: %v", err)
				return
			}
			mu.Lock()
			ids[p.ID]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != 1 {
		t.Fatalf("expected all callers to converge on one profile, got %d distinct IDs", len(ids))
	}
}

func TestRepo_GetByWord_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.GetByWord(context.Background(), uniqueWord("missing"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Update_RoundTripsSubObjects(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	word := uniqueWord("round")
	profile, err := repo.GetOrCreate(ctx, uuid.New(), word)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	boundary := 3
	now := time.Now().UTC().Truncate(time.Microsecond)
	profile.MorphemeBreakdown = &domain.MorphemeBreakdown{
		Prefix:     &domain.Morpheme{Text: "pre", Meaning: "before", BoundaryPosition: &boundary},
		Root:       domain.Morpheme{Text: "view", Meaning: `core meaning of "view"`},
		Complexity: domain.ComplexityCompound,
	}
	profile.Phonetics = &domain.PhoneticData{IPA: "/ˈpriːvjuː/", SyllableCount: 2, Stress: domain.StressTrochaic, Source: domain.SourceOracle}
	profile.Etymology = domain.Etymology{
		LanguageOfOrigin: "Latin",
		LanguageFamily:   "Italic",
		HistoricalForms:  []domain.HistoricalForm{{Period: "Latin", Form: "praevidere"}},
		Source:           domain.SourceOracle,
	}
	profile.Definitions = domain.Definitions{Primary: "an advance showing", Standard: []string{"an advance showing"}}
	profile.WordForms = map[string]string{"plural": "previews"}
	profile.Analysis = domain.WordAnalysis{
		PartsOfSpeech: []domain.PartOfSpeech{domain.PartOfSpeechNoun},
		SemanticField: "media",
		Synonyms:      []string{"trailer"},
	}
	profile.QualityScore = 85
	profile.CompletenessScore = 77
	profile.EnrichmentStatus = domain.EnrichmentStatusCompleted
	profile.LastEnrichmentAt = &now

	if err := repo.Update(ctx, &profile); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByWord(ctx, word)
	if err != nil {
		t.Fatalf("GetByWord: %v", err)
	}

	if got.MorphemeBreakdown == nil || got.MorphemeBreakdown.Prefix == nil {
		t.Fatal("expected breakdown with prefix after round-trip")
	}
	if got.MorphemeBreakdown.Prefix.Text != "pre" {
		t.Errorf("prefix: got %q, want %q", got.MorphemeBreakdown.Prefix.Text, "pre")
	}
	if got.MorphemeBreakdown.Prefix.BoundaryPosition == nil || *got.MorphemeBreakdown.Prefix.BoundaryPosition != 3 {
		t.Errorf("boundary position did not survive round-trip: %v", got.MorphemeBreakdown.Prefix.BoundaryPosition)
	}
	if got.Phonetics == nil || got.Phonetics.IPA != "/ˈpriːvjuː/" {
		t.Errorf("phonetics did not survive round-trip: %+v", got.Phonetics)
	}
	if got.Etymology.LanguageOfOrigin != "Latin" || len(got.Etymology.HistoricalForms) != 1 {
		t.Errorf("etymology did not survive round-trip: %+v", got.Etymology)
	}
	if got.Definitions.Primary != "an advance showing" {
		t.Errorf("primary definition: got %q", got.Definitions.Primary)
	}
	if got.WordForms["plural"] != "previews" {
		t.Errorf("word forms: got %v", got.WordForms)
	}
	if len(got.Analysis.PartsOfSpeech) != 1 || got.Analysis.PartsOfSpeech[0] != domain.PartOfSpeechNoun {
		t.Errorf("parts of speech: got %v", got.Analysis.PartsOfSpeech)
	}
	if got.QualityScore != 85 || got.CompletenessScore != 77 {
		t.Errorf("scores: got %d/%d, want 85/77", got.QualityScore, got.CompletenessScore)
	}
	if got.EnrichmentStatus != domain.EnrichmentStatusCompleted {
		t.Errorf("status: got %s", got.EnrichmentStatus)
	}
	if got.LastEnrichmentAt == nil || !got.LastEnrichmentAt.Equal(now) {
		t.Errorf("last enrichment at: got %v, want %v", got.LastEnrichmentAt, now)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	profile := domain.WordProfile{ID: uuid.New(), Word: uniqueWord("ghost")}
	err := repo.Update(context.Background(), &profile)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_SetStatus(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	profile, err := repo.GetOrCreate(ctx, uuid.New(), uniqueWord("status"))
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	if err := repo.SetStatus(ctx, profile.ID, domain.EnrichmentStatusInProgress); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	got, err := repo.GetByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.EnrichmentStatus != domain.EnrichmentStatusInProgress {
		t.Errorf("status: got %s, want in_progress", got.EnrichmentStatus)
	}
}

func TestRepo_List_FilterByStatus(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	pending, err := repo.GetOrCreate(ctx, uuid.New(), uniqueWord("listpend"))
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	done, err := repo.GetOrCreate(ctx, uuid.New(), uniqueWord("listdone"))
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if err := repo.SetStatus(ctx, done.ID, domain.EnrichmentStatusCompleted); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	status := domain.EnrichmentStatusCompleted
	profiles, err := repo.List(ctx, &status, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var sawDone, sawPending bool
	for _, p := range profiles {
		if p.ID == done.ID {
			sawDone = true
		}
		if p.ID == pending.ID {
			sawPending = true
		}
	}
	if !sawDone {
		t.Error("expected completed profile in filtered list")
	}
	if sawPending {
		t.Error("pending profile must not appear in completed filter")
	}
}
