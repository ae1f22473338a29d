package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabguru/vocabguru-backend/internal/config"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

type profileRepoMock struct {
	profiles map[string]*domain.WordProfile

	getOrCreateErr func(word string) error
}

func newProfileRepoMock() *profileRepoMock {
	return &profileRepoMock{profiles: make(map[string]*domain.WordProfile)}
}

func (m *profileRepoMock) GetByWord(_ context.Context, word string) (*domain.WordProfile, error) {
	p, ok := m.profiles[word]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *profileRepoMock) GetOrCreate(_ context.Context, id uuid.UUID, word string) (domain.WordProfile, error) {
	if m.getOrCreateErr != nil {
		if err := m.getOrCreateErr(word); err != nil {
			return domain.WordProfile{}, err
		}
	}
	if p, ok := m.profiles[word]; ok {
		return *p, nil
	}
	p := domain.WordProfile{ID: id, Word: word, EnrichmentStatus: domain.EnrichmentStatusPending}
	m.profiles[word] = &p
	return p, nil
}

func (m *profileRepoMock) Update(_ context.Context, profile *domain.WordProfile) error {
	cp := *profile
	m.profiles[profile.Word] = &cp
	return nil
}

type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(profiles *profileRepoMock, chunkSize int) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(log, profiles, txManagerMock{}, config.ImportConfig{
		ChunkSize: chunkSize,
		MaxRows:   100,
	})
}

func TestImport_NewWords(t *testing.T) {
	t.Parallel()

	profiles := newProfileRepoMock()
	s := newTestService(profiles, 50)

	input := "word,definition\npreview,an advance showing\nserendipity,a happy accident\n"
	result, err := s.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)

	stored, err := profiles.GetByWord(context.Background(), "preview")
	require.NoError(t, err)
	assert.Equal(t, "an advance showing", stored.Definitions.Primary)
	assert.Equal(t, domain.EnrichmentStatusPending, stored.EnrichmentStatus)
}

func TestImport_MissingDefinitionGetsPlaceholder(t *testing.T) {
	t.Parallel()

	profiles := newProfileRepoMock()
	s := newTestService(profiles, 50)

	result, err := s.Import(context.Background(), strings.NewReader("word\npreview\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	stored, err := profiles.GetByWord(context.Background(), "preview")
	require.NoError(t, err)
	assert.Contains(t, stored.Definitions.Primary, "preview")
	assert.Contains(t, stored.Definitions.Primary, "pending enrichment")
}

func TestImport_DuplicateWithinFile(t *testing.T) {
	t.Parallel()

	profiles := newProfileRepoMock()
	s := newTestService(profiles, 50)

	input := "word\npreview\nPreview\n"
	result, err := s.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "duplicate within import", result.Errors[0].Reason)
}

func TestImport_ExistingWordSkippedButDefinitionFilled(t *testing.T) {
	t.Parallel()

	profiles := newProfileRepoMock()
	existing := &domain.WordProfile{
		ID:               uuid.New(),
		Word:             "preview",
		EnrichmentStatus: domain.EnrichmentStatusCompleted,
	}
	profiles.profiles["preview"] = existing
	s := newTestService(profiles, 50)

	input := "word,definition\npreview,an advance showing\n"
	result, err := s.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "word already exists", result.Errors[0].Reason)

	stored, err := profiles.GetByWord(context.Background(), "preview")
	require.NoError(t, err)
	assert.Equal(t, "an advance showing", stored.Definitions.Primary)
	// Import never flips an existing profile back to pending.
	assert.Equal(t, domain.EnrichmentStatusCompleted, stored.EnrichmentStatus)
}

func TestImport_FailedChunkRollsBackAlone(t *testing.T) {
	t.Parallel()

	profiles := newProfileRepoMock()
	dbErr := errors.New("out of disk")
	profiles.getOrCreateErr = func(word string) error {
		if word == "cursed" {
			return dbErr
		}
		return nil
	}
	s := newTestService(profiles, 2) // chunks: [alpha bravo] [cursed delta] [echo]

	input := "word\nalpha\nbravo\ncursed\ndelta\necho\n"
	result, err := s.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	for _, rowErr := range result.Errors {
		assert.Contains(t, rowErr.Reason, "chunk transaction failed")
	}

	_, err = profiles.GetByWord(context.Background(), "echo")
	assert.NoError(t, err)
}

func TestImport_TooManyRows(t *testing.T) {
	t.Parallel()

	profiles := newProfileRepoMock()
	s := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), profiles, txManagerMock{}, config.ImportConfig{
		ChunkSize: 10,
		MaxRows:   2,
	})

	input := "word\nalpha\nbravo\ncharlie\n"
	_, err := s.Import(context.Background(), strings.NewReader(input))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
