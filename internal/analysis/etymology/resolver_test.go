package etymology

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/provider"
)

type mockOracle struct {
	traceFn func(ctx context.Context, word string) (*provider.EtymologyResult, error)
}

func (m *mockOracle) TraceEtymology(ctx context.Context, word string) (*provider.EtymologyResult, error) {
	return m.traceFn(ctx, word)
}

func TestResolve_HeuristicPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word       string
		wantOrigin string
		wantFamily string
	}{
		{word: "philosophy", wantOrigin: "Greek", wantFamily: "Indo-European (Hellenic)"},
		{word: "theory", wantOrigin: "Greek", wantFamily: "Indo-European (Hellenic)"},
		{word: "station", wantOrigin: "Latin", wantFamily: "Indo-European (Italic)"},
		{word: "tension", wantOrigin: "Latin", wantFamily: "Indo-European (Italic)"},
		{word: "preview", wantOrigin: "Old English", wantFamily: "Indo-European (Germanic)"},
		{word: "house", wantOrigin: "Old English", wantFamily: "Indo-European (Germanic)"},
	}

	r := NewResolver(nil, slog.Default())
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			et := r.Resolve(context.Background(), tt.word, "")
			assert.Equal(t, tt.wantOrigin, et.LanguageOfOrigin)
			assert.Equal(t, tt.wantFamily, et.LanguageFamily)
			assert.Equal(t, domain.SourceHeuristic, et.Source)
		})
	}
}

func TestResolve_KnownOriginSkipsHeuristics(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, slog.Default())
	et := r.Resolve(context.Background(), "philosophy", "Latin")
	assert.Equal(t, "Latin", et.LanguageOfOrigin)
	assert.Equal(t, "Indo-European (Italic)", et.LanguageFamily)
}

func TestResolve_SyntheticChainOrderedOldestFirst(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, slog.Default())
	et := r.Resolve(context.Background(), "house", "")

	require.Len(t, et.HistoricalForms, 3)
	assert.Equal(t, "Old English", et.HistoricalForms[0].Period)
	assert.Equal(t, "Modern English", et.HistoricalForms[len(et.HistoricalForms)-1].Period)
	assert.Equal(t, "house", et.HistoricalForms[len(et.HistoricalForms)-1].Form)
	// Synthetic forms are derived from the word itself.
	assert.Contains(t, et.HistoricalForms[0].Form, "house")
}

func TestResolve_OracleSupersedesHeuristics(t *testing.T) {
	t.Parallel()

	oracle := &mockOracle{
		traceFn: func(_ context.Context, _ string) (*provider.EtymologyResult, error) {
			return &provider.EtymologyResult{
				LanguageOfOrigin: "Latin",
				WordEvolution:    "videre → view → preview",
				HistoricalForms: []provider.HistoricalFormResult{
					{Period: "Classical Latin", Form: "praevidere", Meaning: "to foresee"},
				},
			}, nil
		},
	}

	r := NewResolver(oracle, slog.Default())
	et := r.Resolve(context.Background(), "preview", "")

	assert.Equal(t, "Latin", et.LanguageOfOrigin)
	assert.Equal(t, "Indo-European (Italic)", et.LanguageFamily)
	assert.Equal(t, domain.SourceOracle, et.Source)
	require.Len(t, et.HistoricalForms, 1)
	assert.Equal(t, "praevidere", et.HistoricalForms[0].Form)
}

func TestResolve_OracleFailureFallsBackSilently(t *testing.T) {
	t.Parallel()

	oracle := &mockOracle{
		traceFn: func(_ context.Context, _ string) (*provider.EtymologyResult, error) {
			return nil, errors.New("timeout")
		},
	}

	r := NewResolver(oracle, slog.Default())
	et := r.Resolve(context.Background(), "preview", "")

	assert.Equal(t, "Old English", et.LanguageOfOrigin)
	assert.Equal(t, domain.SourceHeuristic, et.Source)
}
