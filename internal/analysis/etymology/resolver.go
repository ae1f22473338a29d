// Package etymology infers a word's source language, language family, and
// historical form chain. When no authoritative origin is available it falls
// back to surface-level spelling heuristics; the synthetic chains it
// produces are clearly derived from the word itself and are flagged as
// non-authoritative.
package etymology

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/provider"
)

// Oracle is an optional external lookup for authoritative etymology.
// Implementations may be unreliable; the resolver falls back to its
// heuristic path on any error.
type Oracle interface {
	TraceEtymology(ctx context.Context, word string) (*provider.EtymologyResult, error)
}

// languageFamilies is the closed source-language → family lookup.
// All mapped families in this domain are Indo-European in the fallback
// heuristic; a known simplification, not a linguistic claim.
var languageFamilies = map[string]string{
	"Greek":       "Indo-European (Hellenic)",
	"Latin":       "Indo-European (Italic)",
	"French":      "Indo-European (Italic)",
	"Old English": "Indo-European (Germanic)",
	"Old Norse":   "Indo-European (Germanic)",
	"German":      "Indo-European (Germanic)",
}

// Resolver resolves etymology with an optional oracle.
type Resolver struct {
	oracle Oracle
	log    *slog.Logger
}

// NewResolver creates a Resolver. oracle may be nil, in which case only
// the heuristic path runs.
func NewResolver(oracle Oracle, logger *slog.Logger) *Resolver {
	return &Resolver{
		oracle: oracle,
		log:    logger.With("stage", "etymology"),
	}
}

// Resolve returns the etymology for word. knownOrigin, when non-empty,
// is treated as authoritative and skips the spelling heuristics. Oracle
// failure is expected, logged, and never surfaced: absence of
// authoritative etymology is a normal outcome.
func (r *Resolver) Resolve(ctx context.Context, word, knownOrigin string) domain.Etymology {
	word = domain.NormalizeWord(word)

	if r.oracle != nil {
		if res, err := r.oracle.TraceEtymology(ctx, word); err != nil {
			r.log.DebugContext(ctx, "etymology oracle unavailable, using heuristics",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
		} else if res != nil && res.LanguageOfOrigin != "" {
			return fromOracle(res)
		}
	}

	origin := knownOrigin
	if origin == "" {
		origin = inferOrigin(word)
	}

	return domain.Etymology{
		LanguageOfOrigin: origin,
		LanguageFamily:   languageFamilies[origin],
		HistoricalForms:  syntheticChain(word, origin),
		Source:           domain.SourceHeuristic,
	}
}

// inferOrigin applies the fixed spelling-pattern rules. Digraphs common in
// Greek borrowings win over Latinate endings; everything else defaults to
// Old English (the Germanic-leaning path).
func inferOrigin(word string) string {
	for _, digraph := range []string{"ph", "th", "ch"} {
		if strings.Contains(word, digraph) {
			return "Greek"
		}
	}
	for _, ending := range []string{"tion", "sion"} {
		if strings.HasSuffix(word, ending) {
			return "Latin"
		}
	}
	return "Old English"
}

// syntheticChain builds a placeholder historical chain from oldest to
// modern form by appending classical endings to the word itself.
func syntheticChain(word, origin string) []domain.HistoricalForm {
	var oldest domain.HistoricalForm
	switch origin {
	case "Greek":
		oldest = domain.HistoricalForm{Period: "Ancient Greek", Form: word + "os", Meaning: "reconstructed form"}
	case "Latin":
		oldest = domain.HistoricalForm{Period: "Classical Latin", Form: word + "us", Meaning: "reconstructed form"}
	default:
		oldest = domain.HistoricalForm{Period: "Old English", Form: word + "an", Meaning: "reconstructed form"}
	}

	return []domain.HistoricalForm{
		oldest,
		{Period: "Middle English", Form: word + "e", Meaning: "transitional form"},
		{Period: "Modern English", Form: word},
	}
}

func fromOracle(res *provider.EtymologyResult) domain.Etymology {
	et := domain.Etymology{
		LanguageOfOrigin:   res.LanguageOfOrigin,
		LanguageFamily:     res.LanguageFamily,
		WordEvolution:      res.WordEvolution,
		CulturalVariations: res.CulturalVariations,
		Source:             domain.SourceOracle,
	}
	if et.LanguageFamily == "" {
		et.LanguageFamily = languageFamilies[res.LanguageOfOrigin]
	}
	for _, f := range res.HistoricalForms {
		et.HistoricalForms = append(et.HistoricalForms, domain.HistoricalForm{
			Period:  f.Period,
			Form:    f.Form,
			Meaning: f.Meaning,
		})
	}
	return et
}
