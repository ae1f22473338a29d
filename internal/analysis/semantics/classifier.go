// Package semantics assigns a semantic field, difficulty level, and
// frequency estimate to a word, and derives relationship edges via an
// external suggestion oracle. Unlike the other heuristic-fallback stages,
// relationships are never fabricated: with no oracle configured the
// relationship list is empty, because relationship quality matters more
// than coverage.
package semantics

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/provider"
)

// Oracle suggests semantic relationship edges for a word.
type Oracle interface {
	SuggestRelationships(ctx context.Context, word string) ([]provider.RelationshipResult, error)
}

// semanticFields maps field → keyword list, checked by containment in a
// fixed order. First hit wins; no hit falls back to "general".
var semanticFields = []struct {
	field    string
	keywords []string
}{
	{field: "emotional", keywords: []string{"love", "fear", "joy", "hate", "anger", "grief", "happy", "sad"}},
	{field: "temporal", keywords: []string{"time", "year", "day", "era", "age", "season", "moment"}},
	{field: "spatial", keywords: []string{"place", "space", "land", "area", "zone", "region", "site"}},
	{field: "concrete", keywords: []string{"stone", "water", "tree", "house", "metal", "glass", "body"}},
	{field: "abstract", keywords: []string{"ness", "ity", "ism", "tion", "ence", "ance", "ment"}},
}

// Difficulty thresholds on surface length; a deliberately crude proxy.
const (
	basicMaxLen        = 5
	intermediateMaxLen = 8
)

// Classification is the heuristic semantic profile of a word.
type Classification struct {
	SemanticField string
	Difficulty    string
	// FrequencyRank is 0: no corpus frequency source is wired into this
	// stage, and the classifier does not fabricate an estimate.
	FrequencyRank int
}

// Classifier classifies words and, when an oracle is configured,
// suggests relationship edges.
type Classifier struct {
	oracle Oracle
	log    *slog.Logger
}

// NewClassifier creates a Classifier. oracle may be nil.
func NewClassifier(oracle Oracle, logger *slog.Logger) *Classifier {
	return &Classifier{
		oracle: oracle,
		log:    logger.With("stage", "semantics"),
	}
}

// Classify returns the semantic field and difficulty for word.
func (c *Classifier) Classify(word string, _ domain.PartOfSpeech) Classification {
	w := domain.NormalizeWord(word)
	return Classification{
		SemanticField: fieldFor(w),
		Difficulty:    difficultyFor(w),
	}
}

// Relationships asks the oracle for semantic edges from word. Every
// returned edge carries strength and confidence clamped into [0,1] and a
// valid relation type. Oracle absence or failure yields an empty list.
func (c *Classifier) Relationships(ctx context.Context, wordID uuid.UUID, word string) []domain.WordRelationship {
	if c.oracle == nil {
		return nil
	}

	suggestions, err := c.oracle.SuggestRelationships(ctx, domain.NormalizeWord(word))
	if err != nil {
		c.log.DebugContext(ctx, "relationship oracle unavailable",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil
	}

	var rels []domain.WordRelationship
	for _, s := range suggestions {
		target := domain.NormalizeWord(s.TargetWord)
		if target == "" || target == domain.NormalizeWord(word) {
			continue
		}
		relType := domain.RelationType(strings.ToUpper(strings.TrimSpace(s.Type)))
		if !relType.IsValid() {
			relType = domain.RelationRelated
		}
		rels = append(rels, domain.WordRelationship{
			ID:         uuid.New(),
			WordID:     wordID,
			TargetWord: target,
			Type:       relType,
			Strength:   clamp01(s.Strength),
			Confidence: clamp01(s.Confidence),
		})
	}
	return rels
}

func fieldFor(word string) string {
	for _, f := range semanticFields {
		for _, kw := range f.keywords {
			if strings.Contains(word, kw) {
				return f.field
			}
		}
	}
	return "general"
}

func difficultyFor(word string) string {
	switch n := len(word); {
	case n <= basicMaxLen:
		return "basic"
	case n <= intermediateMaxLen:
		return "intermediate"
	default:
		return "advanced"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
