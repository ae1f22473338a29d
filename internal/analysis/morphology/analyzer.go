// Package morphology decomposes a word into prefix, root, and suffix by
// longest-match lookup against the shared morpheme lexicon, with a
// compound-word fallback for long unsegmented roots.
package morphology

import (
	"strings"

	"github.com/vocabguru/vocabguru-backend/internal/analysis/lexicon"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

const (
	// Words shorter than minWordLen never receive a prefix or suffix match;
	// this guards against trivial over-segmentation of short words.
	minWordLen = 5

	// An affix match must leave a remainder of at least minRemainder letters.
	minRemainder = 3

	// Unsegmented roots longer than compoundMinLen get a tentative
	// compound split.
	compoundMinLen = 7
)

// Analyze decomposes word into morphemes. Absence of a prefix or suffix is
// a normal outcome, not an error: the result always contains at least the
// root, which falls back to the whole word with a generic low-confidence
// gloss when nothing matches.
func Analyze(word string) (domain.MorphemeBreakdown, error) {
	normalized := domain.NormalizeWord(word)
	if normalized == "" {
		return domain.MorphemeBreakdown{}, domain.NewValidationError("word", "required")
	}

	b := domain.MorphemeBreakdown{
		Root: domain.Morpheme{
			Text:    normalized,
			Meaning: "core meaning of \"" + normalized + "\"",
		},
		Complexity: domain.ComplexitySimple,
	}

	if len(normalized) < minWordLen {
		return b, nil
	}

	remainder := normalized

	if p, ok := lexicon.MatchPrefix(normalized, minRemainder); ok {
		pos := len(p.Text)
		b.Prefix = &domain.Morpheme{
			Text:             p.Text,
			Meaning:          p.Meaning,
			Origin:           p.Origin,
			BoundaryPosition: &pos,
		}
		remainder = normalized[len(p.Text):]
	}

	// Suffix is matched independently against the word with any matched
	// prefix removed.
	if s, ok := lexicon.MatchSuffix(remainder, minRemainder); ok {
		pos := len(normalized) - len(s.Text)
		b.Suffix = &domain.Morpheme{
			Text:             s.Text,
			Meaning:          s.Meaning,
			Origin:           s.Origin,
			BoundaryPosition: &pos,
		}
		remainder = remainder[:len(remainder)-len(s.Text)]
	}

	b.Root.Text = remainder
	b.Root.Meaning = "core meaning of \"" + remainder + "\""

	switch {
	case b.Prefix != nil && b.Suffix != nil:
		b.Complexity = domain.ComplexityComplex
	case b.Prefix != nil || b.Suffix != nil:
		b.Complexity = domain.ComplexityCompound
	case len(normalized) > compoundMinLen-1:
		if split := bisect(normalized); split != nil {
			b.Compound = split
			b.Complexity = domain.ComplexityCompound
		}
	}

	return b, nil
}

// bisect suggests a two-part compound reading by splitting near the
// midpoint, preferring a boundary that does not break a vowel pair.
// Returns nil when no reasonable split exists.
func bisect(word string) *domain.CompoundSplit {
	mid := len(word) / 2

	best := -1
	for _, at := range []int{mid, mid - 1, mid + 1} {
		if at < minRemainder || len(word)-at < minRemainder {
			continue
		}
		if isVowel(word[at-1]) && isVowel(word[at]) {
			continue
		}
		best = at
		break
	}
	if best == -1 {
		if mid < minRemainder || len(word)-mid < minRemainder {
			return nil
		}
		best = mid
	}

	first, second := word[:best], word[best:]
	return &domain.CompoundSplit{
		First:  domain.Morpheme{Text: first, Meaning: "possibly related to \"" + first + "\""},
		Second: domain.Morpheme{Text: second, Meaning: "possibly related to \"" + second + "\""},
	}
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}
