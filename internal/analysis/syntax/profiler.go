// Package syntax derives part-of-speech-driven usage patterns for a word:
// collocation templates, register level, and argument structure. This
// stage never fails; an unrecognized part of speech yields an empty
// pattern set.
package syntax

import (
	"strings"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// Profile is the syntactic usage profile of a word.
type Profile struct {
	Collocations      []string
	RegisterLevel     string
	ArgumentStructure string
	Patterns          []string
}

// Collocation and pattern templates per part-of-speech bucket; "{word}"
// is replaced by the surface form.
var buckets = map[domain.PartOfSpeech]struct {
	collocations []string
	argument     string
	patterns     []string
}{
	domain.PartOfSpeechNoun: {
		collocations: []string{"the {word}", "a {word}", "{word} of"},
		argument:     "head of noun phrase",
		patterns:     []string{"determiner + {word}", "{word} + prepositional phrase"},
	},
	domain.PartOfSpeechVerb: {
		collocations: []string{"to {word}", "{word} the", "will {word}"},
		argument:     "subject + {word} + object",
		patterns:     []string{"auxiliary + {word}", "{word} + direct object"},
	},
	domain.PartOfSpeechAdjective: {
		collocations: []string{"very {word}", "{word} enough", "more {word} than"},
		argument:     "modifier of noun phrase",
		patterns:     []string{"{word} + noun", "copula + {word}"},
	},
	domain.PartOfSpeechAdverb: {
		collocations: []string{"{word} done", "quite {word}"},
		argument:     "modifier of verb phrase",
		patterns:     []string{"verb + {word}", "{word} + adjective"},
	},
}

// Register thresholds on surface length, the same style of crude proxy as
// semantic difficulty.
const (
	informalMaxLen = 5
	neutralMaxLen  = 8
)

// Analyze profiles word for the given part of speech. An unknown or empty
// part of speech produces a profile with register only and no patterns.
func Analyze(word string, pos domain.PartOfSpeech) Profile {
	w := domain.NormalizeWord(word)
	p := Profile{RegisterLevel: registerFor(w)}

	bucket, ok := buckets[pos]
	if !ok {
		return p
	}

	p.ArgumentStructure = expand(bucket.argument, w)
	for _, c := range bucket.collocations {
		p.Collocations = append(p.Collocations, expand(c, w))
	}
	for _, pat := range bucket.patterns {
		p.Patterns = append(p.Patterns, expand(pat, w))
	}
	return p
}

func registerFor(word string) string {
	switch n := len(word); {
	case n <= informalMaxLen:
		return "informal"
	case n <= neutralMaxLen:
		return "neutral"
	default:
		return "formal"
	}
}

func expand(template, word string) string {
	return strings.ReplaceAll(template, "{word}", word)
}
