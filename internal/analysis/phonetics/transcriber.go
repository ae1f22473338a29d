// Package phonetics derives an approximate pronunciation profile from a
// word's written form: IPA by deterministic character substitution,
// syllable count by vowel-run counting, and a coarse stress class. The
// heuristic IPA is a best-effort placeholder used only when no
// pronunciation oracle entry exists; the two sources are never blended.
package phonetics

import (
	"strings"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// Ordered digraph substitutions; applied before single letters so "th"
// becomes θ rather than t+h.
var digraphs = []struct{ from, to string }{
	{"tch", "tʃ"},
	{"ch", "tʃ"},
	{"sh", "ʃ"},
	{"th", "θ"},
	{"ph", "f"},
	{"ng", "ŋ"},
	{"qu", "kw"},
	{"ee", "iː"},
	{"oo", "uː"},
	{"ou", "aʊ"},
	{"ay", "eɪ"},
	{"ai", "eɪ"},
}

var singles = map[rune]string{
	'a': "æ",
	'e': "ɛ",
	'i': "ɪ",
	'o': "ɒ",
	'u': "ʌ",
	'y': "i",
	'c': "k",
	'j': "dʒ",
	'x': "ks",
}

// Transcribe derives heuristic phonetic data from word's written form.
func Transcribe(word string) domain.PhoneticData {
	w := domain.NormalizeWord(word)
	count := SyllableCount(w)
	return domain.PhoneticData{
		IPA:           "/" + approximateIPA(w) + "/",
		SyllableCount: count,
		Stress:        stressFor(count),
		Source:        domain.SourceHeuristic,
	}
}

// TranscribeWithIPA builds phonetic data around an oracle-provided
// transcription. The heuristic IPA path is not consulted at all; syllable
// count and stress still come from the written form.
func TranscribeWithIPA(word, ipa string) domain.PhoneticData {
	w := domain.NormalizeWord(word)
	count := SyllableCount(w)
	return domain.PhoneticData{
		IPA:           ipa,
		SyllableCount: count,
		Stress:        stressFor(count),
		Source:        domain.SourceOracle,
	}
}

// SyllableCount counts maximal vowel-letter runs, minimum 1.
func SyllableCount(word string) int {
	count := 0
	inRun := false
	for _, r := range strings.ToLower(word) {
		if strings.ContainsRune("aeiouy", r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

func stressFor(syllables int) domain.StressPattern {
	switch {
	case syllables <= 1:
		return domain.StressMonosyllabic
	case syllables == 2:
		return domain.StressTrochaic
	default:
		return domain.StressComplex
	}
}

func approximateIPA(word string) string {
	s := strings.ToLower(word)
	for _, d := range digraphs {
		s = strings.ReplaceAll(s, d.from, d.to)
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sub, ok := singles[r]; ok {
			b.WriteString(sub)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
