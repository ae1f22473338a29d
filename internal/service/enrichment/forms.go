package enrichment

import "strings"

// Regular English inflection rules. Irregular forms are out of reach
// without a corpus, so the derived forms are best-effort and only fill
// empty slots.

func pluralize(word string) string {
	switch {
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"), strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

func pastTense(word string) string {
	switch {
	case strings.HasSuffix(word, "e"):
		return word + "d"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ied"
	default:
		return word + "ed"
	}
}

func presentParticiple(word string) string {
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "ee") && len(word) > 2 {
		return word[:len(word)-1] + "ing"
	}
	return word + "ing"
}

func adverbForm(word string) string {
	switch {
	case strings.HasSuffix(word, "ly"):
		return word
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ily"
	case strings.HasSuffix(word, "ic"):
		return word + "ally"
	default:
		return word + "ly"
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
