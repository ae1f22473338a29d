package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a word for storage and lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - strips punctuation, keeping hyphens and apostrophes only when they
//     sit between letters ("well-known", "don't"; a trailing "word-" loses
//     its hyphen)
//
// The result is the natural key of a WordProfile.
func NormalizeWord(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}

	runes := []rune(word)
	var b strings.Builder
	b.Grow(len(word))
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '\'':
			// Internal only: a letter on both sides.
			if i > 0 && i < len(runes)-1 &&
				unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
				b.WriteRune(r)
			}
		case unicode.IsSpace(r):
			// Multi-token input ("ice cream") keeps a single space.
			if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
				b.WriteRune(' ')
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeText prepares free text for comparison: trims, lowercases,
// and compresses runs of spaces into one. Punctuation is preserved.
// Used as the equality key when deduplicating definition and synonym lists.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
		} else {
			prevSpace = false
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
