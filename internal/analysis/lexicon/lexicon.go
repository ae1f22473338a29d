// Package lexicon holds the static morpheme tables shared by all analysis
// stages: known prefixes and suffixes with their meanings and origins.
// Pure lookup, no side effects; all data is immutable after package init.
package lexicon

import (
	"sort"
	"strings"
)

// Entry is one known affix with its gloss and origin language.
type Entry struct {
	Text    string
	Meaning string
	Origin  string
}

// Declaration order matters: within one length it is the tie-break for
// ambiguous matches.
var prefixes = []Entry{
	{Text: "counter", Meaning: "against, opposite", Origin: "Latin"},
	{Text: "inter", Meaning: "between, among", Origin: "Latin"},
	{Text: "super", Meaning: "above, beyond", Origin: "Latin"},
	{Text: "trans", Meaning: "across, through", Origin: "Latin"},
	{Text: "under", Meaning: "beneath, insufficient", Origin: "Old English"},
	{Text: "anti", Meaning: "against", Origin: "Greek"},
	{Text: "auto", Meaning: "self", Origin: "Greek"},
	{Text: "fore", Meaning: "before, in front", Origin: "Old English"},
	{Text: "over", Meaning: "excessive, above", Origin: "Old English"},
	{Text: "semi", Meaning: "half", Origin: "Latin"},
	{Text: "dis", Meaning: "apart, not", Origin: "Latin"},
	{Text: "mis", Meaning: "wrongly, badly", Origin: "Old English"},
	{Text: "non", Meaning: "not", Origin: "Latin"},
	{Text: "out", Meaning: "beyond, surpassing", Origin: "Old English"},
	{Text: "pre", Meaning: "before", Origin: "Latin"},
	{Text: "sub", Meaning: "under, below", Origin: "Latin"},
	{Text: "co", Meaning: "together, with", Origin: "Latin"},
	{Text: "de", Meaning: "down, away, reverse", Origin: "Latin"},
	{Text: "ex", Meaning: "out of, former", Origin: "Latin"},
	{Text: "im", Meaning: "not, into", Origin: "Latin"},
	{Text: "in", Meaning: "not, into", Origin: "Latin"},
	{Text: "re", Meaning: "again, back", Origin: "Latin"},
	{Text: "un", Meaning: "not, opposite of", Origin: "Old English"},
}

var suffixes = []Entry{
	{Text: "ization", Meaning: "process of making", Origin: "Greek via Latin"},
	{Text: "ation", Meaning: "action or process", Origin: "Latin"},
	{Text: "ology", Meaning: "study of", Origin: "Greek"},
	{Text: "able", Meaning: "capable of being", Origin: "Latin"},
	{Text: "ible", Meaning: "capable of being", Origin: "Latin"},
	{Text: "ment", Meaning: "result or means of", Origin: "Latin"},
	{Text: "ness", Meaning: "state or quality of", Origin: "Old English"},
	{Text: "ship", Meaning: "state, condition, skill", Origin: "Old English"},
	{Text: "sion", Meaning: "action or state", Origin: "Latin"},
	{Text: "tion", Meaning: "action or state", Origin: "Latin"},
	{Text: "ful", Meaning: "full of", Origin: "Old English"},
	{Text: "ish", Meaning: "having the quality of", Origin: "Old English"},
	{Text: "ism", Meaning: "doctrine or practice", Origin: "Greek"},
	{Text: "ist", Meaning: "one who practices", Origin: "Greek"},
	{Text: "ity", Meaning: "state or quality", Origin: "Latin"},
	{Text: "ive", Meaning: "having the nature of", Origin: "Latin"},
	{Text: "ous", Meaning: "full of, characterized by", Origin: "Latin"},
	{Text: "al", Meaning: "relating to", Origin: "Latin"},
	{Text: "er", Meaning: "one who, comparative", Origin: "Old English"},
	{Text: "ic", Meaning: "relating to", Origin: "Greek"},
	{Text: "ly", Meaning: "in the manner of", Origin: "Old English"},
}

// sorted longest-first at init; sort.SliceStable keeps declaration order
// for equal lengths.
func init() {
	sort.SliceStable(prefixes, func(i, j int) bool {
		return len(prefixes[i].Text) > len(prefixes[j].Text)
	})
	sort.SliceStable(suffixes, func(i, j int) bool {
		return len(suffixes[i].Text) > len(suffixes[j].Text)
	})
}

// MatchPrefix returns the longest known prefix of word that leaves a
// remainder of at least minRemainder letters. Case-insensitive.
func MatchPrefix(word string, minRemainder int) (Entry, bool) {
	w := strings.ToLower(word)
	for _, p := range prefixes {
		if len(w) >= len(p.Text)+minRemainder && strings.HasPrefix(w, p.Text) {
			return p, true
		}
	}
	return Entry{}, false
}

// MatchSuffix returns the longest known suffix of word that leaves a
// remainder of at least minRemainder letters. Case-insensitive.
func MatchSuffix(word string, minRemainder int) (Entry, bool) {
	w := strings.ToLower(word)
	for _, s := range suffixes {
		if len(w) >= len(s.Text)+minRemainder && strings.HasSuffix(w, s.Text) {
			return s, true
		}
	}
	return Entry{}, false
}

// LookupPrefix returns the lexicon entry for an exact prefix text.
func LookupPrefix(text string) (Entry, bool) {
	return lookup(prefixes, text)
}

// LookupSuffix returns the lexicon entry for an exact suffix text.
func LookupSuffix(text string) (Entry, bool) {
	return lookup(suffixes, text)
}

func lookup(table []Entry, text string) (Entry, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, e := range table {
		if e.Text == t {
			return e, true
		}
	}
	return Entry{}, false
}
