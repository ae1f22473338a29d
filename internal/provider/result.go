// Package provider defines the structured results returned by external
// oracle adapters. Every oracle is optional and potentially unreliable;
// the enrichment pipeline must function heuristic-only with none
// configured.
package provider

// DictionaryResult is the structured result from a dictionary API oracle.
type DictionaryResult struct {
	Word           string
	Senses         []SenseResult
	Pronunciations []PronunciationResult
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition   string
	PartOfSpeech *string
	Examples     []string
}

// PronunciationResult represents pronunciation data from an external
// dictionary.
type PronunciationResult struct {
	Transcription *string
	AudioURL      *string
	Region        *string
}

// EtymologyResult is an authoritative etymology from an oracle.
type EtymologyResult struct {
	LanguageOfOrigin   string
	LanguageFamily     string
	WordEvolution      string
	CulturalVariations string
	HistoricalForms    []HistoricalFormResult
}

// HistoricalFormResult is one attested form in an etymology chain,
// ordered oldest first.
type HistoricalFormResult struct {
	Period  string
	Form    string
	Meaning string
}

// RelationshipResult is one suggested semantic edge from a relationship
// oracle. Strength and Confidence are in [0,1].
type RelationshipResult struct {
	TargetWord string
	Type       string
	Strength   float64
	Confidence float64
}

// ExampleResult is one generated usage example.
type ExampleResult struct {
	Sentence string
	Context  string
}
