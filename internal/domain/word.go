package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordProfile is the persisted record representing everything known about
// one vocabulary word. The normalized Word is the sole natural key; no two
// profiles share the same normalized word.
type WordProfile struct {
	ID   uuid.UUID
	Word string // normalized via NormalizeWord

	MorphemeBreakdown *MorphemeBreakdown
	Etymology         Etymology
	Phonetics         *PhoneticData
	Definitions       Definitions
	WordForms         map[string]string
	Analysis          WordAnalysis

	// QualityScore and CompletenessScore are derived and always recomputed
	// together by an enrichment pass; they are never written independently
	// of the field state that produced them.
	QualityScore      int
	CompletenessScore int

	EnrichmentStatus EnrichmentStatus
	LastEnrichmentAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Morpheme is a minimal meaningful word part (prefix, root, or suffix).
type Morpheme struct {
	Text    string `json:"text"`
	Meaning string `json:"meaning"`
	Origin  string `json:"origin,omitempty"`

	// BoundaryPosition is the rune offset in the word where the morpheme
	// ends (prefix) or starts (suffix). When set it must fall within
	// [0, len(word)]. Nil for morphemes without a known boundary.
	BoundaryPosition *int `json:"boundary_position,omitempty"`
}

// MorphemeBreakdown is the prefix/root/suffix decomposition of a word.
// Root is always present; Prefix and Suffix are optional.
type MorphemeBreakdown struct {
	Prefix     *Morpheme      `json:"prefix,omitempty"`
	Root       Morpheme       `json:"root"`
	Suffix     *Morpheme      `json:"suffix,omitempty"`
	Compound   *CompoundSplit `json:"compound,omitempty"`
	Complexity Complexity     `json:"complexity"`
}

// CompoundSplit is a tentative two-part compound reading of a word.
// It is suggested, never asserted: the root still carries the whole word.
type CompoundSplit struct {
	First  Morpheme `json:"first"`
	Second Morpheme `json:"second"`
}

// Components returns all morphemes in surface order. The result always
// contains at least the root.
func (b *MorphemeBreakdown) Components() []Morpheme {
	var out []Morpheme
	if b.Prefix != nil {
		out = append(out, *b.Prefix)
	}
	out = append(out, b.Root)
	if b.Suffix != nil {
		out = append(out, *b.Suffix)
	}
	return out
}

// HistoricalForm is one entry in a word's historical chain, ordered from
// oldest attested/reconstructed form to the modern form.
type HistoricalForm struct {
	Period  string `json:"period"`
	Form    string `json:"form"`
	Meaning string `json:"meaning,omitempty"`
}

// Etymology holds a word's origin data. When Source is SourceHeuristic the
// historical forms are synthetic placeholders derived from the word itself
// and must not be treated as factual.
type Etymology struct {
	LanguageOfOrigin   string           `json:"language_of_origin,omitempty"`
	LanguageFamily     string           `json:"language_family,omitempty"`
	HistoricalForms    []HistoricalForm `json:"historical_forms,omitempty"`
	WordEvolution      string           `json:"word_evolution,omitempty"`
	CulturalVariations string           `json:"cultural_variations,omitempty"`
	Source             DataSource       `json:"source,omitempty"`
}

// PhoneticData is the approximate pronunciation profile of a word.
// IPA comes either from a pronunciation oracle or from the heuristic
// transcriber, never a blend of both (Source records which).
type PhoneticData struct {
	IPA           string        `json:"ipa"`
	SyllableCount int           `json:"syllable_count"`
	Stress        StressPattern `json:"stress"`
	Source        DataSource    `json:"source"`
}

// Definitions groups a word's definitions by kind.
type Definitions struct {
	Primary     string   `json:"primary,omitempty"`
	Standard    []string `json:"standard,omitempty"`
	Extended    []string `json:"extended,omitempty"`
	Contextual  []string `json:"contextual,omitempty"`
	Specialized []string `json:"specialized,omitempty"`
}

// WordAnalysis holds the semantic and syntactic profile of a word.
type WordAnalysis struct {
	PartsOfSpeech []PartOfSpeech `json:"parts_of_speech,omitempty"`
	SemanticField string         `json:"semantic_field,omitempty"`
	Difficulty    string         `json:"difficulty,omitempty"`
	Register      string         `json:"register,omitempty"`
	// FrequencyRank is 0 when unknown; no estimate is fabricated.
	FrequencyRank   int      `json:"frequency_rank,omitempty"`
	ContextualUsage string   `json:"contextual_usage,omitempty"`
	Synonyms        []string `json:"synonyms,omitempty"`
	Antonyms        []string `json:"antonyms,omitempty"`
	Collocations    []string `json:"collocations,omitempty"`
	UsagePatterns   []string `json:"usage_patterns,omitempty"`
	Example         string   `json:"example,omitempty"`
}

// WordRelationship is a semantic edge from a profiled word to a target
// word. The target is free text and may not yet exist as a WordProfile
// (lazy reference, not enforced as a foreign key).
type WordRelationship struct {
	ID         uuid.UUID
	WordID     uuid.UUID
	TargetWord string
	Type       RelationType
	Strength   float64 // [0,1]
	Confidence float64 // [0,1]
	CreatedAt  time.Time
}

// UsageContext is one generated usage example for a word.
type UsageContext struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	Sentence  string
	Context   string // e.g. "academic", "conversational"
	Source    DataSource
	CreatedAt time.Time
}
