package domain

// EnrichmentStatus represents the processing state of a word profile.
// A profile moves pending → in_progress → completed; there is no automatic
// retry-to-pending transition, and a failed individual stage does not
// revert the overall status.
type EnrichmentStatus string

const (
	EnrichmentStatusPending    EnrichmentStatus = "pending"
	EnrichmentStatusInProgress EnrichmentStatus = "in_progress"
	EnrichmentStatusCompleted  EnrichmentStatus = "completed"
)

func (s EnrichmentStatus) String() string { return string(s) }

func (s EnrichmentStatus) IsValid() bool {
	switch s {
	case EnrichmentStatusPending, EnrichmentStatusInProgress, EnrichmentStatusCompleted:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective,
		PartOfSpeechAdverb, PartOfSpeechPronoun, PartOfSpeechPreposition,
		PartOfSpeechConjunction, PartOfSpeechInterjection, PartOfSpeechOther:
		return true
	}
	return false
}

// ParsePartOfSpeech maps a free-form POS string (as returned by external
// dictionaries) onto the closed enum. Unrecognized values map to OTHER.
func ParsePartOfSpeech(s string) PartOfSpeech {
	switch NormalizeText(s) {
	case "noun":
		return PartOfSpeechNoun
	case "verb":
		return PartOfSpeechVerb
	case "adjective":
		return PartOfSpeechAdjective
	case "adverb":
		return PartOfSpeechAdverb
	case "pronoun":
		return PartOfSpeechPronoun
	case "preposition":
		return PartOfSpeechPreposition
	case "conjunction":
		return PartOfSpeechConjunction
	case "interjection", "exclamation":
		return PartOfSpeechInterjection
	}
	return PartOfSpeechOther
}

// Complexity classifies a morpheme breakdown by how many parts were found.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"   // bare root
	ComplexityCompound Complexity = "compound" // root plus one affix, or a tentative compound split
	ComplexityComplex  Complexity = "complex"  // prefix and suffix both present
)

func (c Complexity) String() string { return string(c) }

// StressPattern is a coarse prosodic classification by syllable count,
// not a true stress analysis.
type StressPattern string

const (
	StressMonosyllabic StressPattern = "monosyllabic"
	StressTrochaic     StressPattern = "trochaic" // primary stress on the initial syllable
	StressComplex      StressPattern = "complex"
)

func (s StressPattern) String() string { return string(s) }

// RelationType classifies a semantic edge between two words.
type RelationType string

const (
	RelationSynonym  RelationType = "SYNONYM"
	RelationAntonym  RelationType = "ANTONYM"
	RelationHypernym RelationType = "HYPERNYM"
	RelationHyponym  RelationType = "HYPONYM"
	RelationRelated  RelationType = "RELATED"
)

func (r RelationType) String() string { return string(r) }

func (r RelationType) IsValid() bool {
	switch r {
	case RelationSynonym, RelationAntonym, RelationHypernym, RelationHyponym, RelationRelated:
		return true
	}
	return false
}

// DataSource records where a piece of enrichment data came from.
type DataSource string

const (
	SourceHeuristic DataSource = "heuristic"
	SourceOracle    DataSource = "oracle"
	SourceImport    DataSource = "import"
)

func (d DataSource) String() string { return string(d) }
