package enrichment

// Options selects which pipeline stages run during a pass. The zero
// value disables everything; use DefaultOptions for a full pass.
type Options struct {
	// CleanData normalizes text fields and deduplicates string lists
	// already present on the profile.
	CleanData bool `json:"clean_data"`
	// FillMissingFields runs the heuristic stages (morphology,
	// phonetics, classification, syntax) and fills fields they own.
	FillMissingFields bool `json:"fill_missing_fields"`
	// EnhanceDefinitions consults the dictionary oracle for
	// definitions, parts of speech, and transcriptions.
	EnhanceDefinitions bool `json:"enhance_definitions"`
	// ImproveEtymology runs the etymology stage.
	ImproveEtymology bool `json:"improve_etymology"`
	// AddUsageExamples generates example sentences via the example
	// oracle and stores them as usage contexts.
	AddUsageExamples bool `json:"add_usage_examples"`
	// GenerateSynonyms asks the relationship oracle for semantic
	// edges (synonyms, antonyms, and related words).
	GenerateSynonyms bool `json:"generate_synonyms"`
}

// DefaultOptions enables every stage.
func DefaultOptions() Options {
	return Options{
		CleanData:          true,
		FillMissingFields:  true,
		EnhanceDefinitions: true,
		ImproveEtymology:   true,
		AddUsageExamples:   true,
		GenerateSynonyms:   true,
	}
}

// IsZero reports whether no stage is enabled.
func (o Options) IsZero() bool {
	return o == Options{}
}
