package llm

// Response payloads the model is instructed to produce. Field tags
// mirror the schemas embedded in the prompts.

type etymologyResponse struct {
	LanguageOfOrigin   string                   `json:"language_of_origin"`
	LanguageFamily     string                   `json:"language_family"`
	WordEvolution      string                   `json:"word_evolution"`
	CulturalVariations string                   `json:"cultural_variations"`
	HistoricalForms    []historicalFormResponse `json:"historical_forms"`
}

type historicalFormResponse struct {
	Period  string `json:"period"`
	Form    string `json:"form"`
	Meaning string `json:"meaning"`
}

type relationshipResponse struct {
	Relationships []relationshipEdgeResponse `json:"relationships"`
}

type relationshipEdgeResponse struct {
	TargetWord string  `json:"target_word"`
	Type       string  `json:"type"`
	Strength   float64 `json:"strength"`
	Confidence float64 `json:"confidence"`
}

type exampleResponse struct {
	Examples []exampleItemResponse `json:"examples"`
}

type exampleItemResponse struct {
	Sentence string `json:"sentence"`
	Context  string `json:"context"`
}
