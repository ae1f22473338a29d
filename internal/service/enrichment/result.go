package enrichment

// ComponentsFound records which analysis stages produced data during a
// pass.
type ComponentsFound struct {
	Morphological bool `json:"morphological"`
	Etymological  bool `json:"etymological"`
	Phonological  bool `json:"phonological"`
	Semantic      bool `json:"semantic"`
	Syntactic     bool `json:"syntactic"`
	Definitions   bool `json:"definitions"`
}

// Count returns the number of stages that produced data.
func (c ComponentsFound) Count() int {
	n := 0
	for _, found := range []bool{c.Morphological, c.Etymological, c.Phonological, c.Semantic, c.Syntactic, c.Definitions} {
		if found {
			n++
		}
	}
	return n
}

// WordOutcome is the per-word result of an enrichment pass.
type WordOutcome struct {
	Word              string          `json:"word"`
	Success           bool            `json:"success"`
	QualityScore      int             `json:"quality_score"`
	CompletenessScore int             `json:"completeness_score"`
	Components        ComponentsFound `json:"components_found"`
	Error             string          `json:"error,omitempty"`
}

// BatchProgress is reported to the progress callback after every word
// in a batch pass settles.
type BatchProgress struct {
	Processed   int
	Successful  int
	Failed      int
	Total       int
	CurrentWord string
}

// ProgressFunc receives batch progress updates. It is called
// sequentially; implementations need not synchronize.
type ProgressFunc func(BatchProgress)
