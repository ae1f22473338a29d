package enrichment

import "github.com/vocabguru/vocabguru-backend/internal/domain"

// Score weights. Base fields contribute up to 40 points; each analysis
// dimension adds a capped contribution on top, for a maximum of 100.
const (
	basePointsPerField = 10 // word, primary definition, origin, part of speech

	morphologyCap = 15
	phoneticsCap  = 10
	semanticsCap  = 15
	etymologyCap  = 10
	syntaxCap     = 10

	maxQuality = 100
)

// ScoreBreakdown itemizes the quality score per dimension.
type ScoreBreakdown struct {
	Base       int `json:"base"`
	Morphology int `json:"morphology"`
	Phonetics  int `json:"phonetics"`
	Semantics  int `json:"semantics"`
	Etymology  int `json:"etymology"`
	Syntax     int `json:"syntax"`
}

// Total sums the breakdown, capped at the maximum quality score.
func (b ScoreBreakdown) Total() int {
	total := b.Base + b.Morphology + b.Phonetics + b.Semantics + b.Etymology + b.Syntax
	if total > maxQuality {
		total = maxQuality
	}
	return total
}

// Score computes the quality and completeness scores for a profile.
// It is a pure function of the profile's field state: identical fields
// always yield identical scores, and the scores are persisted only
// together with the fields that produced them.
func Score(profile *domain.WordProfile) (quality, completeness int, breakdown ScoreBreakdown) {
	breakdown.Base = scoreBase(profile)
	breakdown.Morphology = scoreMorphology(profile)
	breakdown.Phonetics = scorePhonetics(profile)
	breakdown.Semantics = scoreSemantics(profile)
	breakdown.Etymology = scoreEtymology(profile)
	breakdown.Syntax = scoreSyntax(profile)
	return breakdown.Total(), scoreCompleteness(profile), breakdown
}

func scoreBase(p *domain.WordProfile) int {
	score := 0
	if p.Word != "" {
		score += basePointsPerField
	}
	if p.Definitions.Primary != "" {
		score += basePointsPerField
	}
	if p.Etymology.LanguageOfOrigin != "" {
		score += basePointsPerField
	}
	if len(p.Analysis.PartsOfSpeech) > 0 {
		score += basePointsPerField
	}
	return score
}

func scoreMorphology(p *domain.WordProfile) int {
	b := p.MorphemeBreakdown
	if b == nil {
		return 0
	}
	score := 0
	if b.Root.Text != "" {
		score += 5
	}
	if b.Prefix != nil {
		score += 5
	}
	if b.Suffix != nil {
		score += 5
	}
	if score > morphologyCap {
		score = morphologyCap
	}
	return score
}

func scorePhonetics(p *domain.WordProfile) int {
	ph := p.Phonetics
	if ph == nil {
		return 0
	}
	score := 0
	if ph.IPA != "" {
		score += 5
	}
	if ph.SyllableCount > 0 {
		score += 5
	}
	if score > phoneticsCap {
		score = phoneticsCap
	}
	return score
}

func scoreSemantics(p *domain.WordProfile) int {
	score := 0
	if p.Analysis.SemanticField != "" {
		score += 5
	}
	if len(p.Analysis.Synonyms) > 0 {
		score += 5
	}
	if len(p.Analysis.Antonyms) > 0 {
		score += 5
	}
	if score > semanticsCap {
		score = semanticsCap
	}
	return score
}

func scoreEtymology(p *domain.WordProfile) int {
	score := 0
	if len(p.Etymology.HistoricalForms) > 0 {
		score += 5
	}
	if p.Etymology.LanguageFamily != "" {
		score += 5
	}
	if score > etymologyCap {
		score = etymologyCap
	}
	return score
}

func scoreSyntax(p *domain.WordProfile) int {
	score := 0
	if len(p.Analysis.Collocations) > 0 {
		score += 5
	}
	if len(p.Analysis.UsagePatterns) > 0 || p.Analysis.Example != "" {
		score += 5
	}
	if score > syntaxCap {
		score = syntaxCap
	}
	return score
}

// scoreCompleteness reports the fraction of essential profile facets
// present, as a percentage.
func scoreCompleteness(p *domain.WordProfile) int {
	facets := []bool{
		p.Word != "",
		p.Definitions.Primary != "",
		p.Etymology.LanguageOfOrigin != "",
		len(p.Analysis.PartsOfSpeech) > 0,
		p.MorphemeBreakdown != nil,
		p.Phonetics != nil,
		p.Analysis.SemanticField != "",
		len(p.Etymology.HistoricalForms) > 0,
		len(p.Analysis.Collocations) > 0,
	}
	present := 0
	for _, ok := range facets {
		if ok {
			present++
		}
	}
	return present * 100 / len(facets)
}
