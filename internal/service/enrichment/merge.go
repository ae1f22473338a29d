package enrichment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vocabguru/vocabguru-backend/internal/analysis/phonetics"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/provider"
)

// applyStageOutputs folds settled stage results into the profile. Each
// stage writes only the fields it owns: morphology owns the morpheme
// breakdown and word forms, phonetics owns the phonetic data, and so on.
// Scalar fields are filled, never overwritten, except where an oracle
// result supersedes an earlier heuristic one. List fields merge through
// domain.MergeStrings, so re-running a pass is idempotent.
func (s *Service) applyStageOutputs(profile *domain.WordProfile, out *stageOutputs) ComponentsFound {
	var found ComponentsFound

	if out.dictionary != nil {
		s.mergeDictionary(profile, out.dictionary)
		found.Definitions = profile.Definitions.Primary != ""
	}

	if out.morphology != nil {
		profile.MorphemeBreakdown = out.morphology
		s.fillWordForms(profile)
		found.Morphological = true
	}

	if out.etymology != nil {
		mergeEtymology(profile, *out.etymology)
		found.Etymological = profile.Etymology.LanguageOfOrigin != ""
	}

	if phon := s.pickPhonetics(profile, out); phon != nil {
		profile.Phonetics = phon
		found.Phonological = true
	}

	if out.classification != nil {
		cls := out.classification
		if profile.Analysis.SemanticField == "" {
			profile.Analysis.SemanticField = cls.SemanticField
		}
		if profile.Analysis.Difficulty == "" {
			profile.Analysis.Difficulty = cls.Difficulty
		}
		if profile.Analysis.FrequencyRank == 0 {
			profile.Analysis.FrequencyRank = cls.FrequencyRank
		}
		found.Semantic = true
	}

	if out.syntax != nil {
		p := out.syntax
		if profile.Analysis.Register == "" {
			profile.Analysis.Register = p.RegisterLevel
		}
		if profile.Analysis.ContextualUsage == "" {
			profile.Analysis.ContextualUsage = p.ArgumentStructure
		}
		profile.Analysis.Collocations = domain.MergeStrings(profile.Analysis.Collocations, p.Collocations)
		profile.Analysis.UsagePatterns = domain.MergeStrings(profile.Analysis.UsagePatterns, p.Patterns)
		found.Syntactic = len(p.Collocations) > 0 || len(p.Patterns) > 0
	}

	if len(out.relationships) > 0 {
		for _, rel := range out.relationships {
			switch rel.Type {
			case domain.RelationSynonym:
				profile.Analysis.Synonyms = domain.MergeStrings(profile.Analysis.Synonyms, []string{rel.TargetWord})
			case domain.RelationAntonym:
				profile.Analysis.Antonyms = domain.MergeStrings(profile.Analysis.Antonyms, []string{rel.TargetWord})
			}
		}
		found.Semantic = true
	}

	if len(out.examples) > 0 && profile.Analysis.Example == "" {
		profile.Analysis.Example = out.examples[0].Sentence
	}

	return found
}

// mergeDictionary folds an external dictionary result into the
// definitions and parts of speech. The first sense becomes the primary
// definition when none exists; every sense lands in the standard list.
func (s *Service) mergeDictionary(profile *domain.WordProfile, res *provider.DictionaryResult) {
	var standard []string
	for _, sense := range res.Senses {
		def := strings.TrimSpace(sense.Definition)
		if def == "" {
			continue
		}
		standard = append(standard, def)

		if sense.PartOfSpeech != nil {
			pos := domain.ParsePartOfSpeech(*sense.PartOfSpeech)
			if !containsPOS(profile.Analysis.PartsOfSpeech, pos) {
				profile.Analysis.PartsOfSpeech = append(profile.Analysis.PartsOfSpeech, pos)
			}
		}
	}

	if profile.Definitions.Primary == "" && len(standard) > 0 {
		profile.Definitions.Primary = standard[0]
	}
	profile.Definitions.Standard = domain.MergeStrings(profile.Definitions.Standard, standard)
}

// pickPhonetics decides which transcription wins. A dictionary
// transcription takes the oracle path and supersedes heuristic data;
// the heuristic result fills in only when nothing better exists. The
// two paths are never blended.
func (s *Service) pickPhonetics(profile *domain.WordProfile, out *stageOutputs) *domain.PhoneticData {
	if out.dictionary != nil {
		for _, p := range out.dictionary.Pronunciations {
			if p.Transcription != nil && *p.Transcription != "" {
				data := phonetics.TranscribeWithIPA(profile.Word, *p.Transcription)
				return &data
			}
		}
	}
	if out.phonetics == nil {
		return nil
	}
	if profile.Phonetics != nil && profile.Phonetics.Source == domain.SourceOracle {
		return nil // keep the stored oracle transcription
	}
	return out.phonetics
}

// mergeEtymology replaces the stored etymology unless that would
// downgrade oracle data to a heuristic guess.
func mergeEtymology(profile *domain.WordProfile, incoming domain.Etymology) {
	if profile.Etymology.Source == domain.SourceOracle && incoming.Source != domain.SourceOracle {
		return
	}
	profile.Etymology = incoming
}

// fillWordForms derives inflected forms from the breakdown and the known
// parts of speech. Existing entries are preserved.
func (s *Service) fillWordForms(profile *domain.WordProfile) {
	word := profile.Word
	if word == "" {
		return
	}
	if profile.WordForms == nil {
		profile.WordForms = make(map[string]string)
	}
	set := func(key, form string) {
		if _, ok := profile.WordForms[key]; !ok && form != "" && form != word {
			profile.WordForms[key] = form
		}
	}

	if b := profile.MorphemeBreakdown; b != nil && (b.Prefix != nil || b.Suffix != nil) {
		set("base", b.Root.Text)
	}
	for _, pos := range profile.Analysis.PartsOfSpeech {
		switch pos {
		case domain.PartOfSpeechNoun:
			set("plural", pluralize(word))
		case domain.PartOfSpeechVerb:
			set("past", pastTense(word))
			set("present_participle", presentParticiple(word))
		case domain.PartOfSpeechAdjective:
			set("adverb", adverbForm(word))
		}
	}
}

// cleanProfile normalizes text fields in place: whitespace is
// compressed, list fields are deduplicated, and empty entries dropped.
func cleanProfile(profile *domain.WordProfile) {
	profile.Definitions.Primary = strings.TrimSpace(profile.Definitions.Primary)
	profile.Definitions.Standard = cleanList(profile.Definitions.Standard)
	profile.Definitions.Extended = cleanList(profile.Definitions.Extended)
	profile.Definitions.Contextual = cleanList(profile.Definitions.Contextual)
	profile.Definitions.Specialized = cleanList(profile.Definitions.Specialized)

	profile.Analysis.Synonyms = cleanList(profile.Analysis.Synonyms)
	profile.Analysis.Antonyms = cleanList(profile.Analysis.Antonyms)
	profile.Analysis.Collocations = cleanList(profile.Analysis.Collocations)
	profile.Analysis.UsagePatterns = cleanList(profile.Analysis.UsagePatterns)
	profile.Analysis.ContextualUsage = strings.TrimSpace(profile.Analysis.ContextualUsage)
	profile.Analysis.Example = strings.TrimSpace(profile.Analysis.Example)

	for key, form := range profile.WordForms {
		form = strings.TrimSpace(form)
		if form == "" {
			delete(profile.WordForms, key)
			continue
		}
		profile.WordForms[key] = form
	}
}

func cleanList(items []string) []string {
	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.Join(strings.Fields(item), " ")
		if item != "" {
			trimmed = append(trimmed, item)
		}
	}
	return domain.MergeStrings(nil, trimmed)
}

// mergeRelationships combines stored and freshly suggested edges,
// deduplicating on (target, type). For duplicates the stored edge wins
// so IDs and timestamps stay stable.
func mergeRelationships(existing, incoming []domain.WordRelationship) []domain.WordRelationship {
	type key struct {
		target string
		typ    domain.RelationType
	}
	seen := make(map[key]struct{}, len(existing))
	merged := make([]domain.WordRelationship, 0, len(existing)+len(incoming))
	for _, rel := range existing {
		k := key{domain.NormalizeWord(rel.TargetWord), rel.Type}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, rel)
	}
	for _, rel := range incoming {
		k := key{domain.NormalizeWord(rel.TargetWord), rel.Type}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, rel)
	}
	return merged
}

// buildUsageContexts converts generated examples to usage contexts,
// skipping sentences already stored (compared via NormalizeText).
func buildUsageContexts(wordID uuid.UUID, existing []domain.UsageContext, examples []provider.ExampleResult, now time.Time) []domain.UsageContext {
	seen := make(map[string]struct{}, len(existing))
	out := make([]domain.UsageContext, 0, len(existing)+len(examples))
	for _, u := range existing {
		key := domain.NormalizeText(u.Sentence)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, u)
	}
	for _, ex := range examples {
		sentence := strings.TrimSpace(ex.Sentence)
		if sentence == "" {
			continue
		}
		key := domain.NormalizeText(sentence)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, domain.UsageContext{
			ID:        uuid.New(),
			WordID:    wordID,
			Sentence:  sentence,
			Context:   ex.Context,
			Source:    domain.SourceOracle,
			CreatedAt: now,
		})
	}
	return out
}

func containsPOS(list []domain.PartOfSpeech, pos domain.PartOfSpeech) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}
	return false
}
