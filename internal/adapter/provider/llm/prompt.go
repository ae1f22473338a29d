package llm

import (
	"fmt"
	"strings"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// buildEtymologyPrompt creates the prompt for an etymology query.
func buildEtymologyPrompt(word string) string {
	return fmt.Sprintf(`You are a professional historical linguist.

Trace the etymology of the English word "%s".

Output ONLY a valid JSON object matching this exact schema:
{
  "language_of_origin": "<source language, e.g. Latin, Old English>",
  "language_family": "<family and branch, e.g. Indo-European (Italic)>",
  "word_evolution": "<one or two sentences describing how the form and meaning changed>",
  "cultural_variations": "<notable regional or cultural usage differences, or empty>",
  "historical_forms": [
    {"period": "<e.g. Latin, Old French, Middle English>", "form": "<attested form>", "meaning": "<meaning at that stage>"}
  ]
}

Rules:
- Order historical_forms oldest first
- Use attested forms only; if the etymology is uncertain, say so in word_evolution rather than inventing forms
- Output ONLY the JSON, no markdown, no explanations`, word)
}

// buildRelationshipPrompt creates the prompt for a relationship query.
func buildRelationshipPrompt(word string) string {
	return fmt.Sprintf(`You are a professional lexicographer.

Suggest semantic relationships for the English word "%s".

Output ONLY a valid JSON object matching this exact schema:
{
  "relationships": [
    {"target_word": "<related word>", "type": "<SYNONYM|ANTONYM|HYPERNYM|HYPONYM|RELATED>", "strength": <0.0-1.0>, "confidence": <0.0-1.0>}
  ]
}

Rules:
- Suggest 3-8 relationships, strongest first
- strength measures how close the relationship is; confidence measures how certain you are it holds
- Use lowercase single words or short phrases as target_word
- Never suggest the word itself
- Output ONLY the JSON, no markdown, no explanations`, word)
}

// buildExamplePrompt creates the prompt for a usage-example query.
func buildExamplePrompt(word string, pos domain.PartOfSpeech) string {
	return fmt.Sprintf(`You are a professional English teacher.

Write natural usage examples for the word "%s" used as a %s.

Output ONLY a valid JSON object matching this exact schema:
{
  "examples": [
    {"sentence": "<natural English sentence using the word>", "context": "<register or situation, e.g. formal writing, casual conversation>"}
  ]
}

Rules:
- Write 2-4 sentences suitable for B1+ learners
- Each sentence must contain the word "%s" in the requested part of speech
- Vary register and situation across examples
- Output ONLY the JSON, no markdown, no explanations`, word, strings.ToLower(pos.String()), word)
}
