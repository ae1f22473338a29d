package domain

import "testing"

func TestEnrichmentStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []EnrichmentStatus{
		EnrichmentStatusPending,
		EnrichmentStatusInProgress,
		EnrichmentStatusCompleted,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if EnrichmentStatus("done").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestParsePartOfSpeech(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  PartOfSpeech
	}{
		{"noun", PartOfSpeechNoun},
		{"Verb", PartOfSpeechVerb},
		{"  ADJECTIVE ", PartOfSpeechAdjective},
		{"exclamation", PartOfSpeechInterjection},
		{"particle", PartOfSpeechOther},
		{"", PartOfSpeechOther},
	}
	for _, tt := range tests {
		if got := ParsePartOfSpeech(tt.input); got != tt.want {
			t.Errorf("ParsePartOfSpeech(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestRelationType_IsValid(t *testing.T) {
	t.Parallel()

	for _, r := range []RelationType{RelationSynonym, RelationAntonym, RelationHypernym, RelationHyponym, RelationRelated} {
		if !r.IsValid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if RelationType("MERONYM").IsValid() {
		t.Error("unknown relation type should be invalid")
	}
}
