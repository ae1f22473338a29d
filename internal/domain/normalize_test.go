package domain

import "testing"

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "lowercase", input: "Hello", want: "hello"},
		{name: "internal hyphen preserved", input: "well-known", want: "well-known"},
		{name: "internal apostrophe preserved", input: "don't", want: "don't"},
		{name: "trailing hyphen stripped", input: "pre-", want: "pre"},
		{name: "leading apostrophe stripped", input: "'tis", want: "tis"},
		{name: "punctuation stripped", input: "hello!", want: "hello"},
		{name: "quoted word", input: `"preview"`, want: "preview"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "multi token single space", input: "ice   cream", want: "ice cream"},
		{name: "empty string", input: "", want: ""},
		{name: "only punctuation", input: "?!.", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeWord(tt.input); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim and lowercase", input: "  Hello World  ", want: "hello world"},
		{name: "compress spaces", input: "a   b", want: "a b"},
		{name: "tabs become single space", input: "a\t\tb", want: "a b"},
		{name: "punctuation preserved", input: "very, thorough", want: "very, thorough"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
