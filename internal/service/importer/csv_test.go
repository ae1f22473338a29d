package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

func TestParseCSV_StandardHeader(t *testing.T) {
	t.Parallel()

	input := "word,definition\npreview,an advance showing\nserendipity,a happy accident\n"

	rows, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{LineNumber: 2, Word: "preview", Definition: "an advance showing"}, rows[0])
	assert.Equal(t, Row{LineNumber: 3, Word: "serendipity", Definition: "a happy accident"}, rows[1])
}

func TestParseCSV_HeaderAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"term and meaning", "term,meaning\npreview,an advance showing\n"},
		{"vocabulary and description", "vocabulary,description\npreview,an advance showing\n"},
		{"name only", "name\npreview\n"},
		{"mixed case", "Word,Definition\npreview,an advance showing\n"},
		{"extra columns", "id,word,notes,definition\n1,preview,x,an advance showing\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows, rowErrs, err := ParseCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Empty(t, rowErrs)
			require.Len(t, rows, 1)
			assert.Equal(t, "preview", rows[0].Word)
		})
	}
}

func TestParseCSV_NoWordColumn(t *testing.T) {
	t.Parallel()

	_, _, err := ParseCSV(strings.NewReader("id,notes\n1,x\n"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseCSV_EmptyFile(t *testing.T) {
	t.Parallel()

	_, _, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseCSV_BadRowsReported(t *testing.T) {
	t.Parallel()

	input := "word,definition\n,missing word\npreview,ok\n!!!,junk word\n"

	rows, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "preview", rows[0].Word)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 2, rowErrs[0].LineNumber)
	assert.Equal(t, 4, rowErrs[1].LineNumber)
}

func TestParseCSV_MissingDefinitionColumnTolerated(t *testing.T) {
	t.Parallel()

	rows, rowErrs, err := ParseCSV(strings.NewReader("word\npreview\n"))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Definition)
}

func TestParseCSV_NormalizesWords(t *testing.T) {
	t.Parallel()

	rows, _, err := ParseCSV(strings.NewReader("word\n  Pre-View  \n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pre-view", rows[0].Word)
}
