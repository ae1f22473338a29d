package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// Row is one parsed CSV record.
type Row struct {
	LineNumber int // 1-based, header included
	Word       string
	Definition string
}

// RowError describes why one CSV line was rejected.
type RowError struct {
	LineNumber int    `json:"line_number"`
	Text       string `json:"text,omitempty"`
	Reason     string `json:"reason"`
}

// Column header aliases, checked case-insensitively.
var (
	wordAliases       = []string{"word", "term", "vocabulary", "name"}
	definitionAliases = []string{"definition", "meaning", "description"}
)

// ParseCSV reads a vocabulary CSV. The file must have a header row with
// a recognizable word column; a definition column is optional. Lines
// with an empty or unnormalizable word are reported as row errors, not
// parse failures.
func ParseCSV(r io.Reader) ([]Row, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, domain.NewValidationError("file", "empty file")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	wordCol := findColumn(header, wordAliases)
	if wordCol < 0 {
		return nil, nil, domain.NewValidationError("file",
			"no word column found (expected one of: "+strings.Join(wordAliases, ", ")+")")
	}
	defCol := findColumn(header, definitionAliases)

	var (
		rows    []Row
		rowErrs []RowError
	)
	line := 1 // header consumed
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{LineNumber: line, Reason: err.Error()})
			continue
		}
		if wordCol >= len(record) {
			rowErrs = append(rowErrs, RowError{LineNumber: line, Reason: "missing word column"})
			continue
		}

		raw := record[wordCol]
		word := domain.NormalizeWord(raw)
		if word == "" {
			rowErrs = append(rowErrs, RowError{LineNumber: line, Text: raw, Reason: "empty word after normalization"})
			continue
		}

		definition := ""
		if defCol >= 0 && defCol < len(record) {
			definition = strings.TrimSpace(record[defCol])
		}

		rows = append(rows, Row{LineNumber: line, Word: word, Definition: definition})
	}

	return rows, rowErrs, nil
}

func findColumn(header []string, aliases []string) int {
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		for _, alias := range aliases {
			if col == alias {
				return i
			}
		}
	}
	return -1
}
