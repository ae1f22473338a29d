package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	Total    int        `json:"total"`
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors,omitempty"`
}

// Import parses a vocabulary CSV and creates pending word profiles for
// every new word. Existing profiles are never overwritten: a duplicate
// word is skipped, though an imported definition fills an empty primary
// definition slot. Writes happen in per-chunk transactions; a failed
// chunk rolls back alone and is reported per-line.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, rowErrs, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	if len(rows) > s.cfg.MaxRows {
		return nil, domain.NewValidationError("file",
			fmt.Sprintf("too many rows: %d (limit %d)", len(rows), s.cfg.MaxRows))
	}

	result := &ImportResult{
		Total:   len(rows) + len(rowErrs),
		Skipped: len(rowErrs),
		Errors:  rowErrs,
	}
	seen := make(map[string]bool)

	chunkSize := s.cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 50
	}

	for chunkStart := 0; chunkStart < len(rows); chunkStart += chunkSize {
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > len(rows) {
			chunkEnd = len(rows)
		}
		chunk := rows[chunkStart:chunkEnd]

		var (
			chunkImported int
			chunkSkipped  int
			chunkErrors   []RowError
			chunkSeen     []string
		)

		txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, row := range chunk {
				if seen[row.Word] {
					chunkErrors = append(chunkErrors, RowError{
						LineNumber: row.LineNumber,
						Text:       row.Word,
						Reason:     "duplicate within import",
					})
					chunkSkipped++
					continue
				}
				seen[row.Word] = true
				chunkSeen = append(chunkSeen, row.Word)

				id := uuid.New()
				profile, err := s.profiles.GetOrCreate(txCtx, id, row.Word)
				if err != nil {
					return fmt.Errorf("get or create %q: %w", row.Word, err)
				}

				if profile.ID != id {
					// Already existed. Fill an empty primary definition,
					// otherwise leave the profile untouched.
					if profile.Definitions.Primary == "" && row.Definition != "" {
						profile.Definitions.Primary = row.Definition
						if err := s.profiles.Update(txCtx, &profile); err != nil {
							return fmt.Errorf("update %q: %w", row.Word, err)
						}
					}
					chunkErrors = append(chunkErrors, RowError{
						LineNumber: row.LineNumber,
						Text:       row.Word,
						Reason:     "word already exists",
					})
					chunkSkipped++
					continue
				}

				profile.Definitions.Primary = row.Definition
				if profile.Definitions.Primary == "" {
					profile.Definitions.Primary = placeholderDefinition(row.Word)
				}
				profile.EnrichmentStatus = domain.EnrichmentStatusPending
				if err := s.profiles.Update(txCtx, &profile); err != nil {
					return fmt.Errorf("update %q: %w", row.Word, err)
				}
				chunkImported++
			}
			return nil
		})

		if txErr != nil {
			// The whole chunk rolled back; forget its dedup marks.
			for _, word := range chunkSeen {
				delete(seen, word)
			}
			for _, row := range chunk {
				result.Errors = append(result.Errors, RowError{
					LineNumber: row.LineNumber,
					Text:       row.Word,
					Reason:     "chunk transaction failed: " + txErr.Error(),
				})
			}
			result.Skipped += len(chunk)
			continue
		}

		result.Imported += chunkImported
		result.Skipped += chunkSkipped
		result.Errors = append(result.Errors, chunkErrors...)
	}

	s.log.Info("import finished",
		"total", result.Total,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

func placeholderDefinition(word string) string {
	return fmt.Sprintf("Definition for %q pending enrichment.", word)
}
