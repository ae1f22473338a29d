// Package relationship implements the WordRelationship repository using
// PostgreSQL. Edges are replaced wholesale per word: the enrichment
// service owns merging, the repository owns storage.
package relationship

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/vocabguru/vocabguru-backend/internal/adapter/postgres"
	"github.com/vocabguru/vocabguru-backend/internal/domain"
)

const table = "word_relationships"

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{"id", "word_id", "target_word", "relation_type", "strength", "confidence", "created_at"}

// Repo provides relationship persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new relationship repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByWord returns all edges for a word ordered by target word.
// Returns an empty slice (not nil) when the word has no edges.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.WordRelationship, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"word_id": wordID}).
		OrderBy("target_word ASC", "relation_type ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []relationshipRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}

	rels := make([]domain.WordRelationship, 0, len(rows))
	for _, row := range rows {
		rels = append(rels, row.toDomain())
	}
	return rels, nil
}

// ReplaceForWord atomically swaps the stored edge set of a word.
// Meant to run inside a transaction together with the profile update.
func (r *Repo) ReplaceForWord(ctx context.Context, wordID uuid.UUID, rels []domain.WordRelationship) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	delSQL, delArgs, err := qb.Delete(table).Where(squirrel.Eq{"word_id": wordID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := q.Exec(ctx, delSQL, delArgs...); err != nil {
		return mapError(err, wordID)
	}

	if len(rels) == 0 {
		return nil
	}

	insert := qb.Insert(table).Columns(columns...)
	for _, rel := range rels {
		createdAt := rel.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		insert = insert.Values(rel.ID, wordID, rel.TargetWord, string(rel.Type), rel.Strength, rel.Confidence, createdAt)
	}

	insSQL, insArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := q.Exec(ctx, insSQL, insArgs...); err != nil {
		return mapError(err, wordID)
	}
	return nil
}

type relationshipRow struct {
	ID           uuid.UUID `db:"id"`
	WordID       uuid.UUID `db:"word_id"`
	TargetWord   string    `db:"target_word"`
	RelationType string    `db:"relation_type"`
	Strength     float64   `db:"strength"`
	Confidence   float64   `db:"confidence"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row relationshipRow) toDomain() domain.WordRelationship {
	return domain.WordRelationship{
		ID:         row.ID,
		WordID:     row.WordID,
		TargetWord: row.TargetWord,
		Type:       domain.RelationType(row.RelationType),
		Strength:   row.Strength,
		Confidence: row.Confidence,
		CreatedAt:  row.CreatedAt,
	}
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, wordID uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("word_relationship %s: %w", wordID, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("word_relationship %s: %w", wordID, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("word_relationship %s: %w", wordID, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("word_relationship %s: %w", wordID, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("word_relationship %s: %w", wordID, domain.ErrValidation)
		}
	}

	return fmt.Errorf("word_relationship %s: %w", wordID, err)
}
