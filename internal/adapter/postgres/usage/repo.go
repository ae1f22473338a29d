// Package usage implements the UsageContext repository using PostgreSQL.
package usage

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

const table = "usage_contexts"

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{"id", "word_id", "sentence", "context", "source", "created_at"}

// Repo provides usage context persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new usage context repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByWord returns the stored usage contexts for a word, oldest first.
// Returns an empty slice (not nil) when the word has none.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.UsageContext, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"word_id": wordID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []usageRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list usage contexts: %w", err)
	}

	contexts := make([]domain.UsageContext, 0, len(rows))
	for _, row := range rows {
		contexts = append(contexts, row.toDomain())
	}
	return contexts, nil
}

// ReplaceForWord atomically swaps the stored usage contexts of a word.
// Meant to run inside a transaction together with the profile update.
func (r *Repo) ReplaceForWord(ctx context.Context, wordID uuid.UUID, contexts []domain.UsageContext) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	delSQL, delArgs, err := qb.Delete(table).Where(squirrel.Eq{"word_id": wordID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := q.Exec(ctx, delSQL, delArgs...); err != nil {
		return mapError(err, wordID)
	}

	if len(contexts) == 0 {
		return nil
	}

	insert := qb.Insert(table).Columns(columns...)
	for _, uc := range contexts {
		createdAt := uc.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		insert = insert.Values(uc.ID, wordID, uc.Sentence, uc.Context, string(uc.Source), createdAt)
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

type usageRow struct {
	ID        uuid.UUID `db:"id"`
	WordID    uuid.UUID `db:"word_id"`
	Sentence  string    `db:"sentence"`
	Context   string    `db:"context"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

func (row usageRow) toDomain() domain.UsageContext {
	return domain.UsageContext{
		ID:        row.ID,
		WordID:    row.WordID,
		Sentence:  row.Sentence,
		Context:   row.Context,
		Source:    domain.DataSource(row.Source),
		CreatedAt: row.CreatedAt,
	}
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, wordID uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("usage_context %s: %w", wordID, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("usage_context %s: %w", wordID, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("usage_context %s: %w", wordID, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("usage_context %s: %w", wordID, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("usage_context %s: %w", wordID, domain.ErrValidation)
		}
	}

	return fmt.Errorf("usage_context %s: %w", wordID, err)
}
