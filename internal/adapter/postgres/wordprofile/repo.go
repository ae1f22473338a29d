// Package wordprofile implements the WordProfile repository using
// PostgreSQL. Structured sub-objects (breakdown, etymology, phonetics,
// definitions, word forms, analysis) are stored as jsonb columns; the
// normalized word carries a unique constraint that makes get-or-create
// race-safe.
package wordprofile

import (
	"context"
	"encoding/json"
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

const table = "word_profiles"

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"id", "word",
	"morpheme_breakdown", "etymology", "phonetics", "definitions", "word_forms", "analysis",
	"quality_score", "completeness_score",
	"enrichment_status", "last_enrichment_at",
	"created_at", "updated_at",
}

// Repo provides word profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a profile by primary key.
// Returns domain.ErrNotFound if the profile does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapError(err, "word_profile", id.String())
	}
	return row.toDomain()
}

// GetByWord returns a profile by its normalized word.
// Returns domain.ErrNotFound if the word is unknown.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.WordProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).From(table).Where(squirrel.Eq{"word": word}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapError(err, "word_profile", word)
	}
	return row.toDomain()
}

// GetOrCreate returns the profile for word, creating a pending skeleton
// when none exists. INSERT ... ON CONFLICT DO NOTHING followed by a
// SELECT keeps concurrent callers race-safe: exactly one row per word
// ever exists, and every caller sees it.
func (r *Repo) GetOrCreate(ctx context.Context, id uuid.UUID, word string) (domain.WordProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC()
	sql, args, err := qb.Insert(table).
		Columns("id", "word", "enrichment_status", "created_at", "updated_at").
		Values(id, word, string(domain.EnrichmentStatusPending), now, now).
		Suffix("ON CONFLICT (word) DO NOTHING").
		ToSql()
	if err != nil {
		return domain.WordProfile{}, fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.WordProfile{}, mapError(err, "word_profile", word)
	}

	profile, err := r.GetByWord(ctx, word)
	if err != nil {
		return domain.WordProfile{}, err
	}
	return *profile, nil
}

// Update persists every mutable field of the profile.
// Returns domain.ErrNotFound if the profile no longer exists.
func (r *Repo) Update(ctx context.Context, profile *domain.WordProfile) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row, err := toRow(profile)
	if err != nil {
		return err
	}

	sql, args, err := qb.Update(table).
		Set("morpheme_breakdown", row.MorphemeBreakdown).
		Set("etymology", row.Etymology).
		Set("phonetics", row.Phonetics).
		Set("definitions", row.Definitions).
		Set("word_forms", row.WordForms).
		Set("analysis", row.Analysis).
		Set("quality_score", profile.QualityScore).
		Set("completeness_score", profile.CompletenessScore).
		Set("enrichment_status", string(profile.EnrichmentStatus)).
		Set("last_enrichment_at", profile.LastEnrichmentAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "word_profile", profile.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_profile %s: %w", profile.ID, domain.ErrNotFound)
	}
	return nil
}

// SetStatus updates only the enrichment status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.EnrichmentStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update(table).
		Set("enrichment_status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "word_profile", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns profiles ordered by word, optionally filtered by status.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, status *domain.EnrichmentStatus, limit, offset int) ([]domain.WordProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := qb.Select(columns...).From(table).OrderBy("word ASC")
	if status != nil {
		query = query.Where(squirrel.Eq{"enrichment_status": string(*status)})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []profileRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list word profiles: %w", err)
	}

	profiles := make([]domain.WordProfile, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

// Count returns the number of stored profiles.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count word profiles: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type profileRow struct {
	ID                uuid.UUID  `db:"id"`
	Word              string     `db:"word"`
	MorphemeBreakdown []byte     `db:"morpheme_breakdown"`
	Etymology         []byte     `db:"etymology"`
	Phonetics         []byte     `db:"phonetics"`
	Definitions       []byte     `db:"definitions"`
	WordForms         []byte     `db:"word_forms"`
	Analysis          []byte     `db:"analysis"`
	QualityScore      int        `db:"quality_score"`
	CompletenessScore int        `db:"completeness_score"`
	EnrichmentStatus  string     `db:"enrichment_status"`
	LastEnrichmentAt  *time.Time `db:"last_enrichment_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (row *profileRow) toDomain() (*domain.WordProfile, error) {
	p := domain.WordProfile{
		ID:                row.ID,
		Word:              row.Word,
		QualityScore:      row.QualityScore,
		CompletenessScore: row.CompletenessScore,
		EnrichmentStatus:  domain.EnrichmentStatus(row.EnrichmentStatus),
		LastEnrichmentAt:  row.LastEnrichmentAt,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}

	if len(row.MorphemeBreakdown) > 0 {
		p.MorphemeBreakdown = &domain.MorphemeBreakdown{}
		if err := json.Unmarshal(row.MorphemeBreakdown, p.MorphemeBreakdown); err != nil {
			return nil, fmt.Errorf("decode morpheme_breakdown: %w", err)
		}
	}
	if len(row.Phonetics) > 0 {
		p.Phonetics = &domain.PhoneticData{}
		if err := json.Unmarshal(row.Phonetics, p.Phonetics); err != nil {
			return nil, fmt.Errorf("decode phonetics: %w", err)
		}
	}
	if len(row.Etymology) > 0 {
		if err := json.Unmarshal(row.Etymology, &p.Etymology); err != nil {
			return nil, fmt.Errorf("decode etymology: %w", err)
		}
	}
	if len(row.Definitions) > 0 {
		if err := json.Unmarshal(row.Definitions, &p.Definitions); err != nil {
			return nil, fmt.Errorf("decode definitions: %w", err)
		}
	}
	if len(row.WordForms) > 0 {
		if err := json.Unmarshal(row.WordForms, &p.WordForms); err != nil {
			return nil, fmt.Errorf("decode word_forms: %w", err)
		}
	}
	if len(row.Analysis) > 0 {
		if err := json.Unmarshal(row.Analysis, &p.Analysis); err != nil {
			return nil, fmt.Errorf("decode analysis: %w", err)
		}
	}
	return &p, nil
}

func toRow(p *domain.WordProfile) (*profileRow, error) {
	row := &profileRow{}

	var err error
	if p.MorphemeBreakdown != nil {
		if row.MorphemeBreakdown, err = json.Marshal(p.MorphemeBreakdown); err != nil {
			return nil, fmt.Errorf("encode morpheme_breakdown: %w", err)
		}
	}
	if p.Phonetics != nil {
		if row.Phonetics, err = json.Marshal(p.Phonetics); err != nil {
			return nil, fmt.Errorf("encode phonetics: %w", err)
		}
	}
	if row.Etymology, err = json.Marshal(p.Etymology); err != nil {
		return nil, fmt.Errorf("encode etymology: %w", err)
	}
	if row.Definitions, err = json.Marshal(p.Definitions); err != nil {
		return nil, fmt.Errorf("encode definitions: %w", err)
	}
	if row.WordForms, err = json.Marshal(p.WordForms); err != nil {
		return nil, fmt.Errorf("encode word_forms: %w", err)
	}
	if row.Analysis, err = json.Marshal(p.Analysis); err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}
	return row, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, key, err)
}
