// Package obsceneword implements the obscene-word dictionary repository
// using PostgreSQL. It owns the uniqueness of surface values and the atomic
// best-similarity ratchet used by the classification path.
package obsceneword

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/textwarden/obscenity-backend/internal/adapter/postgres"
	"github.com/textwarden/obscenity-backend/internal/domain"
)

// Repo provides obscene-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new obscene-word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = `id, value, normalized_value, best_similarity, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByValueSQL = `
SELECT ` + wordColumns + `
FROM obscene_words
WHERE value = $1`

// GetByValue returns the entry with the given surface value.
// Returns domain.ErrNotFound if no such entry exists.
func (r *Repo) GetByValue(ctx context.Context, value string) (*domain.ObsceneWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByValueSQL, value)
	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "obscene_word", value)
	}
	return w, nil
}

const allWordsSQL = `
SELECT ` + wordColumns + `
FROM obscene_words
ORDER BY value`

// All returns every dictionary entry ordered by surface value.
// The classification path scans this set on each call.
func (r *Repo) All(ctx context.Context) ([]domain.ObsceneWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, allWordsSQL)
	if err != nil {
		return nil, fmt.Errorf("list obscene_words: %w", err)
	}
	defer rows.Close()

	return collectWords(rows)
}

// List returns entries whose value or normalized value contains search
// (empty search matches everything), plus the total count before pagination.
// Used by the admin listing endpoint.
func (r *Repo) List(ctx context.Context, search string, limit, offset int) ([]domain.ObsceneWord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := psql.Select(wordColumns).From("obscene_words")
	countBase := psql.Select("COUNT(*)").From("obscene_words")

	if search != "" {
		pattern := "%" + search + "%"
		cond := sq.Or{
			sq.ILike{"value": pattern},
			sq.ILike{"normalized_value": pattern},
		}
		base = base.Where(cond)
		countBase = countBase.Where(cond)
	}

	countSQL, countArgs, err := countBase.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count obscene_words: %w", err)
	}

	base = base.OrderBy("value")
	if limit > 0 {
		base = base.Limit(uint64(limit))
	}
	if offset > 0 {
		base = base.Offset(uint64(offset))
	}

	listSQL, listArgs, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list obscene_words: %w", err)
	}
	defer rows.Close()

	words, err := collectWords(rows)
	if err != nil {
		return nil, 0, err
	}
	return words, total, nil
}

// Count returns the number of dictionary entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM obscene_words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count obscene_words: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const upsertSQL = `
INSERT INTO obscene_words (id, value, normalized_value, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (value) DO UPDATE
SET normalized_value = EXCLUDED.normalized_value,
    updated_at       = EXCLUDED.updated_at
RETURNING ` + wordColumns

// Upsert atomically gets-or-creates the entry with the given surface value,
// refreshing normalized_value in both cases. BestSimilarity is never touched
// here. Concurrent upserts of the same value resolve to one row.
func (r *Repo) Upsert(ctx context.Context, value, normalizedValue string) (*domain.ObsceneWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertSQL, uuid.New(), value, normalizedValue, time.Now().UTC())
	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "obscene_word", value)
	}
	return w, nil
}

const ratchetSQL = `
UPDATE obscene_words
SET best_similarity = $2,
    updated_at      = now()
WHERE id = $1
  AND (best_similarity IS NULL OR best_similarity < $2)`

// UpdateBestSimilarity applies the monotonic ratchet: the stored score is
// replaced only when the new score is strictly greater (or no score is
// stored yet). The WHERE clause makes the compare-and-set atomic per row, so
// concurrent classification calls can never lower the cached value.
// Reports whether the update was applied.
func (r *Repo) UpdateBestSimilarity(ctx context.Context, id uuid.UUID, score float64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, ratchetSQL, id, score)
	if err != nil {
		return false, postgres.MapError(err, "obscene_word", id.String())
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.ObsceneWord, error) {
	var w domain.ObsceneWord
	err := row.Scan(&w.ID, &w.Value, &w.NormalizedValue, &w.BestSimilarity, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func collectWords(rows pgx.Rows) ([]domain.ObsceneWord, error) {
	words := make([]domain.ObsceneWord, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan obscene_word: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate obscene_words: %w", err)
	}
	return words, nil
}
