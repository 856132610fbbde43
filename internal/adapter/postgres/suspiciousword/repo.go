// Package suspiciousword implements the suspicious-word moderation queue
// repository using PostgreSQL.
package suspiciousword

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

// Repo provides suspicious-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new suspicious-word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = `id, value, status, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM suspicious_words
WHERE id = $1`

// GetByID returns a suspicious word by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SuspiciousWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, id)
	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "suspicious_word", id.String())
	}
	return w, nil
}

// List returns queue entries, optionally filtered by status, newest first,
// plus the total count before pagination.
func (r *Repo) List(ctx context.Context, status *domain.SuspiciousWordStatus, limit, offset int) ([]domain.SuspiciousWord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := psql.Select(wordColumns).From("suspicious_words")
	countBase := psql.Select("COUNT(*)").From("suspicious_words")

	if status != nil {
		base = base.Where(sq.Eq{"status": status.String()})
		countBase = countBase.Where(sq.Eq{"status": status.String()})
	}

	countSQL, countArgs, err := countBase.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suspicious_words: %w", err)
	}

	base = base.OrderBy("created_at DESC", "value")
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
		return nil, 0, fmt.Errorf("list suspicious_words: %w", err)
	}
	defer rows.Close()

	words := make([]domain.SuspiciousWord, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan suspicious_word: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate suspicious_words: %w", err)
	}

	return words, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO suspicious_words (id, value, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (value) DO NOTHING`

// BulkInsert queues values as PENDING suspicious words using pgx.Batch.
// Values that already exist (any status) are silently skipped via
// ON CONFLICT DO NOTHING. Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, values []string) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, v := range values {
		batch.Queue(insertSQL, uuid.New(), v, domain.SuspiciousWordStatusPending.String(), now)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range values {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("bulk insert suspicious_words: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

const updateStatusSQL = `
UPDATE suspicious_words
SET status     = $2,
    updated_at = now()
WHERE id = $1
RETURNING ` + wordColumns

// UpdateStatus sets the moderation status of an entry and returns the updated
// row. Returns domain.ErrNotFound for an unknown id. Transition guards live
// in the moderation service, not here.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SuspiciousWordStatus) (*domain.SuspiciousWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateStatusSQL, id, status.String())
	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "suspicious_word", id.String())
	}
	return w, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.SuspiciousWord, error) {
	var (
		w      domain.SuspiciousWord
		status string
	)
	err := row.Scan(&w.ID, &w.Value, &status, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	w.Status = domain.SuspiciousWordStatus(status)
	return &w, nil
}
