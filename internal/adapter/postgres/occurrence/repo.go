// Package occurrence implements the Occurrence repository using PostgreSQL.
package occurrence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Repo provides occurrence persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new occurrence repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const occurrenceColumns = `id, term_id, raw_text, context, screenshot_path, crop_path, source_label, created_at`

const createSQL = `
INSERT INTO occurrences (` + occurrenceColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listByTermSQL = `
SELECT ` + occurrenceColumns + `
FROM occurrences
WHERE term_id = $1
ORDER BY created_at DESC`

const listByTermsSQL = `
SELECT ` + occurrenceColumns + `
FROM occurrences
WHERE term_id = ANY($1::uuid[])
ORDER BY term_id, created_at DESC`

const listMediaPathsSQL = `
SELECT screenshot_path, crop_path FROM occurrences`

// Create inserts a new occurrence. Occurrences are immutable; there is no
// update path.
func (r *Repo) Create(ctx context.Context, o *domain.Occurrence) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		o.ID, o.TermID, o.RawText, o.Context, o.ScreenshotPath,
		o.CropPath, o.SourceLabel, o.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "occurrence", o.ID.String())
	}
	return nil
}

// ListByTerm returns every occurrence of a term, newest first.
func (r *Repo) ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Occurrence, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByTermSQL, termID)
	if err != nil {
		return nil, fmt.Errorf("list occurrences by term: %w", err)
	}
	defer rows.Close()

	return scanOccurrences(rows)
}

// ListByTerms returns occurrences for multiple terms in one round trip,
// grouped by term for the caller.
func (r *Repo) ListByTerms(ctx context.Context, termIDs []uuid.UUID) (map[uuid.UUID][]domain.Occurrence, error) {
	if len(termIDs) == 0 {
		return map[uuid.UUID][]domain.Occurrence{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByTermsSQL, termIDs)
	if err != nil {
		return nil, fmt.Errorf("list occurrences by terms: %w", err)
	}
	defer rows.Close()

	occs, err := scanOccurrences(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uuid.UUID][]domain.Occurrence, len(termIDs))
	for _, o := range occs {
		grouped[o.TermID] = append(grouped[o.TermID], o)
	}
	return grouped, nil
}

// ListMediaPaths returns every screenshot and crop path referenced by any
// occurrence. Used by the cleanup tool to detect orphaned media files.
func (r *Repo) ListMediaPaths(ctx context.Context) (map[string]struct{}, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMediaPathsSQL)
	if err != nil {
		return nil, fmt.Errorf("list media paths: %w", err)
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var screenshot string
		var crop *string
		if err := rows.Scan(&screenshot, &crop); err != nil {
			return nil, fmt.Errorf("scan media paths: %w", err)
		}
		if screenshot != "" {
			paths[screenshot] = struct{}{}
		}
		if crop != nil && *crop != "" {
			paths[*crop] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media paths: %w", err)
	}
	return paths, nil
}

func scanOccurrences(rows pgx.Rows) ([]domain.Occurrence, error) {
	occs := make([]domain.Occurrence, 0)
	for rows.Next() {
		var o domain.Occurrence
		err := rows.Scan(
			&o.ID, &o.TermID, &o.RawText, &o.Context, &o.ScreenshotPath,
			&o.CropPath, &o.SourceLabel, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		occs = append(occs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate occurrences: %w", err)
	}
	return occs, nil
}
