// Package reviewlog implements the ReviewLog repository using PostgreSQL.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO review_logs (id, term_id, grade, reviewed_at)
VALUES ($1, $2, $3, $4)`

const listByTermSQL = `
SELECT id, term_id, grade, reviewed_at
FROM review_logs
WHERE term_id = $1
ORDER BY reviewed_at DESC
LIMIT $2`

const countSinceSQL = `SELECT count(*) FROM review_logs WHERE reviewed_at >= $1`

// Create appends a review log entry. Logs are append-only.
func (r *Repo) Create(ctx context.Context, rl *domain.ReviewLog) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL, rl.ID, rl.TermID, string(rl.Grade), rl.ReviewedAt)
	if err != nil {
		return postgres.MapError(err, "review_log", rl.ID.String())
	}
	return nil
}

// ListByTerm returns the most recent review logs for a term, newest first.
func (r *Repo) ListByTerm(ctx context.Context, termID uuid.UUID, limit int) ([]domain.ReviewLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if limit <= 0 {
		limit = 100
	}

	rows, err := querier.Query(ctx, listByTermSQL, termID, limit)
	if err != nil {
		return nil, fmt.Errorf("list review_logs by term: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.ReviewLog, 0)
	for rows.Next() {
		var rl domain.ReviewLog
		var grade string
		if err := rows.Scan(&rl.ID, &rl.TermID, &grade, &rl.ReviewedAt); err != nil {
			return nil, fmt.Errorf("scan review_log: %w", err)
		}
		rl.Grade = domain.ReviewGrade(grade)
		logs = append(logs, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review_logs: %w", err)
	}
	return logs, nil
}

// CountSince returns how many reviews happened at or after the given time.
// Used for the "reviews today" stat.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSinceSQL, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count review_logs since: %w", err)
	}
	return n, nil
}
