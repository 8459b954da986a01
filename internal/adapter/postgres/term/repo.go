// Package term implements the Term repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the filtered listing is
// assembled with squirrel.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const termColumns = `id, "primary", lemma, pos, translation, definition, example,
example_translation, etymology, synonyms, antonyms, article_mode, review_box,
due_date, folder_id, created_at, updated_at`

const getByIDSQL = `SELECT ` + termColumns + ` FROM terms WHERE id = $1`

const getByPosLemmaSQL = `SELECT ` + termColumns + ` FROM terms WHERE pos = $1 AND lemma = $2`

const createSQL = `
INSERT INTO terms (` + termColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

const updateSQL = `
UPDATE terms SET
    "primary" = $2, lemma = $3, pos = $4, translation = $5, definition = $6,
    example = $7, example_translation = $8, etymology = $9, synonyms = $10,
    antonyms = $11, article_mode = $12, review_box = $13, due_date = $14,
    folder_id = $15, updated_at = $16
WHERE id = $1`

const listDueSQL = `
SELECT ` + termColumns + `
FROM terms
WHERE due_date <= $1
ORDER BY due_date ASC
LIMIT $2`

const deleteSQL = `DELETE FROM terms WHERE id = $1`

// GetByID returns a term by its surrogate ID.
// Returns domain.ErrNotFound if no such term exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	t, err := scanTerm(row)
	if err != nil {
		return nil, postgres.MapError(err, "term", id.String())
	}
	return t, nil
}

// GetByPosLemma looks a term up by its natural key.
// Returns domain.ErrNotFound if no such term exists.
func (r *Repo) GetByPosLemma(ctx context.Context, pos domain.PartOfSpeech, lemma string) (*domain.Term, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByPosLemmaSQL, string(pos), lemma)
	t, err := scanTerm(row)
	if err != nil {
		return nil, postgres.MapError(err, "term", string(pos)+"/"+lemma)
	}
	return t, nil
}

// Create inserts a new term. Returns domain.ErrConflict if a term with the
// same (pos, lemma) pair already exists.
func (r *Repo) Create(ctx context.Context, t *domain.Term) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		t.ID, t.Primary, t.Lemma, string(t.Pos), t.Translation, t.Definition,
		t.Example, t.ExampleTranslation, t.Etymology, t.Synonyms, t.Antonyms,
		t.ArticleMode, t.ReviewBox, t.DueDate, t.FolderID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "term", t.ID.String())
	}
	return nil
}

// Update rewrites all mutable columns of an existing term.
// Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) Update(ctx context.Context, t *domain.Term) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSQL,
		t.ID, t.Primary, t.Lemma, string(t.Pos), t.Translation, t.Definition,
		t.Example, t.ExampleTranslation, t.Etymology, t.Synonyms, t.Antonyms,
		t.ArticleMode, t.ReviewBox, t.DueDate, t.FolderID, t.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "term", t.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

// ListDue returns terms whose due date is at or before now, soonest first.
// A term due exactly at now counts as due.
func (r *Repo) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.Term, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDueSQL, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due terms: %w", err)
	}
	defer rows.Close()

	return scanTerms(rows)
}

// Delete removes a term. Occurrences and review logs cascade in the schema.
// Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "term", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Find returns terms matching the filter, newest first, with total count
// for pagination.
func (r *Repo) Find(ctx context.Context, f domain.TermFilter) ([]*domain.Term, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterConditions(f)

	countSQL, countArgs, err := sq.Select("count(*)").From("terms").
		Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count terms: %w", err)
	}

	b := sq.Select(termColumns).From("terms").
		Where(where).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build find query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("find terms: %w", err)
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		return nil, 0, err
	}
	return terms, total, nil
}

func filterConditions(f domain.TermFilter) sq.And {
	and := sq.And{}
	if f.FolderID != nil {
		and = append(and, sq.Eq{"folder_id": *f.FolderID})
	}
	if f.Pos != "" {
		and = append(and, sq.Eq{"pos": string(f.Pos)})
	}
	if f.DueBefore != nil {
		and = append(and, sq.LtOrEq{"due_date": *f.DueBefore})
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		and = append(and, sq.Or{
			sq.Like{"lower(lemma)": pattern},
			sq.Like{"lower(translation)": pattern},
		})
	}
	if len(and) == 0 {
		// squirrel renders an empty And as "()", which is invalid SQL.
		and = append(and, sq.Expr("TRUE"))
	}
	return and
}

func scanTerm(row pgx.Row) (*domain.Term, error) {
	var t domain.Term
	var pos string
	err := row.Scan(
		&t.ID, &t.Primary, &t.Lemma, &pos, &t.Translation, &t.Definition,
		&t.Example, &t.ExampleTranslation, &t.Etymology, &t.Synonyms,
		&t.Antonyms, &t.ArticleMode, &t.ReviewBox, &t.DueDate, &t.FolderID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Pos = domain.PartOfSpeech(pos)
	return &t, nil
}

func scanTerms(rows pgx.Rows) ([]*domain.Term, error) {
	terms := make([]*domain.Term, 0)
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}
	return terms, nil
}
