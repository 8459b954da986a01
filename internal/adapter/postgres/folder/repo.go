// Package folder implements the Folder repository using PostgreSQL.
package folder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new folder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const folderColumns = `id, name, icon_name, color_hex, is_system, sort_order, parent_id, created_at`

const getByIDSQL = `SELECT ` + folderColumns + ` FROM folders WHERE id = $1`

const createSQL = `
INSERT INTO folders (` + folderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const upsertSQL = `
INSERT INTO folders (` + folderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`

const listAllSQL = `SELECT ` + folderColumns + ` FROM folders ORDER BY sort_order ASC, name ASC`

const renameSQL = `UPDATE folders SET name = $2 WHERE id = $1`

const deleteSQL = `DELETE FROM folders WHERE id = $1`

// GetByID returns a folder by ID.
// Returns domain.ErrNotFound if no such folder exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	f, err := scanFolder(row)
	if err != nil {
		return nil, postgres.MapError(err, "folder", id.String())
	}
	return f, nil
}

// Create inserts a new folder. Returns domain.ErrConflict when a sibling
// with the same name already exists.
func (r *Repo) Create(ctx context.Context, f *domain.Folder) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		f.ID, f.Name, f.IconName, f.ColorHex, f.IsSystem, f.SortOrder, f.ParentID, f.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "folder", f.ID.String())
	}
	return nil
}

// Ensure inserts the folder if it does not exist yet. Used to bootstrap the
// well-known Unfiled folder at startup; an existing row is left untouched.
func (r *Repo) Ensure(ctx context.Context, f *domain.Folder) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, upsertSQL,
		f.ID, f.Name, f.IconName, f.ColorHex, f.IsSystem, f.SortOrder, f.ParentID, f.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "folder", f.ID.String())
	}
	return nil
}

// ListAll returns every folder, sorted by sort order then name.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]*domain.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}
	return folders, nil
}

// Rename changes a folder's name.
// Returns domain.ErrNotFound if the folder does not exist.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, renameSQL, id, name)
	if err != nil {
		return postgres.MapError(err, "folder", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a folder. Terms inside it fall back to NULL folder via
// the schema's ON DELETE SET NULL.
// Returns domain.ErrNotFound if the folder does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "folder", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanFolder(row pgx.Row) (*domain.Folder, error) {
	var f domain.Folder
	if err := row.Scan(&f.ID, &f.Name, &f.IconName, &f.ColorHex, &f.IsSystem, &f.SortOrder, &f.ParentID, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
