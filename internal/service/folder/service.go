// Package folder implements folder management: the bootstrap of the
// system Unfiled folder, listing, creation with a nesting-depth cap,
// rename, and deletion.
package folder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

type folderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	Create(ctx context.Context, f *domain.Folder) error
	Ensure(ctx context.Context, f *domain.Folder) error
	ListAll(ctx context.Context) ([]*domain.Folder, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements folder business logic.
type Service struct {
	folders folderRepo
	log     *slog.Logger
}

// NewService creates a new folder service.
func NewService(log *slog.Logger, folders folderRepo) *Service {
	return &Service{
		folders: folders,
		log:     log.With("service", "folder"),
	}
}

// Bootstrap ensures the system Unfiled folder exists. Idempotent; called
// at startup.
func (s *Service) Bootstrap(ctx context.Context) error {
	unfiled := &domain.Folder{
		ID:        domain.UnfiledFolderID,
		Name:      domain.UnfiledFolderName,
		ColorHex:  domain.UnfiledFolderColor,
		IconName:  "tray",
		IsSystem:  true,
		CreatedAt: time.Now(),
	}
	if err := s.folders.Ensure(ctx, unfiled); err != nil {
		return fmt.Errorf("ensure unfiled folder: %w", err)
	}
	return nil
}

// List returns all folders.
func (s *Service) List(ctx context.Context) ([]*domain.Folder, error) {
	folders, err := s.folders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// CreateInput holds the parameters for Create.
type CreateInput struct {
	Name     string
	IconName string
	ColorHex string
	ParentID *uuid.UUID
}

// Validate checks the folder name and color.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if i.ColorHex != "" && !strings.HasPrefix(i.ColorHex, "#") {
		errs = append(errs, domain.FieldError{Field: "color_hex", Message: "must be a #RRGGBB value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create makes a new folder. Nesting is capped at domain.MaxFolderDepth
// levels; a root folder has depth 0.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Folder, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		depth, err := s.depthOf(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if depth+1 >= domain.MaxFolderDepth {
			return nil, domain.NewValidationError("parent_id", "max nesting depth reached")
		}
	}

	color := input.ColorHex
	if color == "" {
		color = domain.FolderColors[0]
	}

	f := &domain.Folder{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		IconName:  input.IconName,
		ColorHex:  color,
		ParentID:  input.ParentID,
		CreatedAt: time.Now(),
	}
	if err := s.folders.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder created", "folder_id", f.ID.String(), "name", f.Name)
	return f, nil
}

// Rename changes a folder's name. System folders cannot be renamed.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}

	f, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get folder: %w", err)
	}
	if f.IsSystem {
		return domain.NewValidationError("id", "system folder cannot be renamed")
	}

	if err := s.folders.Rename(ctx, id, name); err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}
	return nil
}

// Delete removes a folder. The system Unfiled folder cannot be deleted;
// terms in a deleted folder fall back to no folder.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	f, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get folder: %w", err)
	}
	if f.IsSystem {
		return domain.NewValidationError("id", "system folder cannot be deleted")
	}

	if err := s.folders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder deleted", "folder_id", id.String())
	return nil
}

// depthOf walks the parent chain. The chain is short (bounded by
// MaxFolderDepth in practice) but the walk is capped anyway so a cyclic
// parent reference cannot loop forever.
func (s *Service) depthOf(ctx context.Context, id uuid.UUID) (int, error) {
	depth := 0
	current := id
	for i := 0; i <= domain.MaxFolderDepth; i++ {
		f, err := s.folders.GetByID(ctx, current)
		if err != nil {
			return 0, fmt.Errorf("get parent folder: %w", err)
		}
		if f.ParentID == nil {
			return depth, nil
		}
		depth++
		current = *f.ParentID
	}
	return depth, nil
}
