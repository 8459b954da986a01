package folder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	CreateFunc  func(ctx context.Context, f *domain.Folder) error
	EnsureFunc  func(ctx context.Context, f *domain.Folder) error
	ListAllFunc func(ctx context.Context) ([]*domain.Folder, error)
	RenameFunc  func(ctx context.Context, id uuid.UUID, name string) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *folderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *folderRepoMock) Create(ctx context.Context, f *domain.Folder) error {
	return m.CreateFunc(ctx, f)
}
func (m *folderRepoMock) Ensure(ctx context.Context, f *domain.Folder) error {
	return m.EnsureFunc(ctx, f)
}
func (m *folderRepoMock) ListAll(ctx context.Context) ([]*domain.Folder, error) {
	return m.ListAllFunc(ctx)
}
func (m *folderRepoMock) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return m.RenameFunc(ctx, id, name)
}
func (m *folderRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBootstrap_EnsuresUnfiled(t *testing.T) {
	t.Parallel()

	var ensured *domain.Folder
	repo := &folderRepoMock{
		EnsureFunc: func(ctx context.Context, f *domain.Folder) error {
			ensured = f
			return nil
		},
	}

	svc := NewService(testLogger(), repo)
	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ensured == nil {
		t.Fatal("Ensure was not called")
	}
	if ensured.ID != domain.UnfiledFolderID {
		t.Errorf("id = %v, want the well-known unfiled id", ensured.ID)
	}
	if ensured.Name != domain.UnfiledFolderName {
		t.Errorf("name = %q, want %q", ensured.Name, domain.UnfiledFolderName)
	}
	if !ensured.IsSystem {
		t.Error("unfiled folder must be a system folder")
	}
}

func TestCreate_RootFolder(t *testing.T) {
	t.Parallel()

	var created *domain.Folder
	repo := &folderRepoMock{
		CreateFunc: func(ctx context.Context, f *domain.Folder) error {
			created = f
			return nil
		},
	}

	svc := NewService(testLogger(), repo)
	f, err := svc.Create(context.Background(), CreateInput{Name: "  Travel  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Name != "Travel" {
		t.Errorf("name = %q, want trimmed %q", f.Name, "Travel")
	}
	if created.ColorHex == "" {
		t.Error("color should default from the palette")
	}
}

func TestCreate_DepthCap(t *testing.T) {
	t.Parallel()

	// Chain: level2 -> level1 -> root. Creating under level2 would be
	// depth 3, which exceeds the cap.
	root := &domain.Folder{ID: uuid.New()}
	level1 := &domain.Folder{ID: uuid.New(), ParentID: &root.ID}
	level2 := &domain.Folder{ID: uuid.New(), ParentID: &level1.ID}

	byID := map[uuid.UUID]*domain.Folder{root.ID: root, level1.ID: level1, level2.ID: level2}
	repo := &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
			if f, ok := byID[id]; ok {
				return f, nil
			}
			return nil, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, f *domain.Folder) error { return nil },
	}

	svc := NewService(testLogger(), repo)

	// Under level1 (depth 2) is still allowed.
	if _, err := svc.Create(context.Background(), CreateInput{Name: "ok", ParentID: &level1.ID}); err != nil {
		t.Fatalf("depth 2 should be allowed: %v", err)
	}

	// Under level2 (depth 3) is rejected.
	_, err := svc.Create(context.Background(), CreateInput{Name: "deep", ParentID: &level2.ID})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error at max depth, got %v", err)
	}
}

func TestRename_SystemFolderRejected(t *testing.T) {
	t.Parallel()

	repo := &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
			return &domain.Folder{ID: id, IsSystem: true}, nil
		},
	}

	svc := NewService(testLogger(), repo)
	err := svc.Rename(context.Background(), domain.UnfiledFolderID, "Renamed")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDelete_SystemFolderRejected(t *testing.T) {
	t.Parallel()

	repo := &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
			return &domain.Folder{ID: id, IsSystem: true}, nil
		},
	}

	svc := NewService(testLogger(), repo)
	err := svc.Delete(context.Background(), domain.UnfiledFolderID)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &folderRepoMock{})

	tests := []struct {
		name  string
		input CreateInput
	}{
		{"empty name", CreateInput{Name: "   "}},
		{"bad color", CreateInput{Name: "x", ColorHex: "red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Create(context.Background(), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
