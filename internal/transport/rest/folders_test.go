package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/service/folder"
)

type folderServiceMock struct {
	ListFunc   func(ctx context.Context) ([]*domain.Folder, error)
	CreateFunc func(ctx context.Context, input folder.CreateInput) (*domain.Folder, error)
	RenameFunc func(ctx context.Context, id uuid.UUID, name string) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

var _ folderService = &folderServiceMock{}

func (m *folderServiceMock) List(ctx context.Context) ([]*domain.Folder, error) {
	return m.ListFunc(ctx)
}

func (m *folderServiceMock) Create(ctx context.Context, input folder.CreateInput) (*domain.Folder, error) {
	return m.CreateFunc(ctx, input)
}

func (m *folderServiceMock) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return m.RenameFunc(ctx, id, name)
}

func (m *folderServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func TestFoldersList_OK(t *testing.T) {
	t.Parallel()

	h := NewFolderHandler(&folderServiceMock{
		ListFunc: func(_ context.Context) ([]*domain.Folder, error) {
			return []*domain.Folder{
				{ID: domain.UnfiledFolderID, Name: domain.UnfiledFolderName, ColorHex: domain.UnfiledFolderColor, IsSystem: true},
				{ID: uuid.New(), Name: "Novels", ColorHex: "#4A7FBD"},
			}, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/folders", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string][]folderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	folders := resp["folders"]
	if len(folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(folders))
	}
	if !folders[0].IsSystem {
		t.Error("expected first folder to be the system folder")
	}
}

func TestFoldersCreate_Created(t *testing.T) {
	t.Parallel()

	parentID := uuid.New()
	h := NewFolderHandler(&folderServiceMock{
		CreateFunc: func(_ context.Context, input folder.CreateInput) (*domain.Folder, error) {
			if input.Name != "Sci-fi" {
				t.Errorf("expected name 'Sci-fi', got %q", input.Name)
			}
			if input.ParentID == nil || *input.ParentID != parentID {
				t.Errorf("parent_id not forwarded: %v", input.ParentID)
			}
			return &domain.Folder{
				ID:       uuid.New(),
				Name:     input.Name,
				ColorHex: input.ColorHex,
				ParentID: input.ParentID,
			}, nil
		},
	}, testLogger())

	body := `{"name":"Sci-fi","color_hex":"#C75450","parent_id":"` + parentID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/folders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp folderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ParentID == nil || *resp.ParentID != parentID.String() {
		t.Errorf("expected parent_id %s, got %v", parentID, resp.ParentID)
	}
}

func TestFoldersCreate_InvalidParentID(t *testing.T) {
	t.Parallel()

	h := NewFolderHandler(&folderServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/folders", strings.NewReader(`{"name":"X","parent_id":"nope"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestFoldersCreate_ValidationError(t *testing.T) {
	t.Parallel()

	h := NewFolderHandler(&folderServiceMock{
		CreateFunc: func(_ context.Context, _ folder.CreateInput) (*domain.Folder, error) {
			return nil, domain.NewValidationError("name", "required")
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/folders", strings.NewReader(`{"name":""}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestFoldersRename_NoContent(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	h := NewFolderHandler(&folderServiceMock{
		RenameFunc: func(_ context.Context, gotID uuid.UUID, name string) error {
			if gotID != id {
				t.Errorf("unexpected id %s", gotID)
			}
			if name != "Fantasy" {
				t.Errorf("expected name 'Fantasy', got %q", name)
			}
			return nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/v1/folders/"+id.String(), strings.NewReader(`{"name":"Fantasy"}`))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Rename(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}

func TestFoldersDelete_SystemFolderRejected(t *testing.T) {
	t.Parallel()

	h := NewFolderHandler(&folderServiceMock{
		DeleteFunc: func(_ context.Context, _ uuid.UUID) error {
			return domain.NewValidationError("id", "system folder cannot be deleted")
		},
	}, testLogger())

	id := domain.UnfiledFolderID.String()
	req := httptest.NewRequest(http.MethodDelete, "/v1/folders/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
