package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/service/folder"
)

type folderService interface {
	List(ctx context.Context) ([]*domain.Folder, error)
	Create(ctx context.Context, input folder.CreateInput) (*domain.Folder, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FolderHandler serves folder management endpoints.
type FolderHandler struct {
	svc folderService
	log *slog.Logger
}

// NewFolderHandler creates a FolderHandler.
func NewFolderHandler(svc folderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{svc: svc, log: logger.With("handler", "folders")}
}

type folderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IconName  string    `json:"icon_name,omitempty"`
	ColorHex  string    `json:"color_hex"`
	IsSystem  bool      `json:"is_system"`
	SortOrder int       `json:"sort_order"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toFolderResponse(f *domain.Folder) folderResponse {
	resp := folderResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		IconName:  f.IconName,
		ColorHex:  f.ColorHex,
		IsSystem:  f.IsSystem,
		SortOrder: f.SortOrder,
		CreatedAt: f.CreatedAt,
	}
	if f.ParentID != nil {
		id := f.ParentID.String()
		resp.ParentID = &id
	}
	return resp
}

// List handles GET /v1/folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]folderResponse, len(folders))
	for i, f := range folders {
		resp[i] = toFolderResponse(f)
	}
	writeJSON(w, http.StatusOK, map[string][]folderResponse{"folders": resp})
}

type createFolderRequest struct {
	Name     string  `json:"name"`
	IconName string  `json:"icon_name"`
	ColorHex string  `json:"color_hex"`
	ParentID *string `json:"parent_id"`
}

// Create handles POST /v1/folders.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := folder.CreateInput{
		Name:     req.Name,
		IconName: req.IconName,
		ColorHex: req.ColorHex,
	}
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parent_id")
			return
		}
		input.ParentID = &id
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFolderResponse(created))
}

type renameFolderRequest struct {
	Name string `json:"name"`
}

// Rename handles PATCH /v1/folders/{id}.
func (h *FolderHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	var req renameFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Rename(r.Context(), id, req.Name); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /v1/folders/{id}.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
