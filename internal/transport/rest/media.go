package rest

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
)

// mediaStore defines the minimal interface needed by MediaHandler.
type mediaStore interface {
	Open(rel string) (*os.File, error)
}

// MediaHandler serves stored screenshot and crop files.
type MediaHandler struct {
	store mediaStore
	log   *slog.Logger
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(store mediaStore, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{store: store, log: logger.With("handler", "media")}
}

// Get handles GET /v1/media/{path...}. The path is the relative media path
// persisted on an occurrence.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	rel := r.PathValue("path")
	if rel == "" || path.Clean("/"+rel) != "/"+rel {
		writeError(w, http.StatusBadRequest, "invalid media path")
		return
	}

	f, err := h.store.Open(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusNotFound, "media file not found")
			return
		}
		handleError(w, r, h.log, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	http.ServeContent(w, r, path.Base(rel), info.ModTime(), f)
}
