package rest

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

type mediaStoreMock struct {
	OpenFunc func(rel string) (*os.File, error)
}

var _ mediaStore = &mediaStoreMock{}

func (m *mediaStoreMock) Open(rel string) (*os.File, error) {
	return m.OpenFunc(rel)
}

func TestMediaGet_ServesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "crop.jpg")
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var gotRel string
	h := NewMediaHandler(&mediaStoreMock{
		OpenFunc: func(rel string) (*os.File, error) {
			gotRel = rel
			return os.Open(path)
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/media/crops/crop.jpg", nil)
	req.SetPathValue("path", "crops/crop.jpg")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotRel != "crops/crop.jpg" {
		t.Fatalf("expected relative path crops/crop.jpg, got %q", gotRel)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "jpeg-bytes" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestMediaGet_NotFound(t *testing.T) {
	t.Parallel()

	h := NewMediaHandler(&mediaStoreMock{
		OpenFunc: func(rel string) (*os.File, error) {
			return nil, fmt.Errorf("open media file %s: %w", rel, fs.ErrNotExist)
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/media/crops/gone.jpg", nil)
	req.SetPathValue("path", "crops/gone.jpg")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestMediaGet_RejectsTraversal(t *testing.T) {
	t.Parallel()

	h := NewMediaHandler(&mediaStoreMock{
		OpenFunc: func(rel string) (*os.File, error) {
			t.Fatal("store must not be called for a traversal path")
			return nil, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/media/a", nil)
	req.SetPathValue("path", "../secrets/config.yaml")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
