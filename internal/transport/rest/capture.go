package rest

import (
	"context"
	"encoding/json"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/service/capture"
)

// maxUploadBytes caps the multipart capture upload (screenshot plus payload).
const maxUploadBytes = 20 << 20

// captureService defines the minimal interface needed by CaptureHandler.
type captureService interface {
	RecognizeTokens(observations []domain.Observation, imageWidth, imageHeight float64) []domain.RecognizedToken
	ContextWindow(target domain.RecognizedToken, tokens []domain.RecognizedToken) string
	SaveCapture(ctx context.Context, input capture.SaveCaptureInput) (*capture.SaveCaptureResult, error)
}

// CaptureHandler serves the capture pipeline REST endpoints.
type CaptureHandler struct {
	svc captureService
	log *slog.Logger
}

// NewCaptureHandler creates a CaptureHandler.
func NewCaptureHandler(svc captureService, logger *slog.Logger) *CaptureHandler {
	return &CaptureHandler{svc: svc, log: logger.With("handler", "capture")}
}

type tokensRequest struct {
	ImageWidth   float64              `json:"image_width"`
	ImageHeight  float64              `json:"image_height"`
	Observations []domain.Observation `json:"observations"`
}

type tokensResponse struct {
	Tokens []domain.RecognizedToken `json:"tokens"`
}

// Tokens handles POST /v1/capture/tokens: raw recognition observations
// in, ordered line-clustered tokens out.
func (h *CaptureHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	var req tokensRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ImageWidth <= 0 || req.ImageHeight <= 0 {
		writeError(w, http.StatusBadRequest, "image dimensions must be positive")
		return
	}

	tokens := h.svc.RecognizeTokens(req.Observations, req.ImageWidth, req.ImageHeight)
	writeJSON(w, http.StatusOK, tokensResponse{Tokens: tokens})
}

type contextRequest struct {
	tokensRequest
	SelectedIndex int `json:"selected_index"`
}

type contextResponse struct {
	Context string `json:"context"`
}

// Context handles POST /v1/capture/context: rebuilds tokens and returns
// the text context window around the selected one.
func (h *CaptureHandler) Context(w http.ResponseWriter, r *http.Request) {
	var req contextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ImageWidth <= 0 || req.ImageHeight <= 0 {
		writeError(w, http.StatusBadRequest, "image dimensions must be positive")
		return
	}

	tokens := h.svc.RecognizeTokens(req.Observations, req.ImageWidth, req.ImageHeight)
	if req.SelectedIndex < 0 || req.SelectedIndex >= len(tokens) {
		writeError(w, http.StatusBadRequest, "selected_index out of range")
		return
	}

	ctx := h.svc.ContextWindow(tokens[req.SelectedIndex], tokens)
	writeJSON(w, http.StatusOK, contextResponse{Context: ctx})
}

type savePayload struct {
	Observations  []domain.Observation `json:"observations"`
	SelectedIndex int                  `json:"selected_index"`
	ArticleMode   bool                 `json:"article_mode"`
	FolderID      *string              `json:"folder_id"`
	SourceLabel   *string              `json:"source_label"`
}

type saveResponse struct {
	Term    termResponse `json:"term"`
	Created bool         `json:"created"`
	Context string       `json:"context"`
}

// Save handles POST /v1/capture/save: a multipart request with the screenshot
// under "image" and the capture parameters as JSON under "payload". Runs
// the full pipeline and upserts the vocabulary entry.
func (h *CaptureHandler) Save(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	var payload savePayload
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image")
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "undecodable image")
		return
	}

	var folderID *uuid.UUID
	if payload.FolderID != nil {
		id, err := uuid.Parse(*payload.FolderID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid folder_id")
			return
		}
		folderID = &id
	}

	result, err := h.svc.SaveCapture(r.Context(), capture.SaveCaptureInput{
		Image:         img,
		Observations:  payload.Observations,
		SelectedIndex: payload.SelectedIndex,
		ArticleMode:   payload.ArticleMode,
		FolderID:      folderID,
		SourceLabel:   payload.SourceLabel,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, saveResponse{
		Term:    toTermResponse(result.Term),
		Created: result.Created,
		Context: result.Context,
	})
}
