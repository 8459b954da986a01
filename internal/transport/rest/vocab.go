package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/service/vocab"
)

// vocabService defines the minimal interface needed by VocabHandler.
type vocabService interface {
	FindTerms(ctx context.Context, input vocab.FindTermsInput) (*vocab.FindTermsResult, error)
	GetTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	DeleteTerm(ctx context.Context, id uuid.UUID) error
}

// VocabHandler serves vocabulary REST endpoints.
type VocabHandler struct {
	svc vocabService
	log *slog.Logger
}

// NewVocabHandler creates a VocabHandler.
func NewVocabHandler(svc vocabService, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{svc: svc, log: logger.With("handler", "vocab")}
}

type termResponse struct {
	ID                 string               `json:"id"`
	Primary            string               `json:"primary"`
	Lemma              string               `json:"lemma"`
	Pos                string               `json:"pos"`
	Translation        string               `json:"translation,omitempty"`
	Definition         string               `json:"definition,omitempty"`
	Example            string               `json:"example,omitempty"`
	ExampleTranslation string               `json:"example_translation,omitempty"`
	Etymology          string               `json:"etymology,omitempty"`
	Synonyms           []string             `json:"synonyms,omitempty"`
	Antonyms           []string             `json:"antonyms,omitempty"`
	ReviewBox          int                  `json:"review_box"`
	DueDate            time.Time            `json:"due_date"`
	FolderID           *string              `json:"folder_id,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	Occurrences        []occurrenceResponse `json:"occurrences,omitempty"`
}

type occurrenceResponse struct {
	ID             string    `json:"id"`
	RawText        string    `json:"raw_text"`
	Context        string    `json:"context"`
	ScreenshotPath string    `json:"screenshot_path"`
	CropPath       *string   `json:"crop_path,omitempty"`
	SourceLabel    *string   `json:"source_label,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type termListResponse struct {
	Terms []termResponse `json:"terms"`
	Total int            `json:"total"`
}

func toTermResponse(t *domain.Term) termResponse {
	resp := termResponse{
		ID:                 t.ID.String(),
		Primary:            t.Primary,
		Lemma:              t.Lemma,
		Pos:                string(t.Pos),
		Translation:        t.Translation,
		Definition:         t.Definition,
		Example:            t.Example,
		ExampleTranslation: t.ExampleTranslation,
		Etymology:          t.Etymology,
		Synonyms:           t.SynonymsList(),
		Antonyms:           t.AntonymsList(),
		ReviewBox:          t.ReviewBox,
		DueDate:            t.DueDate,
		CreatedAt:          t.CreatedAt,
	}
	if t.FolderID != nil {
		id := t.FolderID.String()
		resp.FolderID = &id
	}
	for _, o := range t.Occurrences {
		resp.Occurrences = append(resp.Occurrences, occurrenceResponse{
			ID:             o.ID.String(),
			RawText:        o.RawText,
			Context:        o.Context,
			ScreenshotPath: o.ScreenshotPath,
			CropPath:       o.CropPath,
			SourceLabel:    o.SourceLabel,
			CreatedAt:      o.CreatedAt,
		})
	}
	return resp
}

// List handles GET /v1/terms with filter query parameters.
func (h *VocabHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := vocab.FindTermsInput{
		Pos:     domain.PartOfSpeech(q.Get("pos")),
		DueOnly: q.Get("due") == "true",
		Search:  q.Get("search"),
	}

	if v := q.Get("folder_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid folder_id")
			return
		}
		input.FolderID = &id
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		input.Offset = n
	}

	result, err := h.svc.FindTerms(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := termListResponse{Terms: make([]termResponse, len(result.Terms)), Total: result.Total}
	for i, t := range result.Terms {
		resp.Terms[i] = toTermResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/terms/{id}.
func (h *VocabHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid term id")
		return
	}

	term, err := h.svc.GetTerm(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// Delete handles DELETE /v1/terms/{id}.
func (h *VocabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid term id")
		return
	}

	if err := h.svc.DeleteTerm(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
