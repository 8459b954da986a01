package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/service/study"
)

type studyService interface {
	StudyQueue(ctx context.Context) (*study.QueueResult, error)
	ReviewTerm(ctx context.Context, termID uuid.UUID, grade domain.ReviewGrade) (*domain.Term, error)
	TermHistory(ctx context.Context, termID uuid.UUID, limit int) ([]domain.ReviewLog, error)
}

// StudyHandler serves the review queue and review submission endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type queueTermResponse struct {
	ID          string    `json:"id"`
	Primary     string    `json:"primary"`
	Lemma       string    `json:"lemma"`
	Pos         string    `json:"pos"`
	Translation string    `json:"translation,omitempty"`
	Example     string    `json:"example,omitempty"`
	DueDate     time.Time `json:"due_date"`
}

type queueResponse struct {
	Terms         []queueTermResponse `json:"terms"`
	ReviewedToday int                 `json:"reviewed_today"`
}

// Queue handles GET /v1/study/queue.
func (h *StudyHandler) Queue(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.StudyQueue(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := queueResponse{
		Terms:         make([]queueTermResponse, len(result.Terms)),
		ReviewedToday: result.ReviewedToday,
	}
	for i, t := range result.Terms {
		resp.Terms[i] = queueTermResponse{
			ID:          t.ID,
			Primary:     t.Primary,
			Lemma:       t.Lemma,
			Pos:         t.Pos,
			Translation: t.Translation,
			Example:     t.Example,
			DueDate:     t.DueDate,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type reviewRequest struct {
	TermID string `json:"term_id"`
	Grade  string `json:"grade"`
}

type reviewResponse struct {
	TermID  string    `json:"term_id"`
	DueDate time.Time `json:"due_date"`
}

// Review handles POST /v1/study/reviews.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	termID, err := uuid.Parse(req.TermID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid term_id")
		return
	}

	term, err := h.svc.ReviewTerm(r.Context(), termID, domain.ReviewGrade(req.Grade))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{
		TermID:  term.ID.String(),
		DueDate: term.DueDate,
	})
}

type reviewLogResponse struct {
	ID         string    `json:"id"`
	Grade      string    `json:"grade"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// History handles GET /v1/terms/{id}/reviews.
func (h *StudyHandler) History(w http.ResponseWriter, r *http.Request) {
	termID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid term id")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	logs, err := h.svc.TermHistory(r.Context(), termID, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]reviewLogResponse, len(logs))
	for i, rl := range logs {
		resp[i] = reviewLogResponse{
			ID:         rl.ID.String(),
			Grade:      string(rl.Grade),
			ReviewedAt: rl.ReviewedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string][]reviewLogResponse{"reviews": resp})
}
