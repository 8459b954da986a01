package vocab

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// FindTermsResult is a page of terms plus the total match count.
type FindTermsResult struct {
	Terms []*domain.Term
	Total int
}

// FindTerms lists terms matching the filter, newest first, with their
// occurrences attached.
func (s *Service) FindTerms(ctx context.Context, input FindTermsInput) (*FindTermsResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.TermFilter{
		FolderID: input.FolderID,
		Pos:      input.Pos,
		Search:   input.Search,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if input.DueOnly {
		now := time.Now()
		filter.DueBefore = &now
	}

	terms, total, err := s.terms.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find terms: %w", err)
	}

	if len(terms) > 0 {
		ids := make([]uuid.UUID, len(terms))
		for i, t := range terms {
			ids[i] = t.ID
		}
		occs, err := s.occurrences.ListByTerms(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list occurrences: %w", err)
		}
		for _, t := range terms {
			t.Occurrences = occs[t.ID]
		}
	}

	return &FindTermsResult{Terms: terms, Total: total}, nil
}

// GetTerm returns a single term with its occurrences.
func (s *Service) GetTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	term, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	occs, err := s.occurrences.ListByTerm(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}
	term.Occurrences = occs

	return term, nil
}

// DeleteTerm removes a term; its occurrences and review logs cascade.
func (s *Service) DeleteTerm(ctx context.Context, id uuid.UUID) error {
	if err := s.terms.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete term: %w", err)
	}

	s.log.InfoContext(ctx, "term deleted", "term_id", id.String())
	return nil
}
