package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// TermHistory returns a term's review log, newest first, capped at limit
// (the queue limit when limit is not positive). The term must exist.
func (s *Service) TermHistory(ctx context.Context, termID uuid.UUID, limit int) ([]domain.ReviewLog, error) {
	if _, err := s.terms.GetByID(ctx, termID); err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	if limit <= 0 {
		limit = s.queueLimit
	}

	logs, err := s.reviews.ListByTerm(ctx, termID, limit)
	if err != nil {
		return nil, fmt.Errorf("list review logs: %w", err)
	}

	return logs, nil
}
