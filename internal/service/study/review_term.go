package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// ReviewTerm records a review answer and advances the term's due date.
// The due-date update and the appended review log commit together.
func (s *Service) ReviewTerm(ctx context.Context, termID uuid.UUID, grade domain.ReviewGrade) (*domain.Term, error) {
	if !grade.IsValid() {
		return nil, domain.NewValidationError("grade", "unknown review grade")
	}

	now := time.Now()
	var reviewed *domain.Term

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		term, err := s.terms.GetByID(ctx, termID)
		if err != nil {
			return fmt.Errorf("get term: %w", err)
		}

		term.DueDate = s.scheduler.Next(grade, now)
		term.UpdatedAt = now

		if err := s.terms.Update(ctx, term); err != nil {
			return fmt.Errorf("update term: %w", err)
		}

		rl := &domain.ReviewLog{
			ID:         uuid.New(),
			TermID:     term.ID,
			Grade:      grade,
			ReviewedAt: now,
		}
		if err := s.reviews.Create(ctx, rl); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		reviewed = term
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "term reviewed",
		"term_id", termID.String(),
		"grade", string(grade),
		"due_date", reviewed.DueDate,
	)

	return reviewed, nil
}
