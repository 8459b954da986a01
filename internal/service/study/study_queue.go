package study

import (
	"context"
	"fmt"
	"time"
)

// QueueResult is the work queue for one study session.
type QueueResult struct {
	Terms         []QueueTerm
	ReviewedToday int
}

// QueueTerm is one due entry in the study queue.
type QueueTerm struct {
	ID      string
	Primary string
	Lemma   string
	Pos     string

	Translation string
	Example     string
	DueDate     time.Time
}

// StudyQueue returns terms due for review, soonest first, capped by the
// configured queue limit, plus the count of reviews already done today.
func (s *Service) StudyQueue(ctx context.Context) (*QueueResult, error) {
	now := time.Now()

	terms, err := s.terms.ListDue(ctx, now, s.queueLimit)
	if err != nil {
		return nil, fmt.Errorf("list due terms: %w", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.scheduler.loc)
	reviewedToday, err := s.reviews.CountSince(ctx, dayStart)
	if err != nil {
		return nil, fmt.Errorf("count reviews today: %w", err)
	}

	queue := make([]QueueTerm, len(terms))
	for i, t := range terms {
		queue[i] = QueueTerm{
			ID:          t.ID.String(),
			Primary:     t.Primary,
			Lemma:       t.Lemma,
			Pos:         string(t.Pos),
			Translation: t.Translation,
			Example:     t.Example,
			DueDate:     t.DueDate,
		}
	}

	return &QueueResult{Terms: queue, ReviewedToday: reviewedToday}, nil
}
