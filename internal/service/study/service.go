// Package study implements spaced repetition: the due-date scheduler,
// review recording, and the study queue.
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	Update(ctx context.Context, t *domain.Term) error
	ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.Term, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, rl *domain.ReviewLog) error
	ListByTerm(ctx context.Context, termID uuid.UUID, limit int) ([]domain.ReviewLog, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic.
type Service struct {
	terms      termRepo
	reviews    reviewLogRepo
	tx         txManager
	scheduler  *Scheduler
	queueLimit int
	log        *slog.Logger
}

// NewService creates a new study service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	reviews reviewLogRepo,
	tx txManager,
	scheduler *Scheduler,
	queueLimit int,
) *Service {
	if queueLimit <= 0 {
		queueLimit = 100
	}
	return &Service{
		terms:      terms,
		reviews:    reviews,
		tx:         tx,
		scheduler:  scheduler,
		queueLimit: queueLimit,
		log:        log.With("service", "study"),
	}
}
