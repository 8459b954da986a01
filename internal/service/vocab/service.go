// Package vocab implements vocabulary entry business logic: the upsert
// flow that deduplicates terms by their (pos, lemma) key, term listing,
// and deletion.
package vocab

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	GetByPosLemma(ctx context.Context, pos domain.PartOfSpeech, lemma string) (*domain.Term, error)
	Create(ctx context.Context, t *domain.Term) error
	Update(ctx context.Context, t *domain.Term) error
	Delete(ctx context.Context, id uuid.UUID) error
	Find(ctx context.Context, f domain.TermFilter) ([]*domain.Term, int, error)
}

type occurrenceRepo interface {
	Create(ctx context.Context, o *domain.Occurrence) error
	ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Occurrence, error)
	ListByTerms(ctx context.Context, termIDs []uuid.UUID) (map[uuid.UUID][]domain.Occurrence, error)
}

type folderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary business logic.
type Service struct {
	terms       termRepo
	occurrences occurrenceRepo
	folders     folderRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	occurrences occurrenceRepo,
	folders folderRepo,
	tx txManager,
) *Service {
	return &Service{
		terms:       terms,
		occurrences: occurrences,
		folders:     folders,
		tx:          tx,
		log:         log.With("service", "vocab"),
	}
}
