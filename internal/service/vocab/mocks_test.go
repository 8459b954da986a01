package vocab

import (
	"context"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

var (
	_ termRepo       = &termRepoMock{}
	_ occurrenceRepo = &occurrenceRepoMock{}
	_ folderRepo     = &folderRepoMock{}
	_ txManager      = &txManagerMock{}
)

type termRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	GetByPosLemmaFunc func(ctx context.Context, pos domain.PartOfSpeech, lemma string) (*domain.Term, error)
	CreateFunc        func(ctx context.Context, t *domain.Term) error
	UpdateFunc        func(ctx context.Context, t *domain.Term) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	FindFunc          func(ctx context.Context, f domain.TermFilter) ([]*domain.Term, int, error)
}

func (m *termRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	if m.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *termRepoMock) GetByPosLemma(ctx context.Context, pos domain.PartOfSpeech, lemma string) (*domain.Term, error) {
	if m.GetByPosLemmaFunc == nil {
		panic("termRepoMock.GetByPosLemmaFunc is nil")
	}
	return m.GetByPosLemmaFunc(ctx, pos, lemma)
}

func (m *termRepoMock) Create(ctx context.Context, t *domain.Term) error {
	if m.CreateFunc == nil {
		panic("termRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, t)
}

func (m *termRepoMock) Update(ctx context.Context, t *domain.Term) error {
	if m.UpdateFunc == nil {
		panic("termRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, t)
}

func (m *termRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("termRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *termRepoMock) Find(ctx context.Context, f domain.TermFilter) ([]*domain.Term, int, error) {
	if m.FindFunc == nil {
		panic("termRepoMock.FindFunc is nil")
	}
	return m.FindFunc(ctx, f)
}

type occurrenceRepoMock struct {
	CreateFunc      func(ctx context.Context, o *domain.Occurrence) error
	ListByTermFunc  func(ctx context.Context, termID uuid.UUID) ([]domain.Occurrence, error)
	ListByTermsFunc func(ctx context.Context, termIDs []uuid.UUID) (map[uuid.UUID][]domain.Occurrence, error)
}

func (m *occurrenceRepoMock) Create(ctx context.Context, o *domain.Occurrence) error {
	if m.CreateFunc == nil {
		panic("occurrenceRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, o)
}

func (m *occurrenceRepoMock) ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Occurrence, error) {
	if m.ListByTermFunc == nil {
		panic("occurrenceRepoMock.ListByTermFunc is nil")
	}
	return m.ListByTermFunc(ctx, termID)
}

func (m *occurrenceRepoMock) ListByTerms(ctx context.Context, termIDs []uuid.UUID) (map[uuid.UUID][]domain.Occurrence, error) {
	if m.ListByTermsFunc == nil {
		panic("occurrenceRepoMock.ListByTermsFunc is nil")
	}
	return m.ListByTermsFunc(ctx, termIDs)
}

type folderRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
}

func (m *folderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	if m.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

// txManagerMock runs the callback directly, no transaction semantics.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
