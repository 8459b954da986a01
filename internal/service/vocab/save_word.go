package vocab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// SaveWordResult reports the outcome of a SaveWord call.
type SaveWordResult struct {
	Term    *domain.Term
	Created bool
}

// SaveWord upserts a vocabulary entry keyed by its (pos, lemma) pair.
//
// An existing entry gets its primary form unconditionally replaced (a
// freshly computed display form always wins) while enrichment fields are
// overwritten only when the new value is non-empty, so a failed enrichment
// never erases previously captured data. The folder reference is always
// reassigned to the currently selected folder.
//
// An occurrence is recorded only when the source and target languages
// differ; identical languages mean dictionary lookup mode and nothing is
// archived. The whole operation runs in one transaction: either the term
// and its occurrence both land, or neither does.
func (s *Service) SaveWord(ctx context.Context, input SaveWordInput) (*SaveWordResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lemma := domain.NormalizeLemma(input.Lemma)
	if lemma == "" {
		return nil, domain.NewValidationError("lemma", "no letters after normalization")
	}

	if input.FolderID != nil {
		if _, err := s.folders.GetByID(ctx, *input.FolderID); err != nil {
			return nil, fmt.Errorf("check folder: %w", err)
		}
	}

	now := time.Now()
	var result SaveWordResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		term, err := s.terms.GetByPosLemma(ctx, input.Pos, lemma)
		switch {
		case err == nil:
			term.Primary = input.Primary
			term.ArticleMode = input.ArticleMode
			term.FolderID = input.FolderID
			term.ApplyEnrichment(input.Enrichment)
			term.UpdatedAt = now

			if err := s.terms.Update(ctx, term); err != nil {
				return fmt.Errorf("update term: %w", err)
			}
			result = SaveWordResult{Term: term, Created: false}

		case errors.Is(err, domain.ErrNotFound):
			term = &domain.Term{
				ID:                 uuid.New(),
				Primary:            input.Primary,
				Lemma:              lemma,
				Pos:                input.Pos,
				Translation:        input.Enrichment.Translation,
				Definition:         input.Enrichment.Definition,
				Example:            input.Enrichment.Example,
				ExampleTranslation: input.Enrichment.ExampleTranslation,
				Etymology:          input.Enrichment.Etymology,
				Synonyms:           input.Enrichment.Synonyms,
				Antonyms:           input.Enrichment.Antonyms,
				ArticleMode:        input.ArticleMode,
				ReviewBox:          1,
				DueDate:            now,
				FolderID:           input.FolderID,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
			if err := s.terms.Create(ctx, term); err != nil {
				return fmt.Errorf("create term: %w", err)
			}
			result = SaveWordResult{Term: term, Created: true}

		default:
			return fmt.Errorf("get term by key: %w", err)
		}

		if input.SourceLanguage != input.TargetLanguage {
			occ := &domain.Occurrence{
				ID:             uuid.New(),
				TermID:         result.Term.ID,
				RawText:        input.Occurrence.RawText,
				Context:        input.Occurrence.Context,
				ScreenshotPath: input.Occurrence.ScreenshotPath,
				CropPath:       input.Occurrence.CropPath,
				SourceLabel:    input.Occurrence.SourceLabel,
				CreatedAt:      now,
			}
			if err := s.occurrences.Create(ctx, occ); err != nil {
				return fmt.Errorf("create occurrence: %w", err)
			}
			result.Term.Occurrences = append(result.Term.Occurrences, *occ)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word saved",
		"lemma", result.Term.Lemma,
		"pos", string(result.Term.Pos),
		"created", result.Created,
	)

	return &result, nil
}
