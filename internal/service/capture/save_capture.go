package capture

import (
	"context"
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/ocr"
	"github.com/wordlens/wordlens-backend/internal/service/vocab"
)

// SaveCaptureInput holds the parameters for SaveCapture.
type SaveCaptureInput struct {
	// Image is the decoded source screenshot.
	Image image.Image
	// Observations is the raw recognition output for the screenshot.
	Observations []domain.Observation
	// SelectedIndex picks the target token out of the rebuilt token
	// sequence; token building is deterministic, so the index a client
	// obtained from RecognizeTokens stays valid.
	SelectedIndex int

	ArticleMode bool
	FolderID    *uuid.UUID
	SourceLabel *string
}

// Validate checks structural requirements.
func (i *SaveCaptureInput) Validate() error {
	var errs []domain.FieldError

	if i.Image == nil {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	}
	if len(i.Observations) == 0 {
		errs = append(errs, domain.FieldError{Field: "observations", Message: "required"})
	}
	if i.SelectedIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "selected_index", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SaveCaptureResult reports the saved entry plus the context that was
// captured alongside it.
type SaveCaptureResult struct {
	Term    *domain.Term
	Created bool
	Context string
}

// SaveCapture runs the full pipeline for one selected word: rebuild
// tokens, extract the context window, classify, compute the primary
// form, enrich best-effort, store media, and upsert the vocabulary
// entry. Enrichment failures degrade to empty fields; only the final
// storage write can fail the call.
func (s *Service) SaveCapture(ctx context.Context, input SaveCaptureInput) (*SaveCaptureResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	bounds := input.Image.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())

	tokens := ocr.BuildTokens(input.Observations, imgW, imgH)
	if input.SelectedIndex >= len(tokens) {
		return nil, domain.NewValidationError("selected_index", "out of range")
	}
	target := tokens[input.SelectedIndex]

	contextWindow := ocr.ContextWindow(target, tokens)

	guess := s.guessWord(s.langs.Source, target.Text)
	lemma := guess.Lemma
	if lemma == "" {
		lemma = target.NormalizedText
	}

	crop, hasCrop := ocr.HighlightedCrop(input.Image, target, tokens)

	enrichment, phraseText, posOverride := s.enrichWord(ctx, target.Text, crop, hasCrop, contextWindow)

	// The enrichment model sees the full context and can rescue words
	// the tagger could not classify; a confident tagger result wins.
	partOfSpeech := guess.Pos
	if partOfSpeech == domain.PartOfSpeechOther && posOverride != "" {
		partOfSpeech = posOverride
	}

	primary := domain.MakePrimary(lemma, partOfSpeech, input.ArticleMode, phraseText, s.langs.Source)

	screenshotPath, err := s.media.SaveScreenshot(input.Image)
	if err != nil {
		return nil, fmt.Errorf("save screenshot: %w", err)
	}

	var cropPath *string
	if hasCrop {
		p, err := s.media.SaveCrop(crop)
		if err != nil {
			// A lost crop only degrades the archive, not the save.
			s.log.WarnContext(ctx, "save crop failed", "error", err)
		} else {
			cropPath = &p
		}
	}

	saved, err := s.saver.SaveWord(ctx, vocab.SaveWordInput{
		Primary:        primary,
		Lemma:          lemma,
		Pos:            partOfSpeech,
		ArticleMode:    input.ArticleMode,
		Enrichment:     enrichment,
		FolderID:       input.FolderID,
		SourceLanguage: s.langs.Source,
		TargetLanguage: s.langs.Target,
		Occurrence: vocab.OccurrenceInput{
			RawText:        target.Text,
			Context:        contextWindow,
			ScreenshotPath: screenshotPath,
			CropPath:       cropPath,
			SourceLabel:    input.SourceLabel,
		},
	})
	if err != nil {
		return nil, err
	}

	return &SaveCaptureResult{
		Term:    saved.Term,
		Created: saved.Created,
		Context: contextWindow,
	}, nil
}
