package capture

import (
	"context"
	"image"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/enrich"
)

// enrichWord performs the two-stage enrichment: an image-grounded attempt
// when a crop exists, then a text-only fallback when the vision attempt
// failed or produced no translation. Field-wise merge prefers the text
// fallback's non-empty fields while retaining vision-only fields.
//
// Both attempts are best-effort: failures degrade to an empty bundle and
// the save proceeds with whatever was gathered.
func (s *Service) enrichWord(
	ctx context.Context,
	word string,
	crop image.Image,
	hasCrop bool,
	contextWindow string,
) (enrichment domain.Enrichment, phraseText string, posOverride domain.PartOfSpeech) {
	if s.enricher == nil || s.langs.Source == s.langs.Target {
		return domain.Enrichment{}, "", ""
	}

	var vision *enrich.Result
	if hasCrop {
		var err error
		vision, err = s.enricher.AnalyzeVision(ctx, word, crop, s.langs.Source, s.langs.Target)
		if err != nil {
			s.log.WarnContext(ctx, "vision enrichment failed", "word", word, "error", err)
			vision = nil
		}
	}

	var text *enrich.Result
	if vision == nil || vision.Translation == "" {
		var err error
		text, err = s.enricher.AnalyzeText(ctx, word, contextWindow, s.langs.Source, s.langs.Target)
		if err != nil {
			s.log.WarnContext(ctx, "text enrichment failed", "word", word, "error", err)
			text = nil
		}
	}

	merged := enrich.Merge(vision, text)
	if merged == nil {
		return domain.Enrichment{}, "", ""
	}

	if merged.Pos.IsValid() {
		posOverride = merged.Pos
	}
	return merged.Enrichment(), merged.Phrase, posOverride
}
