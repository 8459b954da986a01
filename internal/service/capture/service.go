// Package capture orchestrates the token-to-vocabulary pipeline: build
// tokens from raw recognition output, extract context, classify, compute
// the primary form, enrich, and hand the result to the vocabulary upsert.
package capture

import (
	"context"
	"image"
	"log/slog"

	"github.com/wordlens/wordlens-backend/internal/config"
	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/enrich"
	"github.com/wordlens/wordlens-backend/internal/pos"
	"github.com/wordlens/wordlens-backend/internal/service/vocab"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordSaver interface {
	SaveWord(ctx context.Context, input vocab.SaveWordInput) (*vocab.SaveWordResult, error)
}

// PosGuesser classifies a single word for one source language.
type PosGuesser interface {
	GuessWord(word string) pos.Guess
}

type enrichClient interface {
	AnalyzeVision(ctx context.Context, word string, crop image.Image, sourceLang, targetLang string) (*enrich.Result, error)
	AnalyzeText(ctx context.Context, word, contextWindow, sourceLang, targetLang string) (*enrich.Result, error)
}

type mediaStore interface {
	SaveScreenshot(img image.Image) (string, error)
	SaveCrop(img image.Image) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the capture pipeline.
type Service struct {
	saver    wordSaver
	guessers map[string]PosGuesser
	enricher enrichClient
	media    mediaStore
	langs    config.LanguagesConfig
	log      *slog.Logger
}

// NewService creates a new capture service. guessers maps a source
// language code to its tagger-backed guesser; a language with no guesser
// falls back to PartOfSpeechOther with the cleaned word as lemma.
// enricher may be nil when enrichment is not configured.
func NewService(
	log *slog.Logger,
	saver wordSaver,
	guessers map[string]PosGuesser,
	enricher enrichClient,
	media mediaStore,
	langs config.LanguagesConfig,
) *Service {
	return &Service{
		saver:    saver,
		guessers: guessers,
		enricher: enricher,
		media:    media,
		langs:    langs,
		log:      log.With("service", "capture"),
	}
}

// guessWord classifies a word for the given source language.
func (s *Service) guessWord(language, word string) pos.Guess {
	if g, ok := s.guessers[language]; ok {
		return g.GuessWord(word)
	}

	cleaned := domain.NormalizeLemma(domain.CleanWord(word))
	return pos.Guess{Pos: domain.PartOfSpeechOther, Lemma: cleaned}
}
