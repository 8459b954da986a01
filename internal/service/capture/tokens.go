package capture

import (
	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/ocr"
)

// RecognizeTokens converts raw recognition observations into ordered,
// line-clustered tokens. Pure: malformed observations are filtered, an
// empty input yields an empty output.
func (s *Service) RecognizeTokens(observations []domain.Observation, imageWidth, imageHeight float64) []domain.RecognizedToken {
	return ocr.BuildTokens(observations, imageWidth, imageHeight)
}

// ContextWindow extracts the text context for a target token: its line
// plus one line above and below, left-to-right within a line, lines
// joined by newlines.
func (s *Service) ContextWindow(target domain.RecognizedToken, tokens []domain.RecognizedToken) string {
	return ocr.ContextWindow(target, tokens)
}
