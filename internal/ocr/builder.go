// Package ocr turns raw text-recognition observations into ordered,
// line-clustered word tokens and extracts textual and visual context
// windows around a selected token. Everything here is a pure function
// over in-memory values; malformed recognizer output is filtered, never
// surfaced as an error.
package ocr

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// lineThreshold is the maximum |yCenter| distance (normalized
// coordinates, roughly 1.5% of image height) for an observation to join
// an existing line cluster.
const lineThreshold = 0.015

type lineCluster struct {
	yCenter      float64
	observations []domain.Observation
}

// BuildTokens converts unordered recognizer observations into a flat
// token sequence ordered by (lineID, then left-to-right). Observations
// are clustered into visual lines by vertical center proximity,
// multi-word observations are split into per-word tokens with
// character-proportional sub-boxes, and tokens without a letter are
// dropped. Empty input yields empty output.
func BuildTokens(observations []domain.Observation, imageWidth, imageHeight float64) []domain.RecognizedToken {
	// Streaming clustering: each join averages the cluster center with
	// the newcomer's center. This is a pairwise average, not a true
	// running mean, so the result depends on input order. That is the
	// behavior the rest of the pipeline is tuned to; do not replace it
	// with a proper incremental mean.
	var clusters []lineCluster
	for _, obs := range observations {
		if obs.Text == "" {
			continue
		}
		yCenter := obs.BoundingBox.YCenter()

		assigned := false
		for i := range clusters {
			if abs(clusters[i].yCenter-yCenter) < lineThreshold {
				clusters[i].observations = append(clusters[i].observations, obs)
				clusters[i].yCenter = (clusters[i].yCenter + yCenter) / 2
				assigned = true
				break
			}
		}
		if !assigned {
			clusters = append(clusters, lineCluster{yCenter: yCenter, observations: []domain.Observation{obs}})
		}
	}

	// The recognizer's y axis points up, so the largest center is the
	// topmost visual line and gets lineID 0.
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].yCenter > clusters[j].yCenter
	})

	var tokens []domain.RecognizedToken
	for lineID, cluster := range clusters {
		obs := cluster.observations
		sort.SliceStable(obs, func(i, j int) bool {
			return obs[i].BoundingBox.X < obs[j].BoundingBox.X
		})

		for _, o := range obs {
			tokens = append(tokens, splitObservation(o, lineID, imageWidth, imageHeight)...)
		}
	}
	return tokens
}

// splitObservation emits one token per surviving word of an observation.
// Single-word observations keep the whole box; multi-word observations
// get sub-boxes proportional to character offsets, counting one
// separating space between consecutive words.
func splitObservation(o domain.Observation, lineID int, imageWidth, imageHeight float64) []domain.RecognizedToken {
	words := strings.Fields(o.Text)
	if len(words) <= 1 {
		token, ok := makeToken(o.Text, o.BoundingBox, lineID, o.Confidence, imageWidth, imageHeight)
		if !ok {
			return nil
		}
		return []domain.RecognizedToken{token}
	}

	totalChars := utf8.RuneCountInString(o.Text)
	out := make([]domain.RecognizedToken, 0, len(words))
	charOffset := 0
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		startFraction := float64(charOffset) / float64(totalChars)
		widthFraction := float64(wordLen) / float64(totalChars)
		charOffset += wordLen + 1

		token, ok := makeToken(word, subBox(o.BoundingBox, startFraction, widthFraction), lineID, o.Confidence, imageWidth, imageHeight)
		if !ok {
			continue
		}
		out = append(out, token)
	}
	return out
}

func makeToken(raw string, box domain.RectNorm, lineID int, confidence, imageWidth, imageHeight float64) (domain.RecognizedToken, bool) {
	cleaned := domain.CleanWord(raw)
	if cleaned == "" || !domain.HasLetter(cleaned) {
		return domain.RecognizedToken{}, false
	}

	return domain.RecognizedToken{
		ID:             uuid.New(),
		Text:           cleaned,
		NormalizedText: domain.NormalizeLemma(cleaned),
		BoundingBox:    PixelRect(box, imageWidth, imageHeight),
		LineID:         lineID,
		Confidence:     confidence,
	}, true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
