package ocr

import (
	"sort"
	"strings"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// ContextWindow builds the text context for a token: its own line plus
// the lines directly above and below, each read left to right, joined
// top to bottom with newlines. Missing neighbor lines are simply
// omitted; the token's own line is always present, so the result is
// never empty for a token that came out of BuildTokens.
func ContextWindow(target domain.RecognizedToken, tokens []domain.RecognizedToken) string {
	byLine := groupByLine(tokens)

	var lineIDs []int
	for _, id := range []int{target.LineID - 1, target.LineID, target.LineID + 1} {
		if _, ok := byLine[id]; ok {
			lineIDs = append(lineIDs, id)
		}
	}
	sort.Ints(lineIDs)

	lines := make([]string, 0, len(lineIDs))
	for _, id := range lineIDs {
		lineTokens := byLine[id]
		sort.SliceStable(lineTokens, func(i, j int) bool {
			return lineTokens[i].BoundingBox.X < lineTokens[j].BoundingBox.X
		})

		texts := make([]string, len(lineTokens))
		for i, tok := range lineTokens {
			texts[i] = tok.Text
		}
		lines = append(lines, strings.Join(texts, " "))
	}

	return strings.Join(lines, "\n")
}

func groupByLine(tokens []domain.RecognizedToken) map[int][]domain.RecognizedToken {
	byLine := make(map[int][]domain.RecognizedToken)
	for _, tok := range tokens {
		byLine[tok.LineID] = append(byLine[tok.LineID], tok)
	}
	return byLine
}
