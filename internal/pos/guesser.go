// Package pos classifies single recognized words into the closed
// part-of-speech set and picks their dictionary lemma, on top of a
// pluggable linguistic tagger.
package pos

import (
	"strings"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Tagging is one coarse lexical-class result for a word. Tag uses the
// tagger-neutral vocabulary "verb", "adjective", "noun", "preposition",
// "conjunction"; anything else maps to the catch-all category.
type Tagging struct {
	Tag   string
	Lemma string
}

// Tagger produces at most one tagging for a single word. Implementations
// exist for English (prose + golem) and Japanese (kagome); ok=false
// means the word could not be tagged at all.
type Tagger interface {
	Tag(word string) (Tagging, bool)
}

// Guess is the classification result for one word.
type Guess struct {
	Pos   domain.PartOfSpeech
	Lemma string
}

// Guesser maps a tagger's output space onto the 5-value POS set.
// It is built for single-token input; multi-word strings are not
// aggregated, only the first tagging counts.
type Guesser struct {
	tagger Tagger
}

func NewGuesser(tagger Tagger) *Guesser {
	return &Guesser{tagger: tagger}
}

// GuessWord classifies one word. Surrounding punctuation is trimmed
// before tagging. A missing tag degrades to PartOfSpeechOther and a
// missing lemma falls back to the lowercased cleaned input; there is no
// error path.
func (g *Guesser) GuessWord(word string) Guess {
	clean := domain.CleanWord(word)
	fallback := strings.ToLower(clean)

	tagging, ok := g.tagger.Tag(clean)
	if !ok {
		return Guess{Pos: domain.PartOfSpeechOther, Lemma: fallback}
	}

	guess := Guess{Pos: mapTag(tagging.Tag), Lemma: fallback}
	if tagging.Lemma != "" {
		guess.Lemma = strings.ToLower(tagging.Lemma)
	}
	return guess
}

func mapTag(tag string) domain.PartOfSpeech {
	switch tag {
	case "verb":
		return domain.PartOfSpeechVerb
	case "adjective":
		return domain.PartOfSpeechAdjective
	case "noun":
		return domain.PartOfSpeechNoun
	case "preposition", "conjunction":
		// Function words are treated as phrase heads: the interesting
		// unit is the multi-word expression they anchor.
		return domain.PartOfSpeechPhrase
	default:
		return domain.PartOfSpeechOther
	}
}
