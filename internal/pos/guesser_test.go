package pos

import (
	"testing"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// stubTagger returns a fixed tagging per word.
type stubTagger struct {
	taggings map[string]Tagging
}

func (s *stubTagger) Tag(word string) (Tagging, bool) {
	tagging, ok := s.taggings[word]
	return tagging, ok
}

func TestGuessWordMapping(t *testing.T) {
	t.Parallel()

	tagger := &stubTagger{taggings: map[string]Tagging{
		"running":   {Tag: "verb", Lemma: "run"},
		"efficient": {Tag: "adjective", Lemma: "efficient"},
		"dogs":      {Tag: "noun", Lemma: "dog"},
		"under":     {Tag: "preposition", Lemma: "under"},
		"and":       {Tag: "conjunction", Lemma: "and"},
		"quickly":   {Tag: "adverb", Lemma: "quickly"},
		"Run":       {Tag: "verb", Lemma: "Run"},
	}}
	g := NewGuesser(tagger)

	tests := []struct {
		word      string
		wantPos   domain.PartOfSpeech
		wantLemma string
	}{
		{word: "running", wantPos: domain.PartOfSpeechVerb, wantLemma: "run"},
		{word: "efficient", wantPos: domain.PartOfSpeechAdjective, wantLemma: "efficient"},
		{word: "dogs", wantPos: domain.PartOfSpeechNoun, wantLemma: "dog"},
		{word: "under", wantPos: domain.PartOfSpeechPhrase, wantLemma: "under"},
		{word: "and", wantPos: domain.PartOfSpeechPhrase, wantLemma: "and"},
		{word: "quickly", wantPos: domain.PartOfSpeechOther, wantLemma: "quickly"},
		// Lemma output is lowercased.
		{word: "Run", wantPos: domain.PartOfSpeechVerb, wantLemma: "run"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			got := g.GuessWord(tt.word)
			if got.Pos != tt.wantPos {
				t.Errorf("GuessWord(%q).Pos = %s, want %s", tt.word, got.Pos, tt.wantPos)
			}
			if got.Lemma != tt.wantLemma {
				t.Errorf("GuessWord(%q).Lemma = %q, want %q", tt.word, got.Lemma, tt.wantLemma)
			}
		})
	}
}

func TestGuessWordCleansPunctuationBeforeTagging(t *testing.T) {
	t.Parallel()

	tagger := &stubTagger{taggings: map[string]Tagging{
		"running": {Tag: "verb", Lemma: "run"},
	}}
	g := NewGuesser(tagger)

	got := g.GuessWord("\"running,\"")
	if got.Pos != domain.PartOfSpeechVerb || got.Lemma != "run" {
		t.Errorf("GuessWord punctuated = %+v", got)
	}
}

func TestGuessWordFallbacks(t *testing.T) {
	t.Parallel()

	t.Run("untagged word", func(t *testing.T) {
		t.Parallel()
		g := NewGuesser(&stubTagger{})
		got := g.GuessWord("Zyzzyva!")
		if got.Pos != domain.PartOfSpeechOther {
			t.Errorf("Pos = %s, want other", got.Pos)
		}
		if got.Lemma != "zyzzyva" {
			t.Errorf("Lemma = %q, want lowercased cleaned input", got.Lemma)
		}
	})

	t.Run("tag without lemma", func(t *testing.T) {
		t.Parallel()
		g := NewGuesser(&stubTagger{taggings: map[string]Tagging{
			"Sprinted": {Tag: "verb"},
		}})
		got := g.GuessWord("Sprinted")
		if got.Pos != domain.PartOfSpeechVerb {
			t.Errorf("Pos = %s, want verb", got.Pos)
		}
		if got.Lemma != "sprinted" {
			t.Errorf("Lemma = %q, want fallback to input", got.Lemma)
		}
	})
}
