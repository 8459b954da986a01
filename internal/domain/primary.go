package domain

import "strings"

// MakePrimary builds the canonical display form of a term from its lemma
// and detected part of speech.
//
// English gets grammatical scaffolding ("to run", "to be efficient",
// "an apple"); every other language returns the bare normalized lemma,
// ignoring pos, article mode, and phrase text.
func MakePrimary(lemma string, pos PartOfSpeech, articleMode bool, phraseText string, language string) string {
	baseLemma := NormalizeLemma(lemma)

	if language != "en" {
		return baseLemma
	}

	switch pos {
	case PartOfSpeechVerb:
		if phraseText != "" {
			return "to " + strings.ToLower(phraseText)
		}
		return "to " + baseLemma

	case PartOfSpeechAdjective:
		return "to be " + baseLemma

	case PartOfSpeechNoun:
		if articleMode {
			return ChooseArticle(baseLemma) + " " + baseLemma
		}
		return baseLemma

	case PartOfSpeechPhrase:
		if phraseText != "" {
			return strings.ToLower(phraseText)
		}
		return baseLemma

	default:
		return baseLemma
	}
}

// ChooseArticle returns the English indefinite article for word:
// "an" when the first letter is a vowel, otherwise "a".
func ChooseArticle(word string) string {
	lower := strings.ToLower(word)
	if lower == "" {
		return "a"
	}
	switch lower[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
