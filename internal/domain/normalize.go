package domain

import (
	"strings"
	"unicode"
)

// NormalizeLemma prepares a lemma for use as part of the (pos, lemma) key:
// lowercased, trimmed of whitespace and then of surrounding punctuation.
func NormalizeLemma(lemma string) string {
	s := strings.ToLower(lemma)
	s = strings.TrimSpace(s)
	return strings.TrimFunc(s, unicode.IsPunct)
}

// CleanWord strips everything but letters and digits from both ends of a
// recognized word. The interior is left untouched so hyphens and
// apostrophes survive ("well-known", "don't").
func CleanWord(raw string) string {
	return strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// HasLetter reports whether s contains at least one letter. Tokens without
// a letter are recognition noise and are never constructed.
func HasLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}
