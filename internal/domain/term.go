package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Term is a saved vocabulary entry. The pair (Pos, Lemma) is the natural
// key used for deduplication; ID is only a surrogate identifier.
type Term struct {
	ID                 uuid.UUID
	Primary            string
	Lemma              string
	Pos                PartOfSpeech
	Translation        string
	Definition         string
	Example            string
	ExampleTranslation string
	Etymology          string
	Synonyms           string
	Antonyms           string
	ArticleMode        bool
	ReviewBox          int
	DueDate            time.Time
	FolderID           *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Occurrences []Occurrence
}

// TermFilter narrows term listings. Zero-valued fields are ignored.
type TermFilter struct {
	FolderID  *uuid.UUID
	Pos       PartOfSpeech
	DueBefore *time.Time
	Search    string
	Limit     int
	Offset    int
}

// IsDue reports whether the term is eligible for review at the given time.
// A term due exactly at now counts as due.
func (t *Term) IsDue(now time.Time) bool {
	return !t.DueDate.After(now)
}

// SynonymsList splits the comma-joined synonyms field into trimmed items.
func (t *Term) SynonymsList() []string {
	return splitCommaList(t.Synonyms)
}

// AntonymsList splits the comma-joined antonyms field into trimmed items.
func (t *Term) AntonymsList() []string {
	return splitCommaList(t.Antonyms)
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Enrichment is the bundle of fields an enrichment attempt can fill.
// Every field is independently allowed to be empty.
type Enrichment struct {
	Translation        string
	Definition         string
	Example            string
	ExampleTranslation string
	Etymology          string
	Synonyms           string
	Antonyms           string
}

// ApplyEnrichment merges the bundle into the term: only non-empty values
// overwrite, so an empty attempt never erases previously filled fields.
func (t *Term) ApplyEnrichment(e Enrichment) {
	if e.Translation != "" {
		t.Translation = e.Translation
	}
	if e.Definition != "" {
		t.Definition = e.Definition
	}
	if e.Example != "" {
		t.Example = e.Example
	}
	if e.ExampleTranslation != "" {
		t.ExampleTranslation = e.ExampleTranslation
	}
	if e.Etymology != "" {
		t.Etymology = e.Etymology
	}
	if e.Synonyms != "" {
		t.Synonyms = e.Synonyms
	}
	if e.Antonyms != "" {
		t.Antonyms = e.Antonyms
	}
}
