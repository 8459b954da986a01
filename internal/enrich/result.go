// Package enrich fetches contextual translation/definition data for a
// tapped word from an OpenAI-compatible chat-completions endpoint,
// first grounded on an image crop and then falling back to the text
// context window. Both attempts are best-effort: callers treat any
// failure as "no additional data", never as a reason to abort a save.
package enrich

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Result is one enrichment attempt's output. Every field is
// independently allowed to be empty.
type Result struct {
	Translation        string
	Definition         string
	Example            string
	ExampleTranslation string
	Etymology          string
	Synonyms           string
	Antonyms           string
	Pos                domain.PartOfSpeech
	Lemma              string
	Phrase             string
}

// Enrichment converts the result to the domain bundle consumed by the
// upsert flow.
func (r *Result) Enrichment() domain.Enrichment {
	return domain.Enrichment{
		Translation:        r.Translation,
		Definition:         r.Definition,
		Example:            r.Example,
		ExampleTranslation: r.ExampleTranslation,
		Etymology:          r.Etymology,
		Synonyms:           r.Synonyms,
		Antonyms:           r.Antonyms,
	}
}

// payload is the JSON object the model is instructed to return.
type payload struct {
	Translation        string   `json:"translation"`
	Definition         string   `json:"definition"`
	Example            string   `json:"example"`
	ExampleTranslation string   `json:"example_translation"`
	Etymology          string   `json:"etymology"`
	Synonyms           []string `json:"synonyms"`
	Antonyms           []string `json:"antonyms"`
	Pos                string   `json:"pos"`
	Lemma              string   `json:"lemma"`
	Phrase             string   `json:"phrase"`
}

// parseResult decodes a model response into a Result. Markdown code
// fences are stripped first since vision models like to add them.
func parseResult(content string) (*Result, error) {
	raw := stripCodeFence(content)

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode enrichment payload: %w", err)
	}

	return &Result{
		Translation:        p.Translation,
		Definition:         p.Definition,
		Example:            p.Example,
		ExampleTranslation: p.ExampleTranslation,
		Etymology:          p.Etymology,
		Synonyms:           strings.Join(p.Synonyms, ", "),
		Antonyms:           strings.Join(p.Antonyms, ", "),
		Pos:                domain.ParsePartOfSpeech(p.Pos),
		Lemma:              p.Lemma,
		Phrase:             p.Phrase,
	}, nil
}

// stripCodeFence removes a wrapping ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
