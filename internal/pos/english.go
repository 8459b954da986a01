package pos

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// EnglishTagger tags English words with prose's Penn Treebank tagger and
// lemmatizes them with golem's English dictionary.
type EnglishTagger struct {
	lemmatizer *golem.Lemmatizer
}

func NewEnglishTagger() (*EnglishTagger, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &EnglishTagger{lemmatizer: lemmatizer}, nil
}

// Tag implements Tagger. Penn tags collapse to the tagger-neutral
// vocabulary: VB* verbs, JJ* adjectives, NN* nouns, IN prepositions,
// CC conjunctions.
func (t *EnglishTagger) Tag(word string) (Tagging, bool) {
	if word == "" {
		return Tagging{}, false
	}

	doc, err := prose.NewDocument(word,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return Tagging{}, false
	}

	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return Tagging{}, false
	}

	// Single-word classification: only the first token counts. An
	// out-of-dictionary word lemmatizes to itself, which matches the
	// guesser's fallback anyway.
	return Tagging{
		Tag:   coarseTag(tokens[0].Tag),
		Lemma: t.lemmatizer.Lemma(strings.ToLower(word)),
	}, true
}

func coarseTag(penn string) string {
	switch {
	case strings.HasPrefix(penn, "VB"):
		return "verb"
	case strings.HasPrefix(penn, "JJ"):
		return "adjective"
	case strings.HasPrefix(penn, "NN"):
		return "noun"
	case penn == "IN":
		return "preposition"
	case penn == "CC":
		return "conjunction"
	default:
		return strings.ToLower(penn)
	}
}
