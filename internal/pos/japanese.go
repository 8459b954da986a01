package pos

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// JapaneseTagger tags Japanese words with kagome's IPA-dictionary
// morphological analyzer.
type JapaneseTagger struct {
	tokenizer *tokenizer.Tokenizer
}

func NewJapaneseTagger() (*JapaneseTagger, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("build kagome tokenizer: %w", err)
	}
	return &JapaneseTagger{tokenizer: t}, nil
}

// Tag implements Tagger. IPA part-of-speech classes collapse to the
// tagger-neutral vocabulary; particles and conjunctions both mark
// phrase material.
func (t *JapaneseTagger) Tag(word string) (Tagging, bool) {
	if word == "" {
		return Tagging{}, false
	}

	tokens := t.tokenizer.Tokenize(word)
	if len(tokens) == 0 {
		return Tagging{}, false
	}

	first := tokens[0]
	features := first.POS()
	if len(features) == 0 {
		return Tagging{}, false
	}

	tagging := Tagging{Tag: coarseIPAClass(features[0])}
	if base, ok := first.BaseForm(); ok && base != "*" {
		tagging.Lemma = base
	}
	return tagging, true
}

func coarseIPAClass(class string) string {
	switch class {
	case "動詞":
		return "verb"
	case "形容詞":
		return "adjective"
	case "名詞":
		return "noun"
	case "助詞":
		return "preposition"
	case "接続詞":
		return "conjunction"
	default:
		return class
	}
}
