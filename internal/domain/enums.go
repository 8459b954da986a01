package domain

// PartOfSpeech is the closed grammatical category set used for term keys.
// Together with the lemma it forms the natural key of a Term.
type PartOfSpeech string

const (
	PartOfSpeechVerb      PartOfSpeech = "verb"
	PartOfSpeechAdjective PartOfSpeech = "adjective"
	PartOfSpeechNoun      PartOfSpeech = "noun"
	PartOfSpeechPhrase    PartOfSpeech = "phrase"
	PartOfSpeechOther     PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechNoun,
		PartOfSpeechPhrase, PartOfSpeechOther:
		return true
	}
	return false
}

// ParsePartOfSpeech maps an arbitrary string to a PartOfSpeech,
// falling back to "other" for anything outside the closed set.
func ParsePartOfSpeech(s string) PartOfSpeech {
	p := PartOfSpeech(s)
	if p.IsValid() {
		return p
	}
	return PartOfSpeechOther
}

// DisplayName returns the label for the given UI language.
func (p PartOfSpeech) DisplayName(language string) string {
	if language == "ja" {
		switch p {
		case PartOfSpeechVerb:
			return "動詞"
		case PartOfSpeechAdjective:
			return "形容詞"
		case PartOfSpeechNoun:
			return "名詞"
		case PartOfSpeechPhrase:
			return "フレーズ"
		default:
			return "その他"
		}
	}
	switch p {
	case PartOfSpeechVerb:
		return "Verb"
	case PartOfSpeechAdjective:
		return "Adjective"
	case PartOfSpeechNoun:
		return "Noun"
	case PartOfSpeechPhrase:
		return "Phrase"
	default:
		return "Other"
	}
}

// ReviewGrade is the user's answer during a review session.
type ReviewGrade string

const (
	ReviewGradeGotIt ReviewGrade = "GOT_IT"
	ReviewGradeAgain ReviewGrade = "AGAIN"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	return g == ReviewGradeGotIt || g == ReviewGradeAgain
}
