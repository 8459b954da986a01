package domain

import "testing"

func TestParsePartOfSpeech(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  PartOfSpeech
	}{
		{input: "verb", want: PartOfSpeechVerb},
		{input: "adjective", want: PartOfSpeechAdjective},
		{input: "noun", want: PartOfSpeechNoun},
		{input: "phrase", want: PartOfSpeechPhrase},
		{input: "other", want: PartOfSpeechOther},
		{input: "adverb", want: PartOfSpeechOther},
		{input: "", want: PartOfSpeechOther},
		{input: "NOUN", want: PartOfSpeechOther},
	}
	for _, tt := range tests {
		if got := ParsePartOfSpeech(tt.input); got != tt.want {
			t.Errorf("ParsePartOfSpeech(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestPartOfSpeechDisplayName(t *testing.T) {
	t.Parallel()

	if got := PartOfSpeechVerb.DisplayName("en"); got != "Verb" {
		t.Errorf("DisplayName(en) = %q", got)
	}
	if got := PartOfSpeechVerb.DisplayName("ja"); got != "動詞" {
		t.Errorf("DisplayName(ja) = %q", got)
	}
	if got := PartOfSpeechOther.DisplayName("fr"); got != "Other" {
		t.Errorf("DisplayName(fr) = %q", got)
	}
}

func TestReviewGradeIsValid(t *testing.T) {
	t.Parallel()

	if !ReviewGradeGotIt.IsValid() || !ReviewGradeAgain.IsValid() {
		t.Error("expected grades to be valid")
	}
	if ReviewGrade("EASY").IsValid() {
		t.Error("unknown grade reported valid")
	}
}
