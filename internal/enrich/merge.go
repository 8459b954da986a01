package enrich

// Merge combines the image-grounded attempt with the text-fallback
// attempt field-wise: the fallback's non-empty fields win, fields it
// left empty keep the image-based value. Either argument may be nil;
// both nil yields nil.
func Merge(vision, text *Result) *Result {
	if text == nil {
		return vision
	}
	if vision == nil {
		return text
	}

	merged := *text
	if merged.Translation == "" {
		merged.Translation = vision.Translation
	}
	if merged.Definition == "" {
		merged.Definition = vision.Definition
	}
	if merged.Example == "" {
		merged.Example = vision.Example
	}
	if merged.ExampleTranslation == "" {
		merged.ExampleTranslation = vision.ExampleTranslation
	}
	if merged.Etymology == "" {
		merged.Etymology = vision.Etymology
	}
	if merged.Synonyms == "" {
		merged.Synonyms = vision.Synonyms
	}
	if merged.Antonyms == "" {
		merged.Antonyms = vision.Antonyms
	}
	if merged.Lemma == "" {
		merged.Lemma = vision.Lemma
	}
	if merged.Phrase == "" {
		merged.Phrase = vision.Phrase
	}
	return &merged
}
