package enrich

import "fmt"

// systemPrompt instructs the model to analyze the tapped word in its
// specific context and answer with a single JSON object.
func systemPrompt(sourceName, targetName, word string) string {
	return fmt.Sprintf(`You are a vocabulary assistant. The user tapped the %s word "%s" in text they are reading.

Analyze this word IN ITS SPECIFIC CONTEXT. Return a JSON object:
- "translation": the %s translation appropriate for this context
- "definition": 1-sentence explanation in simple %s of this specific meaning/nuance
- "example": example sentence in %s using the word with this same meaning
- "example_translation": the %s translation of that example sentence
- "etymology": one short sentence on the word's origin, or ""
- "synonyms": up to 3 %s synonyms for this meaning, as a JSON array
- "antonyms": up to 3 %s antonyms for this meaning, as a JSON array
- "pos": one of "verb", "adjective", "noun", "phrase", "other"
- "lemma": base/dictionary form in %s
- "phrase": if the word is part of a multi-word expression (phrasal verb, idiom), the full phrase; otherwise ""

IMPORTANT: Detect phrases. e.g. "take" in "take off your shoes" means phrase "take off".
Respond with only the JSON object.`,
		sourceName, word, targetName, sourceName, sourceName, targetName,
		sourceName, sourceName, sourceName)
}

// languageName expands the codes the app supports; unknown codes pass
// through so the prompt still reads sensibly.
func languageName(code string) string {
	switch code {
	case "en":
		return "English"
	case "ja":
		return "Japanese"
	default:
		return code
	}
}
