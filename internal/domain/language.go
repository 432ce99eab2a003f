package domain

import "unicode"

// DetectLanguage guesses the language of a question: any Han character
// selects Chinese, everything else English.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return LangZH
		}
	}
	return LangEN
}
