package highlight

import "github.com/repoview/highlight/language"

// DetectLanguage resolves a file path to a supported language.
// It is a convenience re-export of [language.Detect].
func DetectLanguage(path string) (language.Language, bool) {
	return language.Detect(path)
}
