package translations

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const translatedLabelsKey = "translatedLabels"

// FallbackLanguages returns the fixed catalog with English display names.
func FallbackLanguages() []LanguageEntry {
	names := display.English.Languages()
	out := make([]LanguageEntry, 0, len(fallbackLanguageCodes))
	for _, code := range fallbackLanguageCodes {
		out = append(out, LanguageEntry{Code: code, Name: names.Name(language.MustParse(code))})
	}
	return out
}

// FallbackLabels returns the English labels unchanged.
func FallbackLabels() LabelSet {
	return DefaultLabels()
}

// FallbackResume returns a deep copy of resumeData without translatedLabels.
func FallbackResume(resumeData map[string]any) map[string]any {
	out := deepCopy(resumeData).(map[string]any)
	delete(out, translatedLabelsKey)
	return out
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}
