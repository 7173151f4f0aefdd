package translations

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"resume-relay/internal/normalize"
)

// LanguageEntry is one element of the supported-language catalog.
type LanguageEntry struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// fallbackLanguageCodes is the catalog served when the provider's list cannot be decoded.
var fallbackLanguageCodes = []string{"en", "es", "fr", "de", "hi", "ja", "zh", "ar", "pt", "ru"}

// ParseLanguage validates a BCP-47 language code and returns its canonical form.
func ParseLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("language code is required: %w", normalize.ErrInvalidLanguage)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%q: %w", code, normalize.ErrInvalidLanguage)
	}
	return tag.String(), nil
}
