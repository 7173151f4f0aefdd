package normalize

import (
	"errors"
	"net/http"

	"resume-relay/internal/extract"
	"resume-relay/internal/llm"
)

const (
	ErrorCodeValidation        = "VALIDATION_ERROR"
	ErrorCodeInvalidLanguage   = "INVALID_LANGUAGE"
	ErrorCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrorCodeUnreadable        = "UNREADABLE_DOCUMENT"
	ErrorCodeInputTooLarge     = "INPUT_TOO_LARGE"
	ErrorCodeProviderFailed    = "PROVIDER_FAILED"
	ErrorCodeInternal          = "INTERNAL_ERROR"
)

// Classify maps an operation error to an HTTP status and error code.
// Provider failures share one generic code so callers see a plain
// operation-failed error.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInputMissing):
		return http.StatusBadRequest, ErrorCodeValidation
	case errors.Is(err, ErrInvalidLanguage):
		return http.StatusBadRequest, ErrorCodeInvalidLanguage
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, ErrorCodeUnsupportedFormat
	case errors.Is(err, extract.ErrUnreadable):
		return http.StatusUnprocessableEntity, ErrorCodeUnreadable
	case errors.Is(err, llm.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorCodeInputTooLarge
	case errors.Is(err, llm.ErrProviderRejected), errors.Is(err, llm.ErrProviderUnavailable):
		return http.StatusBadGateway, ErrorCodeProviderFailed
	default:
		return http.StatusInternalServerError, ErrorCodeInternal
	}
}
