// Package normalize turns raw provider text into typed results, substituting a
// deterministic fallback whenever the text cannot be decoded.
package normalize

import "errors"

var (
	// ErrInputMissing is returned for empty resume text or documents with no text.
	ErrInputMissing = errors.New("input missing")
	// ErrInvalidLanguage is returned when a language code is not a BCP-47 tag.
	ErrInvalidLanguage = errors.New("invalid language code")
)

// Operation names a relay operation. Values double as metric labels.
type Operation string

const (
	OpAnalyzeText     Operation = "analyze-text"
	OpAnalyzeFile     Operation = "analyze-file"
	OpListLanguages   Operation = "list-languages"
	OpTranslateLabels Operation = "translate-labels"
	OpTranslateResume Operation = "translate-resume"
)

// Source records where a result came from.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// Failure classifies a decode failure. The zero value means success.
type Failure string

const (
	SyntaxInvalid Failure = "syntax_invalid"
	SchemaInvalid Failure = "schema_invalid"
)
