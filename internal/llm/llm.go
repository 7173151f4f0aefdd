package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider sends a prompt to a generation model and returns its raw text.
type Provider interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

var (
	// ErrProviderUnavailable covers network, auth and timeout failures.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrProviderRejected covers quota and content-policy refusals.
	ErrProviderRejected = errors.New("provider rejected request")
	// ErrInputTooLarge is returned when the prompt exceeds the provider limit.
	ErrInputTooLarge = errors.New("input too large")
	// ErrNotConfigured is returned by the placeholder provider.
	ErrNotConfigured = errors.New("llm provider not configured")
)

// Error classifies a provider failure. Kind is one of the sentinel errors above.
type Error struct {
	Kind      error
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Unavailable wraps err as ErrProviderUnavailable.
func Unavailable(err error, retryable bool) error {
	return &Error{Kind: ErrProviderUnavailable, Retryable: retryable, Err: err}
}

// Rejected wraps err as ErrProviderRejected.
func Rejected(err error) error {
	return &Error{Kind: ErrProviderRejected, Err: err}
}

// TooLarge wraps err as ErrInputTooLarge.
func TooLarge(err error) error {
	return &Error{Kind: ErrInputTooLarge, Err: err}
}

// IsRetryable reports whether err is a transient ErrProviderUnavailable.
func IsRetryable(err error) bool {
	var perr *Error
	if !errors.As(err, &perr) {
		return false
	}
	return perr.Retryable && errors.Is(perr.Kind, ErrProviderUnavailable)
}

// KindOf returns a short label for metrics and logs.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInputTooLarge):
		return "input_too_large"
	case errors.Is(err, ErrProviderRejected):
		return "rejected"
	case errors.Is(err, ErrProviderUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}

// PlaceholderClient stands in when no provider credentials are configured.
type PlaceholderClient struct{}

// Generate always fails with a non-retryable ErrProviderUnavailable.
func (PlaceholderClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	_ = ctx
	_ = model
	_ = prompt
	return "", Unavailable(ErrNotConfigured, false)
}
