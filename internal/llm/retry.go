package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	retry "github.com/sethvargo/go-retry"

	"resume-relay/internal/shared/telemetry"
)

const defaultRetryBaseDelay = 300 * time.Millisecond

// RetryOptions bounds a provider call.
type RetryOptions struct {
	// Timeout applies to each attempt. Zero disables it.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after the first one.
	MaxRetries uint64
	// BaseDelay seeds the exponential backoff.
	BaseDelay time.Duration
	// MaxPromptBytes rejects larger prompts with ErrInputTooLarge. Zero disables it.
	MaxPromptBytes int
}

type retryingProvider struct {
	base Provider
	opts RetryOptions
}

// WithRetry wraps base with a per-attempt timeout and bounded retries.
// Only retryable ErrProviderUnavailable failures are retried.
func WithRetry(base Provider, opts RetryOptions) Provider {
	if base == nil {
		return nil
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = defaultRetryBaseDelay
	}
	return retryingProvider{base: base, opts: opts}
}

func (r retryingProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	if r.opts.MaxPromptBytes > 0 && len(prompt) > r.opts.MaxPromptBytes {
		return "", TooLarge(fmt.Errorf("prompt is %d bytes, limit is %d", len(prompt), r.opts.MaxPromptBytes))
	}

	backoff := retry.WithMaxRetries(r.opts.MaxRetries, retry.NewExponential(r.opts.BaseDelay))
	attempt := 0
	text, err := retry.DoValue(ctx, backoff, func(ctx context.Context) (string, error) {
		attempt++
		text, err := r.generateOnce(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		if IsRetryable(err) {
			telemetry.Warn("llm.retry", map[string]any{
				"attempt": attempt,
				"model":   model,
				"error":   err.Error(),
			})
			return "", retry.RetryableError(err)
		}
		return "", err
	})
	if err != nil {
		var perr *Error
		if !errors.As(err, &perr) {
			// ctx ended between attempts.
			return "", Unavailable(err, false)
		}
		return "", err
	}
	return text, nil
}

func (r retryingProvider) generateOnce(ctx context.Context, model, prompt string) (string, error) {
	callCtx := ctx
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	text, err := r.base.Generate(callCtx, model, prompt)
	if err == nil {
		return text, nil
	}

	var perr *Error
	if errors.As(err, &perr) {
		return "", err
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return "", Unavailable(fmt.Errorf("attempt timed out after %s: %w", r.opts.Timeout, err), true)
	}
	if ctx.Err() != nil {
		return "", Unavailable(err, false)
	}
	return "", Unavailable(err, true)
}
