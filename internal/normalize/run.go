package normalize

import (
	"context"
	"fmt"
	"time"

	"resume-relay/internal/llm"
	"resume-relay/internal/shared/metrics"
	"resume-relay/internal/shared/telemetry"
	"resume-relay/internal/shared/util"
)

// Invocation is one prompt sent to the provider on behalf of an operation.
type Invocation struct {
	Operation Operation
	Provider  llm.Provider
	Model     string
	Prompt    string
}

// Outcome is the caller-visible result. Failure is set only when Source is
// SourceFallback.
type Outcome[T any] struct {
	Value   T
	Source  Source
	Failure Failure
}

// Run invokes the provider and decodes its answer into S. A decoded value is
// passed through convert; any decode failure is absorbed by fallback.
// Only provider failures are returned as errors.
func Run[S, T any](ctx context.Context, inv Invocation, check func(*S) error, convert func(S) T, fallback func() T) (Outcome[T], error) {
	op := string(inv.Operation)

	start := time.Now()
	raw, err := inv.Provider.Generate(ctx, inv.Model, inv.Prompt)
	metrics.ObserveProviderDuration(op, time.Since(start))
	if err != nil {
		kind := llm.KindOf(err)
		metrics.IncProviderError(op, kind)
		telemetry.Error("normalize.provider_failed", map[string]any{
			"operation":   op,
			"model":       inv.Model,
			"kind":        kind,
			"prompt_hash": util.PromptHash(inv.Prompt),
			"error":       err.Error(),
		})
		return Outcome[T]{}, fmt.Errorf("%s: %w", op, err)
	}

	decoded := Decode(Clean(raw), check)
	if !decoded.OK() {
		metrics.IncFallback(op, string(decoded.Failure))
		metrics.IncOperation(op, string(SourceFallback))
		telemetry.Warn("normalize.fallback", map[string]any{
			"operation":   op,
			"reason":      string(decoded.Failure),
			"detail":      decoded.Detail,
			"raw_bytes":   len(raw),
			"prompt_hash": util.PromptHash(inv.Prompt),
		})
		return Outcome[T]{Value: fallback(), Source: SourceFallback, Failure: decoded.Failure}, nil
	}

	metrics.IncOperation(op, string(SourceProvider))
	return Outcome[T]{Value: convert(decoded.Value), Source: SourceProvider}, nil
}
