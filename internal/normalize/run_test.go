package normalize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-relay/internal/extract"
	"resume-relay/internal/llm"
)

type fakeProvider struct {
	text   string
	err    error
	calls  int
	model  string
	prompt string
}

func (f *fakeProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	f.calls++
	f.model = model
	f.prompt = prompt
	return f.text, f.err
}

type summary struct {
	Score int
	Tags  []string
}

func toSummary(s sample) summary {
	return summary{Score: int(*s.Score), Tags: s.Tags}
}

func fallbackSummary() summary {
	return summary{Score: 50, Tags: []string{"fallback"}}
}

func run(t *testing.T, p llm.Provider) (Outcome[summary], error) {
	t.Helper()
	inv := Invocation{Operation: OpAnalyzeText, Provider: p, Model: "test-model", Prompt: "prompt"}
	return Run(context.Background(), inv, checkSample, toSummary, fallbackSummary)
}

func TestRunProviderResult(t *testing.T) {
	p := &fakeProvider{text: "```json\n{\"score\":80,\"tags\":[\"go\"]}\n```"}

	out, err := run(t, p)

	require.NoError(t, err)
	assert.Equal(t, SourceProvider, out.Source)
	assert.Equal(t, Failure(""), out.Failure)
	assert.Equal(t, summary{Score: 80, Tags: []string{"go"}}, out.Value)
	assert.Equal(t, "test-model", p.model)
	assert.Equal(t, "prompt", p.prompt)
}

func TestRunFallsBackOnProse(t *testing.T) {
	out, err := run(t, &fakeProvider{text: "I cannot process this."})

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, out.Source)
	assert.Equal(t, SyntaxInvalid, out.Failure)
	assert.Equal(t, fallbackSummary(), out.Value)
}

func TestRunFallsBackOnSchemaMismatch(t *testing.T) {
	out, err := run(t, &fakeProvider{text: `{"score":101,"tags":[]}`})

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, out.Source)
	assert.Equal(t, SchemaInvalid, out.Failure)
}

func TestRunSurfacesProviderErrors(t *testing.T) {
	p := &fakeProvider{err: llm.Rejected(errors.New("quota"))}

	_, err := run(t, p)

	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrProviderRejected)
	assert.Contains(t, err.Error(), string(OpAnalyzeText))
	assert.Equal(t, 1, p.calls)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "missing", err: ErrInputMissing, status: http.StatusBadRequest, code: ErrorCodeValidation},
		{name: "language", err: ErrInvalidLanguage, status: http.StatusBadRequest, code: ErrorCodeInvalidLanguage},
		{name: "format", err: extract.ErrUnsupportedFormat, status: http.StatusUnsupportedMediaType, code: ErrorCodeUnsupportedFormat},
		{name: "unreadable", err: extract.ErrUnreadable, status: http.StatusUnprocessableEntity, code: ErrorCodeUnreadable},
		{name: "too large", err: llm.TooLarge(errors.New("big")), status: http.StatusRequestEntityTooLarge, code: ErrorCodeInputTooLarge},
		{name: "rejected", err: llm.Rejected(nil), status: http.StatusBadGateway, code: ErrorCodeProviderFailed},
		{name: "unavailable", err: llm.Unavailable(errors.New("down"), true), status: http.StatusBadGateway, code: ErrorCodeProviderFailed},
		{name: "unknown prompt", err: fmt.Errorf("%w: %q", llm.ErrUnknownPrompt, "x"), status: http.StatusInternalServerError, code: ErrorCodeInternal},
		{name: "other", err: errors.New("boom"), status: http.StatusInternalServerError, code: ErrorCodeInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			status, code := Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}
