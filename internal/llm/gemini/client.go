package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"resume-relay/internal/llm"
	"resume-relay/internal/shared/telemetry"
)

// Client implements llm.Provider on the Gemini generateContent API.
type Client struct {
	models *genai.Models
}

type options struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

// Option customizes NewClient.
type Option func(*options)

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithAPIVersion overrides the API version segment of request paths.
func WithAPIVersion(v string) Option {
	return func(o *options) { o.apiVersion = v }
}

// WithHTTPClient replaces the transport used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// NewClient constructs a Gemini client. apiKey is required.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GOOGLE_AI_API_KEY is required for Gemini")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    o.baseURL,
			APIVersion: o.apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{models: client.Models}, nil
}

// Generate sends prompt to model and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", classify(err)
	}
	logUsage(model, resp)

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", llm.Rejected(fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason))
	}
	if len(resp.Candidates) == 0 {
		return "", llm.Rejected(errors.New("gemini response missing candidates"))
	}
	switch reason := resp.Candidates[0].FinishReason; reason {
	case genai.FinishReasonSafety, genai.FinishReasonBlocklist, genai.FinishReasonProhibitedContent:
		return "", llm.Rejected(fmt.Errorf("candidate blocked: %s", reason))
	}
	return resp.Text(), nil
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return llm.Rejected(err)
		case apiErr.Code == http.StatusBadRequest && mentionsSize(apiErr.Message):
			return llm.TooLarge(err)
		case apiErr.Code == http.StatusRequestEntityTooLarge:
			return llm.TooLarge(err)
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return llm.Unavailable(err, false)
		case apiErr.Code >= 500:
			return llm.Unavailable(err, true)
		default:
			return llm.Rejected(err)
		}
	}
	if errors.Is(err, context.Canceled) {
		return llm.Unavailable(err, false)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.Unavailable(fmt.Errorf("gemini request timeout: %w", err), true)
	}
	// Transport failures (dial, reset, EOF) are worth another attempt.
	return llm.Unavailable(err, true)
}

func mentionsSize(msg string) bool {
	msg = strings.ToLower(msg)
	for _, hint := range []string{"token", "too long", "exceeds", "too large"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

func logUsage(model string, resp *genai.GenerateContentResponse) {
	fields := map[string]any{"model": model}
	if resp.UsageMetadata != nil {
		fields["prompt_tokens"] = resp.UsageMetadata.PromptTokenCount
		fields["completion_tokens"] = resp.UsageMetadata.CandidatesTokenCount
		fields["total_tokens"] = resp.UsageMetadata.TotalTokenCount
	}
	telemetry.Debug("llm.response", fields)
}

var _ llm.Provider = (*Client)(nil)
