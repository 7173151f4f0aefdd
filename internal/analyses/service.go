package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-relay/internal/extract"
	"resume-relay/internal/llm"
	"resume-relay/internal/normalize"
)

// ExtractFunc pulls plain text out of an uploaded document.
type ExtractFunc func(ctx context.Context, data []byte, mimeType, fileName string) (string, error)

// Service runs ATS analyses through the provider.
type Service struct {
	Provider llm.Provider
	Model    string
	Extract  ExtractFunc
}

// AnalyzeText analyzes raw resume text.
func (s *Service) AnalyzeText(ctx context.Context, resumeText string) (normalize.Outcome[Result], error) {
	if strings.TrimSpace(resumeText) == "" {
		return normalize.Outcome[Result]{}, fmt.Errorf("resume text is required: %w", normalize.ErrInputMissing)
	}
	return s.analyze(ctx, normalize.OpAnalyzeText, resumeText)
}

// AnalyzeFile extracts text from a PDF, DOCX or plain-text upload and analyzes it.
// Unsupported formats fail before the provider is contacted.
func (s *Service) AnalyzeFile(ctx context.Context, data []byte, mimeType, fileName string) (normalize.Outcome[Result], error) {
	if len(data) == 0 {
		return normalize.Outcome[Result]{}, fmt.Errorf("resume file is empty: %w", normalize.ErrInputMissing)
	}
	extractFn := s.Extract
	if extractFn == nil {
		extractFn = extract.ExtractText
	}
	text, err := extractFn(ctx, data, mimeType, fileName)
	if err != nil {
		return normalize.Outcome[Result]{}, err
	}
	if strings.TrimSpace(text) == "" {
		return normalize.Outcome[Result]{}, fmt.Errorf("no text found in %q: %w", fileName, normalize.ErrInputMissing)
	}
	return s.analyze(ctx, normalize.OpAnalyzeFile, text)
}

func (s *Service) analyze(ctx context.Context, op normalize.Operation, text string) (normalize.Outcome[Result], error) {
	if s.Provider == nil {
		return normalize.Outcome[Result]{}, llm.Unavailable(errors.New("analysis provider not configured"), false)
	}
	prompt, err := llm.RenderPrompt(llm.PromptAnalyzeResume, map[string]string{"RESUME_TEXT": text})
	if err != nil {
		return normalize.Outcome[Result]{}, err
	}
	inv := normalize.Invocation{
		Operation: op,
		Provider:  s.Provider,
		Model:     s.Model,
		Prompt:    prompt,
	}
	return normalize.Run(ctx, inv, checkProviderResult, providerResult.toResult, FallbackResult)
}

func checkProviderResult(p *providerResult) error {
	return normalize.Struct(p)
}
