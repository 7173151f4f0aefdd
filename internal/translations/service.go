package translations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-relay/internal/llm"
	"resume-relay/internal/normalize"
)

// Service runs catalog and translation operations through the provider.
type Service struct {
	Provider llm.Provider
	Model    string
}

// ListLanguages asks the provider for its supported languages.
func (s *Service) ListLanguages(ctx context.Context) (normalize.Outcome[[]LanguageEntry], error) {
	if err := s.ready(); err != nil {
		return normalize.Outcome[[]LanguageEntry]{}, err
	}
	prompt, err := llm.RenderPrompt(llm.PromptListLanguages, nil)
	if err != nil {
		return normalize.Outcome[[]LanguageEntry]{}, err
	}
	inv := s.invocation(normalize.OpListLanguages, prompt)
	return normalize.Run(ctx, inv, checkLanguages, identity[[]LanguageEntry], FallbackLanguages)
}

// TranslateLabels translates the form labels into lang. The result always has
// exactly the DefaultLabels key set.
func (s *Service) TranslateLabels(ctx context.Context, lang string) (normalize.Outcome[LabelSet], error) {
	code, err := ParseLanguage(lang)
	if err != nil {
		return normalize.Outcome[LabelSet]{}, err
	}
	if err := s.ready(); err != nil {
		return normalize.Outcome[LabelSet]{}, err
	}
	labels, err := json.MarshalIndent(defaultLabels, "", "  ")
	if err != nil {
		return normalize.Outcome[LabelSet]{}, fmt.Errorf("encode labels: %w", err)
	}
	prompt, err := llm.RenderPrompt(llm.PromptTranslateLabels, map[string]string{
		"LANGUAGE": code,
		"LABELS":   string(labels),
	})
	if err != nil {
		return normalize.Outcome[LabelSet]{}, err
	}
	check := func(l *LabelSet) error { return checkLabelSet(*l) }
	return normalize.Run(ctx, s.invocation(normalize.OpTranslateLabels, prompt), check, identity[LabelSet], FallbackLabels)
}

// TranslateResume translates the string values of resumeData into targetLang
// and adds a translatedLabels object. Any translatedLabels already present in
// resumeData is ignored.
func (s *Service) TranslateResume(ctx context.Context, resumeData map[string]any, targetLang string) (normalize.Outcome[map[string]any], error) {
	source := FallbackResume(resumeData)
	if len(source) == 0 {
		return normalize.Outcome[map[string]any]{}, fmt.Errorf("resume data is required: %w", normalize.ErrInputMissing)
	}
	code, err := ParseLanguage(targetLang)
	if err != nil {
		return normalize.Outcome[map[string]any]{}, err
	}
	if err := s.ready(); err != nil {
		return normalize.Outcome[map[string]any]{}, err
	}

	payload, err := json.Marshal(source)
	if err != nil {
		return normalize.Outcome[map[string]any]{}, fmt.Errorf("encode resume data: %w", err)
	}
	// Go callers may pass ints, structs or typed slices; the provider answer is
	// compared against the JSON form it was shown.
	var shape map[string]any
	if err := json.Unmarshal(payload, &shape); err != nil {
		return normalize.Outcome[map[string]any]{}, fmt.Errorf("decode resume data: %w", err)
	}
	labels, err := json.Marshal(defaultLabels)
	if err != nil {
		return normalize.Outcome[map[string]any]{}, fmt.Errorf("encode labels: %w", err)
	}
	prompt, err := llm.RenderPrompt(llm.PromptTranslateResume, map[string]string{
		"LANGUAGE":    code,
		"RESUME_DATA": string(payload),
		"LABELS":      string(labels),
	})
	if err != nil {
		return normalize.Outcome[map[string]any]{}, err
	}

	check := func(out *map[string]any) error {
		return checkTranslatedResume(shape, *out)
	}
	fallback := func() map[string]any { return FallbackResume(source) }
	return normalize.Run(ctx, s.invocation(normalize.OpTranslateResume, prompt), check, identity[map[string]any], fallback)
}

func checkTranslatedResume(source, out map[string]any) error {
	if out == nil {
		return errors.New("translated resume is null")
	}
	raw, ok := out[translatedLabelsKey]
	if !ok {
		return fmt.Errorf("missing %s", translatedLabelsKey)
	}
	labels, err := labelsFromAny(raw)
	if err != nil {
		return err
	}
	if err := checkLabelSet(labels); err != nil {
		return fmt.Errorf("%s: %w", translatedLabelsKey, err)
	}

	body := make(map[string]any, len(out))
	for k, v := range out {
		if k != translatedLabelsKey {
			body[k] = v
		}
	}
	return sameShape("", source, body)
}

func (s *Service) ready() error {
	if s.Provider == nil {
		return llm.Unavailable(errors.New("translation provider not configured"), false)
	}
	return nil
}

func (s *Service) invocation(op normalize.Operation, prompt string) normalize.Invocation {
	return normalize.Invocation{
		Operation: op,
		Provider:  s.Provider,
		Model:     s.Model,
		Prompt:    prompt,
	}
}

func identity[T any](v T) T { return v }
