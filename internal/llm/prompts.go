package llm

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPrompt is returned for a template name that is not embedded.
var ErrUnknownPrompt = errors.New("unknown prompt template")

var (
	//go:embed prompts/analyze_resume.txt
	promptAnalyzeResume string
	//go:embed prompts/list_languages.txt
	promptListLanguages string
	//go:embed prompts/translate_labels.txt
	promptTranslateLabels string
	//go:embed prompts/translate_resume.txt
	promptTranslateResume string
)

// Prompt template names.
const (
	PromptAnalyzeResume   = "analyze_resume"
	PromptListLanguages   = "list_languages"
	PromptTranslateLabels = "translate_labels"
	PromptTranslateResume = "translate_resume"
)

// PromptTemplate returns the prompt template text and whether the name was recognized.
func PromptTemplate(name string) (string, bool) {
	switch name {
	case PromptAnalyzeResume:
		return promptAnalyzeResume, true
	case PromptListLanguages:
		return promptListLanguages, true
	case PromptTranslateLabels:
		return promptTranslateLabels, true
	case PromptTranslateResume:
		return promptTranslateResume, true
	default:
		return "", false
	}
}

// RenderPrompt fills {{KEY}} placeholders in the named template. Values are
// inserted verbatim and never rescanned, so payloads containing braces are safe.
func RenderPrompt(name string, vars map[string]string) (string, error) {
	template, ok := PromptTemplate(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrompt, name)
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template), nil
}
