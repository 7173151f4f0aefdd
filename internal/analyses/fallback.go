package analyses

const fallbackScore = 50

var (
	fallbackKeywords = []string{"resume", "experience", "skills", "education", "work"}

	fallbackSuggestions = []string{
		"Unable to parse AI response properly",
		"Please try again with a different resume format",
		"Ensure your resume has clear sections",
		"Include relevant keywords for your industry",
		"Format your resume consistently",
	}
)

// FallbackResult returns the fixed analysis used when the provider's answer
// cannot be decoded. Each call returns fresh slices.
func FallbackResult() Result {
	return Result{
		Score:       fallbackScore,
		Keywords:    append([]string(nil), fallbackKeywords...),
		Suggestions: append([]string(nil), fallbackSuggestions...),
	}
}
