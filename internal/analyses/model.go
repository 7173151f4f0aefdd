package analyses

import (
	"math"
	"strings"
)

const maxListItems = 5

// Result is the ATS analysis returned to callers. Keywords and Suggestions are
// never nil so they encode as [] rather than null.
type Result struct {
	Score       int      `json:"score"`
	Keywords    []string `json:"keywords"`
	Suggestions []string `json:"suggestions"`
}

// providerResult is the shape the provider is asked to produce.
type providerResult struct {
	Score       *float64 `json:"score" validate:"required,gte=0,lte=100"`
	Keywords    []string `json:"keywords" validate:"required"`
	Suggestions []string `json:"suggestions" validate:"required"`
}

func (p providerResult) toResult() Result {
	return Result{
		Score:       int(math.Round(*p.Score)),
		Keywords:    cleanList(p.Keywords),
		Suggestions: cleanList(p.Suggestions),
	}
}

// cleanList drops blank entries and keeps at most maxListItems.
func cleanList(items []string) []string {
	out := make([]string, 0, maxListItems)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == maxListItems {
			break
		}
	}
	return out
}
