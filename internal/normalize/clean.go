package normalize

import "strings"

const fence = "```"

// Clean strips a surrounding markdown code fence (with any info string such as
// "json") and whitespace. Unfenced text is only trimmed.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
		// The info string ends at the first newline, or where the payload
		// starts when everything sits on one line.
		i := strings.IndexAny(s, "\n{[")
		switch {
		case i < 0:
			s = ""
		case s[i] == '\n':
			s = s[i+1:]
		default:
			s = s[i:]
		}
		s = strings.TrimSpace(s)
	}
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}
