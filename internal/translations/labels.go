package translations

import "sort"

// LabelSet maps form label keys to display text.
type LabelSet map[string]string

var defaultLabels = map[string]string{
	"fullName":       "Full Name",
	"title":          "Professional Title",
	"email":          "Email",
	"phone":          "Phone Number",
	"linkedin":       "LinkedIn URL",
	"github":         "GitHub / Portfolio URL",
	"location":       "Location (City, State)",
	"summary":        "Professional Summary / Objective",
	"skills":         "Key Skills (separate by commas)",
	"experience":     "Work Experience",
	"education":      "Education",
	"projects":       "Projects",
	"internship":     "Internship Experience",
	"certifications": "Certifications / Trainings",
	"achievements":   "Achievements / Awards",
	"languages":      "Languages",
	"volunteer":      "Volunteer Work / Social Initiatives",
	"hobbies":        "Hobbies / Interests",
	"next":           "Next",
	"back":           "Back",
	"save":           "Save Resume",
	"update":         "Update Resume",
}

// DefaultLabels returns a fresh copy of the English form labels.
func DefaultLabels() LabelSet {
	out := make(LabelSet, len(defaultLabels))
	for k, v := range defaultLabels {
		out[k] = v
	}
	return out
}

// LabelKeys returns the label keys in sorted order.
func LabelKeys() []string {
	keys := make([]string, 0, len(defaultLabels))
	for k := range defaultLabels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
