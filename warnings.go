package formatking

import "strings"

// Warning describes a non-fatal issue encountered while parsing. Warnings are
// returned alongside results rather than logged.
type Warning struct {
	// Code is a stable machine-readable identifier.
	Code string
	// Message is the human-readable description.
	Message string
}

// Warning codes.
const (
	// WarnFallback means a structural format matched but produced no tables,
	// so the input was re-parsed as delimited text.
	WarnFallback = "fallback"
)

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.Code+": "+w.Message)
	}
	return strings.Join(parts, "; ")
}
