package utils

import "strings"

// NormalizeLabel lower-cases a human-readable form label and collapses runs of
// whitespace, so "High  blood Pressure " and "high blood pressure" compare equal.
func NormalizeLabel(label string) string {
	trimmed := strings.TrimSpace(strings.ToLower(label))
	if trimmed == "" {
		return ""
	}
	return strings.Join(strings.Fields(trimmed), " ")
}
