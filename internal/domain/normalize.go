package domain

import (
	"strings"
)

// NormalizeText prepares a surface form for indexing and comparison:
//   - converts to lowercase
//   - trims leading/trailing whitespace
//   - collapses every internal whitespace run (tabs, newlines, NBSP) into one space
//
// Diacritics, combining marks, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	return strings.Join(fields, " ")
}

// WordCount returns the number of space-separated words in a normalized surface form.
func WordCount(normalized string) int {
	if normalized == "" {
		return 0
	}
	return strings.Count(normalized, " ") + 1
}
