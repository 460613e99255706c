// Package strings provides string list helpers for configuration values.
package strings

import (
	"strings"
)

// SplitList splits a comma-separated value, trims each element, and drops
// empty and repeated elements. Order is preserved.
//
// Example:
//
//	SplitList(" https://a.com, https://b.com,,https://a.com ")
//	// Returns: []string{"https://a.com", "https://b.com"}
func SplitList(csv string) []string {
	return DedupeAndTrim(strings.Split(csv, ","))
}

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element.
func DedupeAndTrim(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
