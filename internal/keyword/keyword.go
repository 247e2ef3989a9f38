// Package keyword does case-insensitive substring matching of Korean and
// Latin text against keyword lists.
package keyword

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize composes Hangul jamo (NFC) and case-folds s so that text typed
// with decomposing input methods still matches precomposed keywords.
func Normalize(s string) string {
	// Caser keeps state and is not safe for concurrent use.
	return cases.Fold().String(norm.NFC.String(s))
}

// ContainsAny reports whether text contains at least one of the keywords.
func ContainsAny(text string, keywords []string) bool {
	n := Normalize(text)
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(n, Normalize(k)) {
			return true
		}
	}
	return false
}

// Matches returns the keywords found in text, in keyword order.
func Matches(text string, keywords []string) []string {
	n := Normalize(text)
	var out []string
	for _, k := range keywords {
		if k != "" && strings.Contains(n, Normalize(k)) {
			out = append(out, k)
		}
	}
	return out
}
