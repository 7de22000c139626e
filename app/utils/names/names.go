// Package names holds the bilingual name normalization contract: names are
// stored fully lower-cased and shown with only the first letter capitalized.
// Both functions are pure and are called at the repository boundary, never
// hidden behind model hooks.
package names

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Fold lower-cases raw using Unicode case folding. Empty input passes
// through unchanged.
func Fold(raw string) string {
	if raw == "" {
		return ""
	}
	return folder.String(raw)
}

// Display renders a stored name for the UI: everything lower-cased, first
// rune upper-cased. "ailes épicées" -> "Ailes épicées".
func Display(stored string) string {
	if stored == "" {
		return ""
	}
	lower := folder.String(stored)
	first, size := utf8.DecodeRuneInString(lower)
	if first == utf8.RuneError && size <= 1 {
		return lower
	}
	return string(unicode.ToUpper(first)) + lower[size:]
}
