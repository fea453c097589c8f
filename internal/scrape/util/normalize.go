package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText collapses runs of whitespace (NBSP included) into single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Fold puts text in NFC and lower case so that "września" typed with
// combining marks still matches the precomposed spelling.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(CleanText(s)))
}
