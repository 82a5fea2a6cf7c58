package phonetics

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Apostrophes that separate a proper noun from its suffixes.
const apostrophes = "'’‘`"

// Lower applies Turkish casing rules (I -> ı, İ -> i).
// A Caser keeps state, so a fresh one is made per call.
func Lower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// Normalize lowercases s the Turkish way and trims surrounding spaces.
func Normalize(s string) string {
	return Lower(strings.TrimSpace(s))
}

// SplitApostrophe splits "Ankara'da" into "ankara" and "da". ok is false when there is no apostrophe.
func SplitApostrophe(s string) (stem, ending string, ok bool) {
	i := strings.IndexAny(s, apostrophes)
	if i < 0 {
		return s, "", false
	}
	rest := s[i:]
	for _, r := range apostrophes {
		if strings.HasPrefix(rest, string(r)) {
			return s[:i], rest[len(string(r)):], true
		}
	}
	return s, "", false
}
