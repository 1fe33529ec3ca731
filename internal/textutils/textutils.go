// Package textutils provides text normalisation utilities.
package textutils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var spaces = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// Fold trims, lower-cases and strips accents, so "Salário" and " SALARIO "
// fold to the same key.
func Fold(text string) string {
	text = strings.TrimSpace(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

// SingleLine replaces line breaks and tabs with spaces and collapses runs of spaces.
func SingleLine(text string) string {
	return strings.Join(strings.Fields(spaces.Replace(text)), " ")
}

// Truncate shortens text to at most max runes, ending with "…" when cut.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	r := []rune(text)
	return string(r[:max-1]) + "…"
}
