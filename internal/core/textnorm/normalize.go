// Package textnorm produces the canonical form used for every text comparison:
// lower-cased with diacritics stripped.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinTokenLength is the shortest token kept by Tokenize.
const MinTokenLength = 3

var separator = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize case-folds s and removes combining marks ("CAFÉ" -> "cafe").
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Tokenize splits the canonical form of s on non-alphanumeric runs and drops
// tokens shorter than MinTokenLength.
func Tokenize(s string) []string {
	parts := separator.Split(Normalize(s), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) >= MinTokenLength {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
