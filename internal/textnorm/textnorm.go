// Package textnorm normalizes inbound text before keyword matching.
// Homoglyph tricks ("rёport") would otherwise slip past the literal keyword
// checks in the flows.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns a normalized copy of s: compatibility-decomposed, stripped of
// combining marks and recomposed. The input is never modified.
func Fold(s string) string {
	// Transformers carry state, so the chain is built per call.
	chain := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(out)
}
