// Package slug derives filename-safe slugs for export documents.
package slug

import (
	"strings"
	"unicode"
)

// Make lower-cases the text, replaces every non-alphanumeric character
// with a hyphen and trims edge hyphens. Input with no alphanumeric
// characters collapses to the empty string.
func Make(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
