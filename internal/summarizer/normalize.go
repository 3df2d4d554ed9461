package summarizer

import "strings"

// Normalize trims text and collapses every internal whitespace run to a
// single space. Case and punctuation are left untouched.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
