package summarizer

import (
	"strings"
	"unicode"

	"textsum/internal/domain"
	"textsum/internal/language"
)

// ExtractKeywords filters tokens down to lowercase candidate keywords in
// input order. Duplicates are kept so they can be counted. A nil result means
// the text has no keywords.
func ExtractKeywords(tokens []domain.Token, profile language.Profile) []string {
	var keywords []string
	for _, tok := range tokens {
		if !profile.Eligible.Contains(tok.POS) {
			continue
		}
		lower := lowerForm(tok)
		if profile.StopWords != nil && profile.StopWords.Contains(lower) {
			continue
		}
		if punctuationOnly(tok.Text) {
			continue
		}
		keywords = append(keywords, lower)
	}
	return keywords
}

func lowerForm(tok domain.Token) string {
	if tok.Lower != "" {
		return tok.Lower
	}
	return strings.ToLower(tok.Text)
}

// punctuationOnly reports whether s has no rune other than punctuation or
// symbols. The empty string counts as punctuation-only.
func punctuationOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
