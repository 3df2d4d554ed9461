// Package nlptest provides a lexicon-driven Analyzer for tests. It needs no
// trained models and tags words by dictionary lookup.
package nlptest

import (
	"regexp"
	"strings"
	"sync/atomic"
	"unicode"

	"textsum/internal/domain"
)

var (
	sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?]+)`)
	tokenRe    = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+|[^\s\p{L}\p{N}]`)
)

// Analyzer tags tokens from Lexicon; unknown words default to nouns. It is
// safe for concurrent use as long as Lexicon is not modified.
type Analyzer struct {
	Lexicon map[string]domain.POS
	calls   atomic.Int64
}

// New creates an Analyzer with the given lowercase word tags.
func New(lexicon map[string]domain.POS) *Analyzer {
	if lexicon == nil {
		lexicon = map[string]domain.POS{}
	}
	return &Analyzer{Lexicon: lexicon}
}

// Calls counts Tokenize and Sentences invocations.
func (a *Analyzer) Calls() int { return int(a.calls.Load()) }

// Tokenize splits text into words, numbers and punctuation marks.
func (a *Analyzer) Tokenize(text string) ([]domain.Token, error) {
	a.calls.Add(1)
	return a.tokens(text), nil
}

// Sentences splits on terminal punctuation. A trailing fragment without a
// terminator becomes its own sentence.
func (a *Analyzer) Sentences(text string) ([]domain.Sentence, error) {
	a.calls.Add(1)
	var parts []string
	rest := text
	for _, loc := range sentenceRe.FindAllStringIndex(text, -1) {
		parts = append(parts, text[loc[0]:loc[1]])
		rest = text[loc[1]:]
	}
	parts = append(parts, rest)

	var out []domain.Sentence
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, domain.Sentence{Index: len(out), Text: p, Tokens: a.tokens(p)})
	}
	return out, nil
}

func (a *Analyzer) tokens(text string) []domain.Token {
	words := tokenRe.FindAllString(text, -1)
	out := make([]domain.Token, 0, len(words))
	for _, w := range words {
		lower := strings.ToLower(w)
		out = append(out, domain.Token{Text: w, Lower: lower, POS: a.tag(w, lower)})
	}
	return out
}

func (a *Analyzer) tag(word, lower string) domain.POS {
	if pos, ok := a.Lexicon[lower]; ok {
		return pos
	}
	r := []rune(word)[0]
	switch {
	case unicode.IsDigit(r):
		return domain.Numeral
	case !unicode.IsLetter(r):
		return domain.Punctuation
	}
	return domain.Noun
}
