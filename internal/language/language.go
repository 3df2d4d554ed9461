package language

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kljensen/snowball/english"

	"textsum/internal/domain"
)

// Code identifies a summarization language.
type Code string

const (
	English    Code = "english"
	Portuguese Code = "portuguese"
)

// ErrUnsupported is returned for languages without a summarization profile.
var ErrUnsupported = errors.New("unsupported language")

// StopWordSource selects where a profile's stop words come from.
type StopWordSource string

const (
	SpaCy    StopWordSource = "spacy"
	Snowball StopWordSource = "snowball"
)

// Profile carries everything language-specific the summarizer needs.
type Profile struct {
	Code      Code
	StopWords domain.StopWords
	Eligible  domain.POSSet
}

// contentTags are the categories that can carry a keyword.
var contentTags = domain.NewPOSSet(domain.ProperNoun, domain.Adjective, domain.Noun, domain.Verb)

var aliases = map[string]Code{
	"english":    English,
	"en":         English,
	"portuguese": Portuguese,
	"pt":         Portuguese,
}

// Parse resolves a user-supplied language name or ISO code.
func Parse(s string) (Code, error) {
	code, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return code, nil
}

// Supported lists every language the user can choose from, including the
// ones Lookup still rejects.
func Supported() []Code {
	return []Code{English, Portuguese}
}

// Lookup returns the profile for code. Portuguese is a known language with no
// stop-word list or tag mapping yet, so it fails with ErrUnsupported.
func Lookup(code Code, src StopWordSource) (Profile, error) {
	switch code {
	case English:
		var sw domain.StopWords
		switch src {
		case SpaCy, "":
			sw = englishStopWords
		case Snowball:
			sw = snowballEnglish{}
		default:
			return Profile{}, fmt.Errorf("unknown stop word source %q", src)
		}
		return Profile{Code: English, StopWords: sw, Eligible: contentTags}, nil
	default:
		return Profile{}, fmt.Errorf("%w: %s", ErrUnsupported, code)
	}
}

// WordSet is a read-only set of lowercase words.
type WordSet map[string]struct{}

// NewWordSet builds a set from whitespace separated words.
func NewWordSet(words string) WordSet {
	fields := strings.Fields(words)
	s := make(WordSet, len(fields))
	for _, w := range fields {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

type snowballEnglish struct{}

func (snowballEnglish) Contains(word string) bool { return english.IsStopWord(word) }
