package domain

// POS is the coarse part-of-speech category attached to a token.
type POS string

const (
	ProperNoun  POS = "PROPN"
	Adjective   POS = "ADJ"
	Noun        POS = "NOUN"
	Verb        POS = "VERB"
	Adverb      POS = "ADV"
	Numeral     POS = "NUM"
	Punctuation POS = "PUNCT"
	Other       POS = "X"
)

// POSSet is a closed set of part-of-speech categories.
type POSSet map[POS]struct{}

// NewPOSSet builds a set from the given categories.
func NewPOSSet(tags ...POS) POSSet {
	s := make(POSSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether tag is in the set.
func (s POSSet) Contains(tag POS) bool {
	_, ok := s[tag]
	return ok
}

// Token is a single word or punctuation symbol produced by an Analyzer.
type Token struct {
	Text  string
	Lower string
	POS   POS
}

// Sentence is a segmented portion of a document. Index is the 0-based
// position of the sentence in the document and is its identity.
type Sentence struct {
	Index  int
	Text   string
	Tokens []Token
}

// ScoredSentence pairs a sentence with its keyword score.
type ScoredSentence struct {
	Sentence Sentence
	Score    float64
}

// Analyzer is the linguistic analysis capability the summarizer depends on.
// Implementations must be deterministic for identical input and safe for
// concurrent use.
type Analyzer interface {
	Tokenize(text string) ([]Token, error)
	Sentences(text string) ([]Sentence, error)
}

// StopWords reports whether a lowercase word is excluded from keywords.
type StopWords interface {
	Contains(word string) bool
}

// Document is a loaded input text.
type Document struct {
	ID      string
	Path    string
	Content string
}
