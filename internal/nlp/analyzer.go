// Package nlp is the production linguistic analysis backend. Sentence
// boundaries come from a punkt model and part-of-speech tags from prose's
// averaged perceptron tagger, mapped onto the coarse domain categories.
package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"textsum/internal/domain"
)

// Segmenter names a sentence boundary detector.
type Segmenter string

const (
	Punkt Segmenter = "punkt"
	Prose Segmenter = "prose"
)

// Config selects analyzer backends.
type Config struct {
	Segmenter Segmenter
}

// Analyzer implements domain.Analyzer. Models are loaded once in New and only
// read afterwards.
type Analyzer struct {
	segmenter Segmenter
	punkt     *sentences.DefaultSentenceTokenizer
	model     *prose.Model
}

// loadModel builds prose's perceptron tagger.
var loadModel = func() (*prose.Model, error) {
	doc, err := prose.NewDocument("",
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	return doc.Model, nil
}

// New loads the configured models.
func New(cfg Config) (*Analyzer, error) {
	model, err := loadModel()
	if err != nil {
		return nil, fmt.Errorf("load prose model: %w", err)
	}
	a := &Analyzer{segmenter: cfg.Segmenter, model: model}
	switch cfg.Segmenter {
	case Punkt, "":
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("load punkt model: %w", err)
		}
		a.segmenter = Punkt
		a.punkt = tok
	case Prose:
	default:
		return nil, fmt.Errorf("unknown segmenter %q", cfg.Segmenter)
	}
	return a, nil
}

// Tokenize tags every token of text.
func (a *Analyzer) Tokenize(text string) ([]domain.Token, error) {
	return a.tag(text)
}

// Sentences segments text and tags each sentence separately. Sentence text is
// returned trimmed of surrounding whitespace.
func (a *Analyzer) Sentences(text string) ([]domain.Sentence, error) {
	raw, err := a.segment(text)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Sentence, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		tokens, err := a.tag(s)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Sentence{Index: len(out), Text: s, Tokens: tokens})
	}
	return out, nil
}

func (a *Analyzer) segment(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if a.segmenter == Prose {
		doc, err := prose.NewDocument(text,
			prose.UsingModel(a.model),
			prose.WithTagging(false),
			prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("prose segment: %w", err)
		}
		sents := doc.Sentences()
		out := make([]string, len(sents))
		for i, s := range sents {
			out[i] = s.Text
		}
		return out, nil
	}
	sents := a.punkt.Tokenize(text)
	out := make([]string, len(sents))
	for i, s := range sents {
		out[i] = s.Text
	}
	return out, nil
}

func (a *Analyzer) tag(text string) ([]domain.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.UsingModel(a.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("prose tag: %w", err)
	}
	toks := doc.Tokens()
	out := make([]domain.Token, len(toks))
	for i, t := range toks {
		out[i] = domain.Token{Text: t.Text, Lower: strings.ToLower(t.Text), POS: MapPennTag(t.Tag)}
	}
	return out, nil
}

// MapPennTag folds a Penn Treebank tag into a domain category.
func MapPennTag(tag string) domain.POS {
	switch tag {
	case "NNP", "NNPS":
		return domain.ProperNoun
	case "NN", "NNS":
		return domain.Noun
	case "JJ", "JJR", "JJS":
		return domain.Adjective
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		return domain.Verb
	case "RB", "RBR", "RBS", "WRB":
		return domain.Adverb
	case "CD":
		return domain.Numeral
	case ".", ",", ":", "(", ")", "``", "''", "\"", "#", "$", "-LRB-", "-RRB-", "SYM":
		return domain.Punctuation
	}
	return domain.Other
}
