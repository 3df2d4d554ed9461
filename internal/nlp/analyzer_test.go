package nlp

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jdkato/prose/v2"

	"textsum/internal/domain"
)

func TestMapPennTag(t *testing.T) {
	tests := []struct {
		tag  string
		want domain.POS
	}{
		{tag: "NNP", want: domain.ProperNoun},
		{tag: "NNPS", want: domain.ProperNoun},
		{tag: "NN", want: domain.Noun},
		{tag: "NNS", want: domain.Noun},
		{tag: "JJR", want: domain.Adjective},
		{tag: "VBZ", want: domain.Verb},
		{tag: "VBD", want: domain.Verb},
		{tag: "RB", want: domain.Adverb},
		{tag: "CD", want: domain.Numeral},
		{tag: ".", want: domain.Punctuation},
		{tag: ",", want: domain.Punctuation},
		{tag: "DT", want: domain.Other},
		{tag: "MD", want: domain.Other},
		{tag: "IN", want: domain.Other},
	}

	for _, test := range tests {
		t.Run(test.tag, func(t *testing.T) {
			if got := MapPennTag(test.tag); got != test.want {
				t.Errorf("MapPennTag(%q) = %s, want %s", test.tag, got, test.want)
			}
		})
	}
}

func TestNewUnknownSegmenter(t *testing.T) {
	if _, err := New(Config{Segmenter: "regex"}); err == nil {
		t.Fatalf("expected error for unknown segmenter")
	}
}

func TestAnalyzerSentences(t *testing.T) {
	for _, seg := range []Segmenter{Punkt, Prose} {
		t.Run(string(seg), func(t *testing.T) {
			a, err := New(Config{Segmenter: seg})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			got, err := a.Sentences("The cat sat on the mat. The dog barked at the cat.")
			if err != nil {
				t.Fatalf("Sentences() error = %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected 2 sentences, got %d: %+v", len(got), got)
			}
			for i, s := range got {
				if s.Index != i {
					t.Errorf("sentence %d has index %d", i, s.Index)
				}
				if len(s.Tokens) == 0 {
					t.Errorf("sentence %d has no tokens", i)
				}
			}
			if got[0].Text != "The cat sat on the mat." {
				t.Errorf("unexpected first sentence %q", got[0].Text)
			}
		})
	}
}

func TestAnalyzerTokenize(t *testing.T) {
	a, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	tokens, err := a.Tokenize("The cat sat.")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	var sawCat, sawPeriod bool
	for _, tok := range tokens {
		if tok.Lower == "cat" && tok.POS == domain.Noun {
			sawCat = true
		}
		if tok.Text == "." && tok.POS == domain.Punctuation {
			sawPeriod = true
		}
	}
	if !sawCat || !sawPeriod {
		t.Fatalf("unexpected tokens %+v", tokens)
	}

	empty, err := a.Tokenize("   ")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no tokens for blank text, got %v, %v", empty, err)
	}
}

func TestAnalyzerLoadsModelOnce(t *testing.T) {
	orig := loadModel
	t.Cleanup(func() { loadModel = orig })
	loads := 0
	loadModel = func() (*prose.Model, error) {
		loads++
		return orig()
	}

	a, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	model := a.model
	if model == nil {
		t.Fatalf("expected model to be loaded in New")
	}

	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 50)
	first, err := a.Tokenize(text)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := a.Tokenize(text)
		if err != nil {
			t.Fatalf("Tokenize() error = %v", err)
		}
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: tokens differ between calls", i)
		}
		sents, err := a.Sentences(text)
		if err != nil {
			t.Fatalf("Sentences() error = %v", err)
		}
		if len(sents) != 50 {
			t.Fatalf("expected 50 sentences, got %d", len(sents))
		}
	}

	if loads != 1 {
		t.Fatalf("expected the tagger model to load once, loaded %d times", loads)
	}
	if a.model != model {
		t.Fatalf("analyzer replaced its model")
	}
}
