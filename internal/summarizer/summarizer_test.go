package summarizer

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"textsum/internal/domain"
	"textsum/internal/language"
	"textsum/internal/nlp/nlptest"
)

func testLexicon() map[string]domain.POS {
	return map[string]domain.POS{
		"the":    domain.Other,
		"on":     domain.Other,
		"at":     domain.Other,
		"and":    domain.Other,
		"but":    domain.Other,
		"sat":    domain.Verb,
		"bark":   domain.Verb,
		"barks":  domain.Verb,
		"runs":   domain.Verb,
		"loudly": domain.Adverb,
		"red":    domain.Adjective,
		"paris":  domain.ProperNoun,
	}
}

func newTestSummarizer() (*Summarizer, *nlptest.Analyzer) {
	a := nlptest.New(testLexicon())
	return New(a, Options{StopWords: language.SpaCy}), a
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{
			name: "most frequent keyword wins",
			text: "The cat sat. The cat sat on the mat. Dogs bark loudly at night.",
			n:    1,
			want: "The cat sat on the mat.",
		},
		{
			name: "empty text",
			text: "",
			n:    3,
			want: "",
		},
		{
			name: "whitespace only",
			text: " \n\t  ",
			n:    3,
			want: "",
		},
		{
			name: "only stop words",
			text: "and the but",
			n:    2,
			want: "",
		},
		{
			name: "n exceeds sentence count",
			text: "Paris is red. The dog runs.",
			n:    5,
			want: "Paris is red. The dog runs.",
		},
		{
			name: "document order restored",
			text: "Cats chase cats. Tea is hot. Cats chase mice and cats chase birds.",
			n:    2,
			want: "Cats chase cats. Cats chase mice and cats chase birds.",
		},
		{
			name: "whitespace is collapsed in output",
			text: "  The   cat\n\nsat.\tThe dog runs.  ",
			n:    1,
			want: "The cat sat.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestSummarizer()
			got, err := s.Summarize(test.text, test.n, language.English)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got != test.want {
				t.Errorf("Summarize() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestSummarizeInvalidArgument(t *testing.T) {
	for _, n := range []int{0, -3} {
		s, a := newTestSummarizer()
		got, err := s.Summarize("The cat sat.", n, language.English)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Summarize(n=%d) error = %v, want ErrInvalidArgument", n, err)
		}
		if !IsInvalidArgument(err) {
			t.Fatalf("IsInvalidArgument(%v) = false", err)
		}
		if got != "" {
			t.Fatalf("expected no partial output, got %q", got)
		}
		if a.Calls() != 0 {
			t.Fatalf("expected no analysis before validation, got %d calls", a.Calls())
		}
	}
}

func TestSummarizeUnsupportedLanguage(t *testing.T) {
	s, _ := newTestSummarizer()
	_, err := s.Summarize("Gatos dormem.", 1, language.Portuguese)
	if !errors.Is(err, language.ErrUnsupported) {
		t.Fatalf("Summarize() error = %v, want ErrUnsupported", err)
	}
	if IsInvalidArgument(err) {
		t.Fatalf("unsupported language must not be reported as invalid argument")
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	text := "Birds sing. Birds fly south. Fish swim. Fish swim fast. Birds and fish live."
	s, _ := newTestSummarizer()
	first, err := s.Summarize(text, 2, language.English)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	for i := 0; i < 20; i++ {
		got, err := s.Summarize(text, 2, language.English)
		if err != nil {
			t.Fatalf("Summarize() error = %v", err)
		}
		if got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}
}

func TestSummarizeCardinalityBound(t *testing.T) {
	text := "One apple. Two pears. Three plums. Four figs."
	s, _ := newTestSummarizer()
	for n := 1; n <= 6; n++ {
		got, err := s.Summarize(text, n, language.English)
		if err != nil {
			t.Fatalf("Summarize() error = %v", err)
		}
		count := strings.Count(got, ".")
		want := min(n, 4)
		if count != want {
			t.Errorf("n=%d: got %d sentences (%q), want %d", n, count, got, want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	s, _ := newTestSummarizer()
	a, err := s.Analyze("The cat sat. The cat sat on the mat. Dogs bark loudly at night.", 2, language.English)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(a.Sentences) != 3 {
		t.Fatalf("expected 3 scored sentences, got %d", len(a.Sentences))
	}
	wantScores := []float64{2, 2.5, 1.5}
	for i, ss := range a.Sentences {
		if ss.Sentence.Index != i {
			t.Errorf("sentence %d has index %d", i, ss.Sentence.Index)
		}
		if ss.Score != wantScores[i] {
			t.Errorf("sentence %d score = %v, want %v", i, ss.Score, wantScores[i])
		}
	}
	if a.Keywords[0].Word != "cat" || a.Keywords[0].Weight != 1 {
		t.Errorf("unexpected top keyword %+v", a.Keywords[0])
	}
	if a.Summary != "The cat sat. The cat sat on the mat." {
		t.Errorf("unexpected summary %q", a.Summary)
	}
}

func TestSummarizeConcurrent(t *testing.T) {
	texts := []string{
		"The cat sat. The cat sat on the mat. Dogs bark loudly at night.",
		"Cats chase cats. Tea is hot. Cats chase mice and cats chase birds.",
		"Paris is red. The dog runs.",
		"and the but",
	}
	s, _ := newTestSummarizer()
	want := make([]string, len(texts))
	for i, text := range texts {
		got, err := s.Summarize(text, 2, language.English)
		if err != nil {
			t.Fatalf("Summarize() error = %v", err)
		}
		want[i] = got
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan string, workers*len(texts)*10)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for r := 0; r < 10; r++ {
				i := (w + r) % len(texts)
				got, err := s.Summarize(texts[i], 2, language.English)
				if err != nil {
					errs <- err.Error()
					continue
				}
				if got != want[i] {
					errs <- "text " + texts[i] + ": got " + got + ", want " + want[i]
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}
