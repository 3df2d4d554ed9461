package summarizer

import (
	"errors"
	"fmt"
	"log/slog"

	"textsum/internal/domain"
	"textsum/internal/language"
)

// ErrInvalidArgument is returned when the requested sentence count is not a
// positive integer.
var ErrInvalidArgument = errors.New("invalid argument")

// IsInvalidArgument reports whether err was caused by a bad argument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// Options configures a Summarizer.
type Options struct {
	StopWords language.StopWordSource
	Logger    *slog.Logger
}

// Summarizer produces extractive summaries by keyword frequency. It keeps no
// per-call state and is safe for concurrent use if its Analyzer is.
type Summarizer struct {
	analyzer  domain.Analyzer
	stopWords language.StopWordSource
	log       *slog.Logger
}

// New creates a Summarizer backed by analyzer.
func New(analyzer domain.Analyzer, opts Options) *Summarizer {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Summarizer{analyzer: analyzer, stopWords: opts.StopWords, log: log}
}

// Analysis holds every intermediate result of one summarization.
type Analysis struct {
	Keywords  []KeywordWeight
	Sentences []domain.ScoredSentence
	Selected  []domain.ScoredSentence
	Summary   string
}

// Summarize returns up to n of the highest scoring sentences of text, joined
// in document order. Text without keywords yields "" and a nil error.
func (s *Summarizer) Summarize(text string, n int, lang language.Code) (string, error) {
	a, err := s.Analyze(text, n, lang)
	if err != nil {
		return "", err
	}
	return a.Summary, nil
}

// Analyze runs the full pipeline and keeps the intermediate results.
func (s *Summarizer) Analyze(text string, n int, lang language.Code) (*Analysis, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n_sentences must be a positive integer, got %d", ErrInvalidArgument, n)
	}
	profile, err := language.Lookup(lang, s.stopWords)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(text)
	if normalized == "" {
		return &Analysis{}, nil
	}

	tokens, err := s.analyzer.Tokenize(normalized)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	keywords := ExtractKeywords(tokens, profile)
	if len(keywords) == 0 {
		s.log.Debug("No keywords found",
			"tokens", len(tokens))

		return &Analysis{}, nil
	}
	freq := KeywordFrequencies(keywords)

	sentences, err := s.analyzer.Sentences(normalized)
	if err != nil {
		return nil, fmt.Errorf("segment sentences: %w", err)
	}
	scored := ScoreSentences(sentences, freq)
	selected := SelectTop(scored, n)

	indices := make([]int, len(selected))
	for i, sel := range selected {
		indices[i] = sel.Sentence.Index
	}
	s.log.Debug("Sentences are selected",
		"keywords", len(keywords),
		"distinctKeywords", len(freq),
		"sentences", len(sentences),
		"selected", indices)

	return &Analysis{
		Keywords:  RankKeywords(freq),
		Sentences: scored,
		Selected:  selected,
		Summary:   Join(selected),
	}, nil
}
