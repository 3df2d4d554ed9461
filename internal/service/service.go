package service

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"textsum/internal/language"
	"textsum/internal/summarizer"
)

// Summarizer is the core summarization capability.
type Summarizer interface {
	Analyze(text string, n int, lang language.Code) (*summarizer.Analysis, error)
}

// DocumentSummary is the summary of one loaded document.
type DocumentSummary struct {
	Path     string
	Summary  string
	Analysis *summarizer.Analysis
}

// Service wraps the summarizer with document loading, caching and export.
type Service struct {
	summarizer Summarizer
	cache      *summaryCache
	stdin      io.Reader
	log        *slog.Logger
}

// Options configures a Service.
type Options struct {
	// CacheSize bounds the summary cache; zero disables it.
	CacheSize int
	Stdin     io.Reader
	Logger    *slog.Logger
}

// New creates a Service.
func New(sum Summarizer, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Service{
		summarizer: sum,
		cache:      newSummaryCache(opts.CacheSize),
		stdin:      stdin,
		log:        log,
	}
}

// SummarizeText summarizes text, serving repeated requests from the cache.
func (s *Service) SummarizeText(text string, n int, lang language.Code) (string, error) {
	key := cacheKey(text, n, lang)
	if summary, ok := s.cache.get(key); ok {
		s.log.Debug("Summary cache hit",
			"key", key)

		return summary, nil
	}

	a, err := s.summarizer.Analyze(text, n, lang)
	if err != nil {
		return "", err
	}
	s.cache.set(key, a.Summary)

	return a.Summary, nil
}

// Analyze runs the summarizer without the cache and keeps its intermediate
// results.
func (s *Service) Analyze(text string, n int, lang language.Code) (*summarizer.Analysis, error) {
	return s.summarizer.Analyze(text, n, lang)
}

// SummarizeFiles loads every input and summarizes each document on its own.
func (s *Service) SummarizeFiles(paths []string, n int, lang language.Code, explain bool) ([]DocumentSummary, error) {
	docs, err := s.LoadDocuments(paths)
	if err != nil {
		return nil, err
	}
	s.log.Info("Documents are loaded",
		"count", len(docs))

	out := make([]DocumentSummary, 0, len(docs))
	for _, d := range docs {
		ds := DocumentSummary{Path: d.Path}
		if explain {
			ds.Analysis, err = s.Analyze(d.Content, n, lang)
			if err != nil {
				return nil, err
			}
			ds.Summary = ds.Analysis.Summary
		} else {
			ds.Summary, err = s.SummarizeText(d.Content, n, lang)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, ds)
	}
	return out, nil
}

// Export writes summary as plain text to path, creating directories as
// needed.
func (s *Service) Export(path, summary string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(summary), 0o644); err != nil {
		return err
	}
	s.log.Info("Summary is exported",
		"path", path,
		"bytes", len(summary))

	return nil
}

func cacheKey(text string, n int, lang language.Code) string {
	h := sha1.New()
	h.Write([]byte(lang))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(n)))
	h.Write([]byte{'|'})
	h.Write([]byte(summarizer.Normalize(text)))
	return hex.EncodeToString(h.Sum(nil))
}
