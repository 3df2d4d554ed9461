package service

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"textsum/internal/domain"
)

// ErrNoDocuments is returned when none of the given inputs can be loaded.
var ErrNoDocuments = errors.New("no documents found")

// StdinPath is the input name that reads from standard input.
const StdinPath = "-"

var textExtensions = map[string]bool{".txt": true, ".md": true, ".text": true}

var htmlExtensions = map[string]bool{".html": true, ".htm": true}

// LoadDocuments expands globs and reads every supported file. Files with
// other extensions are skipped.
func (s *Service) LoadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		if p == StdinPath {
			data, err := io.ReadAll(s.stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			documents = append(documents, newDocument("stdin", string(data)))
			continue
		}
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			ext := strings.ToLower(filepath.Ext(m))
			if !textExtensions[ext] && !htmlExtensions[ext] {
				s.log.Debug("Skipping unsupported file",
					"path", m)

				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			content := string(data)
			if htmlExtensions[ext] {
				content, err = htmlText(data)
				if err != nil {
					return nil, fmt.Errorf("parse %s: %w", m, err)
				}
			}
			documents = append(documents, newDocument(m, content))
			s.log.Debug("Document is loaded",
				"path", m,
				"bytes", len(data))
		}
	}
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}
	return documents, nil
}

// htmlText returns the visible text of an HTML page. Block elements are
// separated by newlines so their sentences do not run together.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, head").Remove()

	var b strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, td").Each(func(_ int, sel *goquery.Selection) {
		if sel.Find("p, li, blockquote").Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		b.WriteString(text)
		b.WriteString("\n")
	})
	if b.Len() == 0 {
		return strings.TrimSpace(doc.Find("body").Text()), nil
	}
	return b.String(), nil
}

func newDocument(path, content string) domain.Document {
	return domain.Document{ID: hashString(path), Path: path, Content: content}
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
