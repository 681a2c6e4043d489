package article

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// ArticleEnv overrides the configured article path (handy for tests and scripts).
const ArticleEnv = "TYPESET_ARTICLE"

//go:embed sample.md
var sampleArticle []byte

// Store resolves and loads the article being read.
// An empty path means the built-in sample article.
type Store struct {
	path string
}

// NewStore creates a store for path, or for $TYPESET_ARTICLE when that is set.
func NewStore(path string) (*Store, error) {
	if env := os.Getenv(ArticleEnv); env != "" {
		path = env
	}
	if path == "" {
		return &Store{}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("article path %q: %w", path, err)
	}
	return &Store{path: abs}, nil
}

// Path returns the absolute article path, or "" when serving the built-in sample.
func (s *Store) Path() string {
	return s.path
}

// IsSample reports whether the store serves the built-in sample.
func (s *Store) IsSample() bool {
	return s.path == ""
}

// Load reads and parses the article.
func (s *Store) Load() (Document, error) {
	if s.IsSample() {
		return ParseDocument(sampleArticle)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Document{}, fmt.Errorf("read article: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", filepath.Base(s.path), err)
	}
	doc.Source = s.path
	return doc, nil
}
