package article

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when an article has no body text.
var ErrEmptyDocument = errors.New("empty document")

// frontMatterDelim separates YAML front matter from the markdown body.
const frontMatterDelim = "---"

// Document is a parsed article: optional front matter plus a markdown body.
type Document struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Body   string `yaml:"-"`
	Source string `yaml:"-"` // file path, or "" for the built-in sample
}

// ParseDocument splits optional YAML front matter from the markdown body.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	body := text

	if strings.HasPrefix(text, frontMatterDelim+"\n") {
		// Keep the leading newline so an empty block ("---\n---") still matches.
		rest := text[len(frontMatterDelim):]
		end := strings.Index(rest, "\n"+frontMatterDelim)
		if end < 0 {
			return Document{}, errors.New("front matter: missing closing delimiter")
		}
		dec := yaml.NewDecoder(bytes.NewReader([]byte(rest[:end])))
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("front matter: %w", err)
		}
		body = rest[end+len(frontMatterDelim)+1:]
	}

	doc.Body = strings.TrimSpace(body)
	if doc.Body == "" {
		return Document{}, ErrEmptyDocument
	}
	return doc, nil
}

// Markdown returns the document as markdown, with the title promoted to a heading.
func (d Document) Markdown() string {
	var b strings.Builder
	if d.Title != "" {
		b.WriteString("# ")
		b.WriteString(d.Title)
		b.WriteString("\n\n")
	}
	if d.Author != "" {
		b.WriteString("*")
		b.WriteString(d.Author)
		b.WriteString("*\n\n")
	}
	b.WriteString(d.Body)
	b.WriteString("\n")
	return b.String()
}

// Label returns a short label for display (title, or first line of the body).
func (d Document) Label() string {
	if d.Title != "" {
		return d.Title
	}
	first := strings.TrimSpace(strings.SplitN(d.Body, "\n", 2)[0])
	first = strings.TrimLeft(first, "# ")
	if len(first) > 60 {
		first = first[:57] + "..."
	}
	return first
}
