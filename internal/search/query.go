// Package search parses finder queries and matches workspace paths
// against them.
package search

import (
	"os"
	"path/filepath"
	"strings"
)

// DirectiveType identifies what a directive matches against.
type DirectiveType int

const (
	DirName DirectiveType = iota
	DirExt
	DirPath
	DirContents
	DirKind
)

// Directive is a single term of a query.
type Directive struct {
	Type  DirectiveType
	Value string
}

// Query holds parsed directives. All directives must match.
type Query struct {
	Directives []Directive
	Raw        string
}

// Parse turns finder input into directives.
// Examples:
//   - "main" -> name contains "main"
//   - "*_test.go" -> name glob
//   - "ext:go" -> files with a .go extension
//   - "path:internal/app" -> relative path contains "internal/app"
//   - "contents:TODO" -> file text contains "TODO"
//   - "kind:dir" -> directories only
func Parse(input string) *Query {
	q := &Query{Raw: input}
	for _, part := range splitRespectingQuotes(strings.TrimSpace(input)) {
		q.Directives = append(q.Directives, parseDirective(part))
	}
	return q
}

func splitRespectingQuotes(s string) []string {
	var parts []string
	var current strings.Builder
	var quote rune

	for _, r := range s {
		switch {
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
		case r == quote:
			quote = 0
		case quote == 0 && (r == ' ' || r == '\t'):
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func parseDirective(s string) Directive {
	if idx := strings.Index(s, ":"); idx > 0 {
		value := strings.Trim(s[idx+1:], "\"'")
		switch strings.ToLower(s[:idx]) {
		case "name", "file", "filename":
			return Directive{Type: DirName, Value: strings.ToLower(value)}
		case "ext", "extension":
			if !strings.HasPrefix(value, ".") {
				value = "." + value
			}
			return Directive{Type: DirExt, Value: strings.ToLower(value)}
		case "path", "in":
			return Directive{Type: DirPath, Value: strings.ToLower(filepath.ToSlash(value))}
		case "contents", "content", "text":
			return Directive{Type: DirContents, Value: strings.ToLower(value)}
		case "kind", "is":
			return Directive{Type: DirKind, Value: strings.ToLower(value)}
		}
	}
	return Directive{Type: DirName, Value: strings.ToLower(s)}
}

// IsEmpty returns true if query has no directives
func (q *Query) IsEmpty() bool {
	return len(q.Directives) == 0
}

// HasContentSearch returns true if query reads file contents
func (q *Query) HasContentSearch() bool {
	for _, d := range q.Directives {
		if d.Type == DirContents {
			return true
		}
	}
	return false
}

// Candidate is a path offered to the matcher.
type Candidate struct {
	Path  string // absolute path, used for content reads
	Rel   string // slash-separated path relative to the search root
	Name  string
	IsDir bool
}

// maxContentSize skips large files for contents: directives.
const maxContentSize = 4 << 20

// Matcher evaluates candidates against a query.
type Matcher struct {
	query       *Query
	contentFunc func(path string) (string, error)
}

// NewMatcher creates a matcher that reads file contents from disk.
func NewMatcher(q *Query) *Matcher {
	return &Matcher{query: q, contentFunc: readContent}
}

func readContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxContentSize {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetContentFunc replaces the content reader (tests use in-memory content).
func (m *Matcher) SetContentFunc(f func(path string) (string, error)) {
	m.contentFunc = f
}

// Match reports whether c satisfies every directive.
func (m *Matcher) Match(c Candidate) bool {
	for _, d := range m.query.Directives {
		if !m.matchDirective(d, c) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchDirective(d Directive, c Candidate) bool {
	switch d.Type {
	case DirName:
		return MatchGlob(strings.ToLower(c.Name), d.Value)
	case DirExt:
		return !c.IsDir && strings.ToLower(filepath.Ext(c.Name)) == d.Value
	case DirPath:
		return strings.Contains(strings.ToLower(c.Rel), d.Value)
	case DirKind:
		switch d.Value {
		case "dir", "directory", "folder":
			return c.IsDir
		case "file":
			return !c.IsDir
		}
		return false
	case DirContents:
		if c.IsDir {
			return false
		}
		content, err := m.contentFunc(c.Path)
		if err != nil {
			return false
		}
		return strings.Contains(strings.ToLower(content), d.Value)
	}
	return false
}

// MatchGlob matches name against a pattern with * wildcards. A pattern
// without wildcards is a substring match.
func MatchGlob(name, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return strings.Contains(name, pattern)
	}

	parts := strings.Split(pattern, "*")
	first, last := parts[0], parts[len(parts)-1]
	if !strings.HasPrefix(name, first) {
		return false
	}
	pos := len(first)
	for _, part := range parts[1 : len(parts)-1] {
		if part == "" {
			continue
		}
		idx := strings.Index(name[pos:], part)
		if idx < 0 {
			return false
		}
		pos += idx + len(part)
	}
	return strings.HasSuffix(name[pos:], last)
}
