// Package filter screens user-submitted text against a list of disallowed
// terms. Matching is case-insensitive on word boundaries; matched words are
// redacted with asterisks.
package filter

import (
	"regexp"
	"strings"
)

// Result is the outcome of a filter pass. Text always holds the version
// safe to store as the visible copy.
type Result struct {
	OK   bool
	Text string
}

// Default term list. Placeholder-grade; production deployments replace it
// via NewFilter.
var defaultTerms = []string{
	"scam",
	"spam",
	"fraud",
	"idiot",
	"stupid",
	"hate",
}

type Filter struct {
	patterns []*regexp.Regexp
}

// NewFilter compiles a filter over the given terms. Terms are matched as
// whole words, case-insensitively.
func NewFilter(terms []string) *Filter {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return &Filter{patterns: patterns}
}

// Default returns a filter over the built-in term list.
func Default() *Filter {
	return NewFilter(defaultTerms)
}

// Check screens text. Empty input passes through untouched. OK is false
// iff at least one disallowed term matched; the returned text has every
// match replaced with one '*' per rune.
func (f *Filter) Check(text string) Result {
	if text == "" {
		return Result{OK: true, Text: ""}
	}

	matched := false
	sanitized := text
	for _, pattern := range f.patterns {
		sanitized = pattern.ReplaceAllStringFunc(sanitized, func(m string) string {
			matched = true
			return strings.Repeat("*", len([]rune(m)))
		})
	}

	return Result{OK: !matched, Text: sanitized}
}

// Check runs the default filter. Convenience for callers that do not
// carry their own term list.
func Check(text string) Result {
	return Default().Check(text)
}
