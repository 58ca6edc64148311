package filter

import (
	"strings"

	"github.com/logtint/logtint/internal/entry"
)

// ExcludeFilter is a negative filter: Match returns true if the line should
// PASS, i.e. does NOT contain any excluded pattern.
type ExcludeFilter struct {
	patterns []string
}

// NewExcludeFilter creates a filter that rejects lines containing any of the patterns.
func NewExcludeFilter(patterns ...string) *ExcludeFilter {
	return &ExcludeFilter{patterns: patterns}
}

// Match returns true if the raw line does not contain any excluded pattern.
func (f *ExcludeFilter) Match(e *entry.Entry) bool {
	for _, p := range f.patterns {
		if strings.Contains(e.Raw, p) {
			return false
		}
	}
	return true
}

// Name returns the filter description.
func (f *ExcludeFilter) Name() string {
	return "exclude:" + strings.Join(f.patterns, ",")
}
