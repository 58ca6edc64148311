package filter

import (
	"strings"

	"github.com/logtint/logtint/internal/entry"
)

// KeywordFilter matches lines containing a specific keyword.
type KeywordFilter struct {
	keyword string
}

// NewKeywordFilter creates a filter that matches lines containing the keyword.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{keyword: keyword}
}

// Match returns true if the raw line contains the keyword.
func (f *KeywordFilter) Match(e *entry.Entry) bool {
	return strings.Contains(e.Raw, f.keyword)
}

// Name returns the filter description.
func (f *KeywordFilter) Name() string {
	return "keyword:" + f.keyword
}
