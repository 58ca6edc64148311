// Package filter defines the Filter interface and Chain for selecting which
// lines are emitted.
package filter

import (
	"github.com/logtint/logtint/internal/entry"
)

// Filter determines whether a line matches a filtering criterion.
type Filter interface {
	// Match returns true if the entry passes this filter.
	Match(e *entry.Entry) bool

	// Name returns a human-readable description of this filter.
	Name() string
}

// Chain combines multiple filters with AND logic: an entry passes only if
// every filter matches. An empty chain passes everything.
type Chain struct {
	filters []Filter
}

// NewChain creates a Chain from the given filters.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Match evaluates the chain against an entry.
func (c *Chain) Match(e *entry.Entry) bool {
	for _, f := range c.filters {
		if !f.Match(e) {
			return false
		}
	}
	return true
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}
