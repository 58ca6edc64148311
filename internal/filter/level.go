package filter

import (
	"fmt"
	"strings"

	"github.com/logtint/logtint/internal/entry"
)

// LevelFilter passes only lines whose classified level is in the allowed set.
// Lines that failed layout resolution carry no level and never match.
type LevelFilter struct {
	allowed map[entry.Level]bool
}

// NewLevelFilter creates a filter that passes entries matching any of the given levels.
func NewLevelFilter(levels ...entry.Level) *LevelFilter {
	allowed := make(map[entry.Level]bool, len(levels))
	for _, l := range levels {
		allowed[l] = true
	}
	return &LevelFilter{allowed: allowed}
}

// ParseLevels parses a comma-separated list of level names, e.g. "error,warn".
func ParseLevels(s string) ([]entry.Level, error) {
	var levels []entry.Level
	for _, tok := range strings.Split(s, ",") {
		l, ok := entry.ParseLevel(tok)
		if !ok {
			return nil, fmt.Errorf("filter: unknown level %q", strings.TrimSpace(tok))
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// Match returns true if the entry was classified and its level is allowed.
func (f *LevelFilter) Match(e *entry.Entry) bool {
	return e.Classified && f.allowed[e.Level]
}

// Name returns the filter description.
func (f *LevelFilter) Name() string {
	var levels []string
	for l := range f.allowed {
		levels = append(levels, l.String())
	}
	return "level:" + strings.Join(levels, ",")
}
