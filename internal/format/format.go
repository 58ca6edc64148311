// Package format implements positional layout inference for log lines of the
// form `TIMESTAMP LEVEL SOURCE: MESSAGE`, e.g.
//
//	2025-08-28T04:57:18.797136Z INFO  crate::path::file: I am the log message
//
// The timestamp is assumed to be of constant length within one stream and the
// level field of fixed width (space padded), while SOURCE and MESSAGE vary per
// line. Learn parses the first line fully; Apply reuses the learned offsets
// for the timestamp and level and only re-derives the end of the source field.
//
// All offsets are byte offsets. Field separators are runs of ASCII spaces, and
// a space byte never occurs inside a multi-byte UTF-8 sequence, so the
// arithmetic is safe for non-ASCII message content as long as the timestamp,
// level, and source fields themselves are ASCII.
package format

import (
	"strings"

	"github.com/logtint/logtint/internal/entry"
)

// General is the learned, reusable subset of a line's field layout: the spans
// assumed stable across an entire stream. The source end is not cached since
// it varies line to line. Created once per stream and never mutated.
type General struct {
	TimestampStart int
	TimestampEnd   int
	LevelStart     int
	LevelEnd       int
	SourceStart    int
}

// Line is the fully resolved layout for one specific line. Ephemeral: it is
// produced fresh per line and discarded after colorizing.
type Line struct {
	General
	Level     entry.Level
	SourceEnd int
}

// Learn parses a line with no prior knowledge and derives its full layout.
//
// It scans once for the starting offsets of the first three space runs
// (consecutive spaces collapse into one boundary) and classifies the token
// between the first and second run as a level. Each field span absorbs the
// single space that follows it, so recoloring re-emits the original
// separators without extra spacing logic.
//
// Returns ok=false if the line is shorter than 4 bytes, has fewer than 3
// space runs, or the level token does not classify. A true result does not
// guarantee the layout is semantically correct, only structurally plausible.
func Learn(line string) (Line, General, bool) {
	if len(line) < 4 {
		return Line{}, General{}, false
	}

	var runs [3]int
	n := 0
	prevSpace := false
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' {
			if !prevSpace {
				runs[n] = i
				n++
				if n == len(runs) {
					break
				}
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
	}
	if n < len(runs) {
		return Line{}, General{}, false
	}

	level, ok := entry.ParseLevel(line[runs[0]+1 : runs[1]])
	if !ok {
		return Line{}, General{}, false
	}

	g := General{
		TimestampStart: 0,
		TimestampEnd:   runs[0] + 1,
		LevelStart:     runs[0] + 1,
		LevelEnd:       runs[1] + 1,
		SourceStart:    runs[1] + 1,
	}
	return Line{General: g, Level: level, SourceEnd: runs[2] + 1}, g, true
}

// Apply resolves a new line against a previously learned layout.
//
// The level is reclassified from the cached offsets on the new line (it may
// legitimately differ from the line the layout was learned from), and the
// source end is re-derived from the first space at or after g.SourceStart,
// absorbing that space into the span just like Learn so that an applied line
// colorizes identically to a re-learned one. The timestamp span is copied
// through without re-validation: a line whose
// timestamp length has drifted but which still carries a level token at the
// cached offsets parses "successfully" and is mis-colorized.
//
// Returns ok=false if the line is too short for the cached offsets, the level
// token does not classify, or no space follows the source field.
func Apply(line string, g General) (Line, bool) {
	if g.LevelEnd > len(line) {
		return Line{}, false
	}
	level, ok := entry.ParseLevel(line[g.LevelStart:g.LevelEnd])
	if !ok {
		return Line{}, false
	}

	if g.SourceStart > len(line) {
		return Line{}, false
	}
	rel := strings.IndexByte(line[g.SourceStart:], ' ')
	if rel < 0 {
		return Line{}, false
	}

	return Line{General: g, Level: level, SourceEnd: g.SourceStart + rel + 1}, true
}
