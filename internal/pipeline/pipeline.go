// Package pipeline orchestrates Source → format → Filter → Sink processing.
package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/logtint/logtint/internal/entry"
	"github.com/logtint/logtint/internal/filter"
	"github.com/logtint/logtint/internal/format"
	"github.com/logtint/logtint/internal/monitor"
	"github.com/logtint/logtint/internal/sink"
	"github.com/logtint/logtint/internal/source"
)

// failPrefix marks lines emitted verbatim because layout resolution failed.
const failPrefix = "FAILED TO PARSE LINE: "

// ErrInvalidUTF8 is returned by Run when the input contains a malformed byte
// sequence. Non-text input is a fatal read error that aborts the whole run,
// not a per-line parse failure.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 in input")

// state is the pipeline's learning state. Learned is absorbing: a later
// per-line failure never reverts the pipeline or invalidates the cached
// layout.
type state int

const (
	stateUnlearned state = iota
	stateLearned
)

// Pipeline colorizes a stream of log lines, learning the field layout from
// the first well-formed line and reusing it for the rest of the stream.
// Not safe for concurrent use; lines are processed strictly one at a time.
type Pipeline struct {
	state   state
	general format.General
	filters *filter.Chain
	stats   *monitor.Stats
}

// New creates a pipeline in the unlearned state. Both arguments may be nil.
func New(filters *filter.Chain, stats *monitor.Stats) *Pipeline {
	if stats == nil {
		stats = monitor.NewStats()
	}
	return &Pipeline{filters: filters, stats: stats}
}

// Learned reports whether a layout has been learned from this stream.
func (p *Pipeline) Learned() bool {
	return p.state == stateLearned
}

// Process handles one line: resolve its layout (learning it first if
// necessary), apply filters, and produce the output line. The second return
// value is false when the line was filtered out and nothing should be
// emitted. A parse failure is not an error: the line is emitted with a
// diagnostic prefix and processing continues.
func (p *Pipeline) Process(raw string) (string, bool) {
	p.stats.RecordLine()

	var lf format.Line
	var ok bool
	switch p.state {
	case stateLearned:
		lf, ok = format.Apply(raw, p.general)
	default:
		var g format.General
		lf, g, ok = format.Learn(raw)
		if ok {
			p.general = g
			p.state = stateLearned
		}
	}

	e := entry.Entry{Raw: raw}
	if ok {
		e.Level = lf.Level
		e.Classified = true
	}
	if p.filters != nil && p.filters.Len() > 0 && !p.filters.Match(&e) {
		return "", false
	}

	if !ok {
		p.stats.RecordFailure()
		return failPrefix + raw, true
	}
	p.stats.RecordColorized()
	return format.Colorize(raw, lf), true
}

// Config holds pipeline run configuration.
type Config struct {
	Source  *source.Source
	Sink    sink.Sink
	Filters *filter.Chain
	Stats   *monitor.Stats
}

// Run executes the pipeline: reads lines from the source one at a time,
// processes each, and writes the result to the sink before reading the next.
// Blocks until the source is exhausted. Any read or write error aborts the
// whole run; per-line parse failures do not.
func Run(cfg *Config) error {
	if cfg.Source == nil {
		return fmt.Errorf("pipeline: source is required")
	}
	if cfg.Sink == nil {
		return fmt.Errorf("pipeline: sink is required")
	}

	p := New(cfg.Filters, cfg.Stats)

	scanner := bufio.NewScanner(cfg.Source)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			return fmt.Errorf("pipeline: read from %s: %w", cfg.Source.Name(), ErrInvalidUTF8)
		}
		out, emit := p.Process(raw)
		if !emit {
			continue
		}
		if err := cfg.Sink.Write(out); err != nil {
			return fmt.Errorf("pipeline: write to %s: %w", cfg.Sink.Name(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("pipeline: read from %s: %w", cfg.Source.Name(), err)
	}

	return cfg.Sink.Flush()
}
