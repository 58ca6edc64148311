// Package monitor provides processing statistics for the pipeline.
package monitor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects per-run line counters in a lock-free manner.
type Stats struct {
	totalLines     atomic.Uint64
	colorizedLines atomic.Uint64
	failedLines    atomic.Uint64
	startTime      time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{
		startTime: time.Now(),
	}
}

// RecordLine increments the total line counter.
func (s *Stats) RecordLine() {
	s.totalLines.Add(1)
}

// RecordColorized increments the successfully colorized line counter.
func (s *Stats) RecordColorized() {
	s.colorizedLines.Add(1)
}

// RecordFailure increments the parse-failure counter.
func (s *Stats) RecordFailure() {
	s.failedLines.Add(1)
}

// Total returns the total number of processed lines.
func (s *Stats) Total() uint64 {
	return s.totalLines.Load()
}

// Colorized returns the number of successfully colorized lines.
func (s *Stats) Colorized() uint64 {
	return s.colorizedLines.Load()
}

// Failed returns the number of lines that failed to parse.
func (s *Stats) Failed() uint64 {
	return s.failedLines.Load()
}

// Elapsed returns the time since monitoring started.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Rate returns the current lines per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(s.Total()) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	total := s.Total()
	colorized := s.Colorized()

	colorRate := float64(0)
	if total > 0 {
		colorRate = float64(colorized) / float64(total) * 100
	}

	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Total lines:     %d\n"+
			"  Colorized lines: %d (%.1f%%)\n"+
			"  Failed lines:    %d\n"+
			"  Duration:        %s\n"+
			"  Throughput:      %.0f lines/s\n"+
			"─────────────",
		total, colorized, colorRate,
		s.Failed(),
		s.Elapsed().Round(time.Millisecond),
		s.Rate(),
	)
}
