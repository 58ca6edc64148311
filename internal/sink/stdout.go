package sink

import (
	"bufio"
	"io"
	"os"
)

// StdoutSink writes lines to a writer through a buffer, for piping output to
// other tools instead of a pager.
type StdoutSink struct {
	w *bufio.Writer
}

// NewStdoutSink creates a sink that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewStdoutSink(w io.Writer) *StdoutSink {
	if w == nil {
		w = os.Stdout
	}
	return &StdoutSink{w: bufio.NewWriter(w)}
}

// Write outputs a single terminated line.
func (s *StdoutSink) Write(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes out any buffered lines.
func (s *StdoutSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer; stdout itself stays open.
func (s *StdoutSink) Close() error {
	return s.Flush()
}

// Name returns the sink identifier.
func (s *StdoutSink) Name() string { return "stdout" }
