// Package sink defines the Sink interface for pipeline output.
package sink

// Sink receives finished output lines and writes them to a destination.
// Lines are written one at a time and the destination is never assumed to be
// seekable.
type Sink interface {
	// Write outputs a single line, appending the line terminator.
	Write(line string) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close flushes and releases resources held by the sink. For sinks that
	// own a child process, Close must release the output channel before
	// waiting for the process to exit.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}
