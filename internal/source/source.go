// Package source selects and opens the log input stream.
package source

import "io"

// Source is a line-oriented input stream together with its identity.
type Source struct {
	r      io.Reader
	closer io.Closer // nil when there is nothing to close (stdin)
	name   string
}

// Read implements io.Reader.
func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close releases the underlying stream, if it is closable.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Name returns a human-readable identifier for this source.
func (s *Source) Name() string {
	return s.name
}

// NewReader wraps an arbitrary reader as a Source.
func NewReader(r io.Reader, name string) *Source {
	return &Source{r: r, name: name}
}

// Open selects the input for a run: the named file when path is non-empty,
// otherwise stdin (which must be a pipe, not a terminal).
func Open(path string) (*Source, error) {
	if path != "" {
		return OpenFile(path)
	}
	return OpenStdin()
}
