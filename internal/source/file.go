package source

import (
	"fmt"
	"os"
)

// OpenFile opens a log file for reading.
func OpenFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	return &Source{
		r:      f,
		closer: f,
		name:   fmt.Sprintf("file:%s", path),
	}, nil
}
