package source

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrMissingFilename is returned when no file is given and stdin is a
// terminal, so there is nothing to read.
var ErrMissingFilename = errors.New("missing filename")

// OpenStdin wires stdin as the input stream. Stdin must be a pipe; an
// interactive terminal means the user forgot the file argument.
func OpenStdin() (*Source, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, ErrMissingFilename
	}
	return &Source{
		r:    os.Stdin,
		name: "stdin",
	}, nil
}
