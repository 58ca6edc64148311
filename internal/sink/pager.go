package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// PagerSink pipes lines into a spawned pager process (less). The sink owns
// the child process handle and its stdin pipe for the lifetime of the run.
type PagerSink struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	w     *bufio.Writer
}

// NewPagerSink creates a sink that will pipe output into `less -R`, with any
// extra arguments passed through to less. Start must be called before Write.
func NewPagerSink(extraArgs []string) *PagerSink {
	return newPagerSink("less", append([]string{"-R"}, extraArgs...))
}

// newPagerSink builds the sink around an arbitrary command. Split out so
// tests can substitute a harmless child process for less.
func newPagerSink(name string, args []string) *PagerSink {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return &PagerSink{cmd: cmd}
}

// Start spawns the pager process and opens its stdin pipe.
func (s *PagerSink) Start() error {
	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("pager stdin pipe: %w", err)
	}
	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("start pager %s: %w", s.cmd.Path, err)
	}
	s.stdin = stdin
	s.w = bufio.NewWriter(stdin)
	return nil
}

// Write outputs a single terminated line to the pager.
func (s *PagerSink) Write(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes out any buffered lines.
func (s *PagerSink) Flush() error {
	return s.w.Flush()
}

// Close flushes buffered output, closes the pager's stdin, and waits for the
// process to exit. The pipe must be closed before waiting, otherwise less
// blocks forever on an input that never ends. Safe to call when Start failed.
// The first error wins: a flush or pipe-close failure is not masked by the
// child's exit status.
func (s *PagerSink) Close() error {
	if s.stdin == nil {
		return nil
	}
	err := s.w.Flush()
	if cerr := s.stdin.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if werr := s.cmd.Wait(); werr != nil && err == nil {
		err = fmt.Errorf("wait for pager: %w", werr)
	}
	return err
}

// Name returns the sink identifier.
func (s *PagerSink) Name() string {
	return "pager:" + s.cmd.Path
}
