package pipeline

import (
	"strings"
	"testing"

	"github.com/logtint/logtint/internal/entry"
	"github.com/logtint/logtint/internal/filter"
	"github.com/logtint/logtint/internal/format"
	"github.com/logtint/logtint/internal/monitor"
	"github.com/logtint/logtint/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	infoLine  = "2025-08-28T04:57:18.797136Z  INFO app::server: listening on 8080"
	errorLine = "2025-08-28T04:57:19.001000Z ERROR app::db: boom"
	warnLine  = "2025-08-28T04:57:19.104443Z  WARN app::server: slow request"
)

// memSink collects written lines in memory.
type memSink struct {
	lines []string
}

func (s *memSink) Write(line string) error { s.lines = append(s.lines, line); return nil }
func (s *memSink) Flush() error            { return nil }
func (s *memSink) Close() error            { return nil }
func (s *memSink) Name() string            { return "mem" }

func TestProcessLearnsFromFirstGoodLine(t *testing.T) {
	p := New(nil, nil)
	require.False(t, p.Learned())

	out, emit := p.Process(infoLine)
	require.True(t, emit)
	assert.True(t, p.Learned())

	lf, _, ok := format.Learn(infoLine)
	require.True(t, ok)
	assert.Equal(t, format.Colorize(infoLine, lf), out)
}

func TestProcessStaysUnlearnedOnBadLeadingLines(t *testing.T) {
	p := New(nil, nil)

	for _, line := range []string{"", "xy", "not a log line at all"} {
		out, emit := p.Process(line)
		require.True(t, emit)
		assert.Equal(t, "FAILED TO PARSE LINE: "+line, out)
		assert.False(t, p.Learned())
	}

	// A later well-formed line still gets learned.
	_, emit := p.Process(infoLine)
	require.True(t, emit)
	assert.True(t, p.Learned())
}

func TestProcessAppliesInsteadOfRelearning(t *testing.T) {
	p := New(nil, nil)
	_, _ = p.Process(infoLine)
	require.True(t, p.Learned())

	out, emit := p.Process(errorLine)
	require.True(t, emit)

	// Identical layout: applying the cached format colorizes the same as
	// learning from scratch would have.
	lf, _, ok := format.Learn(errorLine)
	require.True(t, ok)
	assert.Equal(t, format.Colorize(errorLine, lf), out)
}

func TestProcessFailureDoesNotRevertLearnedState(t *testing.T) {
	p := New(nil, nil)
	_, _ = p.Process(infoLine)
	require.True(t, p.Learned())

	out, emit := p.Process("short")
	require.True(t, emit)
	assert.Equal(t, "FAILED TO PARSE LINE: short", out)
	assert.True(t, p.Learned())

	// The cached format survives and keeps working.
	out, emit = p.Process(warnLine)
	require.True(t, emit)
	assert.NotContains(t, out, "FAILED TO PARSE LINE")
	assert.Contains(t, out, "\x1b[93m")
}

func TestProcessAppliesFilters(t *testing.T) {
	chain := filter.NewChain(filter.NewLevelFilter(entry.LevelError))
	p := New(chain, nil)

	_, emit := p.Process(infoLine)
	assert.False(t, emit, "info line should be filtered out")
	// Filtering does not stop learning.
	assert.True(t, p.Learned())

	out, emit := p.Process(errorLine)
	require.True(t, emit)
	assert.Contains(t, out, "\x1b[91m")

	// Unparsable lines carry no level and are dropped by a level filter.
	_, emit = p.Process("garbage")
	assert.False(t, emit)
}

func TestRunEndToEnd(t *testing.T) {
	input := strings.Join([]string{infoLine, errorLine, "broken", warnLine}, "\n") + "\n"
	snk := &memSink{}
	stats := monitor.NewStats()

	err := Run(&Config{
		Source: source.NewReader(strings.NewReader(input), "test"),
		Sink:   snk,
		Stats:  stats,
	})
	require.NoError(t, err)

	require.Len(t, snk.lines, 4)
	assert.Contains(t, snk.lines[0], "\x1b[92m")
	assert.Contains(t, snk.lines[1], "\x1b[91m")
	assert.Equal(t, "FAILED TO PARSE LINE: broken", snk.lines[2])
	assert.Contains(t, snk.lines[3], "\x1b[93m")

	assert.Equal(t, uint64(4), stats.Total())
	assert.Equal(t, uint64(3), stats.Colorized())
	assert.Equal(t, uint64(1), stats.Failed())
}

func TestRunWithKeywordFilter(t *testing.T) {
	input := strings.Join([]string{infoLine, errorLine, warnLine}, "\n") + "\n"
	snk := &memSink{}
	stats := monitor.NewStats()

	err := Run(&Config{
		Source:  source.NewReader(strings.NewReader(input), "test"),
		Sink:    snk,
		Filters: filter.NewChain(filter.NewKeywordFilter("app::db")),
		Stats:   stats,
	})
	require.NoError(t, err)

	require.Len(t, snk.lines, 1)
	assert.Contains(t, snk.lines[0], "app::db")

	// Filtered-out lines count toward the total but are neither colorized
	// nor failed.
	assert.Equal(t, uint64(3), stats.Total())
	assert.Equal(t, uint64(1), stats.Colorized())
	assert.Equal(t, uint64(0), stats.Failed())
}

func TestRunAbortsOnInvalidUTF8(t *testing.T) {
	input := infoLine + "\n" +
		"2025-08-28T04:57:19.001000Z ERROR app::db: \xff\xfe broken bytes\n" +
		warnLine + "\n"
	snk := &memSink{}

	err := Run(&Config{
		Source: source.NewReader(strings.NewReader(input), "test"),
		Sink:   snk,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	// Lines before the malformed one were already written; nothing after it.
	require.Len(t, snk.lines, 1)
	assert.Contains(t, snk.lines[0], "app::server")
}

func TestRunRequiresSourceAndSink(t *testing.T) {
	err := Run(&Config{Sink: &memSink{}})
	assert.Error(t, err)

	err = Run(&Config{Source: source.NewReader(strings.NewReader(""), "test")})
	assert.Error(t, err)
}
