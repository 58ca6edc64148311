// Package entry defines the core per-line types used throughout the logtint pipeline.
package entry

import "strings"

// Level represents the severity classification token of a log line.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Color returns the ANSI foreground escape sequence for the level.
func (l Level) Color() string {
	switch l {
	case LevelError:
		return "\x1b[91m" // red
	case LevelWarn:
		return "\x1b[93m" // yellow
	case LevelInfo:
		return "\x1b[92m" // green
	case LevelDebug:
		return "\x1b[94m" // blue
	case LevelTrace:
		return "\x1b[95m" // purple
	default:
		return ""
	}
}

// ParseLevel classifies a raw level token. The token is trimmed and
// lower-cased before matching; anything outside the five known names is an
// explicit classification failure, reported via the second return value.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, true
	case "warn":
		return LevelWarn, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	case "trace":
		return LevelTrace, true
	default:
		return 0, false
	}
}

// Entry is the per-line record handed to filters. It exists only for the
// duration of processing one line.
type Entry struct {
	Raw        string // the original line, without its terminator
	Level      Level  // valid only when Classified is true
	Classified bool   // whether layout resolution succeeded for this line
}
