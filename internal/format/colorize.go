package format

// ANSI escape codes shared by every colorized line.
const (
	colorGrey  = "\x1b[90m"
	colorReset = "\x1b[0m"
)

// Colorize re-emits a line with ANSI colors applied to its fields: timestamp
// and source in grey, level in its severity color, and the message tail
// untouched after a reset. Pure function; the caller guarantees the layout's
// offsets are valid indices into line (both Learn and Apply derive them from
// the same line or one of compatible structure).
//
// Stripping the escape sequences from the result yields the input exactly.
func Colorize(line string, f Line) string {
	b := make([]byte, 0, len(line)+24)
	b = append(b, colorGrey...)
	b = append(b, line[f.TimestampStart:f.TimestampEnd]...)
	b = append(b, f.Level.Color()...)
	b = append(b, line[f.LevelStart:f.LevelEnd]...)
	b = append(b, colorGrey...)
	b = append(b, line[f.SourceStart:f.SourceEnd]...)
	b = append(b, colorReset...)
	b = append(b, line[f.SourceEnd:]...)
	return string(b)
}
