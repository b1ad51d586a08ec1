package shaderpurge

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Logger writes line-oriented status messages.
// Lines from concurrent tasks interleave but are never torn.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool

	skip    *color.Color
	success *color.Color
	summary *color.Color
	debug   *color.Color
}

// NewLogger creates a logger writing to w. Colour follows the fatih/color
// terminal detection unless DisableColor is called.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		out:     w,
		skip:    color.New(color.FgYellow),
		success: color.New(color.FgGreen),
		summary: color.New(color.Bold),
		debug:   color.New(color.Faint),
	}
}

// DisableColor turns off colour for every line this logger writes.
func (l *Logger) DisableColor() {
	l.skip.DisableColor()
	l.success.DisableColor()
	l.summary.DisableColor()
	l.debug.DisableColor()
}

// SetVerbose enables Debugf output.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

// Infof writes a plain status line.
func (l *Logger) Infof(format string, args ...any) {
	l.println(nil, format, args...)
}

// Skipf reports a source or directory that was skipped.
func (l *Logger) Skipf(format string, args ...any) {
	l.println(l.skip, format, args...)
}

// Successf reports the outcome of a purge.
func (l *Logger) Successf(format string, args ...any) {
	l.println(l.success, format, args...)
}

// Summaryf writes the closing line of a run.
func (l *Logger) Summaryf(format string, args ...any) {
	l.println(l.summary, format, args...)
}

// Debugf writes a line only when verbose output is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	l.mu.Lock()
	verbose := l.verbose
	l.mu.Unlock()
	if !verbose {
		return
	}
	l.println(l.debug, format, args...)
}

func (l *Logger) println(c *color.Color, format string, args ...any) {
	line := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if c == nil {
		fmt.Fprintln(l.out, line)
		return
	}
	c.Fprintln(l.out, line)
}
