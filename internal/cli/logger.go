package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// StderrLogger writes leveled, colored diagnostics. Debug lines are dropped
// unless Verbose is set.
type StderrLogger struct {
	Verbose bool

	mu     sync.Mutex
	w      io.Writer
	styles levelStyles
}

type levelStyles struct {
	debug, info, warn, err lipgloss.Style
}

// NewStderrLogger logs to os.Stderr.
func NewStderrLogger(verbose bool) *StderrLogger {
	return NewLogger(os.Stderr, verbose)
}

// NewLogger logs to w, coloring level tags only when w is a terminal.
func NewLogger(w io.Writer, verbose bool) *StderrLogger {
	r := lipgloss.NewRenderer(w)
	return &StderrLogger{
		Verbose: verbose,
		w:       w,
		styles: levelStyles{
			debug: r.NewStyle().Foreground(ColorTextDim),
			info:  r.NewStyle().Foreground(ColorBlue),
			warn:  r.NewStyle().Bold(true).Foreground(ColorOrange),
			err:   r.NewStyle().Bold(true).Foreground(ColorRed),
		},
	}
}

func (l *StderrLogger) Debugf(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.write(l.styles.debug, "DEBUG", format, args)
}

func (l *StderrLogger) Infof(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.write(l.styles.info, "INFO", format, args)
}

func (l *StderrLogger) Warnf(format string, args ...any) {
	l.write(l.styles.warn, "WARN", format, args)
}

func (l *StderrLogger) Errorf(format string, args ...any) {
	l.write(l.styles.err, "ERROR", format, args)
}

func (l *StderrLogger) write(tag lipgloss.Style, level, format string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "  %s %s\n", tag.Render(fmt.Sprintf("%-5s", level)), fmt.Sprintf(format, args...))
}
