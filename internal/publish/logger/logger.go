// SPDX-License-Identifier: MPL-2.0

// Package logger reports per-file upload progress in the style matching
// the selected logger mode.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/przemek-pokrywka/coursier/internal/publish/mode"
)

// DefaultFrameWidth bounds redrawn lines when no --output-width is given.
const DefaultFrameWidth = 80

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ProgressLogger receives one Start/Done pair per uploaded file.
// Implementations are safe for use from a single goroutine only; the
// upload loop is sequential.
type ProgressLogger interface {
	// Start announces that work on msg (typically a destination path) began.
	Start(msg string)
	// Done reports the outcome of the last started item.
	Done(msg string, err error)
}

// New constructs the progress logger for a selected mode, writing to out.
// width bounds redrawn lines in interactive mode; pass 0 for the default.
func New(kind mode.LoggerKind, out io.Writer, width int) ProgressLogger {
	if width <= 0 {
		width = DefaultFrameWidth
	}
	if kind == mode.LoggerInteractive {
		return &interactiveLogger{out: out, width: width}
	}
	return &batchLogger{out: out}
}

// batchLogger emits one complete line per event, suitable for CI logs
// and redirected output.
type batchLogger struct {
	mu  sync.Mutex
	out io.Writer
}

func (l *batchLogger) Start(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "uploading %s\n", msg)
}

func (l *batchLogger) Done(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		fmt.Fprintf(l.out, "%s %s: %v\n", failStyle.Render("failed"), msg, err)
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", okStyle.Render("done"), msg)
}

// interactiveLogger redraws the current item in place with a carriage
// return, keeping terminal output to a single moving line per file.
type interactiveLogger struct {
	mu    sync.Mutex
	out   io.Writer
	width int
}

func (l *interactiveLogger) Start(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redraw(dimStyle.Render("uploading ") + msg)
}

func (l *interactiveLogger) Done(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.redraw(failStyle.Render("failed ") + msg)
		fmt.Fprintf(l.out, "\n  %v\n", err)
		return
	}
	l.redraw(okStyle.Render("done ") + msg)
	fmt.Fprintln(l.out)
}

// redraw clears the previous frame and writes a new one, truncated to
// the frame width so a long path never wraps and breaks the rewrite.
func (l *interactiveLogger) redraw(line string) {
	if lipgloss.Width(line) > l.width {
		line = truncate(line, l.width)
	}
	pad := l.width - lipgloss.Width(line)
	fmt.Fprintf(l.out, "\r%s%s", line, strings.Repeat(" ", pad))
}

// truncate trims a styled line down to width visible cells. ANSI escape
// sequences do not count towards the width.
func truncate(line string, width int) string {
	var b strings.Builder
	cells := 0
	inEscape := false
	for _, r := range line {
		switch {
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			b.WriteRune(r)
			inEscape = true
		case cells < width:
			b.WriteRune(r)
			cells++
		}
	}
	return b.String()
}
