// Package stats renders end-of-session statistics.
package stats

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	colorCyan           = "\x1b[36m"
	colorReset          = "\x1b[0m"
)

// TerminalWidth reports the column count of the terminal behind w, or
// fallback when w is not a terminal.
func TerminalWidth(w io.Writer, fallback int) int {
	file, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// UseColor reports whether ANSI color should be written to w. Setting
// NO_COLOR disables color regardless of the target.
func UseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
