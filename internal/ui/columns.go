package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when the terminal size cannot be determined.
const DefaultTermWidth = 80

// TermWidth returns the current terminal width in columns.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return DefaultTermWidth
}

// Columns lays values out in as many columns as fit the terminal, ls-style.
// Used by single-entry listings when stdout is a terminal.
func Columns(values []string) string {
	return ColumnsWidth(values, TermWidth(), 2)
}

// ColumnsWidth lays values out in columns for a given total width and
// inter-column spacing.
func ColumnsWidth(values []string, width, spacing int) string {
	if len(values) == 0 {
		return ""
	}
	max := 0
	for _, v := range values {
		if n := len([]rune(v)); n > max {
			max = n
		}
	}
	perLine := (width + spacing) / (max + spacing)
	if perLine < 1 {
		perLine = 1
	}

	space := strings.Repeat(" ", spacing)
	var lines []string
	var line []string
	for i, v := range values {
		line = append(line, pad(v, max))
		if len(line) == perLine || i == len(values)-1 {
			lines = append(lines, strings.TrimRight(strings.Join(line, space), " "))
			line = line[:0]
		}
	}
	return strings.Join(lines, "\n")
}
