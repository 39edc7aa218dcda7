package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const checkLabelWidth = 20

func paint(color, text string, colorize bool) string {
	if !colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}

// renderCheckLine formats one preflight result. Failed checks are warnings
// because every check guards an optional tool path.
func renderCheckLine(name string, passed bool, detail string, colorize bool) string {
	label, color := "OK", ansiGreen
	if !passed {
		label, color = "WARN", ansiYellow
	}
	status := "[" + label + "]"
	if detail != "" {
		status += " " + detail
	}
	return paint(color, fmt.Sprintf("  %-*s %s", checkLabelWidth, name+":", status), colorize)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	return []string{
		paint(ansiBlue, line, colorize),
		paint(ansiBlue, strings.Repeat("-", len(line)), colorize),
	}
}

// colorAvailability tints an availability cell: green when present, yellow
// when missing but installable, red otherwise.
func colorAvailability(text string, available, installable bool) string {
	switch {
	case available:
		return paint(ansiGreen, text, true)
	case installable:
		return paint(ansiYellow, text, true)
	default:
		return paint(ansiRed, text, true)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
