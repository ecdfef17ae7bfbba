package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// statusKind classifies a status line. hpg only distinguishes healthy,
// degraded-but-working, and purely informational states; failures surface as
// command errors instead of status rows.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func (k statusKind) label() string {
	switch k {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	default:
		return "INFO"
	}
}

func (k statusKind) color() string {
	switch k {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	default:
		return ansiBlue
	}
}

// printStatus writes one aligned "label: [KIND] message" row.
func printStatus(w io.Writer, label string, kind statusKind, message string, colorize bool) {
	line := fmt.Sprintf("  %-16s [%s]", label+":", kind.label())
	if message != "" {
		line += " " + message
	}
	if colorize {
		line = kind.color() + line + ansiReset
	}
	fmt.Fprintln(w, line)
}

// printSection writes a section title with an underline rule.
func printSection(w io.Writer, title string, colorize bool) {
	line := fmt.Sprintf("== %s ==", title)
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, rule)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
