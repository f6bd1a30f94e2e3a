// Package ui prints short status lines for non-interactive command output.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func Success(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", green("✓"), msg)
}

func Warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", yellow("⚠"), msg)
}

func Error(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", red("✗"), msg)
}

func Header(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n  %s\n", bold(msg))
}
