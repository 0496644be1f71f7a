// Package ui prints colored status lines.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green     = color.New(color.FgGreen).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
	highlight = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Printer writes status lines to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New returns a printer writing to out and err.
func New(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// Stdio returns a printer writing to the process's standard streams.
func Stdio() *Printer {
	return New(os.Stdout, os.Stderr)
}

// Success prints a line prefixed with a check mark.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// Skip prints a line for something that was deliberately not done.
func (p *Printer) Skip(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", yellow("○"), fmt.Sprintf(format, args...))
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error prints err to the error stream, prefixed with a cross.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.err, "%s %s\n", red("✗"), red(err.Error()))
}

// Bold renders s in bold.
func Bold(s any) string {
	return bold(s)
}

// Highlight renders s in bold green.
func Highlight(s any) string {
	return highlight(s)
}
