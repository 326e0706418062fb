// Package status prints tagged, colored status lines for command output.
package status

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Info prints an informational line with a cyan [info] tag.
func Info(w io.Writer, format string, a ...any) {
	line(w, color.CyanString("[info]"), format, a...)
}

// OK prints a success line with a green [ ok ] tag.
func OK(w io.Writer, format string, a ...any) {
	line(w, color.GreenString("[ ok ]"), format, a...)
}

// Warn prints a warning line with a yellow [warn] tag.
func Warn(w io.Writer, format string, a ...any) {
	line(w, color.YellowString("[warn]"), format, a...)
}

// Fail prints a failure line with a red [fail] tag.
func Fail(w io.Writer, format string, a ...any) {
	line(w, color.RedString("[fail]"), format, a...)
}

// Plain prints an untagged line, for instruction blocks under a tagged header.
func Plain(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", a...)
}

func line(w io.Writer, tag string, format string, a ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", tag, fmt.Sprintf(format, a...))
}
