package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Logger emits leveled, human oriented messages.
// Results go to Out, and all diagnostics go to Err.
type Logger struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
	Quiet   bool
}

// Printf emits a result message unless Quiet is set.
func (l Logger) Printf(msg string, args ...any) {
	if l.Quiet {
		return
	}
	echo(l.Out, "", msg, args...)
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Quiet {
		return
	}
	echo(l.Err, color.GreenString("[info] "), msg, args...)
}

func (l Logger) Debugf(msg string, args ...any) {
	if !l.Verbose {
		return
	}
	echo(l.Err, color.CyanString("[debug] "), msg, args...)
}

func (l Logger) Warnf(msg string, args ...any) {
	echo(l.Err, color.YellowString("[warn] "), msg, args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	echo(l.Err, color.RedString("[error] "), msg, args...)
}

func echo(w io.Writer, prefix, msg string, args ...any) {
	if w == nil {
		return
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, prefix+msg, args...)
}
