// Package output renders command output for terminals and scripts.
//
// Mode auto picks text when stdout is a terminal and plain otherwise, so
// piped output stays free of escape sequences without any flags.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output style.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeText  Mode = "text"
	ModePlain Mode = "plain"
)

// Renderer writes formatted command output.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	mode    Mode
	profile termenv.Profile
}

// NewRenderer creates a renderer for the given writers and mode. Unknown
// modes fall back to auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModePlain:
	default:
		mode = ModeAuto
	}

	r := &Renderer{out: out, errOut: errOut, mode: mode}
	if r.EffectiveMode() == ModeText {
		r.profile = termenv.NewOutput(out).Profile
	} else {
		r.profile = termenv.Ascii
	}
	return r
}

// EffectiveMode resolves auto to text or plain based on whether stdout is
// a terminal.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModePlain
}

// Writer returns the underlying output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes a line to the output writer.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted text to the output writer.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a section header.
func (r *Renderer) Header(text string) {
	s := r.profile.String(text).Bold()
	_, _ = fmt.Fprintln(r.out, s.String())
}

// Success writes a success message.
func (r *Renderer) Success(text string) {
	mark := r.profile.String("✓").Foreground(r.profile.Color("2"))
	if r.EffectiveMode() == ModePlain {
		mark = r.profile.String("OK")
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", mark.String(), text)
}

// Error writes an error message to the error writer.
func (r *Renderer) Error(text string) {
	mark := r.profile.String("✗").Foreground(r.profile.Color("1"))
	if r.EffectiveMode() == ModePlain {
		mark = r.profile.String("ERROR")
	}
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", mark.String(), text)
}

// StatusLine writes a per-item status line, with an optional detail.
func (r *Renderer) StatusLine(name, detail string) {
	if detail != "" {
		_, _ = fmt.Fprintf(r.out, "  %s  %s\n", name, detail)
		return
	}
	_, _ = fmt.Fprintf(r.out, "  %s\n", name)
}
