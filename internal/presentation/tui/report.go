package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Printer writes styled result lines: green for passing candidates, rose
// for failures.
type Printer struct {
	out     *termenv.Output
	profile termenv.Profile
}

// NewPrinter creates a Printer on w. With color disabled every line is
// printed as plain ASCII.
func NewPrinter(w io.Writer, color bool) *Printer {
	profile := termenv.Ascii
	if color {
		profile = termenv.EnvColorProfile()
	}
	return &Printer{
		out:     termenv.NewOutput(w, termenv.WithProfile(profile)),
		profile: profile,
	}
}

// Pass prints a successful result.
func (p *Printer) Pass(subject string) {
	mark := p.out.String("PASS").Foreground(p.profile.Color("#34d399")).Bold()
	fmt.Fprintf(p.out, "%s %s\n", mark, subject)
}

// Fail prints a failed result followed by its indented reasons.
func (p *Printer) Fail(subject string, reasons ...string) {
	mark := p.out.String("FAIL").Foreground(p.profile.Color("#fb7185")).Bold()
	fmt.Fprintf(p.out, "%s %s\n", mark, subject)
	for _, r := range reasons {
		fmt.Fprintf(p.out, "     %s\n", p.out.String(r).Faint())
	}
}

// Field prints a "name: value" line with the name highlighted.
func (p *Printer) Field(name, value string) {
	key := p.out.String(name + ":").Foreground(p.profile.Color("#a78bfa"))
	fmt.Fprintf(p.out, "%s %s\n", key, value)
}

// Summary prints the closing count line.
func (p *Printer) Summary(checked, failed int) {
	line := fmt.Sprintf("%d checked, %d failed", checked, failed)
	if failed > 0 {
		fmt.Fprintln(p.out, p.out.String(line).Foreground(p.profile.Color("#fb7185")))
		return
	}
	fmt.Fprintln(p.out, p.out.String(line).Foreground(p.profile.Color("#34d399")))
}
