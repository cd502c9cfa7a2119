package report

import (
	"fmt"
	"io"

	"github.com/retroenv/vramcheck/internal/model"
)

// ANSI control sequences.
const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[1;31m"
	ansiGreen  = "\x1b[1;32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// TextOptions control the text report.
type TextOptions struct {
	Color   bool
	Verbose bool // list all discovered regions, transfers and syncs
}

// printer writes formatted lines and keeps the first write error.
type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

// WriteText writes the human readable report. The discovered entities of the
// run are only listed in verbose mode.
func WriteText(w io.Writer, run *model.Run, r *Report, opts TextOptions) error {
	p := &printer{w: w, color: opts.Color}

	if opts.Verbose {
		writeEntities(p, run)
	}

	p.printf("%s\n", p.paint(ansiBold, fmt.Sprintf("ERRORS (%d)", len(r.Errors))))
	for _, f := range r.Errors {
		p.printf("  %s\n", p.paint(ansiRed, f.Message))
	}
	p.printf("\n")

	p.printf("%s\n", p.paint(ansiBold, fmt.Sprintf("WARNINGS (%d)", len(r.Warnings))))
	for _, f := range r.Warnings {
		code := ansiYellow
		if f.Severity == Info {
			code = ansiCyan
		}
		p.printf("  %s\n", p.paint(code, f.Message))
	}
	p.printf("\n")

	switch {
	case r.HasErrors():
		p.printf("%s\n", p.paint(ansiRed, fmt.Sprintf("FAILED: %d error(s), %d warning(s)", len(r.Errors), len(r.Warnings))))
	case len(r.Warnings) > 0:
		p.printf("%s\n", p.paint(ansiYellow, fmt.Sprintf("PASSED with %d warning(s)", len(r.Warnings))))
	default:
		p.printf("%s\n", p.paint(ansiGreen, "PASSED: no VRAM issues found"))
	}

	if p.err != nil {
		return fmt.Errorf("writing report: %w", p.err)
	}
	return nil
}

func writeEntities(p *printer, run *model.Run) {
	p.printf("%s\n", p.paint(ansiBold, fmt.Sprintf("Scanned %d file(s)", len(run.Files))))

	p.printf("Regions (%d):\n", len(run.Regions))
	for _, r := range run.Regions {
		p.printf("  %-12s %-14s %s\n", r.Name, r.Interval.String(), r.Location.String())
	}

	p.printf("Transfers (%d):\n", len(run.Transfers))
	for _, t := range run.Transfers {
		dest := "unknown destination"
		if t.Resolved {
			dest = t.Destination().String()
		}
		p.printf("  %-20s %-16s %-14s %s\n", t.Location.String(), t.Routine, dest, functionName(t.Function))
	}

	p.printf("Syncs (%d):\n", len(run.Syncs))
	for _, s := range run.Syncs {
		p.printf("  %-20s %-16s %s\n", s.Location.String(), s.Routine, functionName(s.Function))
	}
	p.printf("\n")
}

func functionName(name string) string {
	if name == "" {
		return "-"
	}
	return name + "()"
}
