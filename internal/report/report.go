// Package report classifies the detector results into errors and warnings
// and writes them as text or JSON.
package report

import (
	"fmt"

	"github.com/retroenv/vramcheck/internal/overlap"
	"github.com/retroenv/vramcheck/internal/split"
)

// Kind is the detector that produced a finding.
type Kind string

// Finding kinds.
const (
	RegionOverlap Kind = "region-overlap"
	SplitTransfer Kind = "split-transfer"
)

// Severity of a finding.
type Severity int

// Severities in ascending order.
const (
	Info Severity = iota + 1
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is a classified analysis result.
type Finding struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Lines    []int    `json:"lines"`
	Function string   `json:"function,omitempty"`
	Message  string   `json:"message"`
}

// Report contains the classified findings of one analysis run.
type Report struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// HasErrors returns whether the report contains any error.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Assemble classifies the detector results. Region overlaps are warnings.
// A split transfer is an error if its own destinations overlap, a warning if
// any declared regions overlap and informational otherwise.
func Assemble(overlaps []overlap.Overlap, splits []split.Finding) *Report {
	r := &Report{
		Errors:   []Finding{},
		Warnings: []Finding{},
	}

	for _, o := range overlaps {
		r.Warnings = append(r.Warnings, overlapFinding(o))
	}

	for _, s := range splits {
		f := Finding{
			Kind:     SplitTransfer,
			File:     s.First.File,
			Lines:    []int{s.First.Line, s.Sync.Line, s.Second.Line},
			Function: s.Function,
		}

		switch {
		case s.RegionsOverlap:
			f.Severity = Error
			f.Message = fmt.Sprintf("DANGEROUS: %s; the destinations overlap and the display will show corrupted graphics", s.Message)
			r.Errors = append(r.Errors, f)

		case len(overlaps) > 0:
			f.Severity = Warning
			f.Message = fmt.Sprintf("REVIEW: %s; declared VRAM regions overlap, verify that the transfers are independent", s.Message)
			r.Warnings = append(r.Warnings, f)

		default:
			f.Severity = Info
			f.Message = fmt.Sprintf("INFO: %s; no overlap detected", s.Message)
			r.Warnings = append(r.Warnings, f)
		}
	}

	return r
}

func overlapFinding(o overlap.Overlap) Finding {
	first, second := o.First, o.Second

	secondLocation := fmt.Sprintf("line %d", second.Line)
	if second.File != first.File {
		secondLocation = second.Location.String()
	}

	return Finding{
		Kind:     RegionOverlap,
		Severity: Warning,
		File:     first.File,
		Lines:    []int{first.Line, second.Line},
		Message: fmt.Sprintf("%s:%d: VRAM overlap: %s (%s) and %s (%s, %s) share %s",
			first.File, first.Line,
			first.Name, first.Interval.String(),
			second.Name, second.Interval.String(), secondLocation,
			o.Range.String()),
	}
}
