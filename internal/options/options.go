// Package options contains the program options.
package options

// Output formats of the report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Parameters contains path options.
type Parameters struct {
	Input     string // file or directory to analyze
	Directory string // explicit directory to analyze
	Graph     string // DOT file to write the event timeline to
}

// Flags contains behavior options.
type Flags struct {
	Format       string
	Verbose      bool
	NoColor      bool
	Visual       bool
	AllTransfers bool
	Debug        bool
	Quiet        bool
}

// Program options of the analyzer.
type Program struct {
	Parameters
	Flags
}

// Path returns the path to analyze, the explicit directory takes precedence.
func (p Program) Path() string {
	if p.Directory != "" {
		return p.Directory
	}
	return p.Input
}
