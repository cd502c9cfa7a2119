// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/vramcheck/internal/options"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// UseColor returns whether the text report should be colored. Colors are
// disabled by flag, by a set NO_COLOR environment variable or when the
// output is not a terminal.
func UseColor(opts options.Program, output *os.File) bool {
	if opts.NoColor || opts.Format != options.FormatText {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if output == nil {
		return false
	}
	info, err := output.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
