// Package main implements the main entry point for the SNES VRAM analyzer
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/vramcheck/internal/cli"
	"github.com/retroenv/vramcheck/internal/config"
	"github.com/retroenv/vramcheck/internal/fileprocessor"
	"github.com/retroenv/vramcheck/internal/options"
	"github.com/retroenv/vramcheck/internal/pipeline"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	// keep the JSON document on stdout free of log lines
	quiet := opts.Quiet || opts.Format == options.FormatJSON
	logger := config.CreateLogger(opts.Debug, quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	p := pipeline.New(logger)
	result, err := p.Execute(ctx, opts, os.Stdout, config.UseColor(opts, os.Stdout))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	if result.Report.HasErrors() {
		os.Exit(1)
	}
}
