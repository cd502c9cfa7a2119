// Package pipeline orchestrates the analysis workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/vramcheck/internal/detector"
	"github.com/retroenv/vramcheck/internal/fileprocessor"
	"github.com/retroenv/vramcheck/internal/graph"
	"github.com/retroenv/vramcheck/internal/loader"
	"github.com/retroenv/vramcheck/internal/model"
	"github.com/retroenv/vramcheck/internal/options"
	"github.com/retroenv/vramcheck/internal/overlap"
	"github.com/retroenv/vramcheck/internal/report"
	"github.com/retroenv/vramcheck/internal/scanner"
	"github.com/retroenv/vramcheck/internal/split"
)

// FileError is a file that could not be analyzed.
type FileError struct {
	File string
	Err  error
}

// Result contains everything produced by one analysis run.
type Result struct {
	Run      *model.Run
	Timeline []model.Event
	Overlaps []overlap.Overlap
	Splits   []split.Finding
	Report   *report.Report
	Failed   []FileError
}

// Pipeline orchestrates the complete analysis workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new analysis pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute analyzes the files selected by the options and writes the report.
// Files that fail to load are logged and skipped, a missing input path
// aborts the run.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer, color bool) (*Result, error) {
	files, err := fileprocessor.GetFilesToProcess(opts)
	if err != nil {
		return nil, fmt.Errorf("selecting files: %w", err)
	}

	result, err := p.Analyze(ctx, files, split.Options{AllRoutines: opts.AllTransfers})
	if err != nil {
		return nil, err
	}

	if opts.Graph != "" {
		if err := p.writeGraph(opts.Graph, result.Timeline); err != nil {
			return nil, err
		}
	}

	if err := writeReport(opts, result, writer, color); err != nil {
		return nil, err
	}
	return result, nil
}

// Analyze scans all files into one run and applies both detectors.
// The files are processed sequentially in the given order.
func (p *Pipeline) Analyze(ctx context.Context, files []string, splitOpts split.Options) (*Result, error) {
	run := model.NewRun()
	result := &Result{Run: run}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analyzing files: %w", err)
		}

		if err := p.scanFile(run, file); err != nil {
			p.logger.Error("Analyzing file failed", log.String("file", file), log.Err(err))
			result.Failed = append(result.Failed, FileError{File: file, Err: err})
		}
	}

	result.Overlaps = overlap.Detect(run.Regions)
	result.Timeline = split.Timeline(run)
	result.Splits = split.Detect(result.Timeline, splitOpts)
	result.Report = report.Assemble(result.Overlaps, result.Splits)

	p.logger.Debug("Analysis finished",
		log.Int("files", len(run.Files)),
		log.Int("overlaps", len(result.Overlaps)),
		log.Int("split_transfers", len(result.Splits)))
	return result, nil
}

// scanFile loads a single file and adds its entities to the run.
func (p *Pipeline) scanFile(run *model.Run, file string) error {
	dialect, err := p.detector.Detect(file)
	if err != nil {
		return fmt.Errorf("detecting dialect: %w", err)
	}

	data, err := p.loader.Load(file)
	if err != nil {
		return fmt.Errorf("loading file: %w", err)
	}

	stats, err := scanner.Scan(run, file, dialect, data)
	if err != nil {
		return fmt.Errorf("scanning file: %w", err)
	}

	p.logger.Debug("Scanned file",
		log.String("file", file),
		log.Int("regions", stats.Regions),
		log.Int("transfers", stats.Transfers),
		log.Int("syncs", stats.Syncs))
	return nil
}

// writeGraph writes the event timeline graph in DOT format.
func (p *Pipeline) writeGraph(path string, timeline []model.Event) error {
	g := graph.BuildTimeline(timeline)
	dot := graph.DOT(g, "vram transfer timeline")
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return fmt.Errorf("writing graph file %s: %w", path, err)
	}

	p.logger.Info("Wrote timeline graph",
		log.String("file", path),
		log.Int("nodes", len(g.Nodes)),
		log.Int("edges", len(g.Edges)))
	return nil
}

// writeReport writes the report in the selected format.
func writeReport(opts options.Program, result *Result, writer io.Writer, color bool) error {
	if opts.Format == options.FormatJSON {
		return report.WriteJSON(writer, result.Report)
	}

	if opts.Visual {
		if err := report.WriteLayout(writer, result.Run.Regions); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	textOpts := report.TextOptions{
		Color:   color,
		Verbose: opts.Verbose,
	}
	return report.WriteText(writer, result.Run, result.Report, textOpts)
}
