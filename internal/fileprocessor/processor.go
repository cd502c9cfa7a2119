// Package fileprocessor handles the selection of the files to analyze
package fileprocessor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/vramcheck/internal/detector"
	"github.com/retroenv/vramcheck/internal/options"
)

var (
	// ErrPathNotFound is returned when the path to analyze does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotDirectory is returned when the directory option names a file.
	ErrNotDirectory = errors.New("not a directory")
)

// GetFilesToProcess returns the list of files to analyze. A file path is
// returned as is. A directory is listed non recursively in lexical order,
// keeping C and assembly sources but no compiler generated assembly files.
func GetFilesToProcess(opts options.Program) ([]string, error) {
	path := opts.Path()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, fmt.Errorf("reading path %s: %w", path, err)
	}

	if !info.IsDir() {
		if opts.Directory != "" {
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
		}
		return []string{path}, nil
	}

	return listDirectory(path)
}

func listDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !detector.IsSource(name) || detector.IsGenerated(name) {
			continue
		}

		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet || opts.Format == options.FormatJSON {
		return
	}

	logger.Info("vramcheck", log.String("version", buildinfo.Version(version, commit, date)))
}
