// Package loader handles source file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegularFile is returned when the path to load is a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// Loader handles loading source files from disk.
type Loader struct{}

// New creates a new source file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete source file into memory.
func (l *Loader) Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("loading %s: %w", path, ErrNotRegularFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
