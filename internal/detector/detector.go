// Package detector handles source dialect detection.
package detector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/vramcheck/internal/scanner"
)

// GeneratedSuffix marks assembly files that the C compiler generated from a C source.
const GeneratedSuffix = ".c.asm"

// ErrUnsupportedExtension is returned for files that are neither C nor assembly sources.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Detector handles source dialect detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new dialect detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the source dialect from the filename extension.
func (d *Detector) Detect(filename string) (scanner.Dialect, error) {
	dialect, ok := dialectFromFile(filename)
	if !ok {
		return "", fmt.Errorf("%w '%s'", ErrUnsupportedExtension, filepath.Ext(filename))
	}

	d.logger.Debug("Detected dialect",
		log.String("dialect", string(dialect)),
		log.String("file", filename))
	return dialect, nil
}

// IsGenerated returns whether the file is compiler output of a C source.
func IsGenerated(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), GeneratedSuffix)
}

// IsSource returns whether the file has the extension of a supported dialect.
func IsSource(filename string) bool {
	_, ok := dialectFromFile(filename)
	return ok
}

func dialectFromFile(filename string) (scanner.Dialect, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".c":
		return scanner.C, true
	case ".asm":
		return scanner.Assembly, true
	default:
		return "", false
	}
}
