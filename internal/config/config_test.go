package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/vramcheck/internal/options"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestUseColor(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "report.txt"))
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	text := options.Program{Flags: options.Flags{Format: options.FormatText}}

	// regular files are not terminals
	assert.False(t, UseColor(text, file))
	assert.False(t, UseColor(text, nil))

	noColor := text
	noColor.NoColor = true
	assert.False(t, UseColor(noColor, os.Stdout))

	json := options.Program{Flags: options.Flags{Format: options.FormatJSON}}
	assert.False(t, UseColor(json, os.Stdout))
}
