package detector

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/vramcheck/internal/scanner"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name        string
		filename    string
		wantDialect scanner.Dialect
		wantErr     bool
	}{
		{
			name:        ".c extension",
			filename:    "main.c",
			wantDialect: scanner.C,
		},
		{
			name:        ".C extension (uppercase)",
			filename:    "MAIN.C",
			wantDialect: scanner.C,
		},
		{
			name:        ".asm extension",
			filename:    "src/crt0.asm",
			wantDialect: scanner.Assembly,
		},
		{
			name:        "generated assembly is still assembly",
			filename:    "main.c.asm",
			wantDialect: scanner.Assembly,
		},
		{
			name:     "header file",
			filename: "snes.h",
			wantErr:  true,
		},
		{
			name:     "no extension",
			filename: "Makefile",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(tt.filename)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnsupportedExtension))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDialect, got)
		})
	}
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, IsGenerated("foo.c.asm"))
	assert.True(t, IsGenerated("FOO.C.ASM"))
	assert.False(t, IsGenerated("foo.asm"))
	assert.False(t, IsGenerated("foo.c"))
	assert.False(t, IsGenerated("foo_c.asm"))
}

func TestIsSource(t *testing.T) {
	assert.True(t, IsSource("foo.c"))
	assert.True(t, IsSource("foo.asm"))
	assert.False(t, IsSource("foo.sym"))
}
