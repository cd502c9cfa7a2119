package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load source file", func(t *testing.T) {
		source := []byte("void main(void) {\n    WaitForVBlank();\n}\n")
		tmpFile := createTempFile(t, "main.c", source)

		loader := New()
		data, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, source, data)
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, "empty.asm", nil)

		loader := New()
		data, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, 0)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		_, err := loader.Load("/nonexistent/main.c")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("error on directory", func(t *testing.T) {
		loader := New()
		_, err := loader.Load(t.TempDir())
		assert.True(t, errors.Is(err, ErrNotRegularFile))
	})
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
