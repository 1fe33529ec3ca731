package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fjacquet/fincontroller/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, validation.IsValidOutputFormat(format), format)
	}

	err := validation.IsValidOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestIsValidDelimiter(t *testing.T) {
	tests := []struct {
		name        string
		delimiter   string
		expectError bool
	}{
		{name: "comma", delimiter: ",", expectError: false},
		{name: "semicolon", delimiter: ";", expectError: false},
		{name: "tab", delimiter: "\t", expectError: false},
		{name: "empty", delimiter: "", expectError: true},
		{name: "two characters", delimiter: ";;", expectError: true},
		{name: "quote", delimiter: `"`, expectError: true},
		{name: "newline", delimiter: "\n", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidDelimiter(tt.delimiter)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.NoError(t, validation.IsValidOutputPath(filepath.Join(tmpDir, "out.csv")))
	assert.NoError(t, validation.IsValidOutputPath(filepath.Join(tmpDir, "new", "out.csv")))
	assert.NoError(t, validation.IsValidOutputPath(file), "existing file is overwritten")
	assert.Error(t, validation.IsValidOutputPath(tmpDir))
	assert.Error(t, validation.IsValidOutputPath(filepath.Join(file, "out.csv")))
	assert.Error(t, validation.IsValidOutputPath("  "))
}

func TestIsValidFilePermissions(t *testing.T) {
	tests := []struct {
		name        string
		mode        os.FileMode
		expectError bool
	}{
		{"Secure (0600)", 0600, false},
		{"World readable (0644)", 0644, true},
		{"Group readable (0640)", 0640, false},
		{"Too permissive (0777)", 0777, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidFilePermissions(tt.mode)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
