// Package validation checks user-supplied settings and output targets.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ReportFormats lists the supported report formats.
var ReportFormats = []string{"text", "json", "yaml"}

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	for _, f := range ReportFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(ReportFormats, ", "))
}

// IsValidDelimiter checks that a CSV delimiter is a single usable character.
func IsValidDelimiter(delimiter string) error {
	if utf8.RuneCountInString(delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got %q", delimiter)
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return fmt.Errorf("CSV delimiter %q is not allowed", delimiter)
	}
	return nil
}

// IsValidOutputPath checks that path names a file whose directory either
// exists or can be created, and that it is not an existing directory.
func IsValidOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	parent := filepath.Dir(path)
	if parentInfo, err := os.Stat(parent); err == nil && !parentInfo.IsDir() {
		return fmt.Errorf("parent of output path %s is not a directory", path)
	}
	return nil
}

// IsValidFilePermissions checks that a data file is not readable by others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0640", mode.String())
	}
	return nil
}
