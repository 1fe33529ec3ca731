// Package store persists the transaction collection as a flat JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/fileutils"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/validation"
)

// DefaultFileName is used when no store file is configured.
const DefaultFileName = "transactions.json"

// Store reads and writes the whole collection at once.
type Store interface {
	Save(records []models.Record) error
	Load() ([]models.Record, error)
}

// Locator is implemented by stores backed by a file.
type Locator interface {
	Location() string
}

// JSONStore keeps records in a JSON array on disk.
type JSONStore struct {
	FilePath string
	logger   logging.Logger
}

// NewJSONStore creates a store for filePath.
func NewJSONStore(filePath string, logger logging.Logger) *JSONStore {
	return &JSONStore{
		FilePath: filePath,
		logger:   logging.OrDiscard(logger),
	}
}

// FindFile looks for filename in the standard locations: the working
// directory, ./data, then $HOME/.config/fincontroller.
func FindFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("data", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "fincontroller", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// ResolvePath returns the path of an existing store named filename, or
// ./data/<filename> for a new one. Absolute paths are used as given.
func ResolvePath(filename string) string {
	if filename == "" {
		filename = DefaultFileName
	}
	if filepath.IsAbs(filename) {
		return filename
	}
	if path, err := FindFile(filename); err == nil {
		return path
	}
	return filepath.Join("data", filename)
}

// Location returns the store file path.
func (s *JSONStore) Location() string {
	return s.FilePath
}

// Save rewrites the file with records as an indented JSON array.
func (s *JSONStore) Save(records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("error marshaling transactions: %w", err)
	}

	if err := fileutils.WriteFile(s.FilePath, buf.Bytes(), models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing transactions to %s: %w", s.FilePath, err)
	}

	s.logger.Debug("Saved transactions",
		logging.F(logging.FieldFile, s.FilePath),
		logging.F(logging.FieldCount, len(records)))
	return nil
}

// Load reads every record. A missing file yields an error matching
// os.ErrNotExist; a file that exists but cannot be used yields a
// *apperror.StoreError. A blank file holds no records.
func (s *JSONStore) Load() ([]models.Record, error) {
	data, err := fileutils.ReadFile(s.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Transaction store not found", logging.F(logging.FieldFile, s.FilePath))
			return nil, fmt.Errorf("transaction store %s: %w", s.FilePath, err)
		}
		return nil, &apperror.StoreError{FilePath: s.FilePath, Reason: "cannot read file", Err: err}
	}

	s.checkPermissions()

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Record{}, nil
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &apperror.StoreError{FilePath: s.FilePath, Reason: "malformed JSON", Err: err}
	}
	if records == nil {
		records = []models.Record{}
	}

	s.logger.Debug("Loaded transactions",
		logging.F(logging.FieldFile, s.FilePath),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}

func (s *JSONStore) checkPermissions() {
	info, err := os.Stat(s.FilePath)
	if err != nil {
		return
	}
	if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
		s.logger.WithError(err).Warn("Transaction store is readable by other users",
			logging.F(logging.FieldFile, s.FilePath))
	}
}
