package store

import (
	"github.com/fjacquet/fincontroller/internal/models"
)

// MockStore is an in-memory Store for testing.
type MockStore struct {
	Records []models.Record

	// Error flags for testing error conditions
	LoadError error
	SaveError error

	SaveCalls int
}

// Save records a copy of the collection.
func (m *MockStore) Save(records []models.Record) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Records = append([]models.Record{}, records...)
	return nil
}

// Load returns a copy of the stored records.
func (m *MockStore) Load() ([]models.Record, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	return append([]models.Record{}, m.Records...), nil
}
