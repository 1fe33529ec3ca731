// Package manager owns the live transaction collection. It assigns ids,
// serves copies to readers and mirrors every mutation to the store.
package manager

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/filter"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/store"
	"github.com/shopspring/decimal"
)

// Manager holds the ordered collection. A nil store disables persistence.
type Manager struct {
	transactions []models.Transaction
	seq          *models.Sequence
	store        store.Store
	logger       logging.Logger
}

// LoadReport describes the outcome of Load.
type LoadReport struct {
	Loaded int
	// Warning is set when a store existed but was ignored.
	Warning error
}

// New creates an empty manager with its own id sequence.
func New(s store.Store, logger logging.Logger) *Manager {
	return &Manager{
		transactions: []models.Transaction{},
		seq:          models.NewSequence(),
		store:        s,
		logger:       logging.OrDiscard(logger),
	}
}

// Sequence exposes the id sequence, mainly so tests can reset it.
func (m *Manager) Sequence() *models.Sequence {
	return m.seq
}

// Len returns the number of transactions.
func (m *Manager) Len() int {
	return len(m.transactions)
}

// Create builds a transaction from fields with the manager's sequence and adds it.
func (m *Manager) Create(fields models.Fields) (models.Transaction, error) {
	t, err := models.NewTransaction(m.seq, fields)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := m.Add(t); err != nil {
		return t, err
	}
	return t, nil
}

// CreateAll builds every entry of batch and adds them with a single save.
// The batch is validated as a whole first, so a bad entry adds nothing.
func (m *Manager) CreateAll(batch []models.Fields) ([]models.Transaction, error) {
	scratch := models.NewSequence()
	for i, f := range batch {
		f.ID = 0
		if _, err := models.NewTransaction(scratch, f); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	created := make([]models.Transaction, 0, len(batch))
	for i, f := range batch {
		f.ID = 0
		t, err := models.NewTransaction(m.seq, f)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		created = append(created, t)
	}
	if len(created) == 0 {
		return created, nil
	}

	m.transactions = append(m.transactions, created...)
	m.logger.Info("Transactions added", logging.F(logging.FieldCount, len(created)))
	return created, m.persist("import")
}

// Add appends t and persists the collection.
func (m *Manager) Add(t models.Transaction) error {
	m.transactions = append(m.transactions, t)
	m.logger.Info("Transaction added",
		logging.F(logging.FieldTransactionID, t.ID()),
		logging.F(logging.FieldKind, t.Kind().String()),
		logging.F(logging.FieldAmount, t.Amount().String()))
	return m.persist("add")
}

// All returns a copy of the collection in insertion order.
func (m *Manager) All() []models.Transaction {
	out := make([]models.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

func (m *Manager) indexOf(id int) (int, error) {
	for i, t := range m.transactions {
		if t.ID() == id {
			return i, nil
		}
	}
	return -1, &apperror.NotFoundError{ID: id}
}

// Get returns a copy of the transaction with the given id.
func (m *Manager) Get(id int) (models.Transaction, error) {
	i, err := m.indexOf(id)
	if err != nil {
		return models.Transaction{}, err
	}
	return m.transactions[i], nil
}

// Remove deletes the transaction with the given id and persists.
func (m *Manager) Remove(id int) error {
	i, err := m.indexOf(id)
	if err != nil {
		return err
	}
	m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
	m.logger.Info("Transaction removed", logging.F(logging.FieldTransactionID, id))
	return m.persist("remove")
}

// UpdateCategory changes the category of a transaction and persists.
// A rejected category leaves the transaction unchanged.
func (m *Manager) UpdateCategory(id int, category models.Category) error {
	i, err := m.indexOf(id)
	if err != nil {
		return err
	}
	updated := m.transactions[i]
	if err := updated.SetCategory(category); err != nil {
		return err
	}
	m.transactions[i] = updated
	m.logger.Info("Transaction category updated",
		logging.F(logging.FieldTransactionID, id),
		logging.F(logging.FieldCategory, updated.Category().String()))
	return m.persist("update_category")
}

// UpdateDescription changes the description of a transaction and persists.
// A rejected description leaves the transaction unchanged.
func (m *Manager) UpdateDescription(id int, description string) error {
	i, err := m.indexOf(id)
	if err != nil {
		return err
	}
	updated := m.transactions[i]
	if err := updated.SetDescription(description); err != nil {
		return err
	}
	m.transactions[i] = updated
	m.logger.Info("Transaction description updated", logging.F(logging.FieldTransactionID, id))
	return m.persist("update_description")
}

// FilterByAmountRange applies filter.ByAmountRange to the collection.
func (m *Manager) FilterByAmountRange(min, max decimal.NullDecimal) []models.Transaction {
	return filter.ByAmountRange(m.transactions, min, max)
}

// FilterByKind applies filter.ByKind to the collection.
func (m *Manager) FilterByKind(kind models.Kind) []models.Transaction {
	return filter.ByKind(m.transactions, kind)
}

// FilterByDateRange applies filter.ByDateRange to the collection.
func (m *Manager) FilterByDateRange(start, end time.Time) []models.Transaction {
	return filter.ByDateRange(m.transactions, start, end)
}

// FilterByCategory applies filter.ByCategory to the collection.
func (m *Manager) FilterByCategory(category models.Category) []models.Transaction {
	return filter.ByCategory(m.transactions, category)
}

// SortByAmount applies filter.SortByAmount to the collection.
func (m *Manager) SortByAmount(dir filter.Direction) []models.Transaction {
	return filter.SortByAmount(m.transactions, dir)
}

// SortByDate applies filter.SortByDate to the collection.
func (m *Manager) SortByDate(dir filter.Direction) []models.Transaction {
	return filter.SortByDate(m.transactions, dir)
}

// SortByID applies filter.SortByID to the collection.
func (m *Manager) SortByID(dir filter.Direction) []models.Transaction {
	return filter.SortByID(m.transactions, dir)
}

func (m *Manager) persist(operation string) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(models.Records(m.transactions)); err != nil {
		m.logger.WithError(err).Error("Failed to save transactions",
			logging.F(logging.FieldOperation, operation))
		return fmt.Errorf("failed to persist after %s: %w", operation, err)
	}
	return nil
}

// Load replaces the collection with the stored one. A missing store leaves
// the collection empty. A store that cannot be used as a whole is ignored:
// the collection is emptied, a warning is logged and returned in the report.
// The sequence only moves past restored ids once every record is accepted.
func (m *Manager) Load() LoadReport {
	m.transactions = []models.Transaction{}
	if m.store == nil {
		return LoadReport{}
	}

	records, err := m.store.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadReport{}
		}
		return m.rejectStore(err)
	}

	restored, maxID, err := restore(records)
	if err != nil {
		return m.rejectStore(err)
	}

	m.transactions = restored
	m.seq.Observe(maxID)
	m.logger.Info("Transactions loaded", logging.F(logging.FieldCount, len(restored)))
	return LoadReport{Loaded: len(restored)}
}

func (m *Manager) rejectStore(err error) LoadReport {
	var storeErr *apperror.StoreError
	if !errors.As(err, &storeErr) {
		storeErr = &apperror.StoreError{Reason: "invalid transaction", Err: err}
		err = storeErr
	}
	if loc, ok := m.store.(store.Locator); ok && storeErr.FilePath == "" {
		storeErr.FilePath = loc.Location()
	}
	m.logger.WithError(err).Warn("Ignoring unusable transaction store")
	return LoadReport{Warning: err}
}

// restore rebuilds entities with a scratch sequence so a rejected store
// leaves the manager's sequence untouched.
func restore(records []models.Record) ([]models.Transaction, int, error) {
	fields, err := parser.ParseRecords(records)
	if err != nil {
		return nil, 0, err
	}

	scratch := models.NewSequence()
	seen := make(map[int]bool, len(fields))
	out := make([]models.Transaction, 0, len(fields))
	for i, f := range fields {
		if f.ID <= 0 {
			return nil, 0, fmt.Errorf("record %d: %w", i, &apperror.ValidationError{
				Field:  "transaction_id",
				Value:  strconv.Itoa(f.ID),
				Reason: "must be positive",
				Err:    apperror.ErrInvalidID,
			})
		}
		if seen[f.ID] {
			return nil, 0, fmt.Errorf("record %d: %w", i, &apperror.ValidationError{
				Field:  "transaction_id",
				Value:  strconv.Itoa(f.ID),
				Reason: "duplicate id",
				Err:    apperror.ErrInvalidID,
			})
		}
		seen[f.ID] = true

		t, err := models.NewTransactionBuilder().WithFields(f).Restore(scratch)
		if err != nil {
			return nil, 0, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, scratch.Current(), nil
}
