// Package service is the text-facing entry point to the transaction core.
// It parses raw user input, delegates to the collection manager and derives
// statistics for whatever subset a caller is displaying.
package service

import (
	"fmt"
	"strings"

	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/fjacquet/fincontroller/internal/filter"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/manager"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/report"
	"github.com/fjacquet/fincontroller/internal/statistics"
	"github.com/shopspring/decimal"
)

// TransactionService wraps a manager with parsing of raw text.
// List arguments narrow progressively: a nil list means the whole collection.
type TransactionService struct {
	manager     *manager.Manager
	logger      logging.Logger
	loadWarning error
}

// New creates a service over m and loads the persisted collection.
func New(m *manager.Manager, logger logging.Logger) *TransactionService {
	s := &TransactionService{
		manager: m,
		logger:  logging.OrDiscard(logger),
	}
	s.loadWarning = m.Load().Warning
	return s
}

// LoadWarning returns the diagnostic raised when the stored collection was
// ignored at startup, or nil.
func (s *TransactionService) LoadWarning() error {
	return s.loadWarning
}

func (s *TransactionService) orAll(list []models.Transaction) []models.Transaction {
	if list == nil {
		return s.manager.All()
	}
	return list
}

// Add parses a user form and stores the resulting transaction.
func (s *TransactionService) Add(in parser.Input) (models.Transaction, error) {
	fields, err := parser.ParseTransaction(in)
	if err != nil {
		s.logger.WithError(err).Debug("Rejected transaction input")
		return models.Transaction{}, err
	}
	return s.manager.Create(fields)
}

// Import parses every form and stores the resulting transactions together.
// Nothing is stored when any form is rejected.
func (s *TransactionService) Import(inputs []parser.Input) ([]models.Transaction, error) {
	batch := make([]models.Fields, 0, len(inputs))
	for i, in := range inputs {
		fields, err := parser.ParseTransaction(in)
		if err != nil {
			s.logger.WithError(err).Debug("Rejected imported row")
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		batch = append(batch, fields)
	}
	return s.manager.CreateAll(batch)
}

// All returns every transaction in insertion order.
func (s *TransactionService) All() []models.Transaction {
	return s.manager.All()
}

// Get returns the transaction with the given id.
func (s *TransactionService) Get(id int) (models.Transaction, error) {
	return s.manager.Get(id)
}

// KindOf returns the kind of the transaction with the given id, so a caller
// can offer the matching category set before an update.
func (s *TransactionService) KindOf(id int) (models.Kind, error) {
	t, err := s.manager.Get(id)
	if err != nil {
		return 0, err
	}
	return t.Kind(), nil
}

// Remove deletes the transaction with the given id.
func (s *TransactionService) Remove(id int) error {
	return s.manager.Remove(id)
}

// UpdateCategory parses text and sets it as the category of id.
func (s *TransactionService) UpdateCategory(id int, text string) error {
	category, err := parser.ParseCategory(text)
	if err != nil {
		return err
	}
	return s.manager.UpdateCategory(id, category)
}

// UpdateDescription sets the description of id.
func (s *TransactionService) UpdateDescription(id int, text string) error {
	return s.manager.UpdateDescription(id, text)
}

// FilterByAmount keeps amounts between the parsed bounds. Blank bounds are open.
func (s *TransactionService) FilterByAmount(minText, maxText string, list []models.Transaction) ([]models.Transaction, error) {
	min, err := parseBound(minText)
	if err != nil {
		return nil, err
	}
	max, err := parseBound(maxText)
	if err != nil {
		return nil, err
	}
	return filter.ByAmountRange(s.orAll(list), min, max), nil
}

func parseBound(text string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(text) == "" {
		return decimal.NullDecimal{}, nil
	}
	amount, err := parser.ParseAmount(text)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(amount), nil
}

// FilterByKind keeps transactions of the parsed kind.
func (s *TransactionService) FilterByKind(text string, list []models.Transaction) ([]models.Transaction, error) {
	kind, err := parser.ParseKind(text)
	if err != nil {
		return nil, err
	}
	return filter.ByKind(s.orAll(list), kind), nil
}

// FilterByDate keeps dates between the parsed DD/MM/YYYY bounds. Blank bounds are open.
func (s *TransactionService) FilterByDate(startText, endText string, list []models.Transaction) ([]models.Transaction, error) {
	var start, end = dateutils.MinDate, dateutils.MaxDate
	var err error
	if strings.TrimSpace(startText) != "" {
		if start, err = parser.ParseDate(startText, dateutils.LayoutBR); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(endText) != "" {
		if end, err = parser.ParseDate(endText, dateutils.LayoutBR); err != nil {
			return nil, err
		}
	}
	return filter.ByDateRange(s.orAll(list), start, end), nil
}

// FilterByCategory keeps transactions of the parsed category. "outros"
// selects the fallback category of both kinds.
func (s *TransactionService) FilterByCategory(text string, list []models.Transaction) ([]models.Transaction, error) {
	category, err := parser.ParseCategory(text)
	if err != nil {
		return nil, err
	}
	if category.IsZero() {
		return s.orAll(list), nil
	}
	if category.IsOther() {
		return filter.ByOtherCategory(s.orAll(list)), nil
	}
	return filter.ByCategory(s.orAll(list), category), nil
}

// SortByAmount orders by amount in the direction named by order.
func (s *TransactionService) SortByAmount(order string, list []models.Transaction) ([]models.Transaction, error) {
	dir, err := parser.ParseSortDirection(order)
	if err != nil {
		return nil, err
	}
	return filter.SortByAmount(s.orAll(list), dir), nil
}

// SortByDate orders by date in the direction named by order.
func (s *TransactionService) SortByDate(order string, list []models.Transaction) ([]models.Transaction, error) {
	dir, err := parser.ParseSortDirection(order)
	if err != nil {
		return nil, err
	}
	return filter.SortByDate(s.orAll(list), dir), nil
}

// SortByID orders by id in the direction named by order.
func (s *TransactionService) SortByID(order string, list []models.Transaction) ([]models.Transaction, error) {
	dir, err := parser.ParseSortDirection(order)
	if err != nil {
		return nil, err
	}
	return filter.SortByID(s.orAll(list), dir), nil
}

// Statistics computes a snapshot of list.
func (s *TransactionService) Statistics(list []models.Transaction) statistics.Snapshot {
	return statistics.Compute(s.orAll(list))
}

// Period returns the earliest and latest dates of list, or false when it is empty.
func (s *TransactionService) Period(list []models.Transaction) (report.Period, bool) {
	list = s.orAll(list)
	start, ok := filter.EarliestDate(list)
	if !ok {
		return report.Period{}, false
	}
	end, _ := filter.LatestDate(list)
	return report.Period{Start: start, End: end}, true
}
