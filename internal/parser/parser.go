// Package parser turns raw user text and persisted records into typed values.
// Textual matching ignores surrounding space, case and accents, so "Salario",
// " SALÁRIO " and "salário" name the same category.
package parser

import (
	"fmt"
	"time"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/currencyutils"
	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/fjacquet/fincontroller/internal/filter"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/textutils"
	"github.com/shopspring/decimal"
)

// Input is a transaction form as typed by a user.
type Input struct {
	Amount      string
	Kind        string
	Date        string
	Category    string
	Description string
}

// Fold trims, lower-cases and strips accents.
func Fold(text string) string {
	return textutils.Fold(text)
}

// ParseAmount parses a non-negative amount. A comma marks the decimal
// separator, in which case dots are thousands separators.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(currencyutils.StandardizeAmount(text))
	if err != nil {
		return decimal.Zero, &apperror.ParseError{Field: "amount", Value: text, Err: apperror.ErrInvalidAmount}
	}
	if amount.IsNegative() {
		return decimal.Zero, &apperror.ParseError{Field: "amount", Value: text, Err: apperror.ErrInvalidAmount}
	}
	return amount, nil
}

// ParseKind matches "receita" or "despesa".
func ParseKind(text string) (models.Kind, error) {
	folded := Fold(text)
	for _, kind := range models.Kinds() {
		if folded == Fold(kind.String()) {
			return kind, nil
		}
	}
	return 0, &apperror.ParseError{Field: "transaction_type", Value: text, Err: apperror.ErrInvalidKind}
}

// ParseDate parses text strictly against layout, LayoutBR when layout is empty.
func ParseDate(text, layout string) (time.Time, error) {
	if layout == "" {
		layout = dateutils.LayoutBR
	}
	date, err := time.Parse(layout, dateutils.CleanDateString(text))
	if err != nil {
		return time.Time{}, &apperror.ParseError{Field: "transaction_date", Value: text, Err: apperror.ErrInvalidDate}
	}
	return dateutils.Normalize(date), nil
}

// ParseCategory matches a label from either category set, income first.
// Blank text yields the zero Category.
func ParseCategory(text string) (models.Category, error) {
	folded := Fold(text)
	if folded == "" {
		return models.Category{}, nil
	}
	for _, category := range models.AllCategories() {
		if folded == Fold(category.String()) {
			return category, nil
		}
	}
	return models.Category{}, &apperror.ParseError{Field: "category", Value: text, Err: apperror.ErrInvalidCategory}
}

// ParseSortDirection matches "crescente" or "decrescente"; blank is ascending.
func ParseSortDirection(text string) (filter.Direction, error) {
	switch Fold(text) {
	case "", filter.AscendingLabel:
		return filter.Ascending, nil
	case filter.DescendingLabel:
		return filter.Descending, nil
	default:
		return filter.Ascending, &apperror.ParseError{Field: "sort_order", Value: text, Err: apperror.ErrInvalidSortOrder}
	}
}

// ParseTransaction parses a user form into construction fields.
func ParseTransaction(in Input) (models.Fields, error) {
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return models.Fields{}, err
	}
	kind, err := ParseKind(in.Kind)
	if err != nil {
		return models.Fields{}, err
	}
	date, err := ParseDate(in.Date, dateutils.LayoutBR)
	if err != nil {
		return models.Fields{}, err
	}
	category, err := ParseCategory(in.Category)
	if err != nil {
		return models.Fields{}, err
	}
	return models.Fields{
		Amount:      amount,
		Kind:        kind,
		Date:        date,
		Category:    category,
		Description: in.Description,
	}, nil
}

// ParseRecord parses one persisted record, keeping its id.
func ParseRecord(rec models.Record) (models.Fields, error) {
	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return models.Fields{}, &apperror.ParseError{Field: "amount", Value: rec.Amount.String(), Err: apperror.ErrInvalidAmount}
	}
	kind, err := ParseKind(rec.Kind)
	if err != nil {
		return models.Fields{}, err
	}
	date, err := ParseDate(rec.Date, dateutils.LayoutBR)
	if err != nil {
		return models.Fields{}, err
	}
	category, err := ParseCategory(rec.Category)
	if err != nil {
		return models.Fields{}, err
	}
	return models.Fields{
		ID:          rec.ID,
		Amount:      amount,
		Kind:        kind,
		Date:        date,
		Category:    category,
		Description: rec.Description,
	}, nil
}

// ParseRecords parses a persisted collection, stopping at the first bad record.
func ParseRecords(records []models.Record) ([]models.Fields, error) {
	out := make([]models.Fields, 0, len(records))
	for i, rec := range records {
		fields, err := ParseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, fields)
	}
	return out, nil
}
