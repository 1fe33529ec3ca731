// Package models provides the domain types of the personal finance core:
// the transaction entity, its kind and category vocabulary, the id sequence
// and the persisted record shape.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/shopspring/decimal"
)

// now is replaced in tests.
var now = time.Now

// Fields carries the typed attributes used to construct a Transaction.
// A zero ID asks the sequence for the next id; a zero Category selects the
// kind's fallback category; a blank Description selects DefaultDescription.
type Fields struct {
	ID          int
	Amount      decimal.Decimal
	Kind        Kind
	Date        time.Time
	Category    Category
	Description string
}

// Transaction is a single validated income or expense record.
// Only category and description can change after construction.
type Transaction struct {
	id          int
	amount      decimal.Decimal
	kind        Kind
	date        time.Time
	category    Category
	description string
}

// NewTransaction validates f and builds a transaction. Ids are drawn from seq
// only once every check has passed, so a rejected construction never
// consumes an id. An explicit id is recorded with seq.Observe.
func NewTransaction(seq *Sequence, f Fields) (Transaction, error) {
	return newTransaction(seq, f, true)
}

// RestoreTransaction rebuilds a persisted transaction. It applies the same
// rules as NewTransaction except the description length limit, which older
// stores did not share. SetDescription still enforces it.
func RestoreTransaction(seq *Sequence, f Fields) (Transaction, error) {
	return newTransaction(seq, f, false)
}

func newTransaction(seq *Sequence, f Fields, limitDescription bool) (Transaction, error) {
	if seq == nil {
		return Transaction{}, errors.New("transaction sequence cannot be nil")
	}
	if f.ID < 0 {
		return Transaction{}, &apperror.ValidationError{
			Field:  "transaction_id",
			Value:  strconv.Itoa(f.ID),
			Reason: "must be positive",
			Err:    apperror.ErrInvalidID,
		}
	}
	if err := validateAmount(f.Amount); err != nil {
		return Transaction{}, err
	}
	if !f.Kind.Valid() {
		return Transaction{}, &apperror.ValidationError{
			Field: "transaction_type",
			Value: f.Kind.String(),
			Err:   apperror.ErrInvalidKind,
		}
	}
	date, err := validateDate(f.Date)
	if err != nil {
		return Transaction{}, err
	}
	category, err := resolveCategory(f.Kind, f.Category)
	if err != nil {
		return Transaction{}, err
	}
	description := DefaultDescription
	if limitDescription {
		if description, err = resolveDescription(f.Description); err != nil {
			return Transaction{}, err
		}
	} else if strings.TrimSpace(f.Description) != "" {
		description = f.Description
	}

	id := f.ID
	if id == 0 {
		id = seq.Next()
	} else {
		seq.Observe(id)
	}

	return Transaction{
		id:          id,
		amount:      f.Amount,
		kind:        f.Kind,
		date:        date,
		category:    category,
		description: description,
	}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &apperror.ValidationError{
			Field:  "amount",
			Value:  amount.String(),
			Reason: "must be greater than zero",
			Err:    apperror.ErrInvalidAmount,
		}
	}
	return nil
}

func validateDate(date time.Time) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, &apperror.ValidationError{
			Field:  "transaction_date",
			Reason: "date is required",
			Err:    apperror.ErrInvalidDate,
		}
	}
	date = dateutils.Normalize(date)
	if date.After(dateutils.Today(now())) {
		return time.Time{}, &apperror.ValidationError{
			Field:  "transaction_date",
			Value:  dateutils.FormatDate(date, dateutils.LayoutBR),
			Reason: "date is in the future",
			Err:    apperror.ErrInvalidDate,
		}
	}
	return date, nil
}

// resolveCategory applies the category rules for kind: no category or the
// other set's fallback becomes the kind's fallback, and a category from the
// other set is rejected.
func resolveCategory(kind Kind, category Category) (Category, error) {
	if category.IsZero() || category.IsOther() {
		return kind.Other(), nil
	}
	if category.Kind() != kind {
		return Category{}, &apperror.ValidationError{
			Field:  "category",
			Value:  category.String(),
			Reason: fmt.Sprintf("not a %s category", kind),
			Err:    apperror.ErrKindCategoryMismatch,
		}
	}
	return category, nil
}

func resolveDescription(description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return DefaultDescription, nil
	}
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return "", &apperror.ValidationError{
			Field:  "description",
			Value:  description,
			Reason: fmt.Sprintf("%d characters exceeds the limit of %d", n, MaxDescriptionLength),
			Err:    apperror.ErrInvalidDescription,
		}
	}
	return description, nil
}

// ID returns the transaction id.
func (t Transaction) ID() int { return t.id }

// Amount returns the positive amount.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Kind returns income or expense.
func (t Transaction) Kind() Kind { return t.kind }

// Date returns the calendar date at midnight UTC.
func (t Transaction) Date() time.Time { return t.date }

// Category returns the category, always a member of the kind's set.
func (t Transaction) Category() Category { return t.category }

// Description returns the description.
func (t Transaction) Description() string { return t.description }

// SetCategory replaces the category under the same rules as construction.
func (t *Transaction) SetCategory(category Category) error {
	resolved, err := resolveCategory(t.kind, category)
	if err != nil {
		return err
	}
	t.category = resolved
	return nil
}

// SetDescription replaces the description under the same rules as construction.
func (t *Transaction) SetDescription(description string) error {
	resolved, err := resolveDescription(description)
	if err != nil {
		return err
	}
	t.description = resolved
	return nil
}

// Equal compares transactions field by field, treating amounts by value.
func (t Transaction) Equal(other Transaction) bool {
	return t.id == other.id &&
		t.amount.Equal(other.amount) &&
		t.kind == other.kind &&
		t.date.Equal(other.date) &&
		t.category == other.category &&
		t.description == other.description
}

func (t Transaction) String() string {
	return fmt.Sprintf("ID %d | %s | %s | %s | %s | %s",
		t.id,
		t.kind,
		t.amount.StringFixed(2),
		dateutils.FormatDate(t.date, dateutils.LayoutBR),
		t.category,
		t.description)
}
