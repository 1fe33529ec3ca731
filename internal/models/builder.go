package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions.
// The first failing step is kept and reported by Build.
type TransactionBuilder struct {
	fields Fields
	err    error
}

// NewTransactionBuilder creates a builder dated today with no kind set.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		fields: Fields{
			Amount: decimal.Zero,
			Date:   now(),
		},
	}
}

// WithID sets an explicit transaction ID, as used when restoring a store.
func (b *TransactionBuilder) WithID(id int) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.fields.ID = id
	return b
}

// WithAmount sets the transaction amount
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.fields.Amount = amount
	return b
}

// WithAmountFromString sets the transaction amount from its decimal text
func (b *TransactionBuilder) WithAmountFromString(amountStr string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		b.err = fmt.Errorf("invalid amount %q: %w", amountStr, err)
		return b
	}
	b.fields.Amount = amount
	return b
}

// WithKind sets income or expense
func (b *TransactionBuilder) WithKind(kind Kind) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.fields.Kind = kind
	return b
}

// AsIncome is shorthand for WithKind(Income)
func (b *TransactionBuilder) AsIncome() *TransactionBuilder {
	return b.WithKind(Income)
}

// AsExpense is shorthand for WithKind(Expense)
func (b *TransactionBuilder) AsExpense() *TransactionBuilder {
	return b.WithKind(Expense)
}

// WithDate sets the transaction date
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.fields.Date = date
	return b
}

// WithCategory sets the transaction category
func (b *TransactionBuilder) WithCategory(category Category) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.fields.Category = category
	return b
}

// WithDescription sets the transaction description
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.fields.Description = description
	return b
}

// WithFields replaces every collected attribute with f.
func (b *TransactionBuilder) WithFields(f Fields) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if f.Date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.fields = f
	return b
}

// Fields returns the collected attributes without validating them.
func (b *TransactionBuilder) Fields() (Fields, error) {
	return b.fields, b.err
}

// Build validates the collected attributes and returns the Transaction,
// drawing its ID from seq when none was set.
func (b *TransactionBuilder) Build(seq *Sequence) (Transaction, error) {
	if b.err != nil {
		return Transaction{}, fmt.Errorf("builder error: %w", b.err)
	}
	return NewTransaction(seq, b.fields)
}

// Restore is Build for a persisted transaction; see RestoreTransaction.
func (b *TransactionBuilder) Restore(seq *Sequence) (Transaction, error) {
	if b.err != nil {
		return Transaction{}, fmt.Errorf("builder error: %w", b.err)
	}
	return RestoreTransaction(seq, b.fields)
}
