package models

import "fmt"

// Kind is the top-level classification of a transaction.
type Kind int

// Transaction kinds. The zero Kind is not a valid kind.
const (
	Income Kind = iota + 1
	Expense
)

// Kind labels, as stored on disk and typed by users.
const (
	IncomeLabel  = "receita"
	ExpenseLabel = "despesa"
)

// Kinds lists the valid kinds in display order.
func Kinds() []Kind {
	return []Kind{Income, Expense}
}

// Valid reports whether k is Income or Expense.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// String returns the kind label.
func (k Kind) String() string {
	switch k {
	case Income:
		return IncomeLabel
	case Expense:
		return ExpenseLabel
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// Other returns the fallback category of the kind.
func (k Kind) Other() Category {
	if k == Income {
		return IncomeOther
	}
	return ExpenseOther
}

// Categories returns the closed category set of the kind in declaration order.
func (k Kind) Categories() []Category {
	var set []Category
	switch k {
	case Income:
		set = incomeCategories
	case Expense:
		set = expenseCategories
	}
	out := make([]Category, len(set))
	copy(out, set)
	return out
}

// Category is a member of one of the two closed category sets. It carries
// its own kind, so an income category can never be mistaken for an expense
// one. The zero Category means "no category given".
type Category struct {
	kind  Kind
	label string
}

// Income categories
var (
	Wage          = Category{Income, "salário"}
	Freelance     = Category{Income, "freelance"}
	Investment    = Category{Income, "investimento"}
	Sale          = Category{Income, "venda"}
	Gift          = Category{Income, "presente"}
	Reimbursement = Category{Income, "reembolso"}
	IncomeOther   = Category{Income, OtherLabel}
)

// Expense categories
var (
	Food           = Category{Expense, "alimentação"}
	Transportation = Category{Expense, "transporte"}
	Housing        = Category{Expense, "moradia"}
	Health         = Category{Expense, "saúde"}
	Education      = Category{Expense, "educação"}
	Leisure        = Category{Expense, "lazer"}
	Bills          = Category{Expense, "contas"}
	Clothing       = Category{Expense, "vestuário"}
	ExpenseOther   = Category{Expense, OtherLabel}
)

// OtherLabel is shared by the fallback member of both sets.
const OtherLabel = "outros"

var incomeCategories = []Category{Wage, Freelance, Investment, Sale, Gift, Reimbursement, IncomeOther}

var expenseCategories = []Category{Food, Transportation, Housing, Health, Education, Leisure, Bills, Clothing, ExpenseOther}

// AllCategories returns income categories followed by expense categories.
func AllCategories() []Category {
	out := make([]Category, 0, len(incomeCategories)+len(expenseCategories))
	out = append(out, incomeCategories...)
	return append(out, expenseCategories...)
}

// Kind returns the kind the category belongs to.
func (c Category) Kind() Kind {
	return c.kind
}

// String returns the category label.
func (c Category) String() string {
	return c.label
}

// IsZero reports whether no category is set.
func (c Category) IsZero() bool {
	return c == Category{}
}

// IsOther reports whether c is the fallback member of either set.
func (c Category) IsOther() bool {
	return c == IncomeOther || c == ExpenseOther
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.label), nil
}
