// Package statistics derives aggregate reports from a transaction list.
// A Snapshot is computed wholesale on every call and never cached.
package statistics

import (
	"sort"

	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// KindSummary aggregates the transactions of one kind.
type KindSummary struct {
	Kind            models.Kind
	Count           int
	Total           decimal.Decimal
	Average         decimal.Decimal
	Median          decimal.Decimal
	Highest         decimal.Decimal
	HighestCategory models.Category

	// Categories lists categories in first-encountered order.
	Categories           []models.Category
	TotalPerCategory     map[models.Category]decimal.Decimal
	CountPerCategory     map[models.Category]int
	AmountShare          map[models.Category]float64
	CountShare           map[models.Category]float64
	MostFrequentCategory models.Category
}

// Snapshot is the full set of statistics for a list.
type Snapshot struct {
	TransactionCount int
	Income           KindSummary
	Expense          KindSummary
	Balance          decimal.Decimal
}

// Compute partitions list by kind and aggregates each side.
func Compute(list []models.Transaction) Snapshot {
	var income, expense []models.Transaction
	for _, t := range list {
		switch t.Kind() {
		case models.Income:
			income = append(income, t)
		case models.Expense:
			expense = append(expense, t)
		}
	}

	snap := Snapshot{
		TransactionCount: len(list),
		Income:           summarize(models.Income, income),
		Expense:          summarize(models.Expense, expense),
	}
	snap.Balance = snap.Income.Total.Sub(snap.Expense.Total)
	return snap
}

func summarize(kind models.Kind, list []models.Transaction) KindSummary {
	s := KindSummary{
		Kind:             kind,
		Count:            len(list),
		Total:            decimal.Zero,
		Average:          decimal.Zero,
		Median:           decimal.Zero,
		Highest:          decimal.Zero,
		Categories:       []models.Category{},
		TotalPerCategory: map[models.Category]decimal.Decimal{},
		CountPerCategory: map[models.Category]int{},
		AmountShare:      map[models.Category]float64{},
		CountShare:       map[models.Category]float64{},
	}
	if len(list) == 0 {
		return s
	}

	amounts := make([]decimal.Decimal, 0, len(list))
	for i, t := range list {
		amount := t.Amount()
		amounts = append(amounts, amount)
		s.Total = s.Total.Add(amount)

		if i == 0 || amount.GreaterThan(s.Highest) {
			s.Highest = amount
			s.HighestCategory = t.Category()
		}

		c := t.Category()
		if _, ok := s.CountPerCategory[c]; !ok {
			s.Categories = append(s.Categories, c)
			s.TotalPerCategory[c] = decimal.Zero
		}
		s.CountPerCategory[c]++
		s.TotalPerCategory[c] = s.TotalPerCategory[c].Add(amount)
	}

	count := decimal.NewFromInt(int64(len(list)))
	s.Average = s.Total.Div(count)
	s.Median = median(amounts)

	for _, c := range s.Categories {
		if s.Total.IsPositive() {
			s.AmountShare[c] = s.TotalPerCategory[c].Div(s.Total).Mul(hundred).InexactFloat64()
		}
		s.CountShare[c] = float64(s.CountPerCategory[c]) / float64(len(list)) * 100
		if s.MostFrequentCategory.IsZero() || s.CountPerCategory[c] > s.CountPerCategory[s.MostFrequentCategory] {
			s.MostFrequentCategory = c
		}
	}
	return s
}

func median(amounts []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}

// TopCategories returns up to n categories ordered by total, largest first.
// Equal totals keep first-encountered order.
func (s KindSummary) TopCategories(n int) []models.Category {
	out := make([]models.Category, len(s.Categories))
	copy(out, s.Categories)
	sort.SliceStable(out, func(i, j int) bool {
		return s.TotalPerCategory[out[i]].GreaterThan(s.TotalPerCategory[out[j]])
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
