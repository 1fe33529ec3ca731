// Package filter narrows and orders transaction lists. Every function is pure:
// the input is never modified and the result is never nil.
package filter

import (
	"sort"
	"time"

	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/shopspring/decimal"
)

// MaxAmount stands in for an absent upper amount bound.
var MaxAmount = decimal.New(1, 20)

// Direction is a sort order.
type Direction int

// Sort directions
const (
	Ascending Direction = iota
	Descending
)

// Direction labels
const (
	AscendingLabel  = "crescente"
	DescendingLabel = "decrescente"
)

func (d Direction) String() string {
	if d == Descending {
		return DescendingLabel
	}
	return AscendingLabel
}

func where(list []models.Transaction, keep func(models.Transaction) bool) []models.Transaction {
	out := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByAmountRange keeps amounts within [min, max]. An invalid min means zero and
// an invalid max means MaxAmount.
func ByAmountRange(list []models.Transaction, min, max decimal.NullDecimal) []models.Transaction {
	lower := decimal.Zero
	if min.Valid {
		lower = min.Decimal
	}
	upper := MaxAmount
	if max.Valid {
		upper = max.Decimal
	}
	return where(list, func(t models.Transaction) bool {
		return t.Amount().GreaterThanOrEqual(lower) && t.Amount().LessThanOrEqual(upper)
	})
}

// ByKind keeps transactions of the given kind.
func ByKind(list []models.Transaction, kind models.Kind) []models.Transaction {
	return where(list, func(t models.Transaction) bool { return t.Kind() == kind })
}

// ByCategory keeps transactions with exactly the given category.
func ByCategory(list []models.Transaction, category models.Category) []models.Transaction {
	return where(list, func(t models.Transaction) bool { return t.Category() == category })
}

// ByOtherCategory keeps transactions filed under either kind's fallback category.
func ByOtherCategory(list []models.Transaction) []models.Transaction {
	return where(list, func(t models.Transaction) bool { return t.Category().IsOther() })
}

// ByDateRange keeps dates within [start, end]. A zero bound is open.
func ByDateRange(list []models.Transaction, start, end time.Time) []models.Transaction {
	lower := dateutils.Normalize(dateutils.OrMin(start))
	upper := dateutils.Normalize(dateutils.OrMax(end))
	return where(list, func(t models.Transaction) bool {
		return !t.Date().Before(lower) && !t.Date().After(upper)
	})
}

func sorted(list []models.Transaction, dir Direction, less func(a, b models.Transaction) bool) []models.Transaction {
	out := make([]models.Transaction, len(list))
	copy(out, list)
	if dir == Descending {
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// SortByAmount orders by amount. Equal amounts keep their relative order.
func SortByAmount(list []models.Transaction, dir Direction) []models.Transaction {
	return sorted(list, dir, func(a, b models.Transaction) bool { return a.Amount().LessThan(b.Amount()) })
}

// SortByDate orders by date. Equal dates keep their relative order.
func SortByDate(list []models.Transaction, dir Direction) []models.Transaction {
	return sorted(list, dir, func(a, b models.Transaction) bool { return a.Date().Before(b.Date()) })
}

// SortByID orders by id.
func SortByID(list []models.Transaction, dir Direction) []models.Transaction {
	return sorted(list, dir, func(a, b models.Transaction) bool { return a.ID() < b.ID() })
}

// EarliestDate returns the oldest date in list, or false when list is empty.
func EarliestDate(list []models.Transaction) (time.Time, bool) {
	if len(list) == 0 {
		return time.Time{}, false
	}
	earliest := list[0].Date()
	for _, t := range list[1:] {
		if t.Date().Before(earliest) {
			earliest = t.Date()
		}
	}
	return earliest, true
}

// LatestDate returns the newest date in list, or false when list is empty.
func LatestDate(list []models.Transaction) (time.Time, bool) {
	if len(list) == 0 {
		return time.Time{}, false
	}
	latest := list[0].Date()
	for _, t := range list[1:] {
		if t.Date().After(latest) {
			latest = t.Date()
		}
	}
	return latest, true
}
