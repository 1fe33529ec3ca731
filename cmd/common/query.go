// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

// Sort keys accepted by --sort.
const (
	SortByAmount = "amount"
	SortByDate   = "date"
	SortByID     = "id"
)

// QueryFlags holds the filter and sort options shared by list, stats and export.
// Each non-empty option narrows the result of the previous one.
type QueryFlags struct {
	MinAmount string
	MaxAmount string
	Kind      string
	Category  string
	StartDate string
	EndDate   string
	SortBy    string
	Order     string
}

// Register adds the query flags to cmd.
func (q *QueryFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.MinAmount, "min", "", "Minimum amount (inclusive)")
	cmd.Flags().StringVar(&q.MaxAmount, "max", "", "Maximum amount (inclusive)")
	cmd.Flags().StringVarP(&q.Kind, "type", "t", "", "Transaction type (receita or despesa)")
	cmd.Flags().StringVarP(&q.Category, "category", "c", "", "Category; 'outros' matches both kinds")
	cmd.Flags().StringVar(&q.StartDate, "from", "", "Start date DD/MM/YYYY (inclusive)")
	cmd.Flags().StringVar(&q.EndDate, "to", "", "End date DD/MM/YYYY (inclusive)")
	cmd.Flags().StringVar(&q.SortBy, "sort", "", "Sort by amount, date or id")
	cmd.Flags().StringVar(&q.Order, "order", "", "Sort order (crescente or decrescente)")
}

// Apply runs the configured filters and sort against the service collection.
func (q QueryFlags) Apply(svc *service.TransactionService, logger logging.Logger) ([]models.Transaction, error) {
	logger = logging.OrDiscard(logger)
	result := svc.All()
	var err error

	if q.MinAmount != "" || q.MaxAmount != "" {
		if result, err = svc.FilterByAmount(q.MinAmount, q.MaxAmount, result); err != nil {
			return nil, err
		}
	}
	if q.Kind != "" {
		if result, err = svc.FilterByKind(q.Kind, result); err != nil {
			return nil, err
		}
	}
	if q.Category != "" {
		if result, err = svc.FilterByCategory(q.Category, result); err != nil {
			return nil, err
		}
	}
	if q.StartDate != "" || q.EndDate != "" {
		if result, err = svc.FilterByDate(q.StartDate, q.EndDate, result); err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(strings.TrimSpace(q.SortBy)) {
	case "":
		if q.Order != "" {
			result, err = svc.SortByID(q.Order, result)
		}
	case SortByAmount:
		result, err = svc.SortByAmount(q.Order, result)
	case SortByDate:
		result, err = svc.SortByDate(q.Order, result)
	case SortByID:
		result, err = svc.SortByID(q.Order, result)
	default:
		return nil, fmt.Errorf("invalid sort key %q: must be amount, date or id", q.SortBy)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Query applied", logging.F(logging.FieldCount, len(result)))
	return result, nil
}

// ParseID parses a positional transaction id argument.
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction ID %q: must be a positive integer", arg)
	}
	return id, nil
}
