// Package update handles the command that edits a transaction's category or description
package update

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fjacquet/fincontroller/cmd/common"
	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

// Options selects what update changes. A nil field is left untouched.
type Options struct {
	Category    *string
	Description *string
}

var (
	category    string
	description string
)

// Cmd represents the update command
var Cmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the category or description of a transaction",
	Long: `Change the category or description of a transaction. Amount, type and date
cannot change. An empty description restores the default description.`,
	Example: `  fincontroller update 3 --category lazer
  fincontroller update 3 --description "Cinema com amigos"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseID(args[0])
		if err != nil {
			return err
		}
		var opts Options
		if cmd.Flags().Changed("category") {
			opts.Category = &category
		}
		if cmd.Flags().Changed("description") {
			opts.Description = &description
		}
		svc, err := root.Service()
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), svc, id, opts, root.Log)
	},
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	Cmd.Flags().StringVar(&description, "description", "", "New description")
}

// Run applies opts to the transaction with the given id and prints the result.
func Run(w io.Writer, svc *service.TransactionService, id int, opts Options, logger logging.Logger) error {
	logger = logging.OrDiscard(logger).WithField(logging.FieldTransactionID, id)
	if opts.Category == nil && opts.Description == nil {
		return fmt.Errorf("nothing to update: use --category or --description")
	}

	if opts.Category != nil {
		if err := svc.UpdateCategory(id, *opts.Category); err != nil {
			return withValidCategories(svc, id, err)
		}
		logger.Info("Category updated", logging.F(logging.FieldCategory, *opts.Category))
	}
	if opts.Description != nil {
		if err := svc.UpdateDescription(id, *opts.Description); err != nil {
			return err
		}
		logger.Info("Description updated")
	}

	t, err := svc.Get(id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Transação atualizada: %s\n", t)
	return err
}

// withValidCategories extends a category error with the categories the
// transaction's kind accepts.
func withValidCategories(svc *service.TransactionService, id int, err error) error {
	if !errors.Is(err, apperror.ErrKindCategoryMismatch) && !errors.Is(err, apperror.ErrInvalidCategory) {
		return err
	}
	kind, kindErr := svc.KindOf(id)
	if kindErr != nil {
		return err
	}
	labels := make([]string, 0, len(kind.Categories()))
	for _, c := range kind.Categories() {
		labels = append(labels, c.String())
	}
	return fmt.Errorf("%w (categorias de %s: %s)", err, kind, strings.Join(labels, ", "))
}
