// Package add handles the command that records a new transaction
package add

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

var input parser.Input

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new income or expense",
	Long: `Record a new transaction. Amounts accept "1.234,50" or "1234.50".
The date defaults to today and the category to the kind's "outros".`,
	Example: `  fincontroller add --amount 3500,00 --type receita --category salário --description "Salário de outubro"
  fincontroller add -a 120.75 -t despesa -d 06/10/2025 -c alimentação`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := root.Service()
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), svc, input, root.Log)
	},
}

func init() {
	Cmd.Flags().StringVarP(&input.Amount, "amount", "a", "", "Amount, greater than zero")
	Cmd.Flags().StringVarP(&input.Kind, "type", "t", "", "Transaction type (receita or despesa)")
	Cmd.Flags().StringVarP(&input.Date, "date", "d", "", "Date DD/MM/YYYY (default today)")
	Cmd.Flags().StringVarP(&input.Category, "category", "c", "", "Category of the transaction type")
	Cmd.Flags().StringVar(&input.Description, "description", "", "Free text description")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("type")
}

// Run records in and prints the stored transaction.
func Run(w io.Writer, svc *service.TransactionService, in parser.Input, logger logging.Logger) error {
	logger = logging.OrDiscard(logger)
	if strings.TrimSpace(in.Date) == "" {
		in.Date = dateutils.FormatDate(time.Now(), dateutils.LayoutBR)
	}

	t, err := svc.Add(in)
	if err != nil {
		return fmt.Errorf("não foi possível adicionar a transação: %w", err)
	}

	logger.Info("Transaction added",
		logging.F(logging.FieldTransactionID, t.ID()),
		logging.F(logging.FieldKind, t.Kind().String()))
	_, err = fmt.Fprintf(w, "Transação adicionada: %s\n", t)
	return err
}
