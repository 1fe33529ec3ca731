// Package list handles the command that lists, filters and sorts transactions
package list

import (
	"io"

	"github.com/fjacquet/fincontroller/cmd/common"
	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

var query common.QueryFlags

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List transactions",
	Long: `List transactions. Each filter narrows the result of the previous one:
amount range, type, category, then date range. The result can then be sorted.`,
	Example: `  fincontroller list --type despesa --from 01/10/2025 --to 31/10/2025
  fincontroller list --category outros --sort amount --order decrescente`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := root.Service()
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), svc, query, root.Log)
	},
}

func init() {
	query.Register(Cmd)
}

// Run prints the transactions matching q.
func Run(w io.Writer, svc *service.TransactionService, q common.QueryFlags, logger logging.Logger) error {
	result, err := q.Apply(svc, logger)
	if err != nil {
		return err
	}
	return common.PrintTransactions(w, result)
}
