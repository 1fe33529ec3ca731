// Package remove handles the command that deletes a transaction
package remove

import (
	"fmt"
	"io"

	"github.com/fjacquet/fincontroller/cmd/common"
	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a transaction by ID",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseID(args[0])
		if err != nil {
			return err
		}
		svc, err := root.Service()
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), svc, id, root.Log)
	},
}

// Run removes the transaction with the given id.
func Run(w io.Writer, svc *service.TransactionService, id int, logger logging.Logger) error {
	if err := svc.Remove(id); err != nil {
		return err
	}
	logging.OrDiscard(logger).Info("Transaction removed", logging.F(logging.FieldTransactionID, id))
	_, err := fmt.Fprintf(w, "Transação %d removida.\n", id)
	return err
}
