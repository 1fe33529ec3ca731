// Package show handles the command that prints one transaction
package show

import (
	"fmt"
	"io"

	"github.com/fjacquet/fincontroller/cmd/common"
	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

// Cmd represents the show command
var Cmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a transaction by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := common.ParseID(args[0])
		if err != nil {
			return err
		}
		svc, err := root.Service()
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), svc, id)
	},
}

// Run prints the transaction with the given id.
func Run(w io.Writer, svc *service.TransactionService, id int) error {
	t, err := svc.Get(id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, t)
	return err
}
