// Package export handles the CSV export command
package export

import (
	"fmt"
	"io"

	"github.com/fjacquet/fincontroller/cmd/common"
	"github.com/fjacquet/fincontroller/cmd/root"
	internalcommon "github.com/fjacquet/fincontroller/internal/common"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/service"
	"github.com/fjacquet/fincontroller/internal/validation"

	"github.com/spf13/cobra"
)

var (
	query  common.QueryFlags
	output string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV",
	Long: `Export the transactions selected by the list filters to a CSV file with the
columns id, type, date, amount, category and description.`,
	Example: `  fincontroller export --output outubro.csv --from 01/10/2025 --to 31/10/2025`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := root.Service()
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), svc, query, output, root.Log)
	},
}

func init() {
	query.Register(Cmd)
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file")
	_ = Cmd.MarkFlagRequired("output")
}

// Run writes the transactions selected by q to csvFile.
func Run(w io.Writer, svc *service.TransactionService, q common.QueryFlags, csvFile string, logger logging.Logger) error {
	if err := validation.IsValidOutputPath(csvFile); err != nil {
		return err
	}

	selected, err := q.Apply(svc, logger)
	if err != nil {
		return err
	}

	if err := internalcommon.WriteTransactionsToCSV(selected, csvFile, logger); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d transação(ões) exportada(s) para %s\n", len(selected), csvFile)
	return err
}
