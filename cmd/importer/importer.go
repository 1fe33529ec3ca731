// Package importer handles the CSV import command
package importer

import (
	"fmt"
	"io"

	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/internal/common"
	"github.com/fjacquet/fincontroller/internal/fileutils"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import transactions from a CSV file",
	Long: `Import transactions from a CSV file with the columns written by export:
id, type, date, amount, category and description. Imported rows get new IDs.
The file is imported as a whole: one invalid row imports nothing.`,
	Example: `  fincontroller import outubro.csv`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := root.Service()
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), svc, args[0], root.Log)
	},
}

// Run reads csvFile and stores its rows as new transactions.
func Run(w io.Writer, svc *service.TransactionService, csvFile string, logger logging.Logger) error {
	logger = logging.OrDiscard(logger)
	if !fileutils.FileExists(csvFile) {
		return fmt.Errorf("CSV file not found: %s", csvFile)
	}

	rows, err := common.ReadCSVFile[common.ExportRow](csvFile, logger)
	if err != nil {
		return err
	}

	inputs := make([]parser.Input, 0, len(rows))
	for _, row := range rows {
		inputs = append(inputs, row.Input())
	}

	created, err := svc.Import(inputs)
	if err != nil {
		return fmt.Errorf("não foi possível importar %s: %w", csvFile, err)
	}

	logger.Info("Transactions imported",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(created)))
	_, err = fmt.Fprintf(w, "%d transação(ões) importada(s) de %s\n", len(created), csvFile)
	return err
}
