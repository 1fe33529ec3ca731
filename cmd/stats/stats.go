// Package stats handles the statistics report command
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/fjacquet/fincontroller/cmd/common"
	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/internal/fileutils"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/report"
	"github.com/fjacquet/fincontroller/internal/service"
	"github.com/fjacquet/fincontroller/internal/validation"

	"github.com/spf13/cobra"
)

// Options controls how the report is rendered and where it goes.
type Options struct {
	Query  common.QueryFlags
	Format string
	Output string
}

var opts Options

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Report statistics per type and category",
	Long: `Report totals, averages, medians, highest amounts and category shares for
income and expenses, plus the balance. Accepts the same filters as list.`,
	Example: `  fincontroller stats --from 01/10/2025 --to 31/10/2025
  fincontroller stats --format json --output outubro.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := root.Service()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("format") {
			opts.Format = root.AppContainer.GetConfig().Report.Format
		}
		return Run(cmd.OutOrStdout(), svc, root.AppContainer.GetReportGenerator(), opts, root.Log)
	},
}

func init() {
	opts.Query.Register(Cmd)
	Cmd.Flags().StringVarP(&opts.Format, "format", "f", report.FormatText, "Report format (text, json or yaml)")
	Cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the report to a file instead of stdout")
}

// Run computes statistics over the transactions selected by o.Query and
// renders them.
func Run(w io.Writer, svc *service.TransactionService, gen *report.Generator, o Options, logger logging.Logger) error {
	logger = logging.OrDiscard(logger)
	format := strings.ToLower(strings.TrimSpace(o.Format))
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}

	selected, err := o.Query.Apply(svc, logger)
	if err != nil {
		return err
	}

	var period *report.Period
	if p, ok := svc.Period(selected); ok {
		period = &p
	}

	data, err := gen.Generate(svc.Statistics(selected), period, format)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if o.Output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := validation.IsValidOutputPath(o.Output); err != nil {
		return err
	}
	if err := fileutils.WriteFile(o.Output, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("Report written",
		logging.F(logging.FieldOutputFile, o.Output),
		logging.F(logging.FieldFormat, format))
	_, err = fmt.Fprintf(w, "Relatório salvo em %s\n", o.Output)
	return err
}
