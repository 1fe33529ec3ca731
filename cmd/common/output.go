package common

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fjacquet/fincontroller/internal/currencyutils"
	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/textutils"
)

// descriptionWidth bounds the description column of the table.
const descriptionWidth = 40

// EmptyListMessage is printed when a query matches nothing.
const EmptyListMessage = "Nenhuma transação encontrada."

// PrintTransactions writes list as an aligned table.
func PrintTransactions(w io.Writer, list []models.Transaction) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, EmptyListMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIPO\tDATA\tVALOR\tCATEGORIA\tDESCRIÇÃO")
	for _, t := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID(),
			t.Kind(),
			dateutils.FormatDate(t.Date(), dateutils.LayoutBR),
			currencyutils.FormatAmount(t.Amount()),
			t.Category(),
			textutils.Truncate(textutils.SingleLine(t.Description()), descriptionWidth))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d transação(ões)\n", len(list))
	return err
}
