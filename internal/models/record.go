package models

import (
	"encoding/json"

	"github.com/fjacquet/fincontroller/internal/dateutils"
)

// Record is the persisted shape of a transaction. Field names and the
// textual date layout are part of the on-disk format.
type Record struct {
	Amount      json.Number `json:"amount" csv:"amount"`
	Kind        string      `json:"transaction_type" csv:"transaction_type"`
	Date        string      `json:"transaction_date" csv:"transaction_date"`
	Category    string      `json:"category" csv:"category"`
	Description string      `json:"description" csv:"description"`
	ID          int         `json:"transaction_id" csv:"transaction_id"`
}

// Record returns the persisted shape of t.
func (t Transaction) Record() Record {
	return Record{
		Amount:      json.Number(t.amount.String()),
		Kind:        t.kind.String(),
		Date:        dateutils.FormatDate(t.date, dateutils.LayoutBR),
		Category:    t.category.String(),
		Description: t.description,
		ID:          t.id,
	}
}

// Records converts a list of transactions, preserving order.
func Records(list []Transaction) []Record {
	out := make([]Record, 0, len(list))
	for _, t := range list {
		out = append(out, t.Record())
	}
	return out
}
