// Package export serializes a transaction list to the formats offered for
// download: a CSV snapshot and an XLSX workbook.
//
// Both formats are written from the same Row projection, so they always carry
// the same records and the same scaled amounts.
package export

import (
	"github.com/gabapcia/snip20history/internal/history"

	"github.com/shopspring/decimal"
)

// header is the column layout shared by every format.
var header = []string{"id", "sender", "receiver", "amount"}

// Row is a transaction as exported.
type Row struct {
	ID       uint64
	Sender   string
	Receiver string
	Amount   decimal.Decimal // raw amount divided by 10^decimals
}

// Rows projects txs into export rows, scaling every amount by decimals.
// The order of txs is preserved.
func Rows(txs []history.Transaction, decimals uint8) []Row {
	rows := make([]Row, len(txs))
	for i, tx := range txs {
		rows[i] = Row{
			ID:       tx.ID,
			Sender:   tx.Sender,
			Receiver: tx.Receiver,
			Amount:   tx.Amount.Scale(decimals),
		}
	}

	return rows
}
