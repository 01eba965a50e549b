package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gabapcia/snip20history/internal/export"
)

// writeTable prints rows as aligned columns under a header.
func writeTable(w io.Writer, rows []export.Row, symbol string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	amountHeader := "AMOUNT"
	if symbol != "" {
		amountHeader = fmt.Sprintf("AMOUNT (%s)", symbol)
	}

	fmt.Fprintf(tw, "ID\tSENDER\tRECEIVER\t%s\n", amountHeader)
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Sender, r.Receiver, r.Amount.String())
	}

	return tw.Flush()
}
