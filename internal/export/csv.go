package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes rows as comma separated values, preceded by a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(r.ID, 10),
			r.Sender,
			r.Receiver,
			r.Amount.String(),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
