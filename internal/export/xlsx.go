package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the only sheet of the exported workbook.
const SheetName = "Transaction History"

// ErrTooManyRows is returned when the rows and the header do not fit in one sheet.
var ErrTooManyRows = errors.New("too many rows for an xlsx sheet")

// checkXLSXRows reports whether n data rows fit below the header row.
func checkXLSXRows(n int) error {
	if n+1 > excelize.TotalRows {
		return fmt.Errorf("%w: %d rows, the limit is %d", ErrTooManyRows, n, excelize.TotalRows-1)
	}

	return nil
}

// WriteXLSX writes rows as a single sheet workbook. Amounts are stored as
// numeric cells holding their exact decimal representation.
func WriteXLSX(w io.Writer, rows []Row) (err error) {
	if err := checkXLSXRows(len(rows)); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range rows {
		if err := writeXLSXRow(f, i+2, r); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "B", "C", 48); err != nil {
		return err
	}

	return f.Write(w)
}

// writeXLSXRow writes r at the given 1-based row number.
func writeXLSXRow(f *excelize.File, row int, r Row) error {
	cells := make([]string, 4)
	for i := range cells {
		name, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		cells[i] = name
	}

	if err := f.SetCellValue(SheetName, cells[0], r.ID); err != nil {
		return err
	}

	if err := f.SetCellStr(SheetName, cells[1], r.Sender); err != nil {
		return err
	}

	if err := f.SetCellStr(SheetName, cells[2], r.Receiver); err != nil {
		return err
	}

	// Untyped numeric cell, so every digit is kept.
	return f.SetCellDefault(SheetName, cells[3], r.Amount.String())
}
