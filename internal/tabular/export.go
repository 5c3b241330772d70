package tabular

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"
)

// exportRows snapshots the current result set, every page, in display order.
func (v *View[T]) exportRows() ([]string, [][]string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	header := make([]string, 0, len(v.columns))
	for _, c := range v.columns {
		header = append(header, c.title)
	}

	records := make([][]string, 0, len(v.visible))
	for _, idx := range v.visible {
		cells := make([]string, 0, len(v.columns))
		for _, c := range v.columns {
			cells = append(cells, cellString(v.rows[idx], c))
		}
		records = append(records, cells)
	}
	return header, records
}

// ExportCSV writes the current result set, all pages, as CSV with a header
// row.
func (v *View[T]) ExportCSV(w io.Writer) error {
	header, records := v.exportRows()

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportXLSX writes the current result set, all pages, as a single-sheet
// spreadsheet.
func (v *View[T]) ExportXLSX(w io.Writer, sheet string) error {
	header, records := v.exportRows()

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	writeRow := func(rowNum int, cells []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		return f.SetSheetRow(sheet, cell, &row)
	}

	if err := writeRow(1, header); err != nil {
		return err
	}
	for i, rec := range records {
		if err := writeRow(i+2, rec); err != nil {
			return err
		}
	}
	return f.Write(w)
}
