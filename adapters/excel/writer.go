package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"findingsheet/internal/errors"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes headers and rows to a single-sheet workbook at path,
// creating or overwriting it
func WriteXLSX(path string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Ensure Sheet1 exists and is active.
	sheet := DefaultSheetName
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return errors.WriteError(path, err)
		}
		f.SetActiveSheet(idx)
	}

	// Header row
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.WriteError(path, err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.WriteError(path, err)
	}
	if len(headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return errors.WriteError(path, err)
		}
	}

	// Data rows
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.WriteError(path, fmt.Errorf("row %d: %w", r+2, err))
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WriteError(path, err)
	}
	return nil
}

// WriteCSV writes the same table as a CSV file
func WriteCSV(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WriteError(path, err)
	}
	if err := writeCSVRows(f, headers, rows); err != nil {
		f.Close()
		return errors.WriteError(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WriteError(path, err)
	}
	return nil
}

func writeCSVRows(out io.Writer, headers []string, rows [][]string) error {
	w := csv.NewWriter(out)
	if err := w.Write(headers); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
