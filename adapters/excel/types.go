package excel

// RawRowData represents a row of raw Excel data as header-keyed strings
type RawRowData map[string]string

// SheetRow is one non-empty data row below the header row
type SheetRow struct {
	Number int        // 1-based row number in the worksheet
	Cells  []string   // Cell text by column, padded to the sheet width
	Values RawRowData // Cells keyed by header
}

// Cell returns the cell text at a 0-based column index, or ""
func (r SheetRow) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

// ExcelData represents the complete contents of one worksheet
type ExcelData struct {
	SheetName string     // Worksheet the data came from
	MaxRow    int        // Last used row, header included
	MaxColumn int        // Widest used column
	Headers   []string   // Column headers from row 1
	Rows      []SheetRow // Non-empty data rows
}

// HeaderIndex returns the 0-based column of a header, or -1
func (d *ExcelData) HeaderIndex(header string) int {
	for i, h := range d.Headers {
		if h == header {
			return i
		}
	}
	return -1
}
