package excel

// ExcelConfig holds configuration for a spreadsheet data source
type ExcelConfig struct {
	FilePath string `json:"file_path"`
	// SheetName overrides the worksheet to read; empty means the active sheet
	SheetName string `json:"sheet_name,omitempty"`
}

// DefaultSheetName is the worksheet name written by WriteXLSX
const DefaultSheetName = "Sheet1"

// DefaultExcelConfig returns the config for reading path's active sheet
func DefaultExcelConfig(path string) ExcelConfig {
	return ExcelConfig{FilePath: path}
}
