package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"findingsheet/internal"
	"findingsheet/internal/errors"

	"github.com/xuri/excelize/v2"
)

// ErrReaderUnavailable is returned when no reader handles the file's format,
// for example a legacy binary .xls workbook
var ErrReaderUnavailable = errors.New(errors.CodeReaderUnavailable, "no spreadsheet reader available for this file type")

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath  string
	fileType  string // "xlsx", "csv" or "" when unsupported
	sheetName string
	logger    *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	return NewDataReaderWithConfig(DefaultExcelConfig(filePath))
}

// NewDataReaderWithConfig creates a reader from an ExcelConfig
func NewDataReaderWithConfig(cfg ExcelConfig) *DataReader {
	return &DataReader{
		filePath:  cfg.FilePath,
		fileType:  FileType(cfg.FilePath),
		sheetName: cfg.SheetName,
		logger:    internal.DefaultLogger,
	}
}

// WithLogger replaces the reader's logger
func (r *DataReader) WithLogger(l *internal.Logger) *DataReader {
	r.logger = l
	return r
}

// FileType maps a path's extension onto "xlsx", "csv" or "" when no reader
// supports it
func FileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return "xlsx"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}

// ReadData reads the header row and data rows of the file
func (r *DataReader) ReadData() (*ExcelData, error) {
	r.logger.Debug("[DataReader] Starting to read %q file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.ReadError(r.filePath, err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, errors.Wrapf(ErrReaderUnavailable, "cannot read %s", filepath.Base(r.filePath))
	}
}

// readExcelData reads the configured or active worksheet
func (r *DataReader) readExcelData() (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ReadError(r.filePath, fmt.Errorf("failed to open Excel file: %w", err))
	}
	defer f.Close()
	r.logger.Debug("[DataReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.sheetName
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.ReadError(r.filePath, fmt.Errorf("workbook has no worksheets"))
		}
		sheet = sheets[0]
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.ReadError(r.filePath, fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}
	r.logger.Debug("[DataReader] %s read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(sheet, rows), nil
}

// readCSVData reads CSV data; the sheet is named after the file
func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ReadError(r.filePath, fmt.Errorf("failed to open CSV file: %w", err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ReadError(r.filePath, fmt.Errorf("failed to read CSV file: %w", err))
	}
	r.logger.Debug("[DataReader] CSV file read (%d rows)", len(rows))

	name := strings.TrimSuffix(filepath.Base(r.filePath), filepath.Ext(r.filePath))
	return r.processRows(name, rows), nil
}

// processRows converts raw string rows into ExcelData. Row 1 is the header;
// rows whose cells are all empty are dropped. Cell text is kept as stored.
func (r *DataReader) processRows(sheet string, rows [][]string) *ExcelData {
	data := &ExcelData{SheetName: sheet, MaxRow: len(rows)}
	for _, row := range rows {
		if len(row) > data.MaxColumn {
			data.MaxColumn = len(row)
		}
	}
	if len(rows) == 0 {
		return data
	}

	data.Headers = make([]string, len(rows[0]))
	copy(data.Headers, rows[0])

	for i := 1; i < len(rows); i++ {
		if isBlankRow(rows[i]) {
			continue
		}
		cells := make([]string, data.MaxColumn)
		values := make(RawRowData, len(data.Headers))
		for j, cell := range rows[i] {
			cells[j] = cell
			if j < len(data.Headers) && data.Headers[j] != "" {
				values[data.Headers[j]] = cells[j]
			}
		}
		data.Rows = append(data.Rows, SheetRow{Number: i + 1, Cells: cells, Values: values})
	}

	r.logger.Debug("[DataReader] %s processed (%d columns, %d data rows)", sheet, len(data.Headers), len(data.Rows))
	return data
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// ColumnLetter converts 0-based column index to Excel column letter (A, B, ..., Z, AA, AB, ...)
func ColumnLetter(colIdx int) string {
	name, err := excelize.ColumnNumberToName(colIdx + 1)
	if err != nil {
		return ""
	}
	return name
}
