package validation

import (
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"findingsheet/adapters/excel"
	"findingsheet/internal"
)

// Outcome says how far a check run got
type Outcome int

const (
	// OutcomeChecked means the sheet was read and validated
	OutcomeChecked Outcome = iota
	// OutcomeDegraded means no reader handles the file type; the sheet was not inspected
	OutcomeDegraded
	// OutcomeFailed means reading failed; the error was reported, not returned
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChecked:
		return "checked"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures a check run
type Options struct {
	Path      string
	SheetName string
	Now       time.Time
	Style     Style
	// HTMLPath, when set, also writes an HTML report there
	HTMLPath string
	Logger   *internal.Logger
}

// CheckFile reads path and validates its sheet
func CheckFile(path string, now time.Time) (*Report, error) {
	data, err := excel.NewDataReader(path).ReadData()
	if err != nil {
		return nil, err
	}
	return Validate(data, now), nil
}

// Run reads, validates and prints diagnostics for one findings sheet. Read
// problems are printed to w rather than returned; the returned error is only
// a failure to write output.
func Run(w io.Writer, opts Options) (*Report, Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	if opts.Style.okMark == "" {
		opts.Style = PlainStyle()
	}

	reader := excel.NewDataReaderWithConfig(excel.ExcelConfig{FilePath: opts.Path, SheetName: opts.SheetName}).WithLogger(logger)
	data, err := reader.ReadData()

	var report *Report
	outcome := OutcomeChecked
	switch {
	case err == nil:
		report = Validate(data, now)
		logger.Info("validated %s: %d data rows, %d enum warnings, %d field issues",
			opts.Path, report.DataRows, len(report.EnumWarnings), len(report.FieldIssues))
		if werr := report.WriteText(w, opts.Style); werr != nil {
			return report, outcome, werr
		}
	case stderrors.Is(err, excel.ErrReaderUnavailable):
		outcome = OutcomeDegraded
		logger.Warn("degraded mode: %v", err)
		if _, werr := fmt.Fprintf(w, "Spreadsheet reader not available for %s, but the file exists and should be valid\n"+
			"The findings import will still be able to read it\n", filepath.Base(opts.Path)); werr != nil {
			return nil, outcome, werr
		}
	default:
		outcome = OutcomeFailed
		logger.Error("reading %s: %v", opts.Path, err)
		if _, werr := fmt.Fprintf(w, "%s\n", opts.Style.Err(fmt.Sprintf("Error analyzing Excel file: %v", err))); werr != nil {
			return nil, outcome, werr
		}
	}

	if report != nil && opts.HTMLPath != "" {
		line := fmt.Sprintf("HTML report written to %s", opts.HTMLPath)
		if herr := WriteHTML(opts.HTMLPath, report); herr != nil {
			logger.Error("html report: %v", herr)
			line = opts.Style.Warn(fmt.Sprintf("Could not write HTML report: %v", herr))
		}
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return report, outcome, werr
		}
	}

	if err := WriteSummary(w, opts.Path, report); err != nil {
		return report, outcome, err
	}
	return report, outcome, nil
}
