package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"findingsheet/domain/finding"
)

// Style decides how pass/warn/fail lines are marked on the console
type Style struct {
	okMark, warnMark, errMark string
	ok, warn, err            lipgloss.Style
}

// TerminalStyle marks lines with emoji and colours them
func TerminalStyle() Style {
	return Style{
		okMark:   "✅",
		warnMark: "⚠️ ",
		errMark:  "❌",
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
	}
}

// PlainStyle marks lines with bracketed tags and no colour, for pipes and logs
func PlainStyle() Style {
	return Style{
		okMark:   "[OK]",
		warnMark: "[WARN]",
		errMark:  "[ERROR]",
		ok:       lipgloss.NewStyle(),
		warn:     lipgloss.NewStyle(),
		err:      lipgloss.NewStyle(),
	}
}

func (s Style) OK(msg string) string   { return s.ok.Render(s.okMark + " " + msg) }
func (s Style) Warn(msg string) string { return s.warn.Render(s.warnMark + " " + msg) }
func (s Style) Err(msg string) string  { return s.err.Render(s.errMark + " " + msg) }

// WriteText prints the analysis, header, sample and check sections of the
// report to w
func (r *Report) WriteText(w io.Writer, style Style) error {
	var b strings.Builder

	b.WriteString("=== Excel File Analysis ===\n")
	fmt.Fprintf(&b, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(&b, "Worksheet name: %s\n", r.SheetName)
	fmt.Fprintf(&b, "Max row: %d\n", r.MaxRow)
	fmt.Fprintf(&b, "Max column: %d\n\n", r.MaxColumn)

	b.WriteString("=== Column Headers (Row 1) ===\n")
	for _, h := range r.Headers {
		fmt.Fprintf(&b, "Column %d: %s\n", h.Column, h.Name)
	}
	b.WriteString("\n")

	b.WriteString("=== Sample Data Rows ===\n")
	if len(r.Samples) == 0 {
		b.WriteString("(no data rows)\n\n")
	}
	for _, s := range r.Samples {
		fmt.Fprintf(&b, "Row %d:\n", s.Row)
		for _, f := range s.Fields {
			fmt.Fprintf(&b, "  %s: %s\n", f.Name, f.Value)
		}
		b.WriteString("\n")
	}

	b.WriteString("=== Validation Checks ===\n")
	if r.RequiredColumnsPresent() {
		b.WriteString(style.OK("All required columns present") + "\n")
	} else {
		b.WriteString(style.Err(fmt.Sprintf("Missing required columns: %v", r.MissingRequired)) + "\n")
	}
	for _, w := range r.EnumWarnings {
		b.WriteString(style.Warn(w.String()) + "\n")
	}
	for _, issue := range r.FieldIssues {
		b.WriteString(style.Warn(issue.String()) + "\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Risk Profile ===\n")
	fmt.Fprintf(&b, "Scored findings: %d", r.Risk.Scored)
	if r.Risk.Unscored > 0 {
		fmt.Fprintf(&b, " (%d without a complete impact/likelihood/exposure)", r.Risk.Unscored)
	}
	b.WriteString("\n")
	for _, rating := range finding.Ratings() {
		fmt.Fprintf(&b, "  %s: %d\n", rating, r.Risk.Ratings[rating])
	}
	if r.Risk.Scored > 0 {
		fmt.Fprintf(&b, "Risk score mean %.2f, median %.2f, max %.2f\n", r.Risk.MeanScore, r.Risk.MedianScore, r.Risk.MaxScore)
	}
	fmt.Fprintf(&b, "Overdue as of %s: %d\n", r.Risk.AsOf.Format(finding.SLADateLayout), r.Risk.Overdue)
	b.WriteString("\n")

	b.WriteString(style.OK("Excel file structure validation complete") + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary prints the closing summary. It is printed whether or not the
// file could be analyzed; report may be nil.
func WriteSummary(w io.Writer, path string, report *Report) error {
	var b strings.Builder
	b.WriteString("\n=== Test File Summary ===\n")
	fmt.Fprintf(&b, "Checked %s", path)
	if report != nil {
		fmt.Fprintf(&b, " with:\n- %d findings\n", report.DataRows)
		if report.RequiredColumnsPresent() {
			fmt.Fprintf(&b, "- All required columns (%s)\n", strings.Join(finding.RequiredColumns(), ", "))
		} else {
			fmt.Fprintf(&b, "- Missing required columns (%s)\n", strings.Join(report.MissingRequired, ", "))
		}
		fmt.Fprintf(&b, "- %d out-of-range values for %s\n", len(report.EnumWarnings), enumColumnNames())
		fmt.Fprintf(&b, "- %d other field issues\n", len(report.FieldIssues))
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\nFile is ready for use.\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func enumColumnNames() string {
	var names []string
	for _, ec := range finding.EnumColumns() {
		names = append(names, ec.Name)
	}
	return strings.Join(names, ", ")
}
