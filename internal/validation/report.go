package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"findingsheet/adapters/excel"
	"findingsheet/domain/core"
	"findingsheet/domain/finding"
)

// sampleRowCount is how many data rows are echoed back in the report
const sampleRowCount = 2

// Header is one header cell with its 1-based column index
type Header struct {
	Column int
	Name   string
}

// Field is one header/value pair of a sample row
type Field struct {
	Name  string
	Value string
}

// SampleRow echoes the values of one data row
type SampleRow struct {
	Row    int
	Fields []Field
}

// EnumWarning flags a non-empty enum cell whose value is outside its set
type EnumWarning struct {
	Row     int
	Column  string
	Cell    string
	Value   string
	Allowed []string
}

func (w EnumWarning) String() string {
	return fmt.Sprintf("Row %d, %s: '%s' - not in expected values %v", w.Row, w.Column, w.Value, w.Allowed)
}

// IssueKind classifies a FieldIssue
type IssueKind string

const (
	IssueEmptyRequired IssueKind = "empty_required"
	IssueTooLong       IssueKind = "too_long"
	IssueBadDate       IssueKind = "bad_date"
)

// FieldIssue is a per-cell problem other than an enum violation
type FieldIssue struct {
	Row     int
	Column  string
	Kind    IssueKind
	Message string
}

func (i FieldIssue) String() string {
	return fmt.Sprintf("Row %d, %s: %s", i.Row, i.Column, i.Message)
}

// RiskProfile summarizes the risk ratings of rows whose three enum values
// are all valid
type RiskProfile struct {
	Scored      int
	Unscored    int
	Ratings     map[finding.RiskRating]int
	MeanScore   float64
	MedianScore float64
	MaxScore    float64
	Overdue     int
	AsOf        time.Time
}

// Report is the outcome of validating one worksheet
type Report struct {
	RunID     core.RunID
	SheetName string
	MaxRow    int
	MaxColumn int
	DataRows  int

	Headers         []Header
	Samples         []SampleRow
	MissingRequired []string
	EnumWarnings    []EnumWarning
	FieldIssues     []FieldIssue
	Risk            RiskProfile
}

// RequiredColumnsPresent reports whether every required header was found
func (r *Report) RequiredColumnsPresent() bool {
	return len(r.MissingRequired) == 0
}

// Clean reports whether the sheet passed both the required-column and the
// enum checks
func (r *Report) Clean() bool {
	return r.RequiredColumnsPresent() && len(r.EnumWarnings) == 0
}

// Validate checks a worksheet against the findings schema. Problems are
// collected into the report; nothing here fails.
func Validate(data *excel.ExcelData, now time.Time) *Report {
	report := &Report{
		RunID:     core.NewRunID(),
		SheetName: data.SheetName,
		MaxRow:    data.MaxRow,
		MaxColumn: data.MaxColumn,
		DataRows:  len(data.Rows),
	}

	for i, h := range data.Headers {
		report.Headers = append(report.Headers, Header{Column: i + 1, Name: h})
	}

	for i := 0; i < len(data.Rows) && i < sampleRowCount; i++ {
		report.Samples = append(report.Samples, sampleRow(data, data.Rows[i]))
	}

	for _, req := range finding.RequiredColumns() {
		if data.HeaderIndex(req) < 0 {
			report.MissingRequired = append(report.MissingRequired, req)
		}
	}

	report.EnumWarnings = checkEnums(data)
	report.FieldIssues = checkFields(data)
	report.Risk = profileRisk(data, now)
	return report
}

func sampleRow(data *excel.ExcelData, row excel.SheetRow) SampleRow {
	sample := SampleRow{Row: row.Number}
	for col := 0; col < data.MaxColumn; col++ {
		name := fmt.Sprintf("Column %d", col+1)
		if col < len(data.Headers) && data.Headers[col] != "" {
			name = data.Headers[col]
		}
		sample.Fields = append(sample.Fields, Field{Name: name, Value: row.Cell(col)})
	}
	return sample
}

// checkEnums walks rows in sheet order and, within a row, the enum columns
// in Impact, Likelihood, Exposure order. Absent columns and empty cells are
// skipped. Values are compared as stored, so surrounding whitespace counts.
func checkEnums(data *excel.ExcelData) []EnumWarning {
	var warnings []EnumWarning
	for _, row := range data.Rows {
		for _, ec := range finding.EnumColumns() {
			col := data.HeaderIndex(ec.Name)
			if col < 0 {
				continue
			}
			value := row.Cell(col)
			if value == "" || finding.IsAllowed(ec.Name, value) {
				continue
			}
			warnings = append(warnings, EnumWarning{
				Row:     row.Number,
				Column:  ec.Name,
				Cell:    fmt.Sprintf("%s%d", excel.ColumnLetter(col), row.Number),
				Value:   value,
				Allowed: ec.Values,
			})
		}
	}
	return warnings
}

func checkFields(data *excel.ExcelData) []FieldIssue {
	var issues []FieldIssue
	for _, row := range data.Rows {
		for col, name := range data.Headers {
			value := row.Cell(col)
			if strings.TrimSpace(value) == "" {
				if finding.IsRequired(name) {
					issues = append(issues, FieldIssue{Row: row.Number, Column: name, Kind: IssueEmptyRequired,
						Message: "required value is empty"})
				}
				continue
			}
			if limit := finding.MaxLength(name); limit > 0 && len([]rune(value)) > limit {
				issues = append(issues, FieldIssue{Row: row.Number, Column: name, Kind: IssueTooLong,
					Message: fmt.Sprintf("%d characters exceeds the %d character limit", len([]rune(value)), limit)})
			}
			if name == finding.ColumnSLADate {
				if _, err := finding.ParseSLADate(value); err != nil {
					issues = append(issues, FieldIssue{Row: row.Number, Column: name, Kind: IssueBadDate,
						Message: fmt.Sprintf("'%s' is not a month/day/year date", value)})
				}
			}
		}
	}
	return issues
}

func profileRisk(data *excel.ExcelData, now time.Time) RiskProfile {
	profile := RiskProfile{Ratings: make(map[finding.RiskRating]int), AsOf: now}
	var scores []float64
	for _, row := range data.Rows {
		rec := finding.FromRow(row.Values)
		if rec.IsOverdue(now) {
			profile.Overdue++
		}
		score, err := rec.RiskScore()
		if err != nil {
			profile.Unscored++
			continue
		}
		scores = append(scores, score)
		profile.Ratings[finding.RatingForScore(score)]++
	}
	profile.Scored = len(scores)
	if len(scores) == 0 {
		return profile
	}
	// stats only errors on empty input
	profile.MeanScore, _ = stats.Mean(scores)
	profile.MedianScore, _ = stats.Median(scores)
	profile.MaxScore, _ = stats.Max(scores)
	return profile
}
