package finding

import "strings"

// Column names as they appear in the spreadsheet header row
const (
	ColumnTitle            = "Title"
	ColumnDetails          = "Details"
	ColumnImpact           = "Impact"
	ColumnLikelihood       = "Likelihood"
	ColumnExposure         = "Exposure"
	ColumnOwner            = "Owner"
	ColumnDomain           = "Domain"
	ColumnBusinessUnit     = "Business Unit"
	ColumnBusinessOwner    = "Business Owner"
	ColumnAsset            = "Asset"
	ColumnTechnicalControl = "Technical Control"
	ColumnAssignedTo       = "Assigned To"
	ColumnSLADate          = "SLA Date"
)

// Record is one security finding, i.e. one data row of the spreadsheet.
// All values are kept as the text that appears in the cell.
type Record struct {
	Title            string `json:"title"`
	Details          string `json:"details"`
	Impact           string `json:"impact"`
	Likelihood       string `json:"likelihood"`
	Exposure         string `json:"exposure"`
	Owner            string `json:"owner"`
	Domain           string `json:"domain,omitempty"`
	BusinessUnit     string `json:"business_unit,omitempty"`
	BusinessOwner    string `json:"business_owner,omitempty"`
	Asset            string `json:"asset,omitempty"`
	TechnicalControl string `json:"technical_control,omitempty"`
	AssignedTo       string `json:"assigned_to,omitempty"`
	SLADate          string `json:"sla_date,omitempty"`
}

var columns = []string{
	ColumnTitle,
	ColumnDetails,
	ColumnImpact,
	ColumnLikelihood,
	ColumnExposure,
	ColumnOwner,
	ColumnDomain,
	ColumnBusinessUnit,
	ColumnBusinessOwner,
	ColumnAsset,
	ColumnTechnicalControl,
	ColumnAssignedTo,
	ColumnSLADate,
}

var requiredColumns = []string{ColumnTitle, ColumnDetails, ColumnOwner}

// Field length limits; columns not listed are unbounded
var maxLengths = map[string]int{
	ColumnTitle:            200,
	ColumnDetails:          2000,
	ColumnOwner:            100,
	ColumnDomain:           100,
	ColumnBusinessUnit:     100,
	ColumnBusinessOwner:    100,
	ColumnAsset:            100,
	ColumnTechnicalControl: 100,
	ColumnAssignedTo:       100,
}

// Columns returns the fixed header order used when writing a findings sheet
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// RequiredColumns returns the headers every findings sheet must carry
func RequiredColumns() []string {
	out := make([]string, len(requiredColumns))
	copy(out, requiredColumns)
	return out
}

// IsRequired reports whether column must be present and non-empty
func IsRequired(column string) bool {
	for _, c := range requiredColumns {
		if c == column {
			return true
		}
	}
	return false
}

// MaxLength returns the length limit for column, or 0 when there is none
func MaxLength(column string) int {
	return maxLengths[column]
}

// Values returns the record's cells in Columns() order
func (r Record) Values() []string {
	return []string{
		r.Title,
		r.Details,
		r.Impact,
		r.Likelihood,
		r.Exposure,
		r.Owner,
		r.Domain,
		r.BusinessUnit,
		r.BusinessOwner,
		r.Asset,
		r.TechnicalControl,
		r.AssignedTo,
		r.SLADate,
	}
}

// Get returns the value of the named column, or "" for an unknown column
func (r Record) Get(column string) string {
	for i, c := range columns {
		if c == column {
			return r.Values()[i]
		}
	}
	return ""
}

// FromRow builds a record from a header-keyed row. Unknown keys are ignored
// and values are trimmed.
func FromRow(row map[string]string) Record {
	get := func(k string) string { return strings.TrimSpace(row[k]) }
	return Record{
		Title:            get(ColumnTitle),
		Details:          get(ColumnDetails),
		Impact:           get(ColumnImpact),
		Likelihood:       get(ColumnLikelihood),
		Exposure:         get(ColumnExposure),
		Owner:            get(ColumnOwner),
		Domain:           get(ColumnDomain),
		BusinessUnit:     get(ColumnBusinessUnit),
		BusinessOwner:    get(ColumnBusinessOwner),
		Asset:            get(ColumnAsset),
		TechnicalControl: get(ColumnTechnicalControl),
		AssignedTo:       get(ColumnAssignedTo),
		SLADate:          get(ColumnSLADate),
	}
}
