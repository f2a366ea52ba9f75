package finding

import "fmt"

// Impact levels
const (
	ImpactCritical = "Critical"
	ImpactHigh     = "High"
	ImpactMedium   = "Medium"
	ImpactLow      = "Low"
)

// Likelihood levels
const (
	LikelihoodAlmostCertain = "Almost Certain"
	LikelihoodLikely        = "Likely"
	LikelihoodPossible      = "Possible"
	LikelihoodUnlikely      = "Unlikely"
)

// Exposure levels
const (
	ExposureHighly     = "Highly Exposed"
	ExposureModerately = "Moderately Exposed"
	ExposureExposed    = "Exposed"
	ExposureSlightly   = "Slightly Exposed"
)

// EnumColumn is a fixed-vocabulary column. Values are ordered from the
// most to the least severe.
type EnumColumn struct {
	Name   string
	Values []string
}

var enumColumns = []EnumColumn{
	{Name: ColumnImpact, Values: []string{ImpactCritical, ImpactHigh, ImpactMedium, ImpactLow}},
	{Name: ColumnLikelihood, Values: []string{LikelihoodAlmostCertain, LikelihoodLikely, LikelihoodPossible, LikelihoodUnlikely}},
	{Name: ColumnExposure, Values: []string{ExposureHighly, ExposureModerately, ExposureExposed, ExposureSlightly}},
}

// EnumColumns returns the enumerated columns in check order (Impact,
// Likelihood, Exposure)
func EnumColumns() []EnumColumn {
	out := make([]EnumColumn, len(enumColumns))
	for i, ec := range enumColumns {
		vals := make([]string, len(ec.Values))
		copy(vals, ec.Values)
		out[i] = EnumColumn{Name: ec.Name, Values: vals}
	}
	return out
}

// AllowedValues returns the value set for an enumerated column, or nil
func AllowedValues(column string) []string {
	for _, ec := range enumColumns {
		if ec.Name == column {
			vals := make([]string, len(ec.Values))
			copy(vals, ec.Values)
			return vals
		}
	}
	return nil
}

// IsAllowed reports whether value belongs to column's set. Matching is exact.
func IsAllowed(column, value string) bool {
	for _, v := range AllowedValues(column) {
		if v == value {
			return true
		}
	}
	return false
}

// Score returns the 1-4 ordinal of an enum value, 4 being the most severe
func Score(column, value string) (int, error) {
	vals := AllowedValues(column)
	if vals == nil {
		return 0, fmt.Errorf("column %q is not enumerated", column)
	}
	for i, v := range vals {
		if v == value {
			return len(vals) - i, nil
		}
	}
	return 0, fmt.Errorf("%s value %q is not one of %v", column, value, vals)
}
