package finding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsOrder(t *testing.T) {
	expected := []string{
		"Title", "Details", "Impact", "Likelihood", "Exposure", "Owner", "Domain",
		"Business Unit", "Business Owner", "Asset", "Technical Control", "Assigned To", "SLA Date",
	}
	assert.Equal(t, expected, Columns())

	// Callers must not be able to reorder the schema
	cols := Columns()
	cols[0] = "mutated"
	assert.Equal(t, "Title", Columns()[0])
}

func TestRequiredColumns(t *testing.T) {
	assert.Equal(t, []string{"Title", "Details", "Owner"}, RequiredColumns())
	assert.True(t, IsRequired(ColumnOwner))
	assert.False(t, IsRequired(ColumnAsset))
}

func TestEnumColumns(t *testing.T) {
	enums := EnumColumns()
	require.Len(t, enums, 3)
	assert.Equal(t, ColumnImpact, enums[0].Name)
	assert.Equal(t, ColumnLikelihood, enums[1].Name)
	assert.Equal(t, ColumnExposure, enums[2].Name)

	assert.True(t, IsAllowed(ColumnImpact, "Critical"))
	assert.True(t, IsAllowed(ColumnLikelihood, "Almost Certain"))
	assert.True(t, IsAllowed(ColumnExposure, "Slightly Exposed"))
	assert.False(t, IsAllowed(ColumnImpact, "Severe"))
	assert.False(t, IsAllowed(ColumnImpact, "critical"), "matching is case sensitive")
	assert.False(t, IsAllowed(ColumnOwner, "anything"))
	assert.Nil(t, AllowedValues(ColumnTitle))
}

func TestScore(t *testing.T) {
	s, err := Score(ColumnImpact, ImpactCritical)
	require.NoError(t, err)
	assert.Equal(t, 4, s)

	s, err = Score(ColumnExposure, ExposureSlightly)
	require.NoError(t, err)
	assert.Equal(t, 1, s)

	_, err = Score(ColumnImpact, "Severe")
	assert.Error(t, err)

	_, err = Score(ColumnAsset, "x")
	assert.Error(t, err)
}

func TestRiskRating(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   RiskRating
	}{
		{"all max", Record{Impact: ImpactCritical, Likelihood: LikelihoodAlmostCertain, Exposure: ExposureHighly}, RatingCritical},
		{"high band", Record{Impact: ImpactCritical, Likelihood: LikelihoodLikely, Exposure: ExposureHighly}, RatingHigh},
		{"just below medium", Record{Impact: ImpactMedium, Likelihood: LikelihoodUnlikely, Exposure: ExposureExposed}, RatingLow},
		{"medium exact", Record{Impact: ImpactMedium, Likelihood: LikelihoodPossible, Exposure: ExposureExposed}, RatingMedium},
		{"all min", Record{Impact: ImpactLow, Likelihood: LikelihoodUnlikely, Exposure: ExposureSlightly}, RatingLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.record.RiskRating()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Record{Impact: "Severe", Likelihood: LikelihoodLikely, Exposure: ExposureExposed}.RiskRating()
	assert.Error(t, err)
}

func TestParseSLADate(t *testing.T) {
	d, err := ParseSLADate("12/31/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseSLADate("1/5/2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseSLADate("2024-12-31")
	assert.Error(t, err)
	_, err = ParseSLADate("31/12/2024")
	assert.Error(t, err)
	_, err = ParseSLADate("")
	assert.Error(t, err)
}

func TestIsOverdue(t *testing.T) {
	r := Record{SLADate: "01/15/2025"}
	assert.False(t, r.IsOverdue(time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)), "due day itself is not overdue")
	assert.True(t, r.IsOverdue(time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, Record{SLADate: "not a date"}.IsOverdue(time.Now()))
}

func TestFromRowRoundTrip(t *testing.T) {
	r := Record{
		Title: "t", Details: "d", Impact: ImpactHigh, Likelihood: LikelihoodLikely,
		Exposure: ExposureExposed, Owner: "o", Domain: "dom", BusinessUnit: "bu",
		BusinessOwner: "bo", Asset: "a", TechnicalControl: "tc", AssignedTo: "at", SLADate: "01/02/2025",
	}
	row := make(map[string]string)
	for i, c := range Columns() {
		row[c] = r.Values()[i]
	}
	row["Extra"] = "ignored"
	assert.Equal(t, r, FromRow(row))
	assert.Equal(t, "bu", r.Get(ColumnBusinessUnit))
	assert.Equal(t, "", r.Get("Unknown"))
}
