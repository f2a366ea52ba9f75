package findinggen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findingsheet/adapters/excel"
	"findingsheet/domain/finding"
	"findingsheet/internal/errors"
)

func TestSampleRecordsCoverEveryImpact(t *testing.T) {
	records := SampleRecords()
	require.Len(t, records, 5)

	seen := make(map[string]int)
	for i, r := range records {
		assert.True(t, finding.IsAllowed(finding.ColumnImpact, r.Impact), "record %d impact %q", i, r.Impact)
		assert.True(t, finding.IsAllowed(finding.ColumnLikelihood, r.Likelihood), "record %d likelihood %q", i, r.Likelihood)
		assert.True(t, finding.IsAllowed(finding.ColumnExposure, r.Exposure), "record %d exposure %q", i, r.Exposure)
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Details)
		assert.NotEmpty(t, r.Owner)
		_, err := finding.ParseSLADate(r.SLADate)
		assert.NoError(t, err)
		seen[r.Impact]++
	}
	for _, level := range finding.AllowedValues(finding.ColumnImpact) {
		assert.GreaterOrEqual(t, seen[level], 1, "impact %s missing", level)
	}
}

func TestGenerateLayout(t *testing.T) {
	ds := Generate()
	assert.Equal(t, finding.Columns(), ds.Headers)
	require.Len(t, ds.Rows, 5)
	for _, row := range ds.Rows {
		assert.Len(t, row, len(ds.Headers))
	}
	assert.Equal(t, "Unpatched SQL Server Vulnerability", ds.Rows[0][0])
	assert.Equal(t, "12/31/2024", ds.Rows[0][12])
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"test_findings.xlsx", "test_findings.csv"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			format, err := ParseFormat("", path)
			require.NoError(t, err)

			ds := Generate()
			require.NoError(t, Write(path, format, ds))

			data, err := excel.NewDataReader(path).ReadData()
			require.NoError(t, err)

			assert.Equal(t, ds.Headers, data.Headers)
			require.Len(t, data.Rows, len(ds.Records))
			for i, row := range data.Rows {
				assert.Equal(t, ds.Rows[i], row.Cells)
				assert.Equal(t, ds.Records[i], finding.FromRow(row.Values))
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("", "out.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("", "out.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("", "out")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("CSV", "out.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("csv", "findings")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("", "book.xlsm")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("csv", "out.xlsx")
	assert.EqualError(t, err, "format csv does not match out.xlsx")

	_, err = ParseFormat("xlsx", "dir/out.csv")
	assert.Error(t, err)

	_, err = ParseFormat("ods", "out.ods")
	assert.Error(t, err)
}

func TestWriteFailsOnUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.xlsx")
	err := Write(path, FormatXLSX, Generate())
	require.Error(t, err)
	assert.Equal(t, errors.CodeWriteError, errors.GetCode(err))
}
