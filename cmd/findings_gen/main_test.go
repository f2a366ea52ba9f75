package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findingsheet/adapters/excel"
)

func TestGenerateReportsShape(t *testing.T) {
	out := filepath.Join(t.TempDir(), "test_findings.xlsx")
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, out, ""))

	assert.Contains(t, buf.String(), "Created "+out+" with 5 sample findings")
	assert.Contains(t, buf.String(), "File contains the following columns: Title, Details, Impact, Likelihood, Exposure, Owner")
	assert.Contains(t, buf.String(), "Data shape: 5 rows x 13 columns")

	data, err := excel.NewDataReader(out).ReadData()
	require.NoError(t, err)
	assert.Len(t, data.Rows, 5)
}

func TestRootCommandUsesConfiguredPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "configured.csv")
	t.Setenv("FINDINGS_FILE", out)
	t.Setenv("LOG_LEVEL", "ERROR")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Created "+out)
	assert.Equal(t, "csv", excel.FileType(out))
	data, err := excel.NewDataReader(out).ReadData()
	require.NoError(t, err)
	assert.Len(t, data.Headers, 13)
}

func TestRootCommandFailsOnUnwritablePath(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--out", filepath.Join(t.TempDir(), "nope", "x.xlsx")})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandRejectsFormatExtensionMismatch(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	out := filepath.Join(t.TempDir(), "x.xlsx")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "csv", "--out", out})
	assert.Error(t, cmd.Execute())
	assert.NoFileExists(t, out)
}
