package findinggen

import (
	"fmt"
	"path/filepath"
	"strings"

	"findingsheet/adapters/excel"
	"findingsheet/domain/finding"
)

// Dataset is the in-memory findings table written by the generator.
//
// Headers follow finding.Columns(); Rows hold one formatted row per record
// in the same order as Records.
type Dataset struct {
	Headers []string
	Rows    [][]string
	Records []finding.Record
}

// SampleRecords returns the five illustrative findings. Every Impact level
// appears at least once.
func SampleRecords() []finding.Record {
	return []finding.Record{
		{
			Title:            "Unpatched SQL Server Vulnerability",
			Details:          "SQL Server 2019 instance has critical vulnerability CVE-2023-1234 that allows remote code execution",
			Impact:           finding.ImpactCritical,
			Likelihood:       finding.LikelihoodLikely,
			Exposure:         finding.ExposureHighly,
			Owner:            "John Smith",
			Domain:           "Database",
			BusinessUnit:     "IT Operations",
			BusinessOwner:    "Jane Doe",
			Asset:            "SQL-PROD-01",
			TechnicalControl: "Database Patching Policy",
			AssignedTo:       "Mike Johnson",
			SLADate:          "12/31/2024",
		},
		{
			Title:            "Weak Password Policy Implementation",
			Details:          "Current password policy allows passwords as short as 6 characters without complexity requirements",
			Impact:           finding.ImpactHigh,
			Likelihood:       finding.LikelihoodPossible,
			Exposure:         finding.ExposureModerately,
			Owner:            "Sarah Wilson",
			Domain:           "Identity Management",
			BusinessUnit:     "Human Resources",
			BusinessOwner:    "Bob Brown",
			Asset:            "Active Directory",
			TechnicalControl: "Password Complexity Policy",
			AssignedTo:       "Lisa Chen",
			SLADate:          "01/15/2025",
		},
		{
			Title:            "Missing Firewall Rules for DMZ",
			Details:          "DMZ servers are accessible from internal network without proper segmentation",
			Impact:           finding.ImpactMedium,
			Likelihood:       finding.LikelihoodUnlikely,
			Exposure:         finding.ExposureExposed,
			Owner:            "Tom Anderson",
			Domain:           "Network Security",
			BusinessUnit:     "IT Infrastructure",
			BusinessOwner:    "Carol White",
			Asset:            "DMZ-Web-01",
			TechnicalControl: "Network Segmentation Policy",
			AssignedTo:       "David Miller",
			SLADate:          "02/28/2025",
		},
		{
			Title:            "Outdated Antivirus Signatures",
			Details:          "Workstation antivirus signatures are 30+ days old due to update service issues",
			Impact:           finding.ImpactLow,
			Likelihood:       finding.LikelihoodPossible,
			Exposure:         finding.ExposureSlightly,
			Owner:            "Emily Davis",
			Domain:           "Endpoint Security",
			BusinessUnit:     "IT Operations",
			BusinessOwner:    "Frank Garcia",
			Asset:            "Workstation Fleet",
			TechnicalControl: "Endpoint Protection Policy",
			AssignedTo:       "Alex Turner",
			SLADate:          "11/30/2024",
		},
		{
			Title:            "Excessive Administrative Privileges",
			Details:          "Multiple users have unnecessary domain administrator rights",
			Impact:           finding.ImpactHigh,
			Likelihood:       finding.LikelihoodLikely,
			Exposure:         finding.ExposureModerately,
			Owner:            "Robert Lee",
			Domain:           "Identity Management",
			BusinessUnit:     "IT Security",
			BusinessOwner:    "Helen Rodriguez",
			Asset:            "Active Directory",
			TechnicalControl: "Privileged Access Management",
			AssignedTo:       "Jennifer Kim",
			SLADate:          "01/10/2025",
		},
	}
}

// Generate builds the sample dataset
func Generate() *Dataset {
	return FromRecords(SampleRecords())
}

// FromRecords lays records out as a findings table
func FromRecords(records []finding.Record) *Dataset {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Values()
	}
	return &Dataset{
		Headers: finding.Columns(),
		Rows:    rows,
		Records: records,
	}
}

// Format names an output format
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat resolves an explicit format name, falling back to the output
// path's extension and then to xlsx. A name that contradicts a spreadsheet
// extension on path is rejected.
func ParseFormat(name, path string) (Format, error) {
	inferred := Format(excel.FileType(path))

	var format Format
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xlsx":
		format = FormatXLSX
	case "csv":
		format = FormatCSV
	case "":
		if inferred != "" {
			return inferred, nil
		}
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
	if inferred != "" && inferred != format {
		return "", fmt.Errorf("format %s does not match %s", format, filepath.Base(path))
	}
	return format, nil
}

// Write serializes ds to path in the given format, creating or overwriting
// the file
func Write(path string, format Format, ds *Dataset) error {
	switch format {
	case FormatCSV:
		return excel.WriteCSV(path, ds.Headers, ds.Rows)
	case FormatXLSX:
		return excel.WriteXLSX(path, ds.Headers, ds.Rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
