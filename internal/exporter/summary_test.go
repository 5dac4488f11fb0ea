package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummary_CleanRun(t *testing.T) {
	report := cleanReport()
	summary := BuildSummary("workbook.xlsx", 5, report)

	assert.Contains(t, summary, "ATTESTATION DATA CONSOLIDATION SUMMARY")
	assert.Contains(t, summary, "Source workbook: workbook.xlsx")
	assert.Contains(t, summary, "Sheets processed: 5")
	assert.Contains(t, summary, "institutions in results sheet: 2")
	assert.Contains(t, summary, "indicators found: 2/37")
	assert.Contains(t, summary, "Ki sum valid: true")
	assert.NotContains(t, summary, "Errors:")
	assert.NotContains(t, summary, "Warnings:")
}

func TestBuildSummary_ListsIssues(t *testing.T) {
	report := cleanReport()
	report.IndicatorsMissing = []string{"I5", "I7"}
	report.Errors = []string{"sum of Ki weights (50.00) does not equal expected total 54.0"}
	report.Warnings = []string{"indicators missing from workbook: I5, I7"}

	summary := BuildSummary("workbook.xlsx", 2, report)

	assert.Contains(t, summary, "missing indicators: I5, I7")
	assert.Contains(t, summary, "Errors:\n  - sum of Ki weights")
	assert.Contains(t, summary, "Warnings:\n  - indicators missing")
}

func TestBuildSummary_NilReport(t *testing.T) {
	summary := BuildSummary("workbook.xlsx", 1, nil)

	assert.Contains(t, summary, "Source workbook: workbook.xlsx")
	assert.NotContains(t, summary, "Validation results:")
}
