package exporter

import (
	"fmt"
	"strings"

	"attestcli/pkg/contracts/domain"
)

// BuildSummary renders the final run report as plain text: source workbook,
// validation verdicts and the accumulated errors and warnings.
func BuildSummary(source string, sheetCount int, report *domain.ValidationReport) string {
	line := strings.Repeat("=", 80)

	var b strings.Builder
	b.WriteString(line + "\n")
	b.WriteString("ATTESTATION DATA CONSOLIDATION SUMMARY\n")
	b.WriteString(line + "\n\n")

	fmt.Fprintf(&b, "Source workbook: %s\n", source)
	fmt.Fprintf(&b, "Sheets processed: %d\n\n", sheetCount)

	if report != nil {
		b.WriteString("Validation results:\n")
		fmt.Fprintf(&b, "  - institutions in results sheet: %d\n", report.TotalInstitutions)
		fmt.Fprintf(&b, "  - rows in indicator sheet: %d\n", report.TotalDovidnyky)
		fmt.Fprintf(&b, "  - indicators found: %d/37\n", len(report.IndicatorsFound))
		fmt.Fprintf(&b, "  - Ki sum valid: %t\n", report.KiSumValid)
		fmt.Fprintf(&b, "  - formula check: %t (%d/%d rows matched)\n",
			report.FormulaValid, report.FormulaMatched, report.FormulaAttempted)

		if len(report.IndicatorsMissing) > 0 {
			fmt.Fprintf(&b, "  - missing indicators: %s\n", strings.Join(report.IndicatorsMissing, ", "))
		}
		if len(report.Errors) > 0 {
			b.WriteString("\nErrors:\n")
			for _, e := range report.Errors {
				fmt.Fprintf(&b, "  - %s\n", e)
			}
		}
		if len(report.Warnings) > 0 {
			b.WriteString("\nWarnings:\n")
			for _, w := range report.Warnings {
				fmt.Fprintf(&b, "  - %s\n", w)
			}
		}
	}

	b.WriteString("\n" + line + "\n")
	return b.String()
}
