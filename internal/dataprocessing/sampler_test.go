package dataprocessing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attestcli/pkg/contracts/domain"
)

// formulaColumns is a header set every formula role resolves against.
var formulaColumns = []string{
	"Назва ЗВО",
	"Класифікаційна оцінка (К)",
	"Експертна оцінка (Е)",
	"Регіональний коєфіцієнт (РПі)",
	"Коефіцієнт руйнувань (КРІ)",
	"Атестаційна оцінка (А)",
}

// formulaRow renders a data row where the recorded final score either matches
// the recomputed (k+e)*rpi*kri or is deliberately off.
func formulaRow(k, e, rpi, kri float64, match bool) []string {
	actual := (k + e) * rpi * kri
	if !match {
		actual *= 1.5
	}
	return []string{
		"ЗВО",
		fmt.Sprintf("%g", k),
		fmt.Sprintf("%g", e),
		fmt.Sprintf("%g", rpi),
		fmt.Sprintf("%g", kri),
		fmt.Sprintf("%g", actual),
	}
}

func TestSampleFormula_AllRowsMatch(t *testing.T) {
	table := &domain.Table{Columns: formulaColumns}
	for i := 0; i < 5; i++ {
		table.Rows = append(table.Rows, formulaRow(40+float64(i), 30, 1.0, 0.95, true))
	}

	sample := SampleFormula(table)

	assert.True(t, sample.Valid)
	assert.Equal(t, 5, sample.Attempted)
	assert.Equal(t, 5, sample.Matched)
}

func TestSampleFormula_BelowThreshold(t *testing.T) {
	table := &domain.Table{Columns: formulaColumns}
	for i := 0; i < 3; i++ {
		table.Rows = append(table.Rows, formulaRow(40, 30, 1.0, 1.0, true))
	}
	for i := 0; i < 2; i++ {
		table.Rows = append(table.Rows, formulaRow(40, 30, 1.0, 1.0, false))
	}

	sample := SampleFormula(table)

	// 3/5 = 60% < 80%
	assert.False(t, sample.Valid)
	assert.Equal(t, 5, sample.Attempted)
	assert.Equal(t, 3, sample.Matched)
}

func TestSampleFormula_OnlyLeadingRowsSampled(t *testing.T) {
	table := &domain.Table{Columns: formulaColumns}
	for i := 0; i < 5; i++ {
		table.Rows = append(table.Rows, formulaRow(50, 25, 1.0, 1.0, true))
	}
	// Rows beyond the sample never influence the verdict.
	for i := 0; i < 10; i++ {
		table.Rows = append(table.Rows, formulaRow(50, 25, 1.0, 1.0, false))
	}

	sample := SampleFormula(table)

	assert.True(t, sample.Valid)
	assert.Equal(t, 5, sample.Attempted)
	assert.Equal(t, 5, sample.Matched)
}

func TestSampleFormula_CoercionFailureStaysInDenominator(t *testing.T) {
	table := &domain.Table{Columns: formulaColumns}
	table.Rows = append(table.Rows, formulaRow(40, 30, 1.0, 1.0, true))
	table.Rows = append(table.Rows, formulaRow(40, 30, 1.0, 1.0, true))
	table.Rows = append(table.Rows, formulaRow(40, 30, 1.0, 1.0, true))
	// Non-numeric expert score: skipped, but still counted in the sample size.
	table.Rows = append(table.Rows, []string{"ЗВО", "40", "н/д", "1.0", "1.0", "70"})
	table.Rows = append(table.Rows, []string{"ЗВО", "40", "", "1.0", "1.0", "70"})

	sample := SampleFormula(table)

	// 3 matched of 5 sampled.
	assert.False(t, sample.Valid)
	assert.Equal(t, 5, sample.Attempted)
	assert.Equal(t, 3, sample.Matched)
}

func TestSampleFormula_ShortTable(t *testing.T) {
	table := &domain.Table{Columns: formulaColumns}
	table.Rows = append(table.Rows, formulaRow(40, 30, 1.05, 0.9, true))

	sample := SampleFormula(table)

	assert.True(t, sample.Valid)
	assert.Equal(t, 1, sample.Attempted)
	assert.Equal(t, 1, sample.Matched)
}

func TestSampleFormula_MissingRoleColumn(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Назва ЗВО", "Класифікаційна оцінка", "Експертна оцінка"},
		Rows:    [][]string{{"ЗВО", "40", "30"}},
	}

	sample := SampleFormula(table)

	assert.False(t, sample.Valid)
	assert.Zero(t, sample.Attempted)
	assert.Contains(t, sample.Message, "skipped")
}

func TestSampleFormula_DestructionLabelVariants(t *testing.T) {
	for _, label := range []string{"Коефіцієнт руйнувань", "Коефіцієнт руйнування"} {
		t.Run(label, func(t *testing.T) {
			cols := make([]string, len(formulaColumns))
			copy(cols, formulaColumns)
			cols[4] = label
			table := &domain.Table{Columns: cols}
			table.Rows = append(table.Rows, formulaRow(40, 30, 1.0, 0.9, true))

			sample := SampleFormula(table)
			require.Equal(t, 1, sample.Matched)
		})
	}
}

func TestSampleFormula_FirstQualifyingColumnWins(t *testing.T) {
	cols := make([]string, len(formulaColumns))
	copy(cols, formulaColumns)
	// A second final-score column after the first one must be ignored.
	cols = append(cols, "Атестаційна оцінка (копія)")

	table := &domain.Table{Columns: cols}
	row := formulaRow(40, 30, 1.0, 1.0, true)
	row = append(row, "999")
	table.Rows = append(table.Rows, row)

	sample := SampleFormula(table)
	assert.Equal(t, 1, sample.Matched)
}

func TestSampleFormula_RelativeToleranceNearZero(t *testing.T) {
	table := &domain.Table{Columns: formulaColumns}
	// Recorded score zero with non-zero computed value: |0.5-0|/0.01 >= 0.001.
	table.Rows = append(table.Rows, []string{"ЗВО", "0.25", "0.25", "1.0", "1.0", "0"})

	sample := SampleFormula(table)
	assert.Equal(t, 0, sample.Matched)
	assert.Equal(t, 1, sample.Attempted)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{" 81 ", 81, true},
		{"0,95", 0.95, true},
		{"", 0, false},
		{"н/д", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
