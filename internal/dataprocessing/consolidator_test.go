package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attestcli/internal/methodology"
)

// indicatorSheet builds a minimal Довідники sheet carrying the formula
// columns and the given indicator labels on the header region row.
func indicatorSheet(indicators ...string) [][]string {
	labelRow := make([]string, len(formulaColumns)+len(indicators))
	for i, id := range indicators {
		labelRow[len(formulaColumns)+i] = id
	}
	columnRow := make([]string, len(formulaColumns)+len(indicators))
	copy(columnRow, formulaColumns)
	for i := range indicators {
		columnRow[len(formulaColumns)+i] = "Показник " + indicators[i]
	}
	dataRow := formulaRow(40, 30, 1.0, 1.0, true)
	for range indicators {
		dataRow = append(dataRow, "1")
	}
	return [][]string{
		make([]string, len(columnRow)), // top-level header
		labelRow,
		make([]string, len(columnRow)), // merged header filler
		columnRow,
		dataRow,
	}
}

func TestConsolidate_FullWorkbook(t *testing.T) {
	src := &fakeSource{sheets: map[string][][]string{
		SheetDovidnyky: indicatorSheet("I1", "I2"),
		SheetResults:   resultsSheet(),
		SheetDetails: {
			{"Назва ЗВО", "Науковий напрям", "I1"},
			{"ЗВО 1", "Суспільний", "4"},
			{"ЗВО 2", "Біомедичний", "2"},
		},
		SheetDynamics: {
			{"Назва ЗВО", "2019"},
			{"ЗВО 1", "10"},
		},
	}}
	c := NewConsolidator(methodology.New(), src, discard())

	bundle, err := c.Consolidate(nil)
	require.NoError(t, err)

	assert.Equal(t, 3, bundle.Results.RowCount())
	assert.Equal(t, 2, bundle.Details.RowCount())
	assert.Nil(t, bundle.Medians, "absent sheet stays an explicit no-data entry")
	assert.Equal(t, 1, bundle.Dynamics.RowCount())

	report := c.LastReport()
	require.NotNil(t, report)
	assert.Equal(t, 3, report.TotalInstitutions)
	assert.Equal(t, 1, report.TotalDovidnyky)
	assert.Equal(t, []string{"I1", "I2"}, report.IndicatorsFound)
	assert.Len(t, report.IndicatorsMissing, 35)
	assert.True(t, report.KiSumValid)
	assert.True(t, report.FormulaValid)
	assert.False(t, report.HasErrors())
}

func TestConsolidate_FilterAppliedToBundleTables(t *testing.T) {
	reg := methodology.New()
	src := &fakeSource{sheets: map[string][][]string{
		SheetResults: resultsSheet(),
		SheetDetails: {
			{"Назва ЗВО", "Науковий напрям"},
			{"ЗВО 1", "Суспільний"},
			{"ЗВО 2", "Біомедичний"},
			{"ЗВО 3", "Суспільний"},
		},
	}}
	c := NewConsolidator(reg, src, discard())

	bundle, err := c.Consolidate(NewDirectionFilter(reg, []string{"Суспільний"}))
	require.NoError(t, err)

	assert.Equal(t, 2, bundle.Results.RowCount())
	assert.Equal(t, 2, bundle.Details.RowCount())
	assert.Equal(t, "ЗВО 1", bundle.Results.Cell(0, 0))
	assert.Equal(t, "ЗВО 3", bundle.Results.Cell(1, 0))
}

func TestConsolidate_MissingResultsSheetFailsRun(t *testing.T) {
	src := &fakeSource{sheets: map[string][][]string{
		SheetDovidnyky: indicatorSheet("I1"),
	}}
	c := NewConsolidator(methodology.New(), src, discard())

	_, err := c.Consolidate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), SheetResults)
	assert.Nil(t, c.LastReport())
}

func TestConsolidate_ResultsOnlyWorkbook(t *testing.T) {
	src := &fakeSource{sheets: map[string][][]string{
		SheetResults: resultsSheet(),
	}}
	c := NewConsolidator(methodology.New(), src, discard())

	bundle, err := c.Consolidate(nil)
	require.NoError(t, err)

	assert.NotNil(t, bundle.Results)
	assert.Nil(t, bundle.Details)
	assert.Nil(t, bundle.Medians)
	assert.Nil(t, bundle.Dynamics)

	report := c.LastReport()
	assert.Len(t, report.IndicatorsMissing, 37)
	assert.Zero(t, report.FormulaAttempted)
	// Loader warning about the missing indicator sheet comes first.
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], SheetDovidnyky)
}

func TestConsolidate_LastReportReflectsMostRecentRun(t *testing.T) {
	reg := methodology.New()
	src := &fakeSource{sheets: map[string][][]string{
		SheetResults: resultsSheet(),
	}}
	c := NewConsolidator(reg, src, discard())

	_, err := c.Consolidate(nil)
	require.NoError(t, err)
	first := c.LastReport()
	assert.Equal(t, 3, first.TotalInstitutions)

	_, err = c.Consolidate(NewDirectionFilter(reg, []string{"Біомедичний"}))
	require.NoError(t, err)
	second := c.LastReport()
	assert.NotSame(t, first, second)
	assert.Equal(t, 1, second.TotalInstitutions)
}
