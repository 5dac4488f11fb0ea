package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"attestcli/pkg/contracts/domain"
)

// Formula check constants. The attestation score of an institution is
// A = (K + E) * RPI * KRI, where K is the classification score, E the expert
// score, RPI the regional coefficient and KRI the destruction coefficient.
const (
	formulaSampleSize     = 5
	formulaRelTolerance   = 0.001
	formulaMatchThreshold = 0.8
	// formulaMinDenominator guards the relative comparison against recorded
	// scores at or near zero.
	formulaMinDenominator = 0.01
)

// formulaRole describes how one of the five formula columns is recognized:
// a lower-cased label qualifies when every token group contributes at least
// one matching substring.
type formulaRole struct {
	name   string
	tokens [][]string
}

// formulaRoles lists the five roles in fixed resolution order. The token sets
// follow the published workbook's header wording, including its misspelling
// of the regional coefficient label.
var formulaRoles = []formulaRole{
	{name: "classification", tokens: [][]string{{"класифікаційна"}, {"оцінка"}}},
	{name: "expert", tokens: [][]string{{"експертна"}, {"оцінка"}}},
	{name: "regional", tokens: [][]string{{"регіональний"}, {"коєфіц"}}},
	{name: "destruction", tokens: [][]string{{"руйнувань", "руйнування"}}},
	{name: "final", tokens: [][]string{{"атестаційна"}, {"оцінка"}}},
}

// matchesRole reports whether a column label qualifies for the role.
func matchesRole(label string, role formulaRole) bool {
	label = strings.ToLower(label)
	for _, group := range role.tokens {
		found := false
		for _, token := range group {
			if strings.Contains(label, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// resolveFormulaColumns maps each role to the first qualifying column in
// table order. The boolean is false when any role has no qualifying column.
func resolveFormulaColumns(table *domain.Table) (map[string]int, bool) {
	columns := make(map[string]int, len(formulaRoles))
	for _, role := range formulaRoles {
		idx := -1
		for i, label := range table.Columns {
			if matchesRole(label, role) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, false
		}
		columns[role.name] = idx
	}
	return columns, true
}

// SampleFormula spot-checks the attestation formula on the leading
// min(formulaSampleSize, rows) rows of the indicator-bearing table. Rows whose
// cells fail numeric coercion are skipped silently but still count toward the
// verdict denominator. A failed check is a warning condition, never fatal.
func SampleFormula(table *domain.Table) domain.FormulaSample {
	columns, ok := resolveFormulaColumns(table)
	if !ok {
		return domain.FormulaSample{
			Message: "could not locate all five formula columns, sample check skipped",
		}
	}

	attempted := table.RowCount()
	if attempted > formulaSampleSize {
		attempted = formulaSampleSize
	}

	matched := 0
	for i := 0; i < attempted; i++ {
		k, okK := parseNumber(table.Cell(i, columns["classification"]))
		e, okE := parseNumber(table.Cell(i, columns["expert"]))
		rpi, okR := parseNumber(table.Cell(i, columns["regional"]))
		kri, okD := parseNumber(table.Cell(i, columns["destruction"]))
		actual, okA := parseNumber(table.Cell(i, columns["final"]))
		if !okK || !okE || !okR || !okD || !okA {
			continue
		}

		calculated := (k + e) * rpi * kri
		if math.Abs(calculated-actual)/math.Max(actual, formulaMinDenominator) < formulaRelTolerance {
			matched++
		}
	}

	sample := domain.FormulaSample{
		Attempted: attempted,
		Matched:   matched,
		Valid:     attempted > 0 && float64(matched) >= formulaMatchThreshold*float64(attempted),
	}
	if sample.Valid {
		sample.Message = fmt.Sprintf("formula verified: %d/%d sampled rows matched", matched, attempted)
	} else {
		sample.Message = fmt.Sprintf("formula not verified: only %d/%d sampled rows matched", matched, attempted)
	}
	return sample
}

// parseNumber coerces a cell to a float. Cells using a decimal comma are
// accepted alongside the canonical dot form.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return v, true
	}
	return 0, false
}
