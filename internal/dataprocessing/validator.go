package dataprocessing

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"attestcli/internal/methodology"
	"attestcli/pkg/contracts/domain"
)

// kiSumTolerance is the absolute tolerance for the weight-sum consistency
// check against the registry's expected total.
const kiSumTolerance = 0.01

// Validate compares the discovered indicator column map against the
// methodology registry, runs the formula sample check on the indicator-bearing
// table and assembles a fresh ValidationReport. The report is complete when
// returned; callers must not mutate it afterwards.
//
// A weight-sum mismatch is a hard error because it means the registry itself
// is internally inconsistent. Missing indicators and a failed formula sample
// are warnings: the pipeline always continues so operators can inspect the
// exported report.
func Validate(reg *methodology.Registry, columns map[string]int, primary, results *domain.Table, logger *slog.Logger) *domain.ValidationReport {
	if logger == nil {
		logger = slog.Default()
	}

	report := &domain.ValidationReport{
		TotalInstitutions: results.RowCount(),
		TotalDovidnyky:    primary.RowCount(),
		IndicatorsFound:   []string{},
		IndicatorsMissing: []string{},
		Errors:            []string{},
		Warnings:          []string{},
	}

	found := make(map[string]bool, len(columns))
	for id := range columns {
		report.IndicatorsFound = append(report.IndicatorsFound, id)
		found[id] = true
	}
	for id := range reg.Indicators {
		if !found[id] {
			report.IndicatorsMissing = append(report.IndicatorsMissing, id)
		}
	}
	sort.Strings(report.IndicatorsFound)
	sort.Strings(report.IndicatorsMissing)

	if len(report.IndicatorsMissing) > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("indicators missing from workbook: %s", strings.Join(report.IndicatorsMissing, ", ")))
		logger.Warn("Indicators missing",
			slog.Int("found", len(report.IndicatorsFound)),
			slog.Int("missing", len(report.IndicatorsMissing)))
	} else {
		logger.Info("All indicators present", slog.Int("count", len(report.IndicatorsFound)))
	}

	kiSum := reg.KiSum()
	if math.Abs(kiSum-reg.TotalKi) < kiSumTolerance {
		report.KiSumValid = true
		logger.Info("Weight sum verified",
			slog.Float64("ki_sum", kiSum),
			slog.Float64("expected", reg.TotalKi))
	} else {
		report.Errors = append(report.Errors,
			fmt.Sprintf("sum of Ki weights (%.2f) does not equal expected total %.1f", kiSum, reg.TotalKi))
		logger.Error("Weight sum mismatch",
			slog.Float64("ki_sum", kiSum),
			slog.Float64("expected", reg.TotalKi))
	}

	if primary != nil {
		sample := SampleFormula(primary)
		report.FormulaValid = sample.Valid
		report.FormulaMatched = sample.Matched
		report.FormulaAttempted = sample.Attempted
		if !sample.Valid {
			report.Warnings = append(report.Warnings, sample.Message)
		}
		logger.Info("Formula sample check",
			slog.Bool("valid", sample.Valid),
			slog.Int("matched", sample.Matched),
			slog.Int("attempted", sample.Attempted))
	} else {
		report.Warnings = append(report.Warnings,
			"indicator sheet not loaded, formula sample check skipped")
	}

	return report
}
