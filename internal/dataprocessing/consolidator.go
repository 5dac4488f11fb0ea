package dataprocessing

import (
	"log/slog"

	"attestcli/internal/methodology"
	"attestcli/pkg/contracts/domain"
)

// Consolidator orchestrates the sheet loaders, the header resolver, the schema
// validator and the formula sampler, and assembles all loaded tables into one
// bundle. A consolidator serves sequential runs over one workbook; the report
// of the most recent run is retained for the export step. Nothing here is safe
// for concurrent use - callers processing several workbooks at once construct
// one consolidator per workbook.
type Consolidator struct {
	registry *methodology.Registry
	source   SheetSource
	logger   *slog.Logger

	lastReport *domain.ValidationReport
}

// NewConsolidator creates a consolidator over the given sheet source.
func NewConsolidator(registry *methodology.Registry, source SheetSource, logger *slog.Logger) *Consolidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consolidator{registry: registry, source: source, logger: logger}
}

// LastReport returns the validation report of the most recent Consolidate
// call, or nil before the first run.
func (c *Consolidator) LastReport() *domain.ValidationReport {
	return c.lastReport
}

// Consolidate loads every known sheet, validates the discovered schema against
// the methodology and returns the consolidated bundle. The results sheet is
// mandatory and its absence fails the whole run; the remaining sheets stay in
// the bundle as explicit "no data" entries when missing so downstream
// consumers can tell "never existed" from "empty after filtering".
func (c *Consolidator) Consolidate(filter DirectionFilter) (*domain.Bundle, error) {
	loader := NewLoader(c.source, c.registry, c.logger)

	primary, columns, err := loader.LoadIndicatorSheet()
	if err != nil {
		return nil, err
	}

	results, err := loader.LoadResults(filter)
	if err != nil {
		return nil, err
	}
	details, err := loader.LoadDetails(filter)
	if err != nil {
		return nil, err
	}
	medians, err := loader.LoadMedians(filter)
	if err != nil {
		return nil, err
	}
	dynamics, err := loader.LoadDynamics(filter)
	if err != nil {
		return nil, err
	}

	report := Validate(c.registry, columns, primary, results, c.logger)
	report.Warnings = append(loader.Warnings(), report.Warnings...)
	c.lastReport = report

	bundle := &domain.Bundle{
		Results:  results,
		Details:  details,
		Medians:  medians,
		Dynamics: dynamics,
	}

	c.logger.Info("Consolidation complete",
		slog.Int("results_rows", results.RowCount()),
		slog.Bool("details_present", details != nil),
		slog.Bool("medians_present", medians != nil),
		slog.Bool("dynamics_present", dynamics != nil),
		slog.Int("errors", len(report.Errors)),
		slog.Int("warnings", len(report.Warnings)))

	return bundle, nil
}
