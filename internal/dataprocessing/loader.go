package dataprocessing

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"attestcli/internal/errors"
	"attestcli/internal/methodology"
	"attestcli/pkg/contracts/domain"
)

// Known sheet names of the attestation workbook. The layout is fixed by the
// publishing ministry, so the names are constants rather than discovered.
const (
	SheetDovidnyky = "Довідники"
	SheetResults   = "Результати"
	SheetDetails   = "Деталі 3.0"
	SheetMedians   = "Медіани"
	SheetDynamics  = "Динаміка"
)

const (
	// indicatorLabelRow is the 0-based sheet row carrying the I1..I37 header
	// labels on the indicator-bearing sheet.
	indicatorLabelRow = 1
	// indicatorHeaderSkip is the number of leading rows occupied by the
	// multi-level header region before the column-label row.
	indicatorHeaderSkip = 3
	// headerRegionRows is how many leading rows are fetched for header
	// inspection.
	headerRegionRows = 5
	// directionColumnToken identifies the science-direction column by label.
	directionColumnToken = "напрям"
)

// SheetSource is the workbook capability the loaders consume: an
// already-fetched, sheet-name-addressable table reader.
type SheetSource interface {
	HasSheet(name string) bool
	Rows(name string) ([][]string, error)
	HeadRows(name string, n int) ([][]string, error)
}

// DirectionFilter is a set of science-direction labels a load is restricted
// to. A nil or empty filter keeps every row.
type DirectionFilter map[string]bool

// NewDirectionFilter builds a filter from raw values, each either a direction
// label or a numeric direction code resolved through the registry. Unknown
// codes are kept verbatim so they simply never match.
func NewDirectionFilter(reg *methodology.Registry, values []string) DirectionFilter {
	if len(values) == 0 {
		return nil
	}
	f := make(DirectionFilter, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if code, err := strconv.Atoi(v); err == nil {
			if label, ok := reg.DirectionLabel(code); ok {
				f[label] = true
				continue
			}
		}
		f[v] = true
	}
	if len(f) == 0 {
		return nil
	}
	return f
}

// Match reports whether a direction cell belongs to the filter. Cells holding
// a numeric code are resolved to their label first.
func (f DirectionFilter) Match(cell string, reg *methodology.Registry) bool {
	cell = strings.TrimSpace(cell)
	if f[cell] {
		return true
	}
	if code, err := strconv.Atoi(cell); err == nil {
		if label, ok := reg.DirectionLabel(code); ok {
			return f[label]
		}
	}
	return false
}

// Loader fetches individual sheets from a source workbook as tables. One
// loader serves one consolidation run; warnings raised while loading are
// collected for the run's validation report.
type Loader struct {
	source   SheetSource
	registry *methodology.Registry
	logger   *slog.Logger
	warnings []string
}

// NewLoader creates a loader over the given sheet source.
func NewLoader(source SheetSource, registry *methodology.Registry, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{source: source, registry: registry, logger: logger}
}

// Warnings returns the soft issues recorded while loading, in order.
func (l *Loader) Warnings() []string {
	return l.warnings
}

func (l *Loader) warn(msg string, args ...slog.Attr) {
	l.warnings = append(l.warnings, msg)
	attrs := make([]any, 0, len(args))
	for _, a := range args {
		attrs = append(attrs, a)
	}
	l.logger.Warn(msg, attrs...)
}

// LoadIndicatorSheet loads the indicator-bearing sheet and resolves the
// indicator column map from its header region. The sheet is optional: when
// absent both results are nil and a warning is recorded, leaving the schema
// validation to report every indicator as missing.
func (l *Loader) LoadIndicatorSheet() (*domain.Table, map[string]int, error) {
	if !l.source.HasSheet(SheetDovidnyky) {
		l.warn(fmt.Sprintf("sheet %q not found, indicator validation skipped", SheetDovidnyky))
		return nil, nil, nil
	}

	head, err := l.source.HeadRows(SheetDovidnyky, headerRegionRows)
	if err != nil {
		return nil, nil, errors.NewParsingError("failed to read indicator header region", err)
	}
	var region [][]string
	if len(head) > indicatorLabelRow {
		region = head[indicatorLabelRow:]
	}
	columns := ResolveIndicatorColumns(region)
	l.logger.Info("Indicator columns resolved",
		slog.String("sheet", SheetDovidnyky),
		slog.Int("found", len(columns)))

	rows, err := l.source.Rows(SheetDovidnyky)
	if err != nil {
		return nil, nil, errors.NewParsingError("failed to read indicator sheet", err)
	}
	table := tableFromRows(rows, indicatorHeaderSkip)
	l.logger.Info("Indicator sheet loaded",
		slog.String("sheet", SheetDovidnyky),
		slog.Int("rows", table.RowCount()))
	return table, columns, nil
}

// LoadResults loads the mandatory results sheet, optionally filtered by
// science direction. A missing results sheet fails the run.
func (l *Loader) LoadResults(filter DirectionFilter) (*domain.Table, error) {
	table, err := l.load(SheetResults, filter)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("required sheet %q not found in workbook", SheetResults), nil)
	}
	return table, nil
}

// LoadDetails loads the optional per-indicator details sheet.
func (l *Loader) LoadDetails(filter DirectionFilter) (*domain.Table, error) {
	return l.load(SheetDetails, filter)
}

// LoadMedians loads the optional direction medians sheet.
func (l *Loader) LoadMedians(filter DirectionFilter) (*domain.Table, error) {
	return l.load(SheetMedians, filter)
}

// LoadDynamics loads the optional 2019-2023 time-series sheet.
func (l *Loader) LoadDynamics(filter DirectionFilter) (*domain.Table, error) {
	return l.load(SheetDynamics, filter)
}

// load fetches a plain sheet (column labels on the first row) and applies the
// direction filter. Absent sheets yield a nil table, not an error.
func (l *Loader) load(name string, filter DirectionFilter) (*domain.Table, error) {
	if !l.source.HasSheet(name) {
		l.logger.Info("Optional sheet not present", slog.String("sheet", name))
		return nil, nil
	}
	rows, err := l.source.Rows(name)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q", name), err)
	}
	table := tableFromRows(rows, 0)
	l.logger.Info("Sheet loaded", slog.String("sheet", name), slog.Int("rows", table.RowCount()))
	return l.filterByDirection(name, table, filter), nil
}

// filterByDirection restricts rows to the filter's directions, preserving the
// original row order. When the direction column cannot be recognized the
// table is returned unfiltered with a warning, never an error.
func (l *Loader) filterByDirection(name string, table *domain.Table, filter DirectionFilter) *domain.Table {
	if len(filter) == 0 || table == nil {
		return table
	}
	col := table.FindColumn(directionColumnToken)
	if col < 0 {
		l.warn(fmt.Sprintf("sheet %q has no recognizable direction column, filter not applied", name),
			slog.String("sheet", name))
		return table
	}

	filtered := &domain.Table{Columns: table.Columns}
	for _, row := range table.Rows {
		cell := ""
		if col < len(row) {
			cell = row[col]
		}
		if filter.Match(cell, l.registry) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	l.logger.Info("Direction filter applied",
		slog.String("sheet", name),
		slog.Int("kept", filtered.RowCount()),
		slog.Int("source", table.RowCount()))
	return filtered
}

// tableFromRows shapes raw sheet rows into a table: the row after skip leading
// rows carries the column labels, everything below it is data.
func tableFromRows(rows [][]string, skip int) *domain.Table {
	if len(rows) <= skip {
		return &domain.Table{}
	}
	table := &domain.Table{Columns: rows[skip]}
	if len(rows) > skip+1 {
		table.Rows = rows[skip+1:]
	}
	return table
}
