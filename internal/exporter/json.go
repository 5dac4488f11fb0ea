package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"attestcli/internal/errors"
	"attestcli/internal/methodology"
	"attestcli/pkg/contracts/domain"
)

// Exporter writes the consolidated bundle, the validation report and the
// methodology constants into one output directory.
type Exporter struct {
	outDir string
	logger *slog.Logger
	csv    *CSVWriter
}

// New creates an exporter targeting the given output directory.
func New(outDir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		outDir: outDir,
		logger: logger,
		csv:    NewCSVWriter(logger),
	}
}

// Export writes every output file for one consolidation run: methodology.json,
// validation.json, one JSON document and one CSV per present bundle table, and
// stats_by_direction.json. Absent bundle tables produce no files. Any write
// failure is fatal for the run.
func (e *Exporter) Export(reg *methodology.Registry, bundle *domain.Bundle, report *domain.ValidationReport) error {
	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	if err := e.writeJSON("methodology.json", methodologyDoc(reg)); err != nil {
		return err
	}
	if err := e.writeJSON("validation.json", report); err != nil {
		return err
	}

	for _, nt := range bundle.Tables() {
		if nt.Table == nil {
			e.logger.Info("Skipping absent table", slog.String("table", nt.Name))
			continue
		}
		if err := e.writeJSON(nt.Name+".json", TableRecords(nt.Table)); err != nil {
			return err
		}
		csvPath := filepath.Join(e.outDir, nt.Name+".csv")
		if err := e.csv.WriteTable(csvPath, nt.Table); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write %s.csv", nt.Name), err)
		}
	}

	stats := BuildDirectionStats(bundle.Results, reg)
	if err := e.writeJSON("stats_by_direction.json", stats); err != nil {
		return err
	}

	e.logger.Info("Export complete", slog.String("output_dir", e.outDir))
	return nil
}

// WriteSummary writes the human-readable run summary next to the JSON outputs.
func (e *Exporter) WriteSummary(summary string) error {
	path := filepath.Join(e.outDir, "summary.txt")
	if err := os.WriteFile(path, []byte(summary), 0644); err != nil {
		return errors.NewStorageError("failed to write summary.txt", err)
	}
	return nil
}

func (e *Exporter) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to encode %s", name), err)
	}
	path := filepath.Join(e.outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write %s", name), err)
	}
	e.logger.Info("Wrote JSON document", slog.String("file", name))
	return nil
}

// MethodologyDoc is the serialized form of the methodology registry.
type MethodologyDoc struct {
	TotalKi           float64                      `json:"total_ki"`
	Indicators        map[string]float64           `json:"indicators"`
	Blocks            map[string][]string          `json:"blocks"`
	ScienceDirections map[int]string               `json:"science_directions"`
	AttestationGroups map[string]methodology.Group `json:"attestation_groups"`
	IndicatorsCount   int                          `json:"indicators_count"`
	BlocksCount       int                          `json:"blocks_count"`
}

func methodologyDoc(reg *methodology.Registry) MethodologyDoc {
	blocks := make(map[string][]string, len(reg.Blocks))
	for _, b := range reg.Blocks {
		blocks[b.Name] = b.Indicators
	}
	return MethodologyDoc{
		TotalKi:           reg.TotalKi,
		Indicators:        reg.Indicators,
		Blocks:            blocks,
		ScienceDirections: reg.Directions,
		AttestationGroups: reg.Groups,
		IndicatorsCount:   len(reg.Indicators),
		BlocksCount:       len(reg.Blocks),
	}
}

// TableRecords converts a table into the array-of-objects record form used by
// the JSON documents. Empty cells become explicit nulls, numeric-looking cells
// become numbers, everything else stays a string.
func TableRecords(t *domain.Table) []map[string]interface{} {
	fields := t.FieldNames()
	records := make([]map[string]interface{}, 0, t.RowCount())
	for i := range t.Rows {
		rec := make(map[string]interface{}, len(fields))
		for j, name := range fields {
			rec[name] = cellValue(t.Cell(i, j))
		}
		records = append(records, rec)
	}
	return records
}

func cellValue(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
