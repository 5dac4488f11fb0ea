// Package dataprocessing implements the consolidation engine for the
// attestation results workbook: header-driven indicator column discovery,
// per-sheet loading with science-direction filtering, schema validation
// against the scoring methodology and the multiplicative formula spot check.
//
// # Architecture
//
// The package is organized around four steps:
//
// 1. Resolver: discovers indicator columns by pattern-matching header cells
// 2. Loader: fetches the known sheets as tables and applies direction filters
// 3. Validator + Sampler: checks the discovered schema and the score formula
// 4. Consolidator: orchestrates the above into one bundle per run
//
// # Usage
//
//	wb, err := workbook.Open("Оголошення результатів.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer wb.Close()
//
//	c := dataprocessing.NewConsolidator(methodology.New(), wb, logger)
//	bundle, err := c.Consolidate(nil)
//	report := c.LastReport()
//
// # Error Handling
//
// Only a missing mandatory sheet or an unreadable workbook aborts a run.
// Schema problems (missing indicators, unverifiable formula, inapplicable
// filters) are accumulated into the ValidationReport as errors or warnings
// and the run always completes, so operators can diagnose discrepancies from
// the exported report.
package dataprocessing
