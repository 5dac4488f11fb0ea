// Package exporter converts a consolidated attestation bundle into the files
// the visualization layer consumes.
//
// Two output families are produced:
//
// CSV: one file per present bundle table, UTF-8 with a byte-order mark so
// spreadsheet tools detect the encoding, header row first, empty cells as
// empty fields.
//
// JSON: methodology.json (the scoring methodology constants), validation.json
// (the run's validation report), one array-of-objects document per present
// bundle table with empty cells normalized to null, and
// stats_by_direction.json (record counts per science direction and
// attestation group).
package exporter
