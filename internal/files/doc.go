// Package files locates attestation workbooks on disk.
//
// The processor is normally pointed at one workbook explicitly, but when it
// is not, Discovery picks the published workbook out of the data directory:
// the expected file name when present, otherwise the most recent workbook.
package files
