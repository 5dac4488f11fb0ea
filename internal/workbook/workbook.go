package workbook

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an open xlsx file behind the small sheet-reading surface the
// consolidation engine consumes: list sheets, read a whole sheet, read only
// the first rows of a sheet for cheap header inspection.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open opens the workbook at the given path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{f: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Path returns the file path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns all sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// HasSheet reports whether a sheet with the given name exists.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// Rows reads the entire named sheet as raw string rows.
func (w *Workbook) Rows(name string) ([][]string, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	slog.Debug("Sheet read", slog.String("sheet", name), slog.Int("rows", len(rows)))
	return rows, nil
}

// HeadRows reads at most n leading rows of the named sheet without loading
// the whole sheet.
func (w *Workbook) HeadRows(name string, n int) ([][]string, error) {
	iter, err := w.f.Rows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %q: %w", name, err)
	}
	defer iter.Close()

	var rows [][]string
	for len(rows) < n && iter.Next() {
		row, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d of sheet %q: %w", len(rows)+1, name, err)
		}
		rows = append(rows, row)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %q: %w", name, err)
	}
	return rows, nil
}
