package domain

import (
	"fmt"
	"strings"
)

// Table is an in-memory snapshot of one worksheet: a row of column labels plus
// data rows in original sheet order. Cells hold the raw strings read from the
// workbook; the empty string means the cell was empty or missing.
type Table struct {
	Columns []string
	Rows    [][]string
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Cell returns the value at the given row and column, or the empty string when
// the position is out of range (short rows are common in sheet data).
func (t *Table) Cell(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// FieldNames returns one stable label per column. Empty or duplicate header
// cells get a positional name so every exported record carries the same field
// set regardless of header quality.
func (t *Table) FieldNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.Columns))
	seen := make(map[string]bool, len(t.Columns))
	for i, label := range t.Columns {
		name := strings.TrimSpace(label)
		if name == "" || seen[name] {
			name = fmt.Sprintf("col_%d", i)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

// FindColumn returns the index of the first column whose lower-cased label
// contains the given lower-cased substring, or -1 when no column qualifies.
func (t *Table) FindColumn(substr string) int {
	if t == nil {
		return -1
	}
	needle := strings.ToLower(substr)
	for i, label := range t.Columns {
		if strings.Contains(strings.ToLower(label), needle) {
			return i
		}
	}
	return -1
}
