package domain

// Export base names for the bundle tables. The JSON and CSV exporters derive
// their file names from these, so the visualization layer can rely on them.
const (
	TableResults  = "all_results"
	TableDetails  = "detali"
	TableMedians  = "medians"
	TableDynamics = "dynamika"
)

// Bundle is the consolidated output of one run. A nil table means the source
// sheet was not present in the workbook; that is distinct from a table that is
// present but empty after filtering.
type Bundle struct {
	Results  *Table
	Details  *Table
	Medians  *Table
	Dynamics *Table
}

// NamedTable pairs a bundle table with its export base name.
type NamedTable struct {
	Name  string
	Table *Table
}

// Tables returns the bundle contents in a fixed order, absent entries
// included, so consumers can distinguish "never existed" from "empty".
func (b *Bundle) Tables() []NamedTable {
	return []NamedTable{
		{TableResults, b.Results},
		{TableDetails, b.Details},
		{TableMedians, b.Medians},
		{TableDynamics, b.Dynamics},
	}
}
