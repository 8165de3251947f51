package xmlflat

// Row is one flattened record: tag name → trimmed text content. Derived
// columns live alongside their raw counterparts; a raw value is never
// replaced. A derived numeric that failed to parse is an empty cell.
type Row map[string]string

// Table is an ordered set of rows with an ordered column list. Rows may
// leave columns unset; readers treat absent as empty string.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table declares the column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column if it is not already declared.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Append concatenates another table's rows, unioning columns in first-seen
// order. Used to stack per-file sections in upload order.
func (t *Table) Append(other Table) {
	for _, c := range other.Columns {
		t.AddColumn(c)
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// Get returns the cell value, with absent treated as empty string.
func (r Row) Get(column string) string {
	return r[column]
}
