package model

import "strings"

// Row is one record of cell values. The empty string is the canonical
// "missing" value.
type Row []string

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// IsEmpty reports whether every cell in the row is empty.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if c != "" {
			return false
		}
	}
	return true
}

// Table represents a single parsed table: a name, an ordered header list
// (values are not required to be unique), and data rows.
type Table struct {
	Name    string
	Headers []string
	Data    []Row
}

// NewTable creates a table and normalizes every row to the header width.
func NewTable(name string, headers []string, data []Row) *Table {
	t := &Table{
		Name:    name,
		Headers: headers,
		Data:    make([]Row, 0, len(data)),
	}
	for _, row := range data {
		t.Data = append(t.Data, padRow(row, len(headers)))
	}
	return t
}

// padRow returns row resized to width: short rows are right-padded with empty
// cells, long rows are truncated.
func padRow(row Row, width int) Row {
	out := make(Row, width)
	copy(out, row)
	return out
}

// AppendRow adds a data row, normalized to the header width.
func (t *Table) AppendRow(row Row) {
	t.Data = append(t.Data, padRow(row, len(t.Headers)))
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.Data) }

// ColCount returns the number of columns.
func (t *Table) ColCount() int { return len(t.Headers) }

// GetText returns a tab-separated plain-text rendering, headers first.
func (t *Table) GetText() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Headers, "\t"))
	sb.WriteString("\n")
	for _, row := range t.Data {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// TableSet is the ordered collection of tables produced by one detection and
// parse pass over one input.
type TableSet struct {
	// Format is the name of the input format the classifier matched.
	Format string
	Tables []*Table
}

// Len returns the number of tables in the set.
func (s *TableSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Tables)
}

// Table returns the table at index i, or nil when out of range.
func (s *TableSet) Table(i int) *Table {
	if s == nil || i < 0 || i >= len(s.Tables) {
		return nil
	}
	return s.Tables[i]
}

// Add appends a table to the set.
func (s *TableSet) Add(t *Table) {
	s.Tables = append(s.Tables, t)
}
