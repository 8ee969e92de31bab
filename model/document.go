package model

// SortDirection is the direction of an active column sort.
type SortDirection int

const (
	// Ascending sorts smallest first.
	Ascending SortDirection = iota
	// Descending sorts largest first.
	Descending
)

// String returns the string representation of the direction.
func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// NoSort is the SortColumn value of a document with no active sort.
const NoSort = -1

// Document is the canonical document state: the one headers/data/filteredData
// snapshot that rendering and export operations consume. Filtered is always an
// order-preserving subsequence of Data; sorting reorders Filtered only, never
// Data.
type Document struct {
	Headers []string
	Data    []Row

	// Filtered is the subset of Data matching the active search term, in the
	// active sort order.
	Filtered []Row

	SortColumn    int
	SortDirection SortDirection
}

// NewDocument builds a fresh document state over headers and data. No filter
// and no sort are active: Filtered holds every data row in input order.
func NewDocument(headers []string, data []Row) Document {
	return Document{
		Headers:    headers,
		Data:       data,
		Filtered:   append([]Row(nil), data...),
		SortColumn: NoSort,
	}
}

// FromTable builds a document state from a single table.
func FromTable(t *Table) Document {
	return NewDocument(t.Headers, t.Data)
}
