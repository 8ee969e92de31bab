// Package reconcile merges the differing schemas of a table set into one
// header list and one row projection, powering the "all tables" view.
package reconcile

import (
	"github.com/Santiago-vgs/Format-King/model"
)

// SourceColumn is the synthetic header prepended to the unified view; it
// holds the name of the table each row came from.
const SourceColumn = "Table"

// CommonHeaders computes the shared header list of a table set. When every
// table carries an identical header list (same length, same values in the
// same positions) that list is returned verbatim; otherwise the union of all
// headers is taken in first-seen order.
func CommonHeaders(tables []*model.Table) []string {
	if len(tables) == 0 {
		return nil
	}

	identical := true
	first := tables[0].Headers
	for _, t := range tables[1:] {
		if !sameHeaders(first, t.Headers) {
			identical = false
			break
		}
	}
	if identical {
		return first
	}

	var union []string
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, h := range t.Headers {
			if !seen[h] {
				seen[h] = true
				union = append(union, h)
			}
		}
	}
	return union
}

// PadRow projects a row from its source table's header layout onto the common
// header list. Every source cell lands at the position of its header name in
// the common list; cells whose header is absent from the common list, or
// whose index exceeds the row's length, are dropped. All unmatched positions
// are empty strings.
func PadRow(row model.Row, sourceHeaders, commonHeaders []string) model.Row {
	out := make(model.Row, len(commonHeaders))

	pos := make(map[string]int, len(commonHeaders))
	for i, h := range commonHeaders {
		// keep the first occurrence of a duplicated header name
		if _, ok := pos[h]; !ok {
			pos[h] = i
		}
	}

	for i, h := range sourceHeaders {
		if i >= len(row) {
			break
		}
		if target, ok := pos[h]; ok {
			out[target] = row[i]
		}
	}
	return out
}

// AllTables builds the unified "all tables" projection: the common headers
// prefixed with the synthetic source column, and one row per (table, row)
// pair with the source table's name in front.
func AllTables(set *model.TableSet) ([]string, []model.Row) {
	common := CommonHeaders(set.Tables)

	headers := append([]string{SourceColumn}, common...)
	var rows []model.Row
	for _, t := range set.Tables {
		for _, row := range t.Data {
			padded := PadRow(row, t.Headers, common)
			rows = append(rows, append(model.Row{t.Name}, padded...))
		}
	}
	return headers, rows
}

// sameHeaders reports whether a and b are identical in length, order, and
// values.
func sameHeaders(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
