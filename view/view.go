// Package view implements the selection, sorting, and filtering operations
// over the canonical document state. Every operation returns a new
// [model.Document] value; callers thread the returned state forward.
package view

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
	"github.com/Santiago-vgs/Format-King/reconcile"
)

// AllTables selects the reconciled projection of every table in the set.
const AllTables = -1

// Select loads a table-set selection into a fresh document state with no
// active sort or filter. Index AllTables builds the unified projection; a
// valid index loads that table directly; an out-of-range index is a no-op
// returning the current state unchanged.
func Select(current model.Document, set *model.TableSet, index int) model.Document {
	switch {
	case index == AllTables:
		headers, rows := reconcile.AllTables(set)
		return model.NewDocument(headers, rows)
	case index >= 0 && index < set.Len():
		return model.FromTable(set.Tables[index])
	default:
		return current
	}
}

// Sort orders the filtered rows by the given column. Sorting the same column
// again toggles the direction; sorting a new column starts ascending. Only
// the filtered view is reordered; the underlying data keeps input order. An
// out-of-range column is a no-op.
func Sort(doc model.Document, column int) model.Document {
	if column < 0 || column >= len(doc.Headers) {
		return doc
	}

	direction := model.Ascending
	if doc.SortColumn == column && doc.SortDirection == model.Ascending {
		direction = model.Descending
	}

	out := doc
	out.SortColumn = column
	out.SortDirection = direction
	out.Filtered = append([]model.Row(nil), doc.Filtered...)

	sort.SliceStable(out.Filtered, func(i, j int) bool {
		a, b := cellAt(out.Filtered[i], column), cellAt(out.Filtered[j], column)
		if direction == model.Descending {
			return lessCell(b, a)
		}
		return lessCell(a, b)
	})
	return out
}

// Filter re-derives the filtered rows as the subsequence of data containing
// the search term in any cell, case-insensitively. An empty term restores all
// rows. Any active sort is re-applied to the fresh subsequence.
func Filter(doc model.Document, term string) model.Document {
	out := doc
	term = strings.ToLower(strings.TrimSpace(term))

	if term == "" {
		out.Filtered = append([]model.Row(nil), doc.Data...)
	} else {
		out.Filtered = nil
		for _, row := range doc.Data {
			if rowMatches(row, term) {
				out.Filtered = append(out.Filtered, row)
			}
		}
	}

	if out.SortColumn == model.NoSort {
		return out
	}
	// Re-apply the active sort without toggling its direction.
	column, direction := out.SortColumn, out.SortDirection
	sort.SliceStable(out.Filtered, func(i, j int) bool {
		a, b := cellAt(out.Filtered[i], column), cellAt(out.Filtered[j], column)
		if direction == model.Descending {
			return lessCell(b, a)
		}
		return lessCell(a, b)
	})
	return out
}

// rowMatches reports whether any cell of the row contains term
// (case-insensitive, term already lowered).
func rowMatches(row model.Row, term string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), term) {
			return true
		}
	}
	return false
}

// cellAt returns the cell at column, or the empty string when the row is
// short.
func cellAt(row model.Row, column int) string {
	if column >= len(row) {
		return ""
	}
	return row[column]
}

// numericRe pins which cells count as numbers for sorting: an optional sign,
// digits with an optional fraction, and an optional exponent. Inf/NaN
// literals, hex floats, and underscore separators are deliberately excluded.
var numericRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// lessCell orders two cells for an ascending sort. Numeric cells compare
// numerically and sort as a group before non-numeric cells; non-numeric cells
// compare lexically.
func lessCell(a, b string) bool {
	av, aNum := parseNumeric(a)
	bv, bNum := parseNumeric(b)
	switch {
	case aNum && bNum:
		return av < bv
	case aNum:
		return true
	case bNum:
		return false
	default:
		return a < b
	}
}

// parseNumeric parses a cell as a number under the pinned semantics.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numericRe.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
