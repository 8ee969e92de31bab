// Package jsonarray recognizes a JSON array of flat objects and flattens it
// into a single table: the headers are the union of all object keys in
// first-seen order, and each qualifying object becomes one row.
package jsonarray

import (
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/Santiago-vgs/Format-King/model"
)

// TableName is the name given to the single table a JSON array produces.
const TableName = "JSON Data"

// Detect reports whether text is a JSON array of objects: the left-trimmed
// text starts with [, parses as JSON, and the result is a non-empty array
// whose first element is an object. A parse failure is a non-match, never an
// error.
func Detect(text string) bool {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	val, err := oj.ParseString(trimmed)
	if err != nil {
		return false
	}
	arr, ok := val.([]any)
	if !ok || len(arr) == 0 {
		return false
	}
	_, ok = arr[0].(map[string]any)
	return ok
}

// Parse flattens a JSON array of objects into one table. Elements that are
// not objects are skipped. Values map to cells as: null (and missing keys) →
// empty string, nested arrays and objects → their JSON serialization, all
// other values → their plain string form.
func Parse(text string) *model.TableSet {
	set := &model.TableSet{Format: "json"}

	trimmed := strings.TrimLeft(text, " \t\r\n")
	val, err := oj.ParseString(trimmed)
	if err != nil {
		return set
	}
	arr, ok := val.([]any)
	if !ok {
		return set
	}

	headers := scanHeaders(trimmed)

	var rows []model.Row
	for _, elem := range arr {
		obj, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		row := make(model.Row, len(headers))
		for i, h := range headers {
			row[i] = cellValue(obj[h])
		}
		rows = append(rows, row)
	}
	if len(headers) == 0 || len(rows) == 0 {
		return set
	}

	set.Add(model.NewTable(TableName, headers, rows))
	return set
}

// cellValue converts one JSON value to its cell representation.
func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		// Sorted keys keep nested serialization deterministic; Go maps do not
		// remember document order.
		return oj.JSON(val, &oj.Options{Sort: true})
	default:
		return oj.JSON(val)
	}
}

// headerScan collects object keys at the top level of array elements, in
// document order. oj.ParseString returns Go maps, which lose key order, so
// the key sequence is recovered with a token pass over the same text.
type headerScan struct {
	oj.ZeroHandler
	depth int
	seen  map[string]bool
	order []string
}

func (h *headerScan) ObjectStart() { h.depth++ }
func (h *headerScan) ObjectEnd()   { h.depth-- }
func (h *headerScan) ArrayStart()  { h.depth++ }
func (h *headerScan) ArrayEnd()    { h.depth-- }

func (h *headerScan) Key(k string) {
	// depth 2 is directly inside an element of the top-level array
	if h.depth != 2 {
		return
	}
	if !h.seen[k] {
		h.seen[k] = true
		h.order = append(h.order, k)
	}
}

// scanHeaders returns the union of top-level element keys in first-seen
// order.
func scanHeaders(text string) []string {
	h := &headerScan{seen: make(map[string]bool)}
	if err := oj.TokenizeString(text, h); err != nil {
		return nil
	}
	return h.order
}
