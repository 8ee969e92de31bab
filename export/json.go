package export

import (
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/Santiago-vgs/Format-King/model"
)

// JSON renders headers and rows as a pretty-printed array of objects mapping
// header to cell, with two-space indentation. Keys follow header order; when
// headers contain duplicate names, the later occurrence's value overwrites
// the earlier one while the key keeps its first position.
func JSON(headers []string, rows []model.Row) string {
	keys, positions := uniqueKeys(headers)

	var sb strings.Builder
	sb.WriteString("[")
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("\n  {")
		for j, key := range keys {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString("\n    ")
			sb.WriteString(oj.JSON(key))
			sb.WriteString(": ")
			sb.WriteString(oj.JSON(cellForKey(row, positions[key])))
		}
		sb.WriteString("\n  }")
	}
	if len(rows) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("]")
	return sb.String()
}

// uniqueKeys returns the headers deduplicated in first-seen order, plus the
// last header position carrying each name.
func uniqueKeys(headers []string) ([]string, map[string]int) {
	var keys []string
	positions := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := positions[h]; !ok {
			keys = append(keys, h)
		}
		positions[h] = i
	}
	return keys, positions
}

func cellForKey(row model.Row, pos int) string {
	if pos >= len(row) {
		return ""
	}
	return row[pos]
}
