package export

import (
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
)

// CSV renders headers and rows as comma-separated text. A cell is wrapped in
// double quotes, with internal quotes doubled, only when it contains a comma,
// a quote, or a newline. Re-parsing the output with a comma delimiter
// reproduces the headers and rows modulo whitespace trim.
func CSV(headers []string, rows []model.Row) string {
	var sb strings.Builder
	writeCSVRow(&sb, headers)
	for _, row := range rows {
		writeCSVRow(&sb, row)
	}
	return sb.String()
}

func writeCSVRow(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(csvCell(cell))
	}
	sb.WriteString("\n")
}

// csvCell quotes a cell when its content would break the row structure.
func csvCell(text string) string {
	if strings.ContainsAny(text, ",\"\n") {
		return "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
	}
	return text
}
