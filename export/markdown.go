package export

import (
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
)

// Markdown renders headers and rows as a pipe-delimited Markdown table with a
// header separator row. Newlines inside cells become spaces.
func Markdown(headers []string, rows []model.Row) string {
	var sb strings.Builder

	writeMarkdownRow(&sb, headers)

	for range headers {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for _, row := range rows {
		writeMarkdownRow(&sb, row)
	}
	return sb.String()
}

// MarkdownSet renders every table in the set, separated by blank lines so the
// output re-parses as the same number of tables.
func MarkdownSet(set *model.TableSet) string {
	parts := make([]string, 0, set.Len())
	for _, t := range set.Tables {
		parts = append(parts, Markdown(t.Headers, t.Data))
	}
	return strings.Join(parts, "\n")
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	for _, cell := range cells {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}
