package export

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Santiago-vgs/Format-King/model"
)

// Text renders headers and rows as an ASCII box-drawn table. Column widths
// are display widths, not byte counts, so East Asian wide characters stay
// aligned. The output round-trips through the box-table parser.
func Text(headers []string, rows []model.Row) string {
	widths := columnWidths(headers, rows)

	var sb strings.Builder
	writeBorder(&sb, widths)
	writeTextRow(&sb, headers, widths)
	writeBorder(&sb, widths)
	for _, row := range rows {
		writeTextRow(&sb, row, widths)
	}
	writeBorder(&sb, widths)
	return sb.String()
}

// TextSet renders every table in the set, each preceded by a TABLE: header
// line so the multi-table structure survives a round trip.
func TextSet(set *model.TableSet) string {
	var sb strings.Builder
	for i, t := range set.Tables {
		if i > 0 {
			sb.WriteString("\n")
		}
		if set.Len() > 1 {
			sb.WriteString("TABLE: " + t.Name + "\n")
			sb.WriteString(strings.Repeat("=", runewidth.StringWidth("TABLE: "+t.Name)) + "\n")
		}
		sb.WriteString(Text(t.Headers, t.Data))
	}
	return sb.String()
}

// columnWidths returns the widest display width of each column.
func columnWidths(headers []string, rows []model.Row) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeBorder(sb *strings.Builder, widths []int) {
	for _, w := range widths {
		sb.WriteString("+")
		sb.WriteString(strings.Repeat("-", w+2))
	}
	sb.WriteString("+\n")
}

func writeTextRow(sb *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString("| ")
		sb.WriteString(runewidth.FillRight(cell, w))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}
