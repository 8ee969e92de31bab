package export

import (
	"html"
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
)

// Inline styles travel with the markup, so pasted tables keep their look in
// rich-text targets that strip stylesheets.
const (
	tableStyle   = "border-collapse:collapse;font-family:sans-serif;font-size:13px;margin-bottom:1em"
	captionStyle = "caption-side:top;text-align:left;font-weight:bold;padding:4px 0"
	headerStyle  = "border:1px solid #999;background:#f0f0f0;padding:4px 8px;text-align:left"
	cellStyle    = "border:1px solid #999;padding:4px 8px"
)

// RichHTML renders a whole table set as sequential titled HTML tables,
// suitable for rich-text paste targets.
func RichHTML(set *model.TableSet) string {
	var sb strings.Builder
	for _, t := range set.Tables {
		writeTable(&sb, t, set.Len() > 1)
	}
	return sb.String()
}

// RichHTMLView renders a single headers/rows view (such as the unified "all
// tables" projection) as one untitled HTML table.
func RichHTMLView(headers []string, rows []model.Row) string {
	var sb strings.Builder
	writeTable(&sb, &model.Table{Headers: headers, Data: rows}, false)
	return sb.String()
}

func writeTable(sb *strings.Builder, t *model.Table, titled bool) {
	sb.WriteString(`<table style="` + tableStyle + `">`)
	if titled && t.Name != "" {
		sb.WriteString(`<caption style="` + captionStyle + `">`)
		sb.WriteString(html.EscapeString(t.Name))
		sb.WriteString("</caption>")
	}

	sb.WriteString("<thead><tr>")
	for _, h := range t.Headers {
		sb.WriteString(`<th style="` + headerStyle + `">`)
		sb.WriteString(html.EscapeString(h))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr></thead><tbody>")

	for _, row := range t.Data {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString(`<td style="` + cellStyle + `">`)
			sb.WriteString(html.EscapeString(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
}
