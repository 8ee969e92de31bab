package delimited

import (
	"strconv"
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
)

// Parse tokenizes delimited text into raw rows using a single-pass two-state
// machine (unquoted, quoted). A double quote inside a quoted cell escapes to
// one literal quote. Cells are trimmed of surrounding whitespace; a row is
// kept only if at least one cell is non-empty. Lone carriage returns are
// dropped. The returned rows are raw: they are not yet normalized to a common
// header width.
func Parse(text string, delimiter rune) []model.Row {
	var (
		rows   []model.Row
		row    model.Row
		cell   strings.Builder
		quoted bool
	)

	endCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	endRow := func() {
		endCell()
		if !row.IsEmpty() {
			rows = append(rows, row)
		}
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if quoted {
			switch {
			case ch == '"' && i+1 < len(runes) && runes[i+1] == '"':
				cell.WriteRune('"')
				i++ // skip the escaping quote
			case ch == '"':
				quoted = false
			default:
				cell.WriteRune(ch)
			}
			continue
		}

		switch ch {
		case '"':
			quoted = true
		case delimiter:
			endCell()
		case '\n':
			endRow()
		case '\r':
			// dropped; \r\n is handled by the following \n
		default:
			cell.WriteRune(ch)
		}
	}

	// Flush a pending cell or row at end of input.
	if cell.Len() > 0 || len(row) > 0 {
		endRow()
	}
	return rows
}

// ToTable builds a single-table set from delimited text. When hasHeaders is
// true the first row becomes the header list; otherwise synthetic
// "Column N" headers sized to the widest row are used. Rows are normalized to
// the header width.
func ToTable(text string, delimiter rune, hasHeaders bool) *model.Table {
	rows := Parse(text, delimiter)
	if len(rows) == 0 {
		return nil
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	var headers []string
	var data []model.Row
	if hasHeaders {
		headers = rows[0]
		for len(headers) < width {
			headers = append(headers, "")
		}
		data = rows[1:]
	} else {
		headers = make([]string, width)
		for i := range headers {
			headers[i] = syntheticHeader(i)
		}
		data = rows
	}

	return model.NewTable("Delimited Data", headers, data)
}

// syntheticHeader names the i-th column of a headerless table.
func syntheticHeader(i int) string {
	return "Column " + strconv.Itoa(i+1)
}
