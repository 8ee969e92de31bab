// Package htmltable extracts tables from pasted HTML. Content copied out of a
// browser usually arrives as markup; every <table> element becomes one table
// in the result, named from its <caption> when present.
package htmltable

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Santiago-vgs/Format-King/model"
)

// Detect reports whether text is HTML carrying at least one table: the
// left-trimmed text starts with < and contains a <table tag.
func Detect(text string) bool {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	return strings.HasPrefix(trimmed, "<") &&
		strings.Contains(strings.ToLower(trimmed), "<table")
}

// Parse extracts every <table> element from HTML text. The header row is the
// first thead row, or the first row when it holds th cells, or simply the
// first row. Tables without a caption are numbered Table 1, Table 2, ...
func Parse(text string) *model.TableSet {
	set := &model.TableSet{Format: "html"}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return set
	}

	for _, node := range findTables(doc) {
		if t := parseTable(node, set.Len()+1); t != nil {
			set.Add(t)
		}
	}
	return set
}

// findTables collects table elements in document order, skipping tables
// nested inside other tables.
func findTables(n *html.Node) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == "table" {
		return []*html.Node{n}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findTables(c)...)
	}
	return out
}

// parseTable converts one table element. Returns nil when the table yields no
// header cells or no data rows.
func parseTable(tableNode *html.Node, number int) *model.Table {
	name := ""
	var headerRows, bodyRows []model.Row

	var walk func(n *html.Node, inHead bool)
	walk = func(n *html.Node, inHead bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "caption":
				name = textContent(c)
			case "thead":
				walk(c, true)
			case "tbody", "tfoot":
				walk(c, false)
			case "tr":
				row := parseRow(c)
				if len(row) == 0 {
					continue
				}
				if inHead {
					headerRows = append(headerRows, row)
				} else {
					bodyRows = append(bodyRows, row)
				}
			case "table":
				// nested table, ignored
			default:
				walk(c, inHead)
			}
		}
	}
	walk(tableNode, false)

	var headers []string
	var data []model.Row
	switch {
	case len(headerRows) > 0:
		headers = headerRows[0]
		data = append(headerRows[1:], bodyRows...)
	case len(bodyRows) > 0:
		headers = bodyRows[0]
		data = bodyRows[1:]
	}
	if len(headers) == 0 || len(data) == 0 {
		return nil
	}

	if name == "" {
		name = "Table " + strconv.Itoa(number)
	}
	return model.NewTable(name, headers, data)
}

// parseRow collects the td/th cell texts of one tr element.
func parseRow(tr *html.Node) model.Row {
	var row model.Row
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, textContent(c))
		}
	}
	return row
}

// textContent extracts the trimmed text of a node and its descendants,
// skipping script and style content.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "template":
				return
			case "br":
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
