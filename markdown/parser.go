// Package markdown recognizes and parses pipe-delimited Markdown tables with
// a header separator row. An input may carry several tables separated by
// blank lines.
package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
)

// separatorRe matches a Markdown header separator row: optional leading and
// trailing pipes around cells of two or more dashes, each optionally wrapped
// in colons for alignment.
var separatorRe = regexp.MustCompile(`^\s*\|?\s*:?-{2,}:?\s*(\|\s*:?-{2,}:?\s*)*\|?\s*$`)

// blockSplitRe splits input on runs of blank lines.
var blockSplitRe = regexp.MustCompile(`\n\s*\n`)

// Detect reports whether text contains a Markdown table: a separator row plus
// at least one pipe-bearing line that is not itself a separator.
func Detect(text string) bool {
	hasSeparator := false
	hasData := false
	for _, line := range strings.Split(text, "\n") {
		if separatorRe.MatchString(line) {
			hasSeparator = true
			continue
		}
		if strings.Contains(line, "|") {
			hasData = true
		}
	}
	return hasSeparator && hasData
}

// Parse extracts every Markdown table from text. Each blank-line-delimited
// block yields at most one table: the line above the first separator row is
// the header, every later pipe-bearing line in the block is a data row.
// Tables are numbered sequentially across blocks.
func Parse(text string) *model.TableSet {
	set := &model.TableSet{Format: "markdown"}
	for _, block := range blockSplitRe.Split(text, -1) {
		if t := parseBlock(block, set.Len()+1); t != nil {
			set.Add(t)
		}
	}
	return set
}

// parseBlock parses one block. It yields a table only when the separator has
// a header line above it and at least one data row below it.
func parseBlock(block string, number int) *model.Table {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	sep := -1
	for i, line := range lines {
		if separatorRe.MatchString(line) {
			sep = i
			break
		}
	}
	// The separator needs a header line above it.
	if sep <= 0 {
		return nil
	}

	headers := splitRow(lines[sep-1])
	if len(headers) == 0 {
		return nil
	}

	var rows []model.Row
	for _, line := range lines[sep+1:] {
		if !strings.Contains(line, "|") {
			continue
		}
		rows = append(rows, splitRow(line))
	}
	if len(rows) == 0 {
		return nil
	}

	return model.NewTable("Table "+strconv.Itoa(number), headers, rows)
}

// splitRow splits a pipe row into trimmed cells, dropping one leading and one
// trailing pipe when present.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}
