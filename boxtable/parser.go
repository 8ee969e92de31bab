// Package boxtable recognizes and parses tables drawn with ASCII (+, -, |) or
// Unicode box-drawing borders, including inputs that carry several named
// tables separated by TABLE: header lines.
package boxtable

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
)

var (
	tableNameRe = regexp.MustCompile(`^TABLE:\s*(.*)$`)

	// Separator lines mark table structure but carry no cells.
	equalsRuleRe    = regexp.MustCompile(`^=+$`)
	asciiBorderRe   = regexp.MustCompile(`^\+[-+]*\+?$`)
	unicodeBorderRe = regexp.MustCompile(`^[┌├└][─┬┼┴]*[┐┤┘]?$`)

	// Trailing commas on a bordered row are paste artifacts, not cells.
	artifactCommaRe = regexp.MustCompile(`[,\s]+$`)
)

// titleLookback is how many lines above the first border or data line the
// single-table fallback scans for a title. Tunable.
const titleLookback = 3

// Detect reports whether text looks like a box-drawn table: ASCII border
// lines together with pipe-delimited data lines, a TABLE: header accompanied
// by an = rule, or Unicode box-drawing borders together with │-delimited data
// lines.
func Detect(text string) bool {
	var (
		asciiBorder   bool
		pipeData      bool
		unicodeBorder bool
		unicodeData   bool
		equalsRule    bool
		tableMarker   bool
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case asciiBorderRe.MatchString(line):
			asciiBorder = true
		case unicodeBorderRe.MatchString(line) && line != "":
			unicodeBorder = true
		case equalsRuleRe.MatchString(line) && line != "":
			equalsRule = true
		case tableNameRe.MatchString(line):
			tableMarker = true
		case strings.HasPrefix(line, "|"):
			pipeData = true
		case strings.HasPrefix(line, "│"):
			unicodeData = true
		}
	}
	if asciiBorder && pipeData {
		return true
	}
	if tableMarker && equalsRule {
		return true
	}
	return unicodeBorder && unicodeData
}

// parser accumulates one table at a time while scanning lines.
type parser struct {
	set *model.TableSet

	name    string
	headers []string
	rows    []model.Row
}

// Parse extracts every table from box-drawn text. TABLE: lines start a new
// named table; the first data line after each reset becomes the header row.
// Inputs without TABLE: markers are parsed as a single table, using a nearby
// title line as the name when one exists. The result holds zero tables when
// no usable header line is found.
func Parse(text string) *model.TableSet {
	lines := strings.Split(text, "\n")

	if !hasTableMarkers(lines) {
		return parseSingle(lines)
	}

	p := &parser{set: &model.TableSet{Format: "box"}}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if m := tableNameRe.FindStringSubmatch(line); m != nil {
			p.flush()
			p.name = strings.TrimSpace(m[1])
			continue
		}
		p.consume(line)
	}
	p.flush()
	return p.set
}

// consume handles one non-TABLE: line: separators are skipped but mark a table
// as in progress, data lines become header or data rows.
func (p *parser) consume(line string) {
	if line == "" {
		return
	}
	if isSeparator(line) {
		return
	}
	cells, ok := splitDataLine(line)
	if !ok {
		return
	}
	if p.headers == nil {
		p.headers = cells
		return
	}
	p.rows = append(p.rows, cells)
}

// flush finishes the in-progress table. A table needs headers and at least one
// data row; headers alone are discarded.
func (p *parser) flush() {
	if len(p.headers) > 0 && len(p.rows) > 0 {
		name := p.name
		if name == "" {
			name = "Table " + strconv.Itoa(p.set.Len()+1)
		}
		p.set.Add(model.NewTable(name, p.headers, p.rows))
	}
	p.name = ""
	p.headers = nil
	p.rows = nil
}

// hasTableMarkers reports whether any line is a TABLE: header.
func hasTableMarkers(lines []string) bool {
	for _, line := range lines {
		if tableNameRe.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// parseSingle parses input without TABLE: markers as one table. A non-border,
// non-empty line within titleLookback lines of the first border or data line
// becomes the table name.
func parseSingle(lines []string) *model.TableSet {
	set := &model.TableSet{Format: "box"}

	first := -1
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isSeparator(line) || isDataLine(line) {
			first = i
			break
		}
	}
	if first < 0 {
		return set
	}

	name := ""
	for i := first - 1; i >= 0 && i >= first-titleLookback; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || isSeparator(line) {
			continue
		}
		name = line
		break
	}

	p := &parser{set: set, name: name}
	for _, raw := range lines[first:] {
		p.consume(strings.TrimSpace(raw))
	}
	p.flush()
	return set
}

// isSeparator reports whether line is a pure border or rule line.
func isSeparator(line string) bool {
	return equalsRuleRe.MatchString(line) ||
		asciiBorderRe.MatchString(line) ||
		unicodeBorderRe.MatchString(line)
}

// isDataLine reports whether line would yield cells.
func isDataLine(line string) bool {
	_, ok := splitDataLine(line)
	return ok
}

// splitDataLine splits a bordered row into trimmed cells. The row must begin
// with | or │ after trailing artifact commas are stripped; the matching
// delimiter is inferred from that leading character. A missing closing border
// is tolerated.
func splitDataLine(line string) ([]string, bool) {
	line = artifactCommaRe.ReplaceAllString(strings.TrimSpace(line), "")

	var delim string
	switch {
	case strings.HasPrefix(line, "|"):
		delim = "|"
	case strings.HasPrefix(line, "│"):
		delim = "│"
	default:
		return nil, false
	}

	line = strings.TrimPrefix(line, delim)
	line = strings.TrimSuffix(line, delim)

	parts := strings.Split(line, delim)
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells, true
}
