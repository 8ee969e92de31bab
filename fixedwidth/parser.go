// Package fixedwidth infers column boundaries in space-aligned text from
// vertical whitespace "rivers": character columns that are blank on most
// lines. Thresholds are heuristic and configurable via [Config].
package fixedwidth

import (
	"strings"

	"github.com/Santiago-vgs/Format-King/model"
)

// Config holds the boundary-inference thresholds. The defaults were inherited
// from observed paste behavior and are tunable, not law.
type Config struct {
	// SpaceFraction is the minimum fraction of content lines that must be
	// blank at a character column for it to count toward a gap (0-1).
	SpaceFraction float64

	// MinGapWidth is the minimum run of qualifying character columns that
	// forms a column boundary.
	MinGapWidth int

	// MinLines is the minimum number of non-blank lines for detection.
	MinLines int

	// MinLineLength is the minimum length of the longest line for detection.
	MinLineLength int
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		SpaceFraction: 0.8,
		MinGapWidth:   2,
		MinLines:      3,
		MinLineLength: 5,
	}
}

// Detect reports whether text looks like a fixed-width aligned table using
// the default thresholds.
func Detect(text string) bool {
	return DefaultConfig().Detect(text)
}

// Detect reports whether text looks like a fixed-width aligned table: enough
// non-blank lines of enough width, at least two content lines after excluding
// underline rows, and at least one whitespace gap shared by most lines.
func (c Config) Detect(text string) bool {
	lines := nonBlankLines(text)
	if len(lines) < c.MinLines {
		return false
	}
	if longestLine(lines) < c.MinLineLength {
		return false
	}

	content := contentLines(lines)
	if len(content) < 2 {
		return false
	}

	return len(c.gaps(padLines(content))) > 0
}

// Parse slices space-aligned text into a single table using the default
// thresholds.
func Parse(text string) *model.TableSet {
	return DefaultConfig().Parse(text)
}

// Parse slices space-aligned text into a single table. Underline rows are
// discarded, every content line is right-padded to the longest line, a cut
// position is recorded at the midpoint of each whitespace gap, and each line
// is sliced at the cuts. The first content line becomes the header row;
// all-empty rows are dropped. The result holds no table when no cut is found
// or no data rows survive.
func (c Config) Parse(text string) *model.TableSet {
	set := &model.TableSet{Format: "fixed-width"}

	content := contentLines(nonBlankLines(text))
	if len(content) < 2 {
		return set
	}
	padded := padLines(content)

	var cuts []int
	for _, g := range c.gaps(padded) {
		// midpoint of the run's first and last column, rounded down
		cuts = append(cuts, (g.start+g.end-1)/2)
	}
	if len(cuts) == 0 {
		return set
	}

	headers := sliceLine(padded[0], cuts)
	var rows []model.Row
	for _, line := range padded[1:] {
		row := model.Row(sliceLine(line, cuts))
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return set
	}

	set.Add(model.NewTable("Fixed Width Data", headers, rows))
	return set
}

// gap is a run of character columns [start, end) blank on most lines.
type gap struct {
	start, end int
}

// gaps finds every maximal run of at least MinGapWidth character columns
// whose blank fraction over the padded lines meets SpaceFraction.
func (c Config) gaps(padded [][]rune) []gap {
	if len(padded) == 0 {
		return nil
	}
	width := len(padded[0])

	var out []gap
	run := 0
	for col := 0; col <= width; col++ {
		if col < width && c.blankFraction(padded, col) >= c.SpaceFraction {
			run++
			continue
		}
		if run >= c.MinGapWidth {
			out = append(out, gap{start: col - run, end: col})
		}
		run = 0
	}
	return out
}

// blankFraction returns the fraction of lines with a space at column col.
func (c Config) blankFraction(padded [][]rune, col int) float64 {
	blank := 0
	for _, line := range padded {
		if line[col] == ' ' {
			blank++
		}
	}
	return float64(blank) / float64(len(padded))
}

// sliceLine cuts line at the given positions into trimmed cells.
func sliceLine(line []rune, cuts []int) []string {
	cells := make([]string, 0, len(cuts)+1)
	prev := 0
	for _, cut := range cuts {
		if cut > len(line) {
			cut = len(line)
		}
		cells = append(cells, strings.TrimSpace(string(line[prev:cut])))
		prev = cut
	}
	cells = append(cells, strings.TrimSpace(string(line[prev:])))
	return cells
}

// nonBlankLines splits text into lines, dropping blank ones. Trailing
// carriage returns are stripped so CRLF input aligns like LF input.
func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// isUnderline reports whether line is a pure rule row: only whitespace,
// dashes, and equals signs, with at least two consecutive dashes or equals.
func isUnderline(line string) bool {
	hasRun := strings.Contains(line, "--") || strings.Contains(line, "==")
	if !hasRun {
		return false
	}
	for _, ch := range line {
		switch ch {
		case ' ', '\t', '-', '=':
		default:
			return false
		}
	}
	return true
}

// contentLines filters out underline rows.
func contentLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if !isUnderline(line) {
			out = append(out, line)
		}
	}
	return out
}

// padLines converts every line to runes, right-padded with spaces to the
// longest line's length. Columns are character positions, not byte offsets.
func padLines(lines []string) [][]rune {
	width := longestLine(lines)
	out := make([][]rune, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		for len(runes) < width {
			runes = append(runes, ' ')
		}
		out[i] = runes
	}
	return out
}

// longestLine returns the rune length of the longest line.
func longestLine(lines []string) int {
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	return width
}
