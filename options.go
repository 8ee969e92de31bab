package formatking

// selection values for ParseOptions.selected.
const (
	selectAll  = -1 // unified "all tables" projection
	selectNone = -2 // no explicit selection; pick a sensible default
)

// ParseOptions holds configuration for parsing and view selection.
type ParseOptions struct {
	// delimiter forces the fallback delimiter; zero means auto-detect.
	delimiter rune

	// noHeaderRow treats the first fallback row as data.
	noHeaderRow bool

	// selected is the table-set selection exports operate on.
	selected int
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		delimiter:   0,
		noHeaderRow: false,
		selected:    selectNone,
	}
}

// clone creates a copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	return ParseOptions{
		delimiter:   o.delimiter,
		noHeaderRow: o.noHeaderRow,
		selected:    o.selected,
	}
}
