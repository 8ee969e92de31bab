// Package format provides input format detection and classification for the
// parsing pipeline.
//
// Detection runs a fixed priority order of structural detectors; the first
// positive match owns the parse, and delimited text is the fallback when
// nothing matches. Each detector requires real structural evidence (border
// lines, separator rows, a parseable array) rather than the mere presence of
// a stray character, so generic pasted text falls through to the fallback.
// A detector's trial-parse failure is silently treated as a non-match, never
// surfaced.
package format

import (
	"errors"
	"strings"

	"github.com/Santiago-vgs/Format-King/boxtable"
	"github.com/Santiago-vgs/Format-King/delimited"
	"github.com/Santiago-vgs/Format-King/fixedwidth"
	"github.com/Santiago-vgs/Format-King/htmltable"
	"github.com/Santiago-vgs/Format-King/jsonarray"
	"github.com/Santiago-vgs/Format-King/markdown"
	"github.com/Santiago-vgs/Format-King/model"
	"github.com/Santiago-vgs/Format-King/yamlarray"
)

// ErrEmptyInput is returned when the input contains no text.
var ErrEmptyInput = errors.New("no input text")

// ErrNoTableFound is returned when every detector and the delimited fallback
// produce zero usable rows.
var ErrNoTableFound = errors.New("no table found in input")

// Format identifies a supported input format.
type Format int

const (
	// Unknown indicates an unclassified input.
	Unknown Format = iota
	// HTML indicates pasted HTML containing table elements.
	HTML
	// Box indicates an ASCII or Unicode box-drawn table.
	Box
	// Markdown indicates a pipe-delimited Markdown table.
	Markdown
	// JSON indicates a JSON array of flat objects.
	JSON
	// YAML indicates a YAML sequence of mappings.
	YAML
	// FixedWidth indicates space-aligned columns.
	FixedWidth
	// Delimited indicates delimiter-separated text, the fallback format.
	Delimited
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Box:
		return "box"
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case FixedWidth:
		return "fixed-width"
	case Delimited:
		return "delimited"
	default:
		return "unknown"
	}
}

// detector pairs a structural match test with the parser that owns the
// format. Detectors are evaluated in declaration order; the first match
// short-circuits the rest.
type detector struct {
	format Format
	detect func(string) bool
	parse  func(string) *model.TableSet
}

var detectors = []detector{
	{HTML, htmltable.Detect, htmltable.Parse},
	{Box, boxtable.Detect, boxtable.Parse},
	{Markdown, markdown.Detect, markdown.Parse},
	{JSON, jsonarray.Detect, jsonarray.Parse},
	{YAML, yamlarray.Detect, yamlarray.Parse},
	{FixedWidth, fixedwidth.Detect, fixedwidth.Parse},
}

// Detect classifies trimmed input text without parsing it fully. Inputs that
// match no structural detector classify as Delimited.
func Detect(text string) Format {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Unknown
	}
	for _, d := range detectors {
		if d.detect(trimmed) {
			return d.format
		}
	}
	return Delimited
}

// Options configures classification and the delimited fallback.
type Options struct {
	// Delimiter forces the fallback delimiter; zero means auto-detect.
	Delimiter rune

	// NoHeaderRow treats the first fallback row as data and synthesizes
	// column names. Structural formats carry their own headers and ignore it.
	NoHeaderRow bool
}

// ClassifyAndParse runs the detector chain over the input and parses it with
// the matching parser, falling back to delimited text. It fails with
// ErrEmptyInput when the text is blank and with ErrNoTableFound when every
// parser yields zero usable rows.
func ClassifyAndParse(text string, opts Options) (*model.TableSet, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	for _, d := range detectors {
		if !d.detect(trimmed) {
			continue
		}
		if set := d.parse(trimmed); set.Len() > 0 {
			return set, nil
		}
		// The matched parser produced nothing usable; the fallback still
		// gets its chance before the input is rejected.
		break
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = delimited.DetectDelimiter(trimmed)
	}
	if t := delimited.ToTable(trimmed, delim, !opts.NoHeaderRow); t != nil {
		set := &model.TableSet{Format: Delimited.String()}
		set.Add(t)
		return set, nil
	}
	return nil, ErrNoTableFound
}
