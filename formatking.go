// Package formatking provides a fluent API for normalizing loosely-structured
// tabular text - delimited text, box-drawn tables, Markdown tables, JSON or
// YAML arrays of records, fixed-width aligned columns, and pasted HTML - into
// one canonical row/column model for sorting, filtering, and export.
//
// Basic usage:
//
//	tables, warnings, err := formatking.ParseString(input).Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", formatking.FormatWarnings(warnings))
//	}
//
// With options:
//
//	csv, _, err := formatking.ParseString(input).
//	    Delimiter(';').
//	    Table(0).
//	    CSV()
//
// For advanced use cases, the lower-level format, view, and export packages
// are also available.
package formatking

import (
	"io"

	"github.com/Santiago-vgs/Format-King/format"
)

// ErrEmptyInput is returned when the input contains no text.
var ErrEmptyInput = format.ErrEmptyInput

// ErrNoTableFound is returned when every detector and the delimited fallback
// produce zero usable rows.
var ErrNoTableFound = format.ErrNoTableFound

// ParseString creates an Extractor over already-materialized input text.
//
// Example:
//
//	tables, warnings, err := formatking.ParseString("a,b\n1,2").Tables()
func ParseString(text string) *Extractor {
	return &Extractor{
		text:    text,
		haveTxt: true,
		options: defaultOptions(),
	}
}

// Open creates an Extractor over a file. The file is read lazily by the first
// terminal operation; UTF-8 and UTF-16 content with or without a byte order
// mark is handled transparently.
//
// Example:
//
//	tables, warnings, err := formatking.Open("report.txt").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor over an io.Reader. The reader is drained by
// the first terminal operation, with the same encoding handling as Open.
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		reader:  r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil, discarding
// warnings.
//
// Example:
//
//	csv := formatking.MustResult(formatking.ParseString(input).CSV())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
