// Package model provides the canonical row/column representation shared by
// every parser, view operation, and exporter in the library.
//
// All format parsers ultimately produce these types, making them the primary
// API for consuming normalized tabular data.
//
// # Tables
//
// A [Table] is a named header list plus data rows. Parsers guarantee that
// every row carries exactly len(Headers) cells; short rows are right-padded
// with empty strings (the canonical "missing" value).
//
// One detection pass over one input yields a [TableSet], the ordered
// collection of every table found. A TableSet fully replaces any previous one;
// there is no incremental update.
//
// # Document state
//
// The [Document] type is the single headers/data/filteredData/sort snapshot
// consumed by sorting, filtering, and export. Operations on it return new
// values rather than mutating in place; callers thread the returned state
// forward.
package model
