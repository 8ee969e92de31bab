// Package export renders the canonical table model into output formats:
// CSV and JSON for data interchange, rich HTML for paste targets that accept
// formatted content, Markdown and box-drawn plain text for documents and
// terminals, and XLSX workbooks for spreadsheet tools.
//
// Exporters accept either a single table's headers and rows or a whole
// [model.TableSet]; sets render as sequential titled tables (or one sheet per
// table for XLSX).
package export
