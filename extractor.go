package formatking

import (
	"fmt"
	"io"

	"github.com/Santiago-vgs/Format-King/export"
	"github.com/Santiago-vgs/Format-King/format"
	"github.com/Santiago-vgs/Format-King/model"
	"github.com/Santiago-vgs/Format-King/view"
)

// Extractor provides a fluent interface for classifying, parsing, and
// exporting tabular text. Each configuration method returns a new Extractor
// instance, making chains safe to fork and reuse.
type Extractor struct {
	// Source (exactly one is used)
	text     string
	haveTxt  bool
	filename string
	reader   io.Reader

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a copy of the Extractor with its own options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		text:     e.text,
		haveTxt:  e.haveTxt,
		filename: e.filename,
		reader:   e.reader,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// Delimiter forces the delimiter used by the delimited-text fallback instead
// of auto-detection.
func (e *Extractor) Delimiter(d rune) *Extractor {
	n := e.clone()
	n.options.delimiter = d
	return n
}

// AutoDelimiter restores delimiter auto-detection for the fallback.
func (e *Extractor) AutoDelimiter() *Extractor {
	n := e.clone()
	n.options.delimiter = 0
	return n
}

// NoHeaderRow treats the first row of delimited fallback input as data and
// synthesizes column names. Structural formats carry their own headers and
// are unaffected.
func (e *Extractor) NoHeaderRow() *Extractor {
	n := e.clone()
	n.options.noHeaderRow = true
	return n
}

// Table selects the table at index i as the view that Document and the
// export operations use.
func (e *Extractor) Table(i int) *Extractor {
	n := e.clone()
	if i < 0 {
		n.err = fmt.Errorf("table index %d out of range", i)
		return n
	}
	n.options.selected = i
	return n
}

// AllTables selects the unified projection of every parsed table, with a
// synthetic column naming each row's source table.
func (e *Extractor) AllTables() *Extractor {
	n := e.clone()
	n.options.selected = selectAll
	return n
}

// ensureText materializes the input text from whichever source was given.
func (e *Extractor) ensureText() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if e.haveTxt {
		return e.text, nil
	}
	if e.filename != "" {
		return readFile(e.filename)
	}
	if e.reader != nil {
		return decodeText(e.reader)
	}
	return "", fmt.Errorf("no input specified")
}

// Format classifies the input without fully parsing it.
func (e *Extractor) Format() (format.Format, error) {
	text, err := e.ensureText()
	if err != nil {
		return format.Unknown, err
	}
	return format.Detect(text), nil
}

// Tables is the primary terminal operation: it classifies the input, parses
// it with the matching parser (or the delimited fallback), and returns the
// resulting table set. Warnings indicate non-fatal issues; the error is
// ErrEmptyInput for blank input and ErrNoTableFound when nothing usable was
// parsed.
func (e *Extractor) Tables() (*model.TableSet, []Warning, error) {
	text, err := e.ensureText()
	if err != nil {
		return nil, e.warnings, err
	}

	warnings := append([]Warning(nil), e.warnings...)

	detected := format.Detect(text)
	set, err := format.ClassifyAndParse(text, format.Options{
		Delimiter:   e.options.delimiter,
		NoHeaderRow: e.options.noHeaderRow,
	})
	if err != nil {
		return nil, warnings, err
	}

	if detected != format.Delimited && set.Format == format.Delimited.String() {
		warnings = append(warnings, Warning{
			Code: WarnFallback,
			Message: fmt.Sprintf("input looked like %s but held no usable table; parsed as delimited text",
				detected),
		})
	}
	return set, warnings, nil
}

// Document returns the canonical document state for the current selection:
// the selected table, or the unified view when AllTables was chosen. With no
// explicit selection a single-table set loads its only table and a
// multi-table set loads the unified view.
func (e *Extractor) Document() (model.Document, []Warning, error) {
	set, warnings, err := e.Tables()
	if err != nil {
		return model.Document{}, warnings, err
	}

	selected := e.options.selected
	if selected == selectNone {
		if set.Len() > 1 {
			selected = selectAll
		} else {
			selected = 0
		}
	}
	if selected >= set.Len() {
		return model.Document{}, warnings, fmt.Errorf("table index %d out of range (%d tables)",
			selected, set.Len())
	}

	doc := view.Select(model.Document{}, set, selected)
	return doc, warnings, nil
}

// CSV exports the current selection as comma-separated text.
func (e *Extractor) CSV() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return export.CSV(doc.Headers, doc.Filtered), warnings, nil
}

// JSON exports the current selection as a pretty-printed array of objects.
func (e *Extractor) JSON() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return export.JSON(doc.Headers, doc.Filtered), warnings, nil
}

// RichHTML exports styled HTML suitable for rich-text paste targets. With no
// explicit selection every parsed table renders as a sequential titled table;
// a selection renders as a single table.
func (e *Extractor) RichHTML() (string, []Warning, error) {
	if e.options.selected == selectNone {
		set, warnings, err := e.Tables()
		if err != nil {
			return "", warnings, err
		}
		return export.RichHTML(set), warnings, nil
	}
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return export.RichHTMLView(doc.Headers, doc.Filtered), warnings, nil
}

// Markdown exports the current selection as a pipe-delimited Markdown table.
func (e *Extractor) Markdown() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return export.Markdown(doc.Headers, doc.Filtered), warnings, nil
}

// Text exports the current selection as an ASCII box-drawn table.
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return export.Text(doc.Headers, doc.Filtered), warnings, nil
}

// XLSX exports every parsed table as an Excel workbook, one sheet per table.
func (e *Extractor) XLSX() ([]byte, []Warning, error) {
	set, warnings, err := e.Tables()
	if err != nil {
		return nil, warnings, err
	}
	data, err := export.XLSX(set)
	if err != nil {
		return nil, warnings, err
	}
	return data, warnings, nil
}
