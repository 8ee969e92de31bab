package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Santiago-vgs/Format-King/model"
)

// XLSX builds a workbook with one sheet per table in the set and returns the
// serialized .xlsx bytes. Sheet names are the table names, deduplicated and
// clipped to Excel's 31-character limit.
func XLSX(set *model.TableSet) ([]byte, error) {
	if set.Len() == 0 {
		return nil, fmt.Errorf("empty table set")
	}

	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool)
	for i, t := range set.Tables {
		name := sheetName(t.Name, i, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("adding sheet %q: %w", name, err)
			}
		}

		if err := writeSheet(f, name, t); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheet fills one sheet with a table's headers and rows.
func writeSheet(f *excelize.File, sheet string, t *model.Table) error {
	if err := writeRow(f, sheet, 1, t.Headers); err != nil {
		return err
	}
	for i, row := range t.Data {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	for i, cell := range cells {
		ref, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, ref, cell); err != nil {
			return fmt.Errorf("writing cell %s: %w", ref, err)
		}
	}
	return nil
}

// illegalSheetChars are forbidden in Excel sheet names.
var illegalSheetChars = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ",
)

// sheetName makes a legal, unique sheet name from a table name.
func sheetName(name string, index int, used map[string]bool) string {
	if name == "" {
		name = fmt.Sprintf("Table %d", index+1)
	}
	name = illegalSheetChars.Replace(name)
	name = clip(name, 31)
	base := name
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf(" %d", n)
		name = clip(base, 31-len(suffix)) + suffix
	}
	used[name] = true
	return name
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
