package gsheet

import (
	"fmt"

	"github.com/brettgrand/brettgws/a1"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/constraints"
)

// maxOf folds max over a row of values.
func maxOf[V constraints.Ordered](first V, more ...V) V {
	highest := first
	for _, v := range more {
		highest = max(highest, v)
	}
	return highest
}

// UsedRange reports the extent of data on one worksheet of a local
// workbook, anchored at A1: a sheet whose last value sits in row 37
// and whose widest row reaches column D yields inventory!A1:D37. A
// sheet with no values reduces to its bare title.
func UsedRange(f *excelize.File, sheet string) (a1.Range, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return a1.Range{}, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}
	width := 0
	for _, row := range rows {
		width = maxOf(width, len(row))
	}
	if len(rows) == 0 || width == 0 {
		return a1.Parse(a1.Generate(sheet, "", 0, "", 0)), nil
	}
	return a1.Parse(a1.Generate(sheet, "A", 1, a1.ColIndex(width), len(rows))), nil
}

// WorkbookRanges maps every worksheet of a local workbook to its used
// range.
func WorkbookRanges(f *excelize.File) (map[string]a1.Range, error) {
	list := f.GetSheetList()
	out := make(map[string]a1.Range, len(list))
	for _, sheet := range list {
		r, err := UsedRange(f, sheet)
		if err != nil {
			return nil, err
		}
		out[sheet] = r
	}
	return out, nil
}
