package gsheet

import (
	"fmt"

	"github.com/brettgrand/brettgws/a1"
	"google.golang.org/api/sheets/v4"
)

// GridRangeFor converts a range to the API's GridRange on the given
// sheet id. GridRange indexes are zero-based and half-open where A1
// bounds are one-based and inclusive, so data!C4:E9 becomes rows [3,9)
// and columns [2,5). Unbounded sides stay unset, which the API reads
// as running to the edge of the grid; reversed row bounds are put in
// order first.
func GridRangeFor(r a1.Range, sheetID int64) (*sheets.GridRange, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot convert an invalid range to a grid range")
	}
	gr := &sheets.GridRange{SheetId: sheetID}
	sr, er := r.StartRow(), r.EndRow()
	if er > 0 && er < sr {
		sr, er = er, sr
	}
	if sr > 0 {
		gr.StartRowIndex = int64(sr - 1)
	}
	if er > 0 {
		gr.EndRowIndex = int64(er)
	}
	if sc := r.StartColIndex(); sc > 0 {
		gr.StartColumnIndex = int64(sc - 1)
	}
	if ec := r.EndColIndex(); ec > 0 {
		gr.EndColumnIndex = int64(ec)
	}
	return gr, nil
}

// GridRange converts r to a GridRange on this worksheet. Untitled
// ranges are taken as local; a range titled for another sheet is
// rejected.
func (s *Sheet) GridRange(r a1.Range) (*sheets.GridRange, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid range for sheet %q", s.Title())
	}
	if t := r.Sheet(); t != "" && bareTitle(t) != s.Title() {
		return nil, fmt.Errorf("range %q addresses sheet %q, not %q", r.A1(), t, s.Title())
	}
	return GridRangeFor(r, s.SheetID())
}

// RangeFromGrid renders a GridRange back into A1 notation under the
// given sheet title. Unset start indexes anchor at A1; a grid range
// with nothing set covers the whole sheet and comes back as the bare
// title.
func RangeFromGrid(gr *sheets.GridRange, title string) (a1.Range, error) {
	if gr == nil {
		return a1.Range{}, fmt.Errorf("no grid range to convert")
	}
	if gr.StartRowIndex < 0 || gr.EndRowIndex < 0 || gr.StartColumnIndex < 0 || gr.EndColumnIndex < 0 {
		return a1.Range{}, fmt.Errorf("grid range indexes cannot be negative")
	}
	// Rows are open-ended in notation, columns stop at ZZZ.
	if gr.StartColumnIndex >= a1.MaxColumns || gr.EndColumnIndex > a1.MaxColumns {
		return a1.Range{}, fmt.Errorf("grid range columns run past %s, the last addressable column", a1.IntToCol(a1.MaxColumns))
	}
	if gr.StartRowIndex == 0 && gr.EndRowIndex == 0 && gr.StartColumnIndex == 0 && gr.EndColumnIndex == 0 {
		r := a1.Parse(a1.Generate(title, "", 0, "", 0))
		if !r.Valid() {
			return a1.Range{}, fmt.Errorf("whole-sheet grid range needs a sheet title")
		}
		return r, nil
	}
	var endCol a1.Col
	if gr.EndColumnIndex > 0 {
		endCol = a1.ColIndex(int(gr.EndColumnIndex))
	}
	r := a1.Parse(a1.Generate(title,
		a1.ColIndex(int(gr.StartColumnIndex)+1), int(gr.StartRowIndex)+1,
		endCol, int(gr.EndRowIndex)))
	if !r.Valid() {
		return a1.Range{}, fmt.Errorf("grid range does not map to addressable bounds")
	}
	return r, nil
}
