// Package gsheet models Google Sheets worksheets and assembles the
// request bodies for reading and mutating them through the Sheets v4
// API. Nothing here performs a network call: every operation validates
// its inputs locally and produces a value ready to hand to a
// spreadsheets service, so batch composition can be tested without a
// live spreadsheet.
//
// Worksheet geometry and addressing go through package a1.
package gsheet

import (
	"fmt"

	"github.com/brettgrand/brettgws/a1"
	"google.golang.org/api/sheets/v4"
)

// Sheet is a read-through view of one worksheet inside a spreadsheet.
// It caches the worksheet properties from the last fetched Spreadsheet
// and derives the A1 range covering the whole grid.
type Sheet struct {
	spreadsheetID string
	props         *sheets.SheetProperties
	extent        a1.Range
}

// NewSheet wraps one worksheet of a fetched spreadsheet.
func NewSheet(spreadsheetID string, sheet *sheets.Sheet) (*Sheet, error) {
	if sheet == nil || sheet.Properties == nil {
		return nil, fmt.Errorf("sheet in spreadsheet %q has no properties", spreadsheetID)
	}
	return &Sheet{
		spreadsheetID: spreadsheetID,
		props:         sheet.Properties,
		extent:        extentOf(sheet.Properties),
	}, nil
}

// FindSheet locates a worksheet by title.
func FindSheet(spreadsheet *sheets.Spreadsheet, title string) (*Sheet, error) {
	if spreadsheet == nil {
		return nil, fmt.Errorf("no spreadsheet to search for sheet %q", title)
	}
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return NewSheet(spreadsheet.SpreadsheetId, sh)
		}
	}
	return nil, fmt.Errorf("no sheet titled %q in spreadsheet %q", title, spreadsheet.SpreadsheetId)
}

// extentOf renders the full grid as a range: a 100x26 sheet titled
// "data" becomes data!A1:Z100. Sheets without a grid (charts and the
// like) reduce to the bare title.
func extentOf(props *sheets.SheetProperties) a1.Range {
	var rows, cols int64
	if props.GridProperties != nil {
		rows, cols = props.GridProperties.RowCount, props.GridProperties.ColumnCount
	}
	if rows <= 0 || cols <= 0 {
		return a1.Parse(a1.Generate(props.Title, "", 0, "", 0))
	}
	return a1.Parse(a1.Generate(props.Title, "A", 1, a1.ColIndex(int(cols)), int(rows)))
}

// SpreadsheetID returns the id of the containing spreadsheet.
func (s *Sheet) SpreadsheetID() string { return s.spreadsheetID }

// Title returns the worksheet title.
func (s *Sheet) Title() string { return s.props.Title }

// SheetID returns the immutable worksheet id.
func (s *Sheet) SheetID() int64 { return s.props.SheetId }

// Index returns the zero-based tab position.
func (s *Sheet) Index() int64 { return s.props.Index }

// SheetType returns the worksheet type, GRID for ordinary sheets.
func (s *Sheet) SheetType() string { return s.props.SheetType }

// IsGrid reports whether the worksheet holds a cell grid.
func (s *Sheet) IsGrid() bool { return s.props.SheetType == "GRID" }

// Rows returns the grid row count, 0 when the sheet has no grid.
func (s *Sheet) Rows() int64 {
	if s.props.GridProperties == nil {
		return 0
	}
	return s.props.GridProperties.RowCount
}

// Cols returns the grid column count, 0 when the sheet has no grid.
func (s *Sheet) Cols() int64 {
	if s.props.GridProperties == nil {
		return 0
	}
	return s.props.GridProperties.ColumnCount
}

// Dimensions returns the grid row and column counts together.
func (s *Sheet) Dimensions() (rows, cols int64) {
	return s.Rows(), s.Cols()
}

// CellCount returns rows times columns.
func (s *Sheet) CellCount() int64 {
	return s.Rows() * s.Cols()
}

// Extent returns the range spanning the whole grid.
func (s *Sheet) Extent() a1.Range { return s.extent }

// Properties exposes the cached worksheet properties, for building
// requests the chain has no shorthand for.
func (s *Sheet) Properties() *sheets.SheetProperties { return s.props }

// Refresh replaces the cached properties from a newly fetched
// spreadsheet, matching on sheet id so a retitled worksheet is still
// found.
func (s *Sheet) Refresh(spreadsheet *sheets.Spreadsheet) error {
	if spreadsheet == nil {
		return fmt.Errorf("no spreadsheet to refresh sheet %q from", s.Title())
	}
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.SheetId == s.SheetID() {
			s.props = sh.Properties
			s.extent = extentOf(sh.Properties)
			return nil
		}
	}
	return fmt.Errorf("sheet %q (id %d) not present in refreshed spreadsheet", s.Title(), s.SheetID())
}

// RefreshFromUpdate applies the UpdatedSpreadsheet carried in a batch
// update response. Responses produced without the spreadsheet included
// leave the cache untouched.
func (s *Sheet) RefreshFromUpdate(resp *sheets.BatchUpdateSpreadsheetResponse) error {
	if resp == nil || resp.UpdatedSpreadsheet == nil {
		return nil
	}
	return s.Refresh(resp.UpdatedSpreadsheet)
}
