package gsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"
)

func gridProps(title string, id, index, rows, cols int64) *sheets.SheetProperties {
	return &sheets.SheetProperties{
		SheetId:   id,
		Title:     title,
		Index:     index,
		SheetType: "GRID",
		GridProperties: &sheets.GridProperties{
			RowCount:    rows,
			ColumnCount: cols,
		},
	}
}

func gridSheet(t *testing.T, title string, id, rows, cols int64) *Sheet {
	t.Helper()
	s, err := NewSheet("ss-test", &sheets.Sheet{Properties: gridProps(title, id, 0, rows, cols)})
	require.NoError(t, err)
	return s
}

func TestNewSheet_Properties(t *testing.T) {
	s := gridSheet(t, "data", 7, 100, 26)

	assert.Equal(t, "ss-test", s.SpreadsheetID())
	assert.Equal(t, "data", s.Title())
	assert.Equal(t, int64(7), s.SheetID())
	assert.Equal(t, int64(0), s.Index())
	assert.Equal(t, "GRID", s.SheetType())
	assert.True(t, s.IsGrid())
	assert.Equal(t, int64(100), s.Rows())
	assert.Equal(t, int64(26), s.Cols())
	assert.Equal(t, int64(2600), s.CellCount())

	rows, cols := s.Dimensions()
	assert.Equal(t, int64(100), rows)
	assert.Equal(t, int64(26), cols)
}

func TestNewSheet_Extent(t *testing.T) {
	s := gridSheet(t, "data", 7, 100, 26)

	extent := s.Extent()
	require.True(t, extent.Valid())
	assert.Equal(t, "data!A1:Z100", extent.A1())
	assert.True(t, extent.Bounded())
	assert.Equal(t, 2574, extent.CellCount()) // range counts span rows end-exclusive
}

func TestNewSheet_ExtentQuotesTitle(t *testing.T) {
	s := gridSheet(t, "run results", 3, 10, 4)
	assert.Equal(t, `"run results"!A1:D10`, s.Extent().A1())
}

func TestNewSheet_NonGrid(t *testing.T) {
	s, err := NewSheet("ss-test", &sheets.Sheet{
		Properties: &sheets.SheetProperties{
			SheetId:   9,
			Title:     "chart",
			SheetType: "OBJECT",
		},
	})
	require.NoError(t, err)

	assert.False(t, s.IsGrid())
	assert.Equal(t, int64(0), s.Rows())
	assert.Equal(t, int64(0), s.Cols())
	assert.Equal(t, int64(0), s.CellCount())
	assert.Equal(t, "chart", s.Extent().A1()) // bare title, no grid to span
}

func TestNewSheet_MissingProperties(t *testing.T) {
	_, err := NewSheet("ss-test", &sheets.Sheet{})
	assert.ErrorContains(t, err, "no properties")

	_, err = NewSheet("ss-test", nil)
	assert.Error(t, err)
}

func TestFindSheet_ByTitle(t *testing.T) {
	ss := &sheets.Spreadsheet{
		SpreadsheetId: "ss-test",
		Sheets: []*sheets.Sheet{
			{Properties: gridProps("alpha", 0, 0, 50, 10)},
			{Properties: gridProps("beta", 4, 1, 80, 12)},
		},
	}

	s, err := FindSheet(ss, "beta")
	require.NoError(t, err)
	assert.Equal(t, int64(4), s.SheetID())
	assert.Equal(t, "beta!A1:L80", s.Extent().A1())

	_, err = FindSheet(ss, "gamma")
	assert.ErrorContains(t, err, `"gamma"`)

	_, err = FindSheet(nil, "beta")
	assert.Error(t, err)
}

func TestSheet_Refresh(t *testing.T) {
	s := gridSheet(t, "data", 7, 100, 26)

	updated := &sheets.Spreadsheet{
		SpreadsheetId: "ss-test",
		Sheets: []*sheets.Sheet{
			{Properties: gridProps("other", 1, 0, 5, 5)},
			{Properties: gridProps("data", 7, 1, 120, 20)},
		},
	}
	require.NoError(t, s.Refresh(updated))

	assert.Equal(t, int64(120), s.Rows())
	assert.Equal(t, int64(20), s.Cols())
	assert.Equal(t, "data!A1:T120", s.Extent().A1())
}

func TestSheet_RefreshMatchesOnID(t *testing.T) {
	s := gridSheet(t, "data", 7, 100, 26)

	// Retitled but same sheet id: still found.
	updated := &sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			{Properties: gridProps("renamed", 7, 0, 100, 26)},
		},
	}
	require.NoError(t, s.Refresh(updated))
	assert.Equal(t, "renamed", s.Title())
}

func TestSheet_RefreshMissingSheet(t *testing.T) {
	s := gridSheet(t, "data", 7, 100, 26)

	err := s.Refresh(&sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			{Properties: gridProps("other", 1, 0, 5, 5)},
		},
	})
	assert.ErrorContains(t, err, "not present")

	assert.Error(t, s.Refresh(nil))
}

func TestSheet_RefreshFromUpdate(t *testing.T) {
	s := gridSheet(t, "data", 7, 100, 26)

	// No spreadsheet attached: cache untouched, no error.
	require.NoError(t, s.RefreshFromUpdate(nil))
	require.NoError(t, s.RefreshFromUpdate(&sheets.BatchUpdateSpreadsheetResponse{}))
	assert.Equal(t, int64(100), s.Rows())

	resp := &sheets.BatchUpdateSpreadsheetResponse{
		UpdatedSpreadsheet: &sheets.Spreadsheet{
			Sheets: []*sheets.Sheet{
				{Properties: gridProps("data", 7, 0, 105, 26)},
			},
		},
	}
	require.NoError(t, s.RefreshFromUpdate(resp))
	assert.Equal(t, int64(105), s.Rows())
}
