package gsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestUsedRange_DataExtent(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "B2", "x"))
	require.NoError(t, f.SetCellValue("Sheet1", "D7", 42))

	r, err := UsedRange(f, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1!A1:D7", r.A1())
	assert.True(t, r.Bounded())
}

func TestUsedRange_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	r, err := UsedRange(f, "Sheet1")
	require.NoError(t, err)
	assert.True(t, r.Valid())
	assert.False(t, r.Bounded())
	assert.Equal(t, "Sheet1", r.A1()) // no values, just the title
}

func TestUsedRange_QuotesTitle(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Run Results")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Run Results", "C3", 1.5))

	r, err := UsedRange(f, "Run Results")
	require.NoError(t, err)
	assert.Equal(t, `"Run Results"!A1:C3`, r.A1())
}

func TestUsedRange_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := UsedRange(f, "Nope")
	assert.ErrorContains(t, err, "Nope")
}

func TestWorkbookRanges_AllSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Data", "B4", "v"))
	require.NoError(t, f.SetCellValue("Data", "E2", "w"))

	got, err := WorkbookRanges(f)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Sheet1", got["Sheet1"].A1())
	assert.Equal(t, "Data!A1:E4", got["Data"].A1())
}
