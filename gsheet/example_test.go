package gsheet_test

import (
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/brettgrand/brettgws/a1"
	"github.com/brettgrand/brettgws/gsheet"
)

func ExampleSheet_UpdateRequests() {
	s, _ := gsheet.NewSheet("demo-spreadsheet", &sheets.Sheet{
		Properties: &sheets.SheetProperties{
			SheetId:   7,
			Title:     "data",
			SheetType: "GRID",
			GridProperties: &sheets.GridProperties{
				RowCount:    100,
				ColumnCount: 26,
			},
		},
	})

	body, _ := s.UpdateRequests().
		AppendDimension(20, "ROWS").
		ReduceDimension(6, "COLS").
		Build()

	// Two requests in one batch; the updated spreadsheet is forced into
	// the response because the grid changed.
	fmt.Println(len(body.Requests), body.IncludeSpreadsheetInResponse)
	// Output: 2 true
}

func ExampleSheet_BatchClearRequest() {
	s, _ := gsheet.NewSheet("demo-spreadsheet", &sheets.Sheet{
		Properties: &sheets.SheetProperties{
			SheetId:   7,
			Title:     "data",
			SheetType: "GRID",
			GridProperties: &sheets.GridProperties{
				RowCount:    100,
				ColumnCount: 26,
			},
		},
	})

	body, _ := s.BatchClearRequest(a1.Text("C4:D9"), a1.MustParse("data!F1"))
	fmt.Println(body.Ranges)
	// Output: [data!C4:D9 data!F1]
}
