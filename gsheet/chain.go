package gsheet

import (
	"fmt"

	"github.com/brettgrand/brettgws/a1"
	"google.golang.org/api/sheets/v4"
)

// UpdateChain accumulates structural requests against one worksheet
// for a single spreadsheets.batchUpdate call, since one batch of n
// requests beats n round trips. Operations validate eagerly; the first
// failure sticks and later calls become no-ops, so call sites can
// chain freely and check once:
//
//	body, err := sheet.UpdateRequests().
//		AppendDimension(5, "ROWS").
//		ReduceDimension(2, "COLS").
//		Build()
type UpdateChain struct {
	sheet      *Sheet
	requests   []*sheets.Request
	needsSheet bool
	err        error
}

// UpdateRequests starts an empty request chain for the worksheet.
func (s *Sheet) UpdateRequests() *UpdateChain {
	return &UpdateChain{sheet: s}
}

func (c *UpdateChain) fail(err error) *UpdateChain {
	if c.err == nil {
		c.err = err
	}
	return c
}

// size returns the current grid count for an already normalized
// dimension value.
func (c *UpdateChain) size(dim string) int64 {
	if dim == "COLUMNS" {
		return c.sheet.Cols()
	}
	return c.sheet.Rows()
}

// Err returns the first error recorded by the chain.
func (c *UpdateChain) Err() error { return c.err }

// Len returns the number of accumulated requests.
func (c *UpdateChain) Len() int { return len(c.requests) }

// Requests returns the accumulated requests.
func (c *UpdateChain) Requests() []*sheets.Request { return c.requests }

// Add appends arbitrary requests to the chain, for request types the
// chain has no shorthand for. Unlike the dimension operations it does
// not mark the cached worksheet stale, since the chain cannot tell
// whether the requests change the grid.
func (c *UpdateChain) Add(reqs ...*sheets.Request) *UpdateChain {
	if c.err != nil {
		return c
	}
	c.requests = append(c.requests, reqs...)
	return c
}

// AppendDimension grows the grid by num rows or columns at its end.
// Zero is a no-op; shrinking goes through ReduceDimension.
func (c *UpdateChain) AppendDimension(num int64, dimension string) *UpdateChain {
	if c.err != nil || num == 0 {
		return c
	}
	if num < 0 {
		return c.fail(fmt.Errorf("cannot append %d %s: count must be positive", num, dimension))
	}
	dim, err := Dimension(dimension)
	if err != nil {
		return c.fail(err)
	}
	c.requests = append(c.requests, &sheets.Request{
		AppendDimension: &sheets.AppendDimensionRequest{
			SheetId:   c.sheet.SheetID(),
			Dimension: dim,
			Length:    num,
		},
	})
	c.needsSheet = true
	return c
}

// ReduceDimension shrinks the grid by num rows or columns from its
// end. Zero is a no-op; reducing past an empty grid is an error.
func (c *UpdateChain) ReduceDimension(num int64, dimension string) *UpdateChain {
	if c.err != nil || num == 0 {
		return c
	}
	if num < 0 {
		return c.fail(fmt.Errorf("cannot reduce %d %s: count must be positive", num, dimension))
	}
	dim, err := Dimension(dimension)
	if err != nil {
		return c.fail(err)
	}
	size := c.size(dim)
	start := size - num
	if start < 0 {
		return c.fail(fmt.Errorf("cannot reduce %s by %d: only %d present", dim, num, size))
	}
	return c.DeleteDimension(start, -1, dim)
}

// DeleteDimension removes the half-open index interval [start, end) of
// rows or columns. A non-positive end deletes through the end of the
// grid; a negative start is a no-op.
func (c *UpdateChain) DeleteDimension(start, end int64, dimension string) *UpdateChain {
	if c.err != nil || start < 0 {
		return c
	}
	dim, err := Dimension(dimension)
	if err != nil {
		return c.fail(err)
	}
	dr := &sheets.DimensionRange{
		SheetId:    c.sheet.SheetID(),
		Dimension:  dim,
		StartIndex: start,
	}
	if end > 0 {
		// An unset end index means "through the end", leaving [0, start).
		dr.EndIndex = end
	}
	c.requests = append(c.requests, &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{Range: dr},
	})
	c.needsSheet = true
	return c
}

// InsertDimension inserts num rows or columns before index, shifting
// the remainder down or right. inheritFromBefore gives the new cells
// the properties of those before the insertion point rather than
// after; the API requires it false when inserting at index 0.
func (c *UpdateChain) InsertDimension(index, num int64, dimension string, inheritFromBefore bool) *UpdateChain {
	if c.err != nil || num == 0 {
		return c
	}
	if num < 0 {
		return c.fail(fmt.Errorf("cannot insert %d %s: count must be positive", num, dimension))
	}
	dim, err := Dimension(dimension)
	if err != nil {
		return c.fail(err)
	}
	if index < 0 {
		return c.fail(fmt.Errorf("cannot insert %s at negative index %d", dim, index))
	}
	if size := c.size(dim); index > size {
		return c.fail(fmt.Errorf("cannot insert %s at index %d: grid has %d", dim, index, size))
	}
	c.requests = append(c.requests, &sheets.Request{
		InsertDimension: &sheets.InsertDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    c.sheet.SheetID(),
				Dimension:  dim,
				StartIndex: index,
				EndIndex:   index + num,
			},
			InheritFromBefore: inheritFromBefore,
		},
	})
	c.needsSheet = true
	return c
}

// SetDimensions grows or shrinks one dimension to exactly num,
// appending to or deleting from the end as needed.
func (c *UpdateChain) SetDimensions(num int64, dimension string) *UpdateChain {
	if c.err != nil {
		return c
	}
	dim, err := Dimension(dimension)
	if err != nil {
		return c.fail(err)
	}
	cur := c.size(dim)
	switch {
	case num > cur:
		return c.AppendDimension(num-cur, dim)
	case num < cur:
		return c.DeleteDimension(num, -1, dim)
	}
	return c
}

// ExpandDimensions appends rows and columns in one go.
func (c *UpdateChain) ExpandDimensions(rows, cols int64) *UpdateChain {
	return c.AppendDimension(rows, "ROWS").AppendDimension(cols, "COLUMNS")
}

// ReshapeDimensions sets the grid to exactly rows by cols. The product
// is capped at a1.MaxCells, the per-spreadsheet cell limit.
func (c *UpdateChain) ReshapeDimensions(rows, cols int64) *UpdateChain {
	if c.err != nil {
		return c
	}
	// rows*cols can wrap int64.
	if cols > 0 && rows > a1.MaxCells/cols {
		return c.fail(fmt.Errorf("cannot reshape to %dx%d: exceeds the %d cell limit", rows, cols, a1.MaxCells))
	}
	return c.SetDimensions(rows, "ROWS").SetDimensions(cols, "COLUMNS")
}

type buildOptions struct {
	includeSpreadsheet bool
	responseRanges     []string
	includeGridData    bool
}

// BuildOption configures the assembled batch update body.
type BuildOption func(*buildOptions)

// WithSpreadsheetInResponse asks the API to return the updated
// spreadsheet in the batch response. Chains holding dimension changes
// force this on regardless, so the cached Sheet can be refreshed.
func WithSpreadsheetInResponse(include bool) BuildOption {
	return func(o *buildOptions) { o.includeSpreadsheet = include }
}

// WithResponseRanges narrows the returned spreadsheet to the given
// ranges.
func WithResponseRanges(ranges ...a1.Source) BuildOption {
	return func(o *buildOptions) { o.responseRanges = a1.ToStrings(ranges...) }
}

// WithResponseGridData asks for cell data in the returned spreadsheet,
// not just properties.
func WithResponseGridData(include bool) BuildOption {
	return func(o *buildOptions) { o.includeGridData = include }
}

// Build assembles the accumulated requests into a batch update body.
// It reports the first error recorded by the chain, and returns a nil
// body for an empty chain: there is nothing to send.
func (c *UpdateChain) Build(opts ...BuildOption) (*sheets.BatchUpdateSpreadsheetRequest, error) {
	if c.err != nil {
		return nil, c.err
	}
	if len(c.requests) == 0 {
		return nil, nil
	}
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &sheets.BatchUpdateSpreadsheetRequest{
		Requests:                     c.requests,
		IncludeSpreadsheetInResponse: o.includeSpreadsheet || c.needsSheet,
		ResponseRanges:               o.responseRanges,
		ResponseIncludeGridData:      o.includeGridData,
	}, nil
}
