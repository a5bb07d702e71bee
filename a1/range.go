// Package a1 manipulates Google Sheets A1 range notation.
//
// A full reference has the form
//
//	title!<start col><start row>:<end col><end row>
//
// Rows are 1-based integers and columns are labeled A through ZZZ, so a
// sheet can address at most 18278 columns and 10 million cells. Any bound
// may be absent, which leaves that side of the range unbounded:
//
//	Sheet1      every cell on Sheet1
//	A:B         every row of columns A and B
//	1:6         every column of rows 1 through 6
//	C2:S        columns C through S from row 2 down
//	A45         the single cell A45
//
// Inside the engine a row of 0 and a column label of "" stand for an
// unbounded bound. Columns must not decrease from start to end; rows may,
// since Sheets accepts ranges such as C4:BX2. A title holding anything
// besides letters, digits and underscores may be quoted, and the quoted
// form is kept verbatim.
package a1

// Range is a parsed A1 range reference. The zero Range is the invalid
// range; every non-zero Range holds a string that parsed successfully, so
// its components always satisfy the notation rules. Mutating methods
// rebuild and re-parse the whole string, and leave the Range untouched
// when the result would not be valid.
type Range struct {
	a1          string
	sheet       string
	startCol    string
	endCol      string
	startColIdx int
	endColIdx   int
	startRow    int
	endRow      int
}

// Valid reports whether the range holds a parsed reference.
func (r Range) Valid() bool {
	return r.a1 != ""
}

// A1 returns the range in A1 notation, or "" when invalid.
func (r Range) A1() string {
	return r.a1
}

// String returns the A1 notation, or "<invalid>" for the invalid range.
func (r Range) String() string {
	if r.a1 == "" {
		return "<invalid>"
	}
	return r.a1
}

// Sheet returns the sheet title, empty when the range addresses the first
// sheet implicitly. Quoted titles keep their quotes.
func (r Range) Sheet() string {
	return r.sheet
}

// StartCol returns the start column label, empty when unbounded.
func (r Range) StartCol() string {
	return r.startCol
}

// EndCol returns the end column label, empty when unbounded.
func (r Range) EndCol() string {
	return r.endCol
}

// StartColIndex returns the 1-based start column index, 0 when unbounded.
func (r Range) StartColIndex() int {
	return r.startColIdx
}

// EndColIndex returns the 1-based end column index, 0 when unbounded.
func (r Range) EndColIndex() int {
	return r.endColIdx
}

// StartRow returns the 1-based start row, 0 when unbounded.
func (r Range) StartRow() int {
	return r.startRow
}

// EndRow returns the 1-based end row, 0 when unbounded.
func (r Range) EndRow() int {
	return r.endRow
}

// RowsBounded reports whether both start and end rows are present.
func (r Range) RowsBounded() bool {
	return r.startRow > 0 && r.endRow > 0
}

// ColsBounded reports whether both start and end columns are present.
func (r Range) ColsBounded() bool {
	return r.startCol != "" && r.endCol != ""
}

// Bounded reports whether the range is a closed rectangle in both
// dimensions.
func (r Range) Bounded() bool {
	return r.RowsBounded() && r.ColsBounded()
}

// NumRows returns the row extent, end minus start. Unbounded rows have no
// knowable extent and report 0.
func (r Range) NumRows() int {
	if !r.RowsBounded() {
		return 0
	}
	return r.endRow - r.startRow
}

// NumCols returns the column extent, end minus start. Unbounded columns
// have no knowable extent and report 0.
func (r Range) NumCols() int {
	if !r.ColsBounded() {
		return 0
	}
	return r.endColIdx - r.startColIdx
}

// CellCount returns the number of cells covered by a fully bounded range.
// Without knowing the sheet dimensions an unbounded range has no cell
// count, so it reports 0.
func (r Range) CellCount() int {
	if !r.Bounded() {
		return 0
	}
	return (r.endRow - r.startRow) * (r.endColIdx - r.startColIdx + 1)
}

// Dimensions returns the integer coordinates of the range. Zero values
// mark unbounded sides.
func (r Range) Dimensions() (startCol, startRow, endCol, endRow int) {
	return r.startColIdx, r.startRow, r.endColIdx, r.endRow
}

// Equal reports whether two ranges hold the same notation string.
func (r Range) Equal(other Range) bool {
	return r.a1 == other.a1
}

// Contains reports whether inner lies completely inside r. Both ranges
// must be valid and name the same sheet title. An unbounded dimension is
// treated as infinite, so it admits any bounds of the inner range, while
// a bounded dimension only contains an inner range bounded within it.
func (r Range) Contains(inner Range) bool {
	if !r.Valid() || !inner.Valid() || r.sheet != inner.sheet {
		return false
	}
	switch {
	case r.Bounded():
		return inner.Bounded() &&
			inner.startColIdx >= r.startColIdx && inner.endColIdx <= r.endColIdx &&
			inner.startRow >= r.startRow && inner.endRow <= r.endRow
	case r.RowsBounded():
		return inner.RowsBounded() &&
			inner.startRow >= r.startRow && inner.endRow <= r.endRow
	case r.ColsBounded():
		return inner.ColsBounded() &&
			inner.startColIdx >= r.startColIdx && inner.endColIdx <= r.endColIdx
	default:
		// Only the title is bounded, so any range on the same sheet fits.
		return true
	}
}
