package a1

// An Override replaces one component of a Range during Update. Components
// without an override keep their current value, so clearing a bound takes
// an explicit zero value: WithStartRow(0), or WithEndCol("").
type Override func(*components)

// WithSheet replaces the sheet title.
func WithSheet(title string) Override {
	return func(c *components) { c.sheet = title }
}

// WithStartCol replaces the start column label.
func WithStartCol(col Col) Override {
	return func(c *components) { c.startCol = string(col) }
}

// WithStartRow replaces the 1-based start row.
func WithStartRow(row int) Override {
	return func(c *components) { c.startRow = row }
}

// WithEndCol replaces the end column label.
func WithEndCol(col Col) Override {
	return func(c *components) { c.endCol = string(col) }
}

// WithEndRow replaces the 1-based end row.
func WithEndRow(row int) Override {
	return func(c *components) { c.endRow = row }
}

// Set replaces the range with the parse of text. When text is not valid
// notation Set reports false and the range keeps its previous value.
func (r *Range) Set(text string) bool {
	parsed := Parse(text)
	if !parsed.Valid() {
		return false
	}
	*r = parsed
	return true
}

// Update rewrites the range with the given components replaced, keeping
// the rest. The replacement is rendered and re-parsed as a whole, so an
// update that would produce invalid notation reports false and leaves the
// range unchanged. Inferred start bounds become explicit in the result:
// updating "test!4:ASC" renders its start column as the inferred "A".
func (r *Range) Update(overrides ...Override) bool {
	c := components{
		sheet:    r.sheet,
		startCol: r.startCol,
		endCol:   r.endCol,
		startRow: r.startRow,
		endRow:   r.endRow,
	}
	for _, o := range overrides {
		o(&c)
	}
	return r.Set(Generate(c.sheet, Col(c.startCol), c.startRow, Col(c.endCol), c.endRow))
}

// AppendRows extends the range by n rows at the end. Negative n shrinks
// it and 0 does nothing. A range without bounded rows has no end to
// extend, which counts as success. Moving the end row to or below 0
// fails and leaves the range unchanged.
func (r *Range) AppendRows(n int) bool {
	if !r.RowsBounded() || n == 0 {
		return true
	}
	end := r.endRow + n
	if end <= 0 {
		return false
	}
	return r.Update(WithEndRow(end))
}

// AppendCols extends the range by n columns at the end. Negative n
// shrinks it and 0 does nothing. A range without bounded columns has no
// end to extend, which counts as success. Moving the end column outside
// [A, ZZZ] or before the start column fails and leaves the range
// unchanged.
func (r *Range) AppendCols(n int) bool {
	if !r.ColsBounded() || n == 0 {
		return true
	}
	end := r.endColIdx + n
	if end <= 0 || end > MaxColumns {
		return false
	}
	return r.Update(WithEndCol(ColIndex(end)))
}

// ReduceRows shrinks the range by n rows at the end, AppendRows negated.
func (r *Range) ReduceRows(n int) bool {
	return r.AppendRows(-n)
}

// ReduceCols shrinks the range by n columns at the end, AppendCols
// negated.
func (r *Range) ReduceCols(n int) bool {
	return r.AppendCols(-n)
}

// Reshape re-extents the range from the sheet origin to rows by cols.
// A 0 for either dimension leaves it unbounded, and 0 for both collapses
// the range to the whole-sheet form, which stays addressable only with a
// title. Negative dimensions fail. A cols value past MaxColumns has no
// label and falls back to unbounded, like any other invalid label.
func (r *Range) Reshape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}
	if rows == 0 && cols == 0 {
		return r.Set(Generate(r.sheet, "", 0, "", 0))
	}
	return r.Update(
		WithStartCol("A"),
		WithStartRow(1),
		WithEndCol(ColIndex(cols)),
		WithEndRow(rows),
	)
}
