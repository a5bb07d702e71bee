package a1

import "regexp"

const (
	// MaxColumns is the highest addressable column index, label "ZZZ".
	MaxColumns = 18278

	// MaxCells is the Sheets per-sheet cell ceiling, rows times columns.
	MaxCells = 10_000_000
)

// colPattern matches a bare column label from A to ZZZ.
var colPattern = regexp.MustCompile(`^[A-Z]{1,3}$`)

// Col is a column label argument for Generate and the Update overrides.
// The empty label stands for an unbounded column.
type Col string

// ColIndex converts a 1-based column index to its label, for callers that
// work in integer coordinates. Indexes outside [1, MaxColumns] yield the
// unbounded label.
func ColIndex(index int) Col {
	return Col(IntToCol(index))
}

// Index returns the 1-based index of the label, 0 when unbounded or not a
// valid label.
func (c Col) Index() int {
	return ColToInt(string(c))
}

// ColToInt converts a column label A-ZZZ to its 1-based index, "A" → 1.
// Anything but 1 to 3 uppercase letters returns 0, so 0 doubles as the
// unbounded marker.
func ColToInt(column string) int {
	if !colPattern.MatchString(column) {
		return 0
	}
	n := 0
	for _, c := range column {
		n = n*26 + int(c-'A') + 1
	}
	return n
}

// IntToCol converts a 1-based column index to its label, 1 → "A",
// 18278 → "ZZZ". Indexes outside [1, MaxColumns] return "".
func IntToCol(index int) string {
	if index <= 0 || index > MaxColumns {
		return ""
	}
	col := ""
	for n := index; n > 0; {
		n-- // shift to 0-based for the digit
		col = string(rune('A'+n%26)) + col
		n /= 26
	}
	return col
}
