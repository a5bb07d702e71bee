package a1

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangePattern captures a whole range reference. Groups: [1] sheet title,
// [2] start column, [3] start row, [4] end column, [5] end row, and for
// the bare single-cell form [6] column, [7] row.
var rangePattern = regexp.MustCompile(`^\s*(?:([\p{L}\p{N}_]+|".+"|'.+')!)?(?:([A-Z]{0,3})(\d*):([A-Z]{0,3})(\d*)|([A-Z]{1,3})(\d+))?\s*$`)

// titlePattern matches a bare sheet title carrying no bounds and no "!".
var titlePattern = regexp.MustCompile(`^\s*([\p{L}\p{N}_]+|".+"|'.+')\s*$`)

// components carries the pieces of a range string between extraction and
// validation. Empty strings and zero rows mean unbounded.
type components struct {
	sheet    string
	startCol string
	endCol   string
	startRow int
	endRow   int
}

// extract splits a range string into its components. It applies the
// unbounded-start rule: a start row with no start column anchors at
// column A, and a start column with no start row anchors at row 1, since
// those are the only cells such a range could start from. End bounds are
// never inferred. The single-cell form collapses both bounds onto the one
// cell named.
func extract(text string) (components, bool) {
	var c components
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		// A title alone still names a whole sheet. Checking it apart from
		// the main pattern keeps that pattern manageable.
		if t := titlePattern.FindStringSubmatch(text); t != nil {
			c.sheet = t[1]
			return c, true
		}
		return c, false
	}

	c.sheet = m[1]
	startCol, startRow, endCol, endRow := m[2], m[3], m[4], m[5]
	if m[6] != "" {
		startCol, startRow, endCol, endRow = m[6], m[7], m[6], m[7]
	}

	var ok bool
	c.startCol, c.endCol = startCol, endCol
	if c.startRow, ok = parseRow(startRow); !ok {
		return components{}, false
	}
	if c.endRow, ok = parseRow(endRow); !ok {
		return components{}, false
	}

	if c.startCol == "" && c.startRow == 0 {
		// No start bound at all. That rejects an end bound with nothing to
		// anchor it, a bare "title!" marker, and the empty string. A whole
		// sheet is addressed by its title alone, without the "!".
		return components{}, false
	}
	if c.startCol == "" {
		c.startCol = "A"
	} else if c.startRow == 0 {
		c.startRow = 1
	}
	return c, true
}

// parseRow converts a row capture to its 1-based value, 0 when absent.
func parseRow(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Parse interprets text as an A1 range reference. Parsing is silent: any
// input that does not describe an addressable range, including one whose
// end column precedes its start column, yields the invalid zero Range
// rather than an error.
func Parse(text string) Range {
	c, ok := extract(text)
	if !ok {
		return Range{}
	}
	r := Range{
		a1:          strings.TrimSpace(text),
		sheet:       c.sheet,
		startCol:    c.startCol,
		endCol:      c.endCol,
		startColIdx: ColToInt(c.startCol),
		endColIdx:   ColToInt(c.endCol),
		startRow:    c.startRow,
		endRow:      c.endRow,
	}
	if r.endCol != "" && r.endColIdx < r.startColIdx {
		// Columns must not decrease. Rows may: C4:BX2 is accepted.
		return Range{}
	}
	return r
}

// MustParse is like Parse but panics on invalid notation. Use it for
// hard-coded range literals, in the manner of regexp.MustCompile.
func MustParse(text string) Range {
	r := Parse(text)
	if !r.Valid() {
		panic(fmt.Sprintf("a1: invalid range notation %q", text))
	}
	return r
}
