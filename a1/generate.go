package a1

import (
	"regexp"
	"strconv"
)

// barewordPattern matches titles that are safe to emit without quoting.
var barewordPattern = regexp.MustCompile(`^[a-zA-Z]+[\p{L}\p{N}_]*$`)

// quoteTitle wraps a title in double quotes unless it is empty, already
// quote-wrapped, or a plain bareword.
func quoteTitle(title string) string {
	if title == "" {
		return ""
	}
	if title[0] == '\'' || title[0] == '"' {
		return title
	}
	if barewordPattern.MatchString(title) {
		return title
	}
	return `"` + title + `"`
}

// Generate renders components as an A1 notation string, or "" when they
// do not describe a valid range. All components are optional: absent rows
// are 0 and absent columns the empty label. A title alone names a whole
// sheet; with any start bound present the bounds are emitted with their
// ":" separator, leaving absent sides blank, so a range with no end bound
// renders with a trailing ":". Column labels that are not A-ZZZ and rows
// below 1 are treated as absent. End bounds without any start bound have
// nothing to anchor them and are dropped.
//
// The output is confirmed by re-parsing before it is returned, so
// components that valid notation cannot express, such as decreasing
// columns, yield "".
func Generate(title string, startCol Col, startRow int, endCol Col, endRow int) string {
	out := quoteTitle(title)

	sc, ec := string(startCol), string(endCol)
	if !colPattern.MatchString(sc) {
		sc = ""
	}
	if !colPattern.MatchString(ec) {
		ec = ""
	}

	if sc != "" || startRow > 0 {
		if out != "" {
			out += "!"
		}
		out += sc
		if startRow > 0 {
			out += strconv.Itoa(startRow)
		}
		out += ":" + ec
		if endRow > 0 {
			out += strconv.Itoa(endRow)
		}
	}

	if !Parse(out).Valid() {
		return ""
	}
	return out
}
