package gsheet

import (
	"fmt"
	"strings"
)

// Accepted spellings for the Sheets API enum parameters, keyed by their
// uppercased form. Short and long spellings map to the same API value.
var (
	dimensions = map[string]string{
		"ROWS":    "ROWS",
		"R":       "ROWS",
		"COLUMNS": "COLUMNS",
		"COLS":    "COLUMNS",
		"C":       "COLUMNS",
	}
	valueRenders = map[string]string{
		"FORMATTED":         "FORMATTED_VALUE",
		"FORMATTED_VALUE":   "FORMATTED_VALUE",
		"UNFORMATTED":       "UNFORMATTED_VALUE",
		"UNFORMATTED_VALUE": "UNFORMATTED_VALUE",
		"FORMULA":           "FORMULA",
	}
	dateTimeRenders = map[string]string{
		"SERIAL":           "SERIAL_NUMBER",
		"SERIAL_NUMBER":    "SERIAL_NUMBER",
		"FORMATTED":        "FORMATTED_STRING",
		"FORMATTED_STRING": "FORMATTED_STRING",
	}
	valueInputs = map[string]string{
		"RAW":          "RAW",
		"USER":         "USER_ENTERED",
		"USER_ENTERED": "USER_ENTERED",
	}
)

// Dimension maps a dimension spelling to its API value. "R" and "ROWS"
// mean ROWS; "C", "COLS" and "COLUMNS" mean COLUMNS. Spellings are case
// insensitive.
func Dimension(dimension string) (string, error) {
	if v, ok := dimensions[strings.ToUpper(dimension)]; ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid dimension %q: want ROWS or COLUMNS", dimension)
}

// ValueRender maps a value render spelling to its API value:
// FORMATTED_VALUE, UNFORMATTED_VALUE or FORMULA.
func ValueRender(option string) (string, error) {
	if v, ok := valueRenders[strings.ToUpper(option)]; ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid value render option %q: want FORMATTED_VALUE, UNFORMATTED_VALUE or FORMULA", option)
}

// DateTimeRender maps a date/time render spelling to its API value:
// SERIAL_NUMBER or FORMATTED_STRING.
func DateTimeRender(option string) (string, error) {
	if v, ok := dateTimeRenders[strings.ToUpper(option)]; ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid date/time render option %q: want SERIAL_NUMBER or FORMATTED_STRING", option)
}

// ValueInput maps a value input spelling to its API value: RAW or
// USER_ENTERED.
func ValueInput(option string) (string, error) {
	if v, ok := valueInputs[strings.ToUpper(option)]; ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid value input option %q: want RAW or USER_ENTERED", option)
}
