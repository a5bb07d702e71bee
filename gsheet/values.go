package gsheet

import (
	"fmt"

	"github.com/brettgrand/brettgws/a1"
	"google.golang.org/api/sheets/v4"
)

// bareTitle strips one layer of matching quotes from a sheet title, so
// the spellings 'run results' and "run results" compare equal to the
// plain worksheet title.
func bareTitle(title string) string {
	if len(title) >= 2 {
		if q := title[0]; (q == '\'' || q == '"') && title[len(title)-1] == q {
			return title[1 : len(title)-1]
		}
	}
	return title
}

// QualifyRanges validates ranges for a values call against this
// worksheet and returns their canonical strings. Untitled ranges adopt
// the worksheet title; ranges addressing another sheet are rejected,
// as the values endpoints operate on one sheet at a time.
func (s *Sheet) QualifyRanges(ranges ...a1.Source) ([]string, error) {
	texts := a1.ToStrings(ranges...)
	out := make([]string, 0, len(ranges))
	for i, r := range a1.ToRanges(ranges...) {
		if !r.Valid() {
			return nil, fmt.Errorf("invalid range %q for sheet %q", texts[i], s.Title())
		}
		switch {
		case r.Sheet() == "":
			if !r.Update(a1.WithSheet(s.Title())) {
				return nil, fmt.Errorf("cannot qualify range %q with sheet %q", texts[i], s.Title())
			}
		case bareTitle(r.Sheet()) != s.Title():
			return nil, fmt.Errorf("range %q addresses sheet %q, not %q", texts[i], r.Sheet(), s.Title())
		}
		out = append(out, r.A1())
	}
	return out, nil
}

// BatchClearRequest builds the body of a values.batchClear call
// clearing the given ranges on this worksheet. A nil body means no
// ranges were given and there is nothing to clear.
func (s *Sheet) BatchClearRequest(ranges ...a1.Source) (*sheets.BatchClearValuesRequest, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	qualified, err := s.QualifyRanges(ranges...)
	if err != nil {
		return nil, err
	}
	return &sheets.BatchClearValuesRequest{Ranges: qualified}, nil
}

// valueOptions carries the render and input settings shared by the
// values call builders.
type valueOptions struct {
	dimension      string
	valueRender    string
	dateTimeRender string
	valueInput     string
	includeValues  bool
}

func newValueOptions() *valueOptions {
	return &valueOptions{
		dimension:      "ROWS",
		valueRender:    "FORMATTED",
		dateTimeRender: "SERIAL",
		valueInput:     "USER",
	}
}

// ValueOption configures a values call.
type ValueOption func(*valueOptions)

// WithMajorDimension sets whether value arrays run along rows or
// columns (default: rows).
func WithMajorDimension(dimension string) ValueOption {
	return func(o *valueOptions) { o.dimension = dimension }
}

// WithValueRender sets how read values are rendered (default:
// formatted).
func WithValueRender(option string) ValueOption {
	return func(o *valueOptions) { o.valueRender = option }
}

// WithDateTimeRender sets how dates and times are rendered when values
// are read unformatted (default: serial numbers).
func WithDateTimeRender(option string) ValueOption {
	return func(o *valueOptions) { o.dateTimeRender = option }
}

// WithValueInput sets how written values are interpreted (default: as
// if typed by the user).
func WithValueInput(option string) ValueOption {
	return func(o *valueOptions) { o.valueInput = option }
}

// WithValuesInResponse asks a values update to echo the written cells
// back in its response.
func WithValuesInResponse(include bool) ValueOption {
	return func(o *valueOptions) { o.includeValues = include }
}

// renderPair validates the render settings together. An invalid
// date/time render is tolerated while values are read formatted, since
// the API ignores the setting for FORMATTED_VALUE.
func (o *valueOptions) renderPair() (valueRender, dateTimeRender string, err error) {
	vr, err := ValueRender(o.valueRender)
	if err != nil {
		return "", "", err
	}
	dtr, err := DateTimeRender(o.dateTimeRender)
	if err != nil {
		if vr != "FORMATTED_VALUE" {
			return "", "", err
		}
		dtr = ""
	}
	return vr, dtr, nil
}

// GetParams carries the validated query of a values.batchGet call: the
// qualified ranges plus the render settings for the returned values.
type GetParams struct {
	Ranges         []string
	MajorDimension string
	ValueRender    string
	DateTimeRender string
}

// BatchGetParams validates ranges and render options for a
// values.batchGet call on this worksheet. Nil params mean no ranges
// were given and there is nothing to fetch.
func (s *Sheet) BatchGetParams(ranges []a1.Source, opts ...ValueOption) (*GetParams, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	qualified, err := s.QualifyRanges(ranges...)
	if err != nil {
		return nil, err
	}
	o := newValueOptions()
	for _, opt := range opts {
		opt(o)
	}
	dim, err := Dimension(o.dimension)
	if err != nil {
		return nil, err
	}
	vr, dtr, err := o.renderPair()
	if err != nil {
		return nil, err
	}
	return &GetParams{
		Ranges:         qualified,
		MajorDimension: dim,
		ValueRender:    vr,
		DateTimeRender: dtr,
	}, nil
}

// BatchUpdateValuesRequest builds the body of a values.batchUpdate
// call writing the given value ranges to this worksheet. Each entry's
// Range is rewritten in place to its qualified canonical form and its
// MajorDimension, when set, to the API value. A nil body means no data
// was given.
func (s *Sheet) BatchUpdateValuesRequest(data []*sheets.ValueRange, opts ...ValueOption) (*sheets.BatchUpdateValuesRequest, error) {
	if len(data) == 0 {
		return nil, nil
	}
	for _, vr := range data {
		if vr == nil {
			return nil, fmt.Errorf("nil value range for sheet %q", s.Title())
		}
		qualified, err := s.QualifyRanges(a1.Text(vr.Range))
		if err != nil {
			return nil, err
		}
		vr.Range = qualified[0]
		if vr.MajorDimension != "" {
			dim, err := Dimension(vr.MajorDimension)
			if err != nil {
				return nil, err
			}
			vr.MajorDimension = dim
		}
	}
	o := newValueOptions()
	for _, opt := range opts {
		opt(o)
	}
	input, err := ValueInput(o.valueInput)
	if err != nil {
		return nil, err
	}
	render, dtr, err := o.renderPair()
	if err != nil {
		return nil, err
	}
	return &sheets.BatchUpdateValuesRequest{
		ValueInputOption:             input,
		Data:                         data,
		IncludeValuesInResponse:      o.includeValues,
		ResponseValueRenderOption:    render,
		ResponseDateTimeRenderOption: dtr,
	}, nil
}
