package a1

// Source is a range reference in either of its two shapes: raw notation
// Text or a parsed Range. Call sites that accept one or many references
// of either shape take a variadic ...Source, and the ToStrings and
// ToRanges helpers normalize the mix to the form the call needs.
type Source interface {
	a1Source()
}

// Text is a raw A1 notation string Source. It is not validated until
// something parses it.
type Text string

func (Text) a1Source() {}

func (Range) a1Source() {}

// Texts wraps plain strings as Sources, for callers holding a []string.
func Texts(texts ...string) []Source {
	out := make([]Source, len(texts))
	for i, t := range texts {
		out[i] = Text(t)
	}
	return out
}

// ToStrings renders sources to notation strings, typically just before a
// Sheets call. Text passes through verbatim; a Range renders canonically,
// so an invalid Range becomes "".
func ToStrings(srcs ...Source) []string {
	out := make([]string, 0, len(srcs))
	for _, s := range srcs {
		switch v := s.(type) {
		case Text:
			out = append(out, string(v))
		case Range:
			out = append(out, v.A1())
		}
	}
	return out
}

// ToRanges parses sources into Range values, typically on input from
// users or from a Sheets response. Text that fails to parse yields the
// invalid Range in its position.
func ToRanges(srcs ...Source) []Range {
	out := make([]Range, 0, len(srcs))
	for _, s := range srcs {
		switch v := s.(type) {
		case Text:
			out = append(out, Parse(string(v)))
		case Range:
			out = append(out, v)
		}
	}
	return out
}
