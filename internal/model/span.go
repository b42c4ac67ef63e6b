package model

// QuoteStyle identifies the delimiter of a string literal.
type QuoteStyle int

const (
	// QuoteNone marks code spans.
	QuoteNone QuoteStyle = iota
	// QuoteSingle is a '...' literal.
	QuoteSingle
	// QuoteDouble is a "..." literal.
	QuoteDouble
	// QuoteBacktick is a `...` template literal; it may contain ${...} blocks.
	QuoteBacktick
)

func (q QuoteStyle) String() string {
	switch q {
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	case QuoteBacktick:
		return "backtick"
	default:
		return "none"
	}
}

// SpanKind tells whether a span is copied verbatim or analysed.
type SpanKind int

const (
	// SpanCode is copied to the output unchanged.
	SpanCode SpanKind = iota
	// SpanLiteral holds string literal content, delimiters excluded.
	SpanLiteral
)

// Span is a contiguous range of decoded file text. Start and End are byte
// offsets; Text is always text[Start:End].
type Span struct {
	Kind  SpanKind
	Start int
	End   int
	Quote QuoteStyle
	Text  string
}

// IsLiteral reports whether the span is literal content.
func (s Span) IsLiteral() bool {
	return s.Kind == SpanLiteral
}
