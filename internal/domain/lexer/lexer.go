// Package lexer splits source text into code spans and string literal spans.
//
// It knows just enough about quoting to never cut inside an escape sequence
// or a template interpolation: single, double and backtick quotes,
// backslash escapes, ${...} blocks with nested braces and strings, and line
// and block comments.
package lexer

import (
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// State is the lexer's current mode.
type State int

// The closed set of lexer states.
const (
	StateOutside State = iota
	StateSingle
	StateDouble
	StateBacktick
	StateInterpolation
	StateLineComment
	StateBlockComment
)

func (s State) String() string {
	switch s {
	case StateOutside:
		return "outside"
	case StateSingle:
		return "single"
	case StateDouble:
		return "double"
	case StateBacktick:
		return "backtick"
	case StateInterpolation:
		return "interpolation"
	case StateLineComment:
		return "line-comment"
	case StateBlockComment:
		return "block-comment"
	default:
		return "unknown"
	}
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithComments toggles comment awareness. When off, quotes inside comments
// open literals like anywhere else.
func WithComments(enabled bool) Option {
	return func(l *Lexer) {
		l.comments = enabled
	}
}

// frame is a string, comment or interpolation nested inside an
// interpolation block. Its content is copied verbatim. delim is 0 for an
// interpolation frame, '/' for a line comment and '*' for a block comment.
type frame struct {
	delim byte
	depth int
}

const (
	lineCommentFrame  byte = '/'
	blockCommentFrame byte = '*'
)

// Lexer is a single-pass state machine over decoded file text.
type Lexer struct {
	text     string
	pos      int
	state    State
	comments bool

	segStart int
	quote    m.QuoteStyle
	depth    int
	nested   []frame

	spans []m.Span
	done  bool
}

// New creates a lexer positioned at the start of text.
func New(text string, opts ...Option) *Lexer {
	l := &Lexer{text: text, comments: true}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Tokenize returns the ordered spans of text. Concatenating their Text
// fields reproduces text exactly.
func Tokenize(text string, opts ...Option) []m.Span {
	return New(text, opts...).Run()
}

// Reassemble concatenates span texts.
func Reassemble(spans []m.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}

	return sb.String()
}

// Run steps until the end of input and returns all spans.
func (l *Lexer) Run() []m.Span {
	for l.Step() {
	}

	return l.spans
}

// State returns the current state.
func (l *Lexer) State() State {
	return l.state
}

// Pos returns the byte offset of the next unread character.
func (l *Lexer) Pos() int {
	return l.pos
}

// Spans returns the spans emitted so far.
func (l *Lexer) Spans() []m.Span {
	return l.spans
}

// Step consumes one character class (a rune, an escape pair, or a two-byte
// opener) and applies the matching transition. It returns false once the
// input is exhausted and the trailing segment has been flushed.
func (l *Lexer) Step() bool {
	if l.pos >= len(l.text) {
		l.finish()

		return false
	}

	switch l.state {
	case StateOutside:
		l.stepOutside()
	case StateSingle:
		l.stepQuoted('\'')
	case StateDouble:
		l.stepQuoted('"')
	case StateBacktick:
		l.stepBacktick()
	case StateInterpolation:
		l.stepInterpolation()
	case StateLineComment:
		l.stepLineComment()
	case StateBlockComment:
		l.stepBlockComment()
	}

	return true
}

func (l *Lexer) stepOutside() {
	switch {
	case l.text[l.pos] == '\'':
		l.openLiteral(m.QuoteSingle, StateSingle)
	case l.text[l.pos] == '"':
		l.openLiteral(m.QuoteDouble, StateDouble)
	case l.text[l.pos] == '`':
		l.openLiteral(m.QuoteBacktick, StateBacktick)
	case l.comments && l.hasPrefix("//"):
		l.pos += 2
		l.state = StateLineComment
	case l.comments && l.hasPrefix("/*"):
		l.pos += 2
		l.state = StateBlockComment
	default:
		l.advanceRune()
	}
}

func (l *Lexer) stepLineComment() {
	if l.text[l.pos] == '\n' {
		l.state = StateOutside
	}

	l.advanceRune()
}

func (l *Lexer) stepBlockComment() {
	if l.hasPrefix("*/") {
		l.pos += 2
		l.state = StateOutside

		return
	}

	l.advanceRune()
}

// stepQuoted handles '...' and "..." literals. An unescaped newline ends the
// literal without consuming the newline, so a stray quote cannot swallow the
// rest of the file.
func (l *Lexer) stepQuoted(delim byte) {
	switch l.text[l.pos] {
	case '\\':
		l.skipEscape()
	case delim:
		l.closeLiteral()
	case '\n':
		l.emit(m.SpanLiteral, l.pos)
		l.state = StateOutside
	default:
		l.advanceRune()
	}
}

func (l *Lexer) stepBacktick() {
	switch {
	case l.text[l.pos] == '\\':
		l.skipEscape()
	case l.text[l.pos] == '`':
		l.closeLiteral()
	case l.hasPrefix("${"):
		l.emit(m.SpanLiteral, l.pos)
		l.pos += 2
		l.depth = 1
		l.state = StateInterpolation
	default:
		l.advanceRune()
	}
}

func (l *Lexer) stepInterpolation() {
	if len(l.nested) > 0 {
		l.stepNested()

		return
	}

	if l.openNestedComment() {
		return
	}

	switch c := l.text[l.pos]; c {
	case '{':
		l.depth++
		l.pos++
	case '}':
		l.depth--
		l.pos++

		if l.depth == 0 {
			l.emit(m.SpanCode, l.pos)
			l.state = StateBacktick
		}
	case '\'', '"', '`':
		l.nested = append(l.nested, frame{delim: c})
		l.pos++
	default:
		l.advanceRune()
	}
}

// openNestedComment pushes a comment frame when a comment starts inside an
// interpolation block.
func (l *Lexer) openNestedComment() bool {
	if !l.comments {
		return false
	}

	switch {
	case l.hasPrefix("//"):
		l.nested = append(l.nested, frame{delim: lineCommentFrame})
	case l.hasPrefix("/*"):
		l.nested = append(l.nested, frame{delim: blockCommentFrame})
	default:
		return false
	}

	l.pos += 2

	return true
}

// stepNested copies strings, comments and interpolations inside an
// interpolation block without letting their braces affect the outer depth.
func (l *Lexer) stepNested() {
	top := len(l.nested) - 1
	c := l.text[l.pos]

	switch l.nested[top].delim {
	case lineCommentFrame:
		if c == '\n' {
			l.nested = l.nested[:top]
		}

		l.advanceRune()

		return
	case blockCommentFrame:
		if l.hasPrefix("*/") {
			l.nested = l.nested[:top]
			l.pos += 2

			return
		}

		l.advanceRune()

		return
	}

	if l.nested[top].delim == 0 {
		if l.openNestedComment() {
			return
		}

		switch c {
		case '{':
			l.nested[top].depth++
		case '}':
			l.nested[top].depth--
			if l.nested[top].depth == 0 {
				l.nested = l.nested[:top]
			}
		case '\'', '"', '`':
			l.nested = append(l.nested, frame{delim: c})
		default:
			l.advanceRune()

			return
		}

		l.pos++

		return
	}

	delim := l.nested[top].delim

	switch {
	case c == '\\':
		l.skipEscape()
	case c == delim:
		l.nested = l.nested[:top]
		l.pos++
	case delim == '`' && l.hasPrefix("${"):
		l.nested = append(l.nested, frame{depth: 1})
		l.pos += 2
	case c == '\n' && delim != '`':
		l.nested = l.nested[:top]
		l.pos++
	default:
		l.advanceRune()
	}
}

func (l *Lexer) openLiteral(q m.QuoteStyle, s State) {
	l.pos++
	l.emit(m.SpanCode, l.pos)
	l.quote = q
	l.state = s
}

func (l *Lexer) closeLiteral() {
	l.emit(m.SpanLiteral, l.pos)
	l.pos++
	l.state = StateOutside
}

// finish flushes the trailing segment. An unterminated literal is emitted as
// a literal span.
func (l *Lexer) finish() {
	if l.done {
		return
	}

	l.done = true

	kind := m.SpanCode
	if l.inLiteral() {
		kind = m.SpanLiteral
	}

	l.emit(kind, len(l.text))
}

func (l *Lexer) inLiteral() bool {
	return l.state == StateSingle || l.state == StateDouble || l.state == StateBacktick
}

// emit closes the current segment at end. Empty segments produce nothing.
func (l *Lexer) emit(kind m.SpanKind, end int) {
	if end > l.segStart {
		span := m.Span{
			Kind:  kind,
			Start: l.segStart,
			End:   end,
			Text:  l.text[l.segStart:end],
		}
		if kind == m.SpanLiteral {
			span.Quote = l.quote
		}

		l.spans = append(l.spans, span)
	}

	l.segStart = end
}

// skipEscape consumes a backslash and the whole rune after it.
func (l *Lexer) skipEscape() {
	l.pos++
	if l.pos < len(l.text) {
		l.advanceRune()
	}
}

func (l *Lexer) advanceRune() {
	_, size := utf8.DecodeRuneInString(l.text[l.pos:])
	l.pos += size
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.text[l.pos:], s)
}
