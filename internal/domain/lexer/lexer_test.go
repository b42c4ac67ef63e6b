package lexer

import (
	"testing"

	m "github.com/mouse-blink/mojifix/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literals(spans []m.Span) []string {
	var out []string

	for _, s := range spans {
		if s.IsLiteral() {
			out = append(out, s.Text)
		}
	}

	return out
}

func TestTokenize_Reassembles(t *testing.T) {
	inputs := []string{
		"",
		"no literals at all",
		`const a = "x", b = 'y', c = ` + "`z`;",
		`msg = "escaped \" quote" + 'it\'s';`,
		"tpl = `a ${ obj['k}'] + {x: 1}.x } b ${`in ${deep}`} c`;",
		"// don't\n/* it's */ x = 'ok'",
		`unterminated = "abc`,
		"trailing backslash = 'abc\\",
		"arabic = \"ط§ظ„ط¹ط±ط¨ظٹط©\";\n",
		"open = `never ${ closed",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			spans := Tokenize(in)
			assert.Equal(t, in, Reassemble(spans))

			pos := 0
			for _, s := range spans {
				assert.Equal(t, pos, s.Start, "gap or overlap before %q", s.Text)
				assert.Equal(t, in[s.Start:s.End], s.Text)
				pos = s.End
			}
			assert.Equal(t, len(in), pos)
		})
	}
}

func TestTokenize_QuoteStyles(t *testing.T) {
	spans := Tokenize(`f("dq", 'sq', ` + "`bt`)")

	var got []m.QuoteStyle
	for _, s := range spans {
		if s.IsLiteral() {
			got = append(got, s.Quote)
		}
	}

	assert.Equal(t, []string{"dq", "sq", "bt"}, literals(spans))
	assert.Equal(t, []m.QuoteStyle{m.QuoteDouble, m.QuoteSingle, m.QuoteBacktick}, got)
}

func TestTokenize_EscapedQuoteDoesNotSplit(t *testing.T) {
	in := `x = "say \"hi\" now";`
	spans := Tokenize(in)

	require.Equal(t, []string{`say \"hi\" now`}, literals(spans))
	assert.Equal(t, in, Reassemble(spans))
}

func TestTokenize_EscapedBackslashBeforeQuote(t *testing.T) {
	spans := Tokenize(`a = 'dir\\'; b = 'c'`)

	assert.Equal(t, []string{`dir\\`, "c"}, literals(spans))
}

func TestTokenize_Interpolation(t *testing.T) {
	in := "t = `before ${ fn({a: '}'}, \"{\") } after`;"
	spans := Tokenize(in)

	assert.Equal(t, []string{"before ", " after"}, literals(spans))
	assert.Equal(t, in, Reassemble(spans))

	var code []string
	for _, s := range spans {
		if !s.IsLiteral() {
			code = append(code, s.Text)
		}
	}
	assert.Contains(t, code, "${ fn({a: '}'}, \"{\") }")
}

func TestTokenize_NestedTemplateInsideInterpolation(t *testing.T) {
	in := "t = `a ${ cond ? `x ${y}` : 'z' } b`"
	spans := Tokenize(in)

	assert.Equal(t, []string{"a ", " b"}, literals(spans))
	assert.Equal(t, in, Reassemble(spans))
}

func TestTokenize_CommentsInsideInterpolation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code string
	}{
		{
			name: "block comment with closing brace",
			in:   "t = `a ${ x /* } */ } b`;",
			code: "${ x /* } */ }",
		},
		{
			name: "line comment with closing brace",
			in:   "t = `a ${ x // }\n } b`;",
			code: "${ x // }\n }",
		},
		{
			name: "comment with a quote",
			in:   "t = `a ${ x /* don't */ } b`;",
			code: "${ x /* don't */ }",
		},
		{
			name: "comment inside nested interpolation",
			in:   "t = `a ${ `in ${ y /* } */ }` } b`;",
			code: "${ `in ${ y /* } */ }` }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Tokenize(tt.in)

			assert.Equal(t, []string{"a ", " b"}, literals(spans))
			assert.Equal(t, tt.in, Reassemble(spans))

			var code []string
			for _, s := range spans {
				if !s.IsLiteral() {
					code = append(code, s.Text)
				}
			}
			assert.Contains(t, code, tt.code)
		})
	}
}

func TestTokenize_InterpolationCommentsIgnoredWhenDisabled(t *testing.T) {
	in := "t = `a ${ x /* } */ } b`;"
	spans := Tokenize(in, WithComments(false))

	assert.Equal(t, in, Reassemble(spans))
	assert.Equal(t, []string{"a ", " */ } b"}, literals(spans))
}

func TestTokenize_EscapedInterpolationOpener(t *testing.T) {
	spans := Tokenize("t = `cost \\${price}`")

	assert.Equal(t, []string{"cost \\${price}"}, literals(spans))
}

func TestTokenize_Unterminated(t *testing.T) {
	t.Run("at end of file", func(t *testing.T) {
		spans := Tokenize(`x = "abc`)
		require.Len(t, literals(spans), 1)
		assert.Equal(t, "abc", literals(spans)[0])
	})

	t.Run("escape at end of buffer", func(t *testing.T) {
		spans := Tokenize(`x = "abc\`)
		assert.Equal(t, []string{`abc\`}, literals(spans))
	})

	t.Run("newline ends single quote", func(t *testing.T) {
		spans := Tokenize("a = 'abc\nb = \"d\"")
		assert.Equal(t, []string{"abc", "d"}, literals(spans))
	})

	t.Run("backtick spans lines", func(t *testing.T) {
		spans := Tokenize("a = `one\ntwo`")
		assert.Equal(t, []string{"one\ntwo"}, literals(spans))
	})
}

func TestTokenize_Comments(t *testing.T) {
	in := "// don't touch\n/* it's fine */ x = 'ok' // y'all\n"

	assert.Equal(t, []string{"ok"}, literals(Tokenize(in)))
	assert.Equal(t, []string{"t touch", "s fine */ x = ", " // y"}, literals(Tokenize(in, WithComments(false))))
}

func TestTokenize_EmptyLiteral(t *testing.T) {
	assert.Empty(t, literals(Tokenize(`x = ""; y = ''`)))
}

func TestLexer_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		steps int
		want  State
	}{
		{"plain char stays outside", "a", 1, StateOutside},
		{"single quote opens", "'", 1, StateSingle},
		{"double quote opens", `"`, 1, StateDouble},
		{"backtick opens", "`", 1, StateBacktick},
		{"closing quote returns outside", "'a'", 3, StateOutside},
		{"escape consumes quote", `'\'`, 2, StateSingle},
		{"interpolation opens", "`${", 2, StateInterpolation},
		{"nested brace keeps interpolation", "`${{}", 4, StateInterpolation},
		{"closing brace returns to backtick", "`${}", 3, StateBacktick},
		{"line comment", "//", 1, StateLineComment},
		{"newline ends line comment", "//\n", 2, StateOutside},
		{"block comment", "/*", 1, StateBlockComment},
		{"block comment ends", "/**/", 2, StateOutside},
		{"quote in comment ignored", "//'", 2, StateLineComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			for i := 0; i < tt.steps; i++ {
				require.True(t, l.Step(), "ran out of input at step %d", i)
			}

			assert.Equal(t, tt.want, l.State())
		})
	}
}

func TestLexer_StepReturnsFalseAtEnd(t *testing.T) {
	l := New("'ab")
	for l.Step() {
	}

	assert.False(t, l.Step())
	assert.Len(t, l.Spans(), 2, "finish must not flush twice")
	assert.Equal(t, 3, l.Pos())
}
