package repair

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mouse-blink/mojifix/internal/domain/codec"
	m "github.com/mouse-blink/mojifix/internal/model"
)

// Generator produces reinterpretations of a string by mapping its runes back
// to legacy code page bytes and decoding those bytes as UTF-8.
type Generator struct {
	arabic *codec.Codepage
	latin1 *codec.Codepage
	cp1252 *codec.Codepage
}

// NewGenerator builds the code page tables once.
func NewGenerator() *Generator {
	return &Generator{
		arabic: codec.Windows1256(),
		latin1: codec.Latin1(),
		cp1252: codec.Windows1252(),
	}
}

// Candidates returns the identity candidate followed by every
// reinterpretation that could be produced. Candidates are unscored.
func (g *Generator) Candidates(s string) []m.Candidate {
	out := []m.Candidate{{Text: s, Provenance: m.ProvenanceIdentity}}
	seen := map[string]struct{}{s: {}}
	skeleton := asciiSkeleton(s)

	add := func(raw string, ok bool, prov m.Provenance) {
		if !ok {
			return
		}

		text := clean(raw)
		if _, dup := seen[text]; dup {
			return
		}

		if asciiSkeleton(text) != skeleton {
			return
		}

		seen[text] = struct{}{}
		out = append(out, m.Candidate{Text: text, Provenance: prov})
	}

	hop, ok := reinterpret(g.arabic, s)
	add(hop, ok, m.ProvenanceCodepage)

	latin, latinOK := reinterpret(g.latin1, s)
	add(latin, latinOK, m.ProvenanceLatin1)

	if ok {
		double, doubleOK := reinterpret(g.arabic, hop)
		add(double, doubleOK, m.ProvenanceDoubleHop)
	}

	western, westernOK := reinterpret(g.cp1252, s)
	add(western, westernOK, m.ProvenanceCP1252)

	return out
}

// reinterpret encodes s one byte per rune under cp and decodes the result as
// UTF-8. Invalid sequences become U+FFFD, one per bad byte.
func reinterpret(cp *codec.Codepage, s string) (string, bool) {
	b, ok := cp.Encode(s)
	if !ok {
		return "", false
	}

	return string([]rune(string(b))), true
}

func clean(s string) string {
	return strings.TrimPrefix(norm.NFC.String(s), "\uFEFF")
}

// asciiSkeleton keeps the characters that matter to the host language's
// literal syntax. A candidate that changes them is never safe to splice in.
// Code page hops map ASCII to itself, but NFC does not: U+1FEF folds to a
// backtick.
func asciiSkeleton(s string) string {
	var sb strings.Builder

	for _, r := range s {
		switch r {
		case '\'', '"', '`', '\\', '$', '{', '}', '\n', '\r':
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
