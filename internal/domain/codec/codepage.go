package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Codepage is a single-byte code page with both directions of its mapping
// materialised. Build it once and share it; it is read-only after
// construction.
type Codepage struct {
	name    string
	decode  [256]rune
	reverse map[rune]byte
}

// NewCodepage probes every byte value through cm and inverts the result.
// Bytes the code page leaves undefined are not reachable in reverse.
func NewCodepage(name string, cm *charmap.Charmap) *Codepage {
	cp := &Codepage{
		name:    name,
		reverse: make(map[rune]byte, 256),
	}

	for b := range 256 {
		r := cm.DecodeByte(byte(b))
		cp.decode[b] = r

		if r == utf8.RuneError {
			continue
		}

		if _, taken := cp.reverse[r]; !taken {
			cp.reverse[r] = byte(b)
		}
	}

	return cp
}

// Windows1256 is the legacy Arabic code page.
func Windows1256() *Codepage {
	return NewCodepage("windows-1256", charmap.Windows1256)
}

// Windows1252 is the Western European code page.
func Windows1252() *Codepage {
	return NewCodepage("windows-1252", charmap.Windows1252)
}

// Latin1 is ISO-8859-1, where byte b decodes to U+00b.
func Latin1() *Codepage {
	return NewCodepage("iso-8859-1", charmap.ISO8859_1)
}

// Name returns the code page label.
func (c *Codepage) Name() string {
	return c.name
}

// DecodeByte returns the rune for b.
func (c *Codepage) DecodeByte(b byte) rune {
	return c.decode[b]
}

// EncodeRune returns the byte r occupies in the code page.
func (c *Codepage) EncodeRune(r rune) (byte, bool) {
	b, ok := c.reverse[r]

	return b, ok
}

// Encode maps every rune of s to its byte. It fails on the first rune the
// code page cannot represent.
func (c *Codepage) Encode(s string) ([]byte, bool) {
	out := make([]byte, 0, len(s))

	for _, r := range s {
		b, ok := c.reverse[r]
		if !ok {
			return nil, false
		}

		out = append(out, b)
	}

	return out, true
}

// Decode maps each byte of b to its rune.
func (c *Codepage) Decode(b []byte) string {
	runes := make([]rune, len(b))
	for i, x := range b {
		runes[i] = c.decode[x]
	}

	return string(runes)
}
