// Package codec turns raw file bytes into working text and maps runes back to
// the single bytes of legacy code pages.
package codec

import (
	"golang.org/x/text/encoding/charmap"
)

// bom is the UTF-8 encoded byte-order mark.
var bom = []byte{0xEF, 0xBB, 0xBF}

// binarySniffSize is how many leading bytes IsBinary inspects.
const binarySniffSize = 512

// Decoded is the working text of a file plus what had to be done to get it.
type Decoded struct {
	Text    string
	HadBOM  bool
	NonUTF8 bool
}

// Decode strips a UTF-8 byte-order mark and validates the remainder. Invalid
// UTF-8 is reinterpreted as Windows-1256 so later stages still get text to
// work with. It never fails.
func Decode(raw []byte) Decoded {
	var out Decoded

	body := raw
	if hasBOM(body) {
		body = body[len(bom):]
		out.HadBOM = true
	}

	if ValidUTF8(body) {
		out.Text = string(body)

		return out
	}

	out.NonUTF8 = true
	out.Text = decodeLegacy(body)

	return out
}

// decodeLegacy decodes the buffer through Windows-1256. Every byte has a
// mapping in that code page, so this cannot fail.
func decodeLegacy(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = charmap.Windows1256.DecodeByte(b)
	}

	return string(runes)
}

func hasBOM(b []byte) bool {
	return len(b) >= len(bom) && b[0] == bom[0] && b[1] == bom[1] && b[2] == bom[2]
}

// IsBinary reports a NUL byte in the first 512 bytes.
func IsBinary(raw []byte) bool {
	n := min(len(raw), binarySniffSize)

	for i := range n {
		if raw[i] == 0 {
			return true
		}
	}

	return false
}

// ValidUTF8 walks b as a UTF-8 state machine. Besides continuation-byte
// ranges it rejects overlong encodings, surrogate halves and code points
// above U+10FFFF.
func ValidUTF8(b []byte) bool {
	for i := 0; i < len(b); {
		lead := b[i]

		var size int

		lo, hi := byte(0x80), byte(0xBF)

		switch {
		case lead < 0x80:
			i++

			continue
		case lead >= 0xC2 && lead <= 0xDF:
			size = 2
		case lead == 0xE0:
			size, lo = 3, 0xA0
		case lead == 0xED:
			size, hi = 3, 0x9F
		case lead >= 0xE1 && lead <= 0xEF:
			size = 3
		case lead == 0xF0:
			size, lo = 4, 0x90
		case lead == 0xF4:
			size, hi = 4, 0x8F
		case lead >= 0xF1 && lead <= 0xF3:
			size = 4
		default:
			// 0x80-0xC1 as a lead, or 0xF5-0xFF
			return false
		}

		if i+size > len(b) {
			return false
		}

		if second := b[i+1]; second < lo || second > hi {
			return false
		}

		for j := 2; j < size; j++ {
			if c := b[i+j]; c < 0x80 || c > 0xBF {
				return false
			}
		}

		i += size
	}

	return true
}
