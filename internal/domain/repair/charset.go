package repair

import "unicode"

// IsArabic reports whether r is in one of the Arabic blocks.
func IsArabic(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF,
		r >= 0x0750 && r <= 0x077F,
		r >= 0x08A0 && r <= 0x08FF,
		r >= 0xFB50 && r <= 0xFDFF,
		r >= 0xFE70 && r <= 0xFEFF:
		return true
	}

	return false
}

// isHardMarker matches TAH and ZAH, which is what the UTF-8 lead bytes
// 0xD8 and 0xD9 of most Arabic letters become under Windows-1256.
func isHardMarker(r rune) bool {
	return r == 'ط' || r == 'ظ'
}

// isLatinMojibake matches the Latin-1/Windows-1252 readings of Arabic UTF-8
// lead bytes plus the usual Ã/Â artifacts. Any one of them marks a literal
// as suspect.
func isLatinMojibake(r rune) bool {
	switch r {
	case 'Ø', 'Ù', 'Ú', 'Û', 'Ã', 'Â':
		return true
	}

	return false
}

// isLatinMarker is the second scoring marker set: the Latin mojibake runes
// plus the punctuation Windows-1256 shows for UTF-8 continuation bytes
// 0x80-0x9F. It shares nothing with isHardMarker.
func isLatinMarker(r rune) bool {
	if isLatinMojibake(r) {
		return true
	}

	switch r {
	case '€', '‚', 'ƒ', '„', '…', '†', '‡', 'ˆ', '‰', '‹', 'Œ', '›', 'œ', '™':
		return true
	}

	return false
}

// Profile counts the rune classes scoring and detection look at.
type Profile struct {
	Runes        int
	Arabic       int
	Hard         int
	Replacement  int
	LatinMarkers int
	LatinLetters int
	// LatinMojibake counts runes of the detector's fast-path set.
	LatinMojibake int
}

// Analyze counts the rune classes of text in one pass.
func Analyze(text string) Profile {
	var p Profile

	for _, r := range text {
		p.Runes++

		if IsArabic(r) {
			p.Arabic++
		}

		if isHardMarker(r) {
			p.Hard++
		}

		if r == unicode.ReplacementChar {
			p.Replacement++
		}

		if isLatinMarker(r) {
			p.LatinMarkers++
		}

		if isLatinMojibake(r) {
			p.LatinMojibake++
		}

		if unicode.Is(unicode.Latin, r) {
			p.LatinLetters++
		}
	}

	return p
}
