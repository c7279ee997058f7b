package text

import (
	"unicode/utf16"
	"unicode/utf8"
)

// CompareUTF16 compares two UTF-8 strings by the UTF-16 code units of the
// text they encode, which is the order RFC 8785 requires for object member
// names. It returns -1, 0 or +1.
//
// This differs from comparing the UTF-8 bytes directly: a character above
// U+FFFF is a surrogate pair starting at 0xD800..0xDBFF in UTF-16, so it sorts
// before BMP characters in U+E000..U+FFFF, while its UTF-8 form sorts after
// them.
func CompareUTF16(a, b []byte) int {
	for len(a) > 0 && len(b) > 0 {
		ra, sa := utf8.DecodeRune(a)
		rb, sb := utf8.DecodeRune(b)
		a, b = a[sa:], b[sb:]
		if ra == rb {
			continue
		}
		a1, a2 := units(ra)
		b1, b2 := units(rb)
		if a1 != b1 {
			return cmp(a1, b1)
		}
		return cmp(a2, b2)
	}
	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}

func units(r rune) (u1, u2 uint16) {
	if r > 0xFFFF {
		r1, r2 := utf16.EncodeRune(r)
		return uint16(r1), uint16(r2)
	}
	return uint16(r), 0
}

func cmp(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
