package text

// NeedsEscape reports whether the byte c cannot appear verbatim in a
// canonical JSON string.
//
// Strings are escaped per RFC 8785 section 3.2.2.2: everything passes through
// verbatim as UTF-8 except
//
//   - A double quote, 0x22, as \"
//   - A backslash, 0x5C, as \\
//   - A solidus, 0x2F, as \/
//   - A backspace, 0x08, as \b
//   - A tab character, 0x09, as \t
//   - A line break, 0x0A, as \n
//   - A form feed, 0x0C, as \f
//   - A carriage return, 0x0D, as \r
//   - Any other control character below 0x20 as \u00xx, lower case hex
//
// The solidus is not required to be escaped by RFC 8785. Escaping it is a
// choice this encoder makes and keeps for compatibility with signatures that
// were already computed over it; decoders treat both forms as the same string.
func NeedsEscape(c byte) bool { return c < 0x20 || c == '"' || c == '\\' || c == '/' }

const hexDigits = "0123456789abcdef"

// AppendEscape appends the escape sequence for c, which must be a byte for
// which NeedsEscape is true. Other bytes are appended unchanged.
func AppendEscape(dst []byte, c byte) []byte {
	switch c {
	case '"':
		return append(dst, '\\', '"')
	case '\\':
		return append(dst, '\\', '\\')
	case '/':
		return append(dst, '\\', '/')
	case '\b':
		return append(dst, '\\', 'b')
	case '\t':
		return append(dst, '\\', 't')
	case '\n':
		return append(dst, '\\', 'n')
	case '\f':
		return append(dst, '\\', 'f')
	case '\r':
		return append(dst, '\\', 'r')
	}
	if c < 0x20 {
		return append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
	}
	return append(dst, c)
}
