// Package hex encodes digests as lower case hexadecimal with the SIMD encoder
// from github.com/templexxx/xhex.
package hex

import (
	"github.com/templexxx/xhex"
)

// EncAppend appends the hex encoding of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}
