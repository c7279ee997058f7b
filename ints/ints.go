// Package ints is an encoder for decimal integers in ASCII that works in
// groups of four digits from a lookup table rather than one digit at a time.
package ints

import (
	_ "embed"
)

// run this to regenerate the table of four digits per entry
//go:generate go run ./gen/.

//go:embed base10k.txt
var base10k []byte

// T is an unsigned integer value.
type T struct {
	N uint64
}

func New[V uint | int | uint64 | uint32 | uint16 | uint8 | int64 | int32 | int16 | int8](n V) *T {
	return &T{uint64(n)}
}

func (n *T) Uint64() uint64 { return n.N }

var powers = []uint64{
	1,
	1_0000,
	1_0000_0000,
	1_0000_0000_0000,
	1_0000_0000_0000_0000,
}

// Marshal appends the decimal digits of n to dst.
func (n *T) Marshal(dst []byte) (b []byte) {
	b = dst
	nn := n.N
	if nn == 0 {
		b = append(b, '0')
		return
	}
	var trimmed bool
	for k := len(powers) - 1; k >= 0; k-- {
		q := nn / powers[k]
		if !trimmed && q == 0 {
			continue
		}
		offset := q * 4
		bb := base10k[offset : offset+4]
		if !trimmed {
			// the leading group carries no zero padding
			for i := range bb {
				if bb[i] != '0' {
					bb = bb[i:]
					break
				}
			}
			trimmed = true
		}
		b = append(b, bb...)
		nn -= q * powers[k]
	}
	return
}

// AppendUint appends the decimal form of u to dst.
func AppendUint(dst []byte, u uint64) []byte { return (&T{u}).Marshal(dst) }

// AppendInt appends the decimal form of i to dst, with a leading '-' when it
// is negative.
func AppendInt(dst []byte, i int64) []byte {
	u := uint64(i)
	if i < 0 {
		dst = append(dst, '-')
		u = -u
	}
	return (&T{u}).Marshal(dst)
}
