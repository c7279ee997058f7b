// Package number renders IEEE-754 binary floating point values the way the
// ECMAScript Number::toString operation does, which is the number format RFC
// 8785 mandates for canonical JSON.
//
// The shortest digit string that round trips to the same value comes from
// strconv's shortest mode (a Ryu implementation); this package only lays those
// digits out in ECMAScript's decimal or exponent form, into a fixed size
// Buffer.
package number

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Size is the capacity of a Buffer. The longest ECMAScript renderings of a
// double are 25 bytes:
//
//	-0.00000ddddddddddddddddd    sign, "0.", five zeros, 17 digits
//	-d.dddddddddddddddde-ddd     sign, 17 digits, point, e, sign, 3 digits
const Size = 25

// maxDigits is the most significant digits the shortest form of a double can
// have.
const maxDigits = 17

// ErrNonFinite is the error for NaN and the infinities, which have no JSON
// representation. Formatters wrap it when they are given one.
var ErrNonFinite = errors.New("non-finite number has no JSON representation")

// Buffer is scratch space for rendering one number. The slice returned by the
// Format methods aliases the Buffer, so it must be copied out before the
// Buffer is reused or goes out of scope.
type Buffer struct {
	b [Size]byte
	n int
}

// FormatFinite renders a finite double. Zero of either sign renders as "0".
// It panics if f is NaN or infinite; callers classify the value first.
func (b *Buffer) FormatFinite(f float64) []byte { return b.format(f, 64) }

// FormatFinite32 renders a finite float32 using the shortest digits that round
// trip at 32 bit precision, so float32(0.1) renders as "0.1".
func (b *Buffer) FormatFinite32(f float32) []byte { return b.format(float64(f), 32) }

func (b *Buffer) format(f float64, bitSize int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("number: FormatFinite called with a non-finite value")
	}
	b.n = 0
	if f == 0 {
		b.put('0')
		return b.b[:b.n]
	}
	// shortest form as [-]d[.ddd]e±dd
	var scratch [32]byte
	s := strconv.AppendFloat(scratch[:0], f, 'e', -1, bitSize)
	if s[0] == '-' {
		b.put('-')
		s = s[1:]
	}
	var digits [maxDigits]byte
	var k, i int
	for ; s[i] != 'e'; i++ {
		if s[i] == '.' {
			continue
		}
		if k == maxDigits {
			panic("number: more significant digits than a double can carry")
		}
		digits[k] = s[i]
		k++
	}
	// decimal exponent of the first digit, plus one: the value is
	// 0.digits × 10^n
	var x int
	for _, c := range s[i+2:] {
		x = x*10 + int(c-'0')
	}
	if s[i+1] == '-' {
		x = -x
	}
	n := x + 1
	switch {
	case k <= n && n <= 21:
		// integer, padded with zeros
		b.write(digits[:k])
		for j := k; j < n; j++ {
			b.put('0')
		}
	case 0 < n && n <= 21:
		b.write(digits[:n])
		b.put('.')
		b.write(digits[n:k])
	case -6 < n && n <= 0:
		b.put('0')
		b.put('.')
		for j := n; j < 0; j++ {
			b.put('0')
		}
		b.write(digits[:k])
	default:
		b.put(digits[0])
		if k > 1 {
			b.put('.')
			b.write(digits[1:k])
		}
		b.put('e')
		e := n - 1
		if e < 0 {
			b.put('-')
			e = -e
		} else {
			b.put('+')
		}
		if e >= 100 {
			b.put(byte('0' + e/100))
		}
		if e >= 10 {
			b.put(byte('0' + e/10%10))
		}
		b.put(byte('0' + e%10))
	}
	return b.b[:b.n]
}

func (b *Buffer) put(c byte) {
	if b.n >= Size {
		panic("number: scratch buffer overflow")
	}
	b.b[b.n] = c
	b.n++
}

func (b *Buffer) write(s []byte) {
	if b.n+len(s) > Size {
		panic("number: scratch buffer overflow")
	}
	b.n += copy(b.b[b.n:], s)
}
