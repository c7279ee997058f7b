package text

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/minio/sha256-simd"
	"lukechampine.com/frand"

	"jcs.mleku.dev/chk"
)

// escape applies AppendEscape to every byte that needs it.
func escape(dst, src []byte) []byte {
	for _, c := range src {
		if NeedsEscape(c) {
			dst = AppendEscape(dst, c)
		} else {
			dst = append(dst, c)
		}
	}
	return dst
}

func quote(escaped []byte) []byte {
	return append(append([]byte{'"'}, escaped...), '"')
}

func TestEscapeAllBytes(t *testing.T) {
	b := make([]byte, 0x80)
	for i := range b {
		b[i] = byte(i)
	}
	escaped := escape(nil, b)
	var s string
	if err := json.Unmarshal(quote(escaped), &s); chk.E(err) {
		t.Fatal(err)
	}
	if s != string(b) {
		t.Fatalf("round trip mismatch\n%q\n%q", s, b)
	}
}

func TestEscapeSequences(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"\n\"", `\n\"`},
		{"a/b", `a\/b`},
		{`back\slash`, `back\\slash`},
		{"\b\f\r\t", `\b\f\r\t`},
		{"\x00\x1f\x1b", `\u0000\u001f\u001b`},
		{"€𝄞ü", "€𝄞ü"},
		{"\x7f", "\x7f"},
	} {
		if got := string(escape(nil, []byte(tc.in))); got != tc.want {
			t.Errorf("escape(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

var seed = sha256.Sum256([]byte("the name that can be named is not the eternal name"))

var src = frand.NewCustom(seed[:], 32, 12)

func TestRandomEscapeRoundTrip(t *testing.T) {
	// random valid UTF-8 runes, including controls and the escaped ASCII set
	for range 1000 {
		n := src.Intn(1<<8) + 1
		var orig []byte
		for range n {
			var r rune
			switch src.Intn(3) {
			case 0:
				r = rune(src.Intn(0x80))
			case 1:
				r = rune(src.Intn(0xD800))
			default:
				r = rune(0x10000 + src.Intn(0x100000))
			}
			orig = utf8.AppendRune(orig, r)
		}
		escaped := quote(escape(nil, orig))
		if !utf8.Valid(escaped) {
			t.Fatalf("escaped output is not valid UTF-8: %q", escaped)
		}
		var s string
		if err := json.Unmarshal(escaped, &s); chk.E(err) {
			t.Fatalf("%s: %q", err, escaped)
		}
		if s != string(orig) {
			t.Fatalf("\ngot      %q\nexpected %q", s, orig)
		}
	}
}

func BenchmarkEscape(b *testing.B) {
	const size = 65536
	in := frand.Bytes(size)
	out := make([]byte, 0, size*6)
	b.ReportAllocs()
	b.SetBytes(size)
	for i := 0; i < b.N; i++ {
		out = escape(out[:0], in)
	}
}
