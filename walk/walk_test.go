package walk

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jcs.mleku.dev/formatter"
	"jcs.mleku.dev/number"
)

func compactValue(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Value(formatter.Compact{}, &buf, v))
	return buf.String()
}

type point struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Name string `json:"name,omitempty"`
}

type appender string

func (a appender) Marshal(dst []byte) []byte { return append(dst, a...) }

type upper string

func (u upper) MarshalText() ([]byte, error) { return []byte(strings.ToUpper(string(u))), nil }

type jsonMarshaler struct{}

func (*jsonMarshaler) MarshalJSON() ([]byte, error) { return []byte(`"custom"`), nil }

func TestValue(t *testing.T) {
	five := 5
	var nilInt *int
	var nilMarshaler *jsonMarshaler
	for _, tc := range []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, `null`},
		{"bools", []any{true, false}, `[true,false]`},
		{"ints", []any{int8(-8), int16(16), int32(-32), int64(64), -1}, `[-8,16,-32,64,-1]`},
		{"uints", []any{uint8(8), uint16(16), uint32(32), uint64(1 << 63), uint(1)}, `[8,16,32,9223372036854775808,1]`},
		{"floats", []any{1.5, float32(0.1), 1e21, 0.0}, `[1.5,0.1,1e+21,0]`},
		{"string", "a\"b\n", `"a\"b\n"`},
		{"bytes", []byte{1, 2, 3}, `"AQID"`},
		{"nil bytes", []byte(nil), `null`},
		{"empty bytes", []byte{}, `""`},
		{"map sorted", map[string]any{"b": 1, "a": []any{nil, "x"}}, `{"a":[null,"x"],"b":1}`},
		{"nil map", map[string]any(nil), `null`},
		{"nil slice", []any(nil), `null`},
		{"int keys", map[int]string{10: "a", 2: "b"}, `{"10":"a","2":"b"}`},
		{"typed slice", []string{"x", "y"}, `["x","y"]`},
		{"array", [2]bool{true, false}, `[true,false]`},
		{"typed nil slice", []int(nil), `null`},
		{"pointer", &five, `5`},
		{"nil pointer", nilInt, `null`},
		{"struct", point{X: 1, Y: 2}, `{"x":1,"y":2}`},
		{"struct pointer", &point{X: 3, Y: 4, Name: "p"}, `{"x":3,"y":4,"name":"p"}`},
		{"json number", json.Number("1.50"), `1.50`},
		{"raw message", json.RawMessage(`{"b":1}`), `{"b":1}`},
		{"nil raw message", json.RawMessage(nil), `null`},
		{"codec marshaler", appender(`[1]`), `[1]`},
		{"text marshaler", upper("abc"), `"ABC"`},
		{"json marshaler", &jsonMarshaler{}, `"custom"`},
		{"nil json marshaler", nilMarshaler, `null`},
		{"named string", struct{ S upper }{"q"}, `{"S":"Q"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, compactValue(t, tc.in))
		})
	}
}

func TestValueUnsupported(t *testing.T) {
	var buf bytes.Buffer
	for _, v := range []any{make(chan int), func() {}, complex(1, 2)} {
		require.Error(t, Value(formatter.Compact{}, &buf, v))
	}
	require.Error(t, Value(formatter.Compact{}, &buf, map[float64]int{1: 1}))
}

func TestRaw(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{`null`, `null`},
		{` true `, `true`},
		{`{ "a" : [1, 2.50, "xA"] , "b":{}}`, `{"a":[1,2.5,"xA"],"b":{}}`},
		{`[]`, `[]`},
		{`[[],[{}]]`, `[[],[{}]]`},
		{`"\/é"`, `"\/é"`},
		{`1E2`, `100`},
		{`-0.0`, `0`},
		{`{"a":1,"a":2}`, `{"a":1,"a":2}`},
	} {
		var buf bytes.Buffer
		require.NoError(t, Raw(formatter.Compact{}, &buf, []byte(tc.in)), tc.in)
		require.Equal(t, tc.want, buf.String(), tc.in)
	}
}

func TestRawMalformed(t *testing.T) {
	for _, in := range []string{
		``,
		`   `,
		`{"a":}`,
		`[1,2`,
		`1 2`,
		`{} {}`,
		`{"a" 1}`,
		`[1,]`,
		`nul`,
		`"unterminated`,
		`01`,
	} {
		var buf bytes.Buffer
		err := Raw(formatter.Compact{}, &buf, []byte(in))
		require.Error(t, err, in)
		require.True(t, errors.Is(err, ErrMalformedRawFragment), "%q: %v", in, err)
	}
}

func TestRawOverflowIsNonFinite(t *testing.T) {
	var buf bytes.Buffer
	err := Raw(formatter.Compact{}, &buf, []byte(`[1e400]`))
	require.True(t, errors.Is(err, number.ErrNonFinite), "%v", err)
}

func TestRawUnderflowIsZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Raw(formatter.Compact{}, &buf, []byte(`1e-400`)))
	require.Equal(t, `0`, buf.String())
}

type exact struct {
	A int64   `json:"a"`
	F float64 `json:"f"`
	N uint64  `json:"n"`
	S string  `json:"s"`
}

func TestStructIntegersExact(t *testing.T) {
	v := exact{A: math.MinInt64, N: math.MaxUint64, F: 0.5, S: "x"}
	m := map[string]any{"a": int64(math.MinInt64), "n": uint64(math.MaxUint64), "f": 0.5, "s": "x"}
	want := `{"a":-9223372036854775808,"f":0.5,"n":18446744073709551615,"s":"x"}`
	require.Equal(t, want, compactValue(t, v))
	require.Equal(t, want, compactValue(t, m))
	require.Equal(t, want, compactValue(t, &v))
}

type Inner struct {
	Dup   int
	Shown string `json:"shown"`
}

type Other struct {
	Dup int
}

type Deep struct {
	Level string
}

type middle struct {
	Deep
	Level string
}

type tagged struct {
	Inner
	Other
	*Deep `json:"-"`
	middle
	Name     string           `json:"name"`
	Skip     string           `json:"-"`
	Dash     string           `json:"-,"`
	Empty    string           `json:"empty,omitempty"`
	Zero     int              `json:",omitempty"`
	NilMap   map[string]int   `json:"nil_map,omitempty"`
	Quoted   int64            `json:"quoted,string"`
	QuotedS  string           `json:"quoted_s,string"`
	QuotedB  bool             `json:"quoted_b,string"`
	Ptr      *int             `json:"ptr"`
	Untagged bool
	List     []uint16         `json:"list"`
	Nested   map[string]Inner `json:"nested"`
	Bytes    []byte           `json:"bytes"`
	private  int
}

func TestStructMatchesEncodingJSON(t *testing.T) {
	seven := 7
	v := tagged{
		Inner:    Inner{Dup: 1, Shown: "in"},
		Other:    Other{Dup: 2},
		middle:   middle{Deep: Deep{Level: "deep"}, Level: "mid"},
		Name:     "n",
		Skip:     "s",
		Dash:     "d",
		Quoted:   -5,
		QuotedS:  "q\"q",
		QuotedB:  true,
		Ptr:      &seven,
		Untagged: true,
		List:     []uint16{3, 1},
		Nested:   map[string]Inner{"b": {Shown: "b"}, "a": {Dup: 9}},
		Bytes:    []byte("hi"),
		private:  1,
	}
	want, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, string(want), compactValue(t, v))
}

type embedsPointer struct {
	*Inner
	Own int `json:"own"`
}

func TestStructNilEmbeddedPointer(t *testing.T) {
	require.Equal(t, `{"own":1}`, compactValue(t, embedsPointer{Own: 1}))
	require.Equal(t, `{"Dup":2,"shown":"s","own":1}`,
		compactValue(t, embedsPointer{Inner: &Inner{Dup: 2, Shown: "s"}, Own: 1}))
}

type withMarshalers struct {
	Raw  appender    `json:"raw"`
	Text upper       `json:"text"`
	Num  json.Number `json:"num"`
}

func TestStructFieldMarshalers(t *testing.T) {
	v := withMarshalers{Raw: appender(`{"k":true}`), Text: "abc", Num: "1.50"}
	require.Equal(t, `{"raw":{"k":true},"text":"ABC","num":1.50}`, compactValue(t, v))
}

func TestStructNonFinite(t *testing.T) {
	for _, v := range []any{
		exact{F: math.NaN()},
		struct {
			F float64 `json:"f,string"`
		}{math.Inf(1)},
		struct{ F float32 }{float32(math.Inf(-1))},
	} {
		var buf bytes.Buffer
		err := Value(formatter.Compact{}, &buf, v)
		require.True(t, errors.Is(err, number.ErrNonFinite), "%v", err)
	}
}
