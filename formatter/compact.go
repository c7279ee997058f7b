package formatter

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"jcs.mleku.dev/ints"
	"jcs.mleku.dev/number"
	"jcs.mleku.dev/text"
)

// Compact renders events as JSON with no insignificant whitespace, in the
// order they arrive. It keeps no state, so the zero value is ready to use and
// may be shared.
type Compact struct{}

var _ I = Compact{}

func write(w io.Writer, b []byte) (err error) {
	_, err = w.Write(b)
	return
}

func writeString(w io.Writer, s string) (err error) {
	_, err = io.WriteString(w, s)
	return
}

func (Compact) WriteNull(w io.Writer) (err error) { return writeString(w, "null") }

func (Compact) WriteBool(w io.Writer, v bool) (err error) {
	if v {
		return writeString(w, "true")
	}
	return writeString(w, "false")
}

func (Compact) WriteInt(w io.Writer, v int64) (err error) {
	var b [20]byte
	return write(w, ints.AppendInt(b[:0], v))
}

func (Compact) WriteUint(w io.Writer, v uint64) (err error) {
	var b [20]byte
	return write(w, ints.AppendUint(b[:0], v))
}

func (Compact) WriteFloat(w io.Writer, v float64) (err error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(number.ErrNonFinite, "%v", v)
	}
	var b number.Buffer
	return write(w, b.FormatFinite(v))
}

func (Compact) WriteFloat32(w io.Writer, v float32) (err error) {
	if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.Wrapf(number.ErrNonFinite, "%v", v)
	}
	var b number.Buffer
	return write(w, b.FormatFinite32(v))
}

func (Compact) BeginString(w io.Writer) (err error) { return writeString(w, `"`) }

func (Compact) EndString(w io.Writer) (err error) { return writeString(w, `"`) }

func (Compact) WriteStringFragment(w io.Writer, s string) (err error) { return writeString(w, s) }

func (Compact) WriteCharEscape(w io.Writer, c byte) (err error) {
	var b [6]byte
	return write(w, text.AppendEscape(b[:0], c))
}

func (Compact) WriteRawFragment(w io.Writer, b []byte) (err error) { return write(w, b) }

func (Compact) BeginArray(w io.Writer) (err error) { return writeString(w, "[") }

func (Compact) EndArray(w io.Writer) (err error) { return writeString(w, "]") }

func (Compact) BeginArrayValue(w io.Writer, first bool) (err error) {
	if first {
		return
	}
	return writeString(w, ",")
}

func (Compact) EndArrayValue(w io.Writer) (err error) { return }

func (Compact) BeginObject(w io.Writer) (err error) { return writeString(w, "{") }

func (Compact) EndObject(w io.Writer) (err error) { return writeString(w, "}") }

func (Compact) BeginObjectKey(w io.Writer, first bool) (err error) {
	if first {
		return
	}
	return writeString(w, ",")
}

func (Compact) EndObjectKey(w io.Writer) (err error) { return writeString(w, ":") }

func (Compact) BeginObjectValue(w io.Writer) (err error) { return }

func (Compact) EndObjectValue(w io.Writer) (err error) { return }
