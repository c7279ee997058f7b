// Package canonical implements a formatter.I that renders the JSON
// Canonicalization Scheme of RFC 8785: object members sorted by the UTF-16
// code units of their names, numbers in ECMAScript form, minimal string
// escaping and no insignificant whitespace.
//
// Scalars and arrays are written straight through. Everything written while an
// object is open is diverted into a frame for that object, one buffer for the
// key being written and one for its value. When the object closes its members
// are sorted and written, as a unit, to wherever the enclosing scope writes,
// which is either the output or the frame of the enclosing object.
//
// A T holds the state of one encode. It must not be shared between
// goroutines, and after an error the output written so far is not canonical
// JSON and should be discarded.
package canonical

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"jcs.mleku.dev/formatter"
	"jcs.mleku.dev/number"
	"jcs.mleku.dev/text"
	"jcs.mleku.dev/walk"
)

// T is the canonicalizing formatter.
type T struct {
	compact formatter.Compact
	stack   stack
}

var _ formatter.I = (*T)(nil)

// New returns a formatter with no open objects.
func New() *T { return &T{} }

// Depth is the number of objects currently open.
func (t *T) Depth() int { return t.stack.depth }

// sink marks the caller's writer so write failures can be told apart from
// everything else.
type sink struct{ w io.Writer }

func (s sink) Write(p []byte) (n int, err error) {
	if n, err = s.w.Write(p); err != nil {
		err = &SinkError{Err: err}
	}
	return
}

// scope returns where the next bytes go: the pending key or value of the
// innermost open object, or the output if no object is open.
func (t *T) scope(w io.Writer) io.Writer {
	f := t.stack.top()
	if f == nil {
		if s, ok := w.(sink); ok {
			return s
		}
		return sink{w}
	}
	if f.keyPhase {
		return &f.key
	}
	return &f.value
}

// open returns the innermost open frame, or ErrUnbalancedScope naming the
// event if there is none.
func (t *T) open(event string) (f *frame, err error) {
	if f = t.stack.top(); f == nil {
		err = errors.Wrapf(ErrUnbalancedScope, "%s with no open object", event)
		log.E.Ln(err)
	}
	return
}

// WriteNull and the other scalar events write into the current scope.
func (t *T) WriteNull(w io.Writer) (err error) { return t.compact.WriteNull(t.scope(w)) }

func (t *T) WriteBool(w io.Writer, v bool) (err error) { return t.compact.WriteBool(t.scope(w), v) }

func (t *T) WriteInt(w io.Writer, v int64) (err error) { return t.compact.WriteInt(t.scope(w), v) }

func (t *T) WriteUint(w io.Writer, v uint64) (err error) { return t.compact.WriteUint(t.scope(w), v) }

type class int

const (
	nonFinite class = iota
	zero
	finite
)

func classify(f float64) class {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return nonFinite
	case f == 0:
		return zero
	}
	return finite
}

// WriteFloat writes v in the shortest form that reads back as the same
// double. Negative zero is written as 0.
func (t *T) WriteFloat(w io.Writer, v float64) (err error) {
	switch classify(v) {
	case nonFinite:
		return errors.Wrapf(ErrNonFiniteNumber, "%v", v)
	case zero:
		_, err = io.WriteString(t.scope(w), "0")
		return
	}
	var b number.Buffer
	_, err = t.scope(w).Write(b.FormatFinite(v))
	return
}

// WriteFloat32 is WriteFloat with the shortest digits at float32 precision.
func (t *T) WriteFloat32(w io.Writer, v float32) (err error) {
	switch classify(float64(v)) {
	case nonFinite:
		return errors.Wrapf(ErrNonFiniteNumber, "%v", v)
	case zero:
		_, err = io.WriteString(t.scope(w), "0")
		return
	}
	var b number.Buffer
	_, err = t.scope(w).Write(b.FormatFinite32(v))
	return
}

func (t *T) BeginString(w io.Writer) (err error) { return t.compact.BeginString(t.scope(w)) }

func (t *T) EndString(w io.Writer) (err error) { return t.compact.EndString(t.scope(w)) }

// keyText returns the frame whose key is being written, if any, so the
// unescaped key can be kept for ordering.
func (t *T) keyText() *frame {
	if f := t.stack.top(); f != nil && f.keyPhase {
		return f
	}
	return nil
}

// WriteStringFragment writes s into the current scope, and also keeps it as
// key text while a key is being written.
func (t *T) WriteStringFragment(w io.Writer, s string) (err error) {
	if f := t.keyText(); f != nil {
		f.text = append(f.text, s...)
	}
	return t.compact.WriteStringFragment(t.scope(w), s)
}

// WriteCharEscape writes the escape for c; key text keeps c itself.
func (t *T) WriteCharEscape(w io.Writer, c byte) (err error) {
	if f := t.keyText(); f != nil {
		f.text = append(f.text, c)
	}
	var b [6]byte
	_, err = t.scope(w).Write(text.AppendEscape(b[:0], c))
	return
}

// WriteRawFragment parses b as a JSON value and canonicalizes it into the
// current scope with a new T, so a fragment gets its members sorted and its
// numbers reformatted like everything else.
func (t *T) WriteRawFragment(w io.Writer, b []byte) (err error) {
	if err = walk.Raw(New(), t.scope(w), b); chk.T(err) {
		return
	}
	return
}

// Arrays keep their order, so the array events pass straight through.
func (t *T) BeginArray(w io.Writer) (err error) { return t.compact.BeginArray(t.scope(w)) }

func (t *T) EndArray(w io.Writer) (err error) { return t.compact.EndArray(t.scope(w)) }

func (t *T) BeginArrayValue(w io.Writer, first bool) (err error) {
	return t.compact.BeginArrayValue(t.scope(w), first)
}

func (t *T) EndArrayValue(w io.Writer) (err error) { return t.compact.EndArrayValue(t.scope(w)) }

// BeginObject writes the opening brace into the enclosing scope and opens a
// frame for the members.
func (t *T) BeginObject(w io.Writer) (err error) {
	if err = t.compact.BeginObject(t.scope(w)); err != nil {
		return
	}
	t.stack.push()
	return
}

// EndObject closes the innermost frame and writes its members, sorted, and
// the closing brace into the scope that is now current.
func (t *T) EndObject(w io.Writer) (err error) {
	f := t.stack.pop()
	if f == nil {
		err = errors.Wrap(ErrUnbalancedScope, "EndObject with no open object")
		log.E.Ln(err)
		return
	}
	if f.pending() {
		err = errors.Wrap(ErrUnbalancedScope, "EndObject with a member half written")
		log.E.Ln(err)
		return
	}
	log.T.F("closing object with %d members at depth %d", len(f.members), t.stack.depth)
	return f.flush(t.scope(w))
}

// BeginObjectKey starts a member. Separators are written when the object is
// flushed, so first is ignored.
func (t *T) BeginObjectKey(w io.Writer, first bool) (err error) {
	var f *frame
	if f, err = t.open("BeginObjectKey"); err != nil {
		return
	}
	if f.pending() {
		err = errors.Wrap(ErrUnbalancedScope, "BeginObjectKey with the previous member unfinished")
		log.E.Ln(err)
		return
	}
	f.keyPhase = true
	f.key.Reset()
	f.text = f.text[:0]
	return
}

// EndObjectKey switches the innermost object from its key to its value.
func (t *T) EndObjectKey(w io.Writer) (err error) {
	var f *frame
	if f, err = t.open("EndObjectKey"); err != nil {
		return
	}
	f.keyPhase = false
	return
}

// BeginObjectValue only checks that an object is open.
func (t *T) BeginObjectValue(w io.Writer) (err error) {
	_, err = t.open("BeginObjectValue")
	return
}

// EndObjectValue stores the finished member, replacing any earlier member with
// the same key.
func (t *T) EndObjectValue(w io.Writer) (err error) {
	var f *frame
	if f, err = t.open("EndObjectValue"); err != nil {
		return
	}
	if f.keyPhase || f.key.Len() == 0 {
		err = errors.Wrap(ErrUnbalancedScope, "EndObjectValue with no complete key")
		log.E.Ln(err)
		return
	}
	f.commit()
	return
}
