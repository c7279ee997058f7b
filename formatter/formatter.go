// Package formatter defines the write events a traversal driver emits while
// walking one JSON value, and a Compact formatter that renders them as plain
// compact JSON.
//
// A driver calls the events in the nesting a JSON document has: exactly one
// top level value; BeginArray, then for each element BeginArrayValue, the
// element, EndArrayValue, then EndArray; BeginObject, then for each member
// BeginObjectKey, a string, EndObjectKey, BeginObjectValue, the value,
// EndObjectValue, then EndObject. A string is BeginString, any number of
// WriteStringFragment and WriteCharEscape events, then EndString.
//
// Every event receives the destination writer; a formatter may write there or
// divert the bytes elsewhere, which is how the canonical formatter buffers
// object members until it can sort them.
package formatter

import (
	"io"
)

// I is the closed set of write events.
type I interface {
	WriteNull(w io.Writer) (err error)
	WriteBool(w io.Writer, v bool) (err error)
	WriteInt(w io.Writer, v int64) (err error)
	WriteUint(w io.Writer, v uint64) (err error)
	WriteFloat(w io.Writer, v float64) (err error)
	WriteFloat32(w io.Writer, v float32) (err error)

	BeginString(w io.Writer) (err error)
	EndString(w io.Writer) (err error)
	// WriteStringFragment writes part of a string that contains no byte that
	// needs escaping.
	WriteStringFragment(w io.Writer, s string) (err error)
	// WriteCharEscape writes the escape sequence for one byte that cannot
	// appear verbatim in a string; c is the original byte, not the escape.
	WriteCharEscape(w io.Writer, c byte) (err error)
	// WriteRawFragment writes a value that is already JSON text.
	WriteRawFragment(w io.Writer, b []byte) (err error)

	BeginArray(w io.Writer) (err error)
	EndArray(w io.Writer) (err error)
	BeginArrayValue(w io.Writer, first bool) (err error)
	EndArrayValue(w io.Writer) (err error)

	BeginObject(w io.Writer) (err error)
	EndObject(w io.Writer) (err error)
	BeginObjectKey(w io.Writer, first bool) (err error)
	EndObjectKey(w io.Writer) (err error)
	BeginObjectValue(w io.Writer) (err error)
	EndObjectValue(w io.Writer) (err error)
}
