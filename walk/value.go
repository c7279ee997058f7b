// Package walk drives a formatter.I through the events for a value: Value for
// Go values, Raw for JSON text.
package walk

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"io"
	"reflect"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"jcs.mleku.dev/codec"
	"jcs.mleku.dev/formatter"
)

// Value emits the events for v into f, which writes to w.
//
// Scalars, strings, slices, arrays, maps and structs are walked directly, so
// integers reach the formatter as integers wherever they are. Struct members
// follow the encoding/json rules: json tag names, omitempty, "-", the string
// option and promoted fields of embedded structs. Values that already know
// their JSON form (json.RawMessage, json.Number, codec.Marshaler,
// json.Marshaler) are passed to the formatter as raw fragments. []byte is a
// base64 string as in encoding/json.
func Value(f formatter.I, w io.Writer, v any) (err error) {
	switch x := v.(type) {
	case nil:
		return f.WriteNull(w)
	case bool:
		return f.WriteBool(w, x)
	case string:
		return formatter.WriteString(f, w, x)
	case int:
		return f.WriteInt(w, int64(x))
	case int8:
		return f.WriteInt(w, int64(x))
	case int16:
		return f.WriteInt(w, int64(x))
	case int32:
		return f.WriteInt(w, int64(x))
	case int64:
		return f.WriteInt(w, x)
	case uint:
		return f.WriteUint(w, uint64(x))
	case uint8:
		return f.WriteUint(w, uint64(x))
	case uint16:
		return f.WriteUint(w, uint64(x))
	case uint32:
		return f.WriteUint(w, uint64(x))
	case uint64:
		return f.WriteUint(w, x)
	case float32:
		return f.WriteFloat32(w, x)
	case float64:
		return f.WriteFloat(w, x)
	case json.Number:
		return f.WriteRawFragment(w, []byte(x))
	case json.RawMessage:
		if x == nil {
			return f.WriteNull(w)
		}
		return f.WriteRawFragment(w, x)
	case []byte:
		if x == nil {
			return f.WriteNull(w)
		}
		return bytesValue(f, w, x)
	case []any:
		if x == nil {
			return f.WriteNull(w)
		}
		return array(f, w, len(x), func(i int) error { return Value(f, w, x[i]) })
	case map[string]any:
		if x == nil {
			return f.WriteNull(w)
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return object(f, w, keys, func(i int) error { return Value(f, w, x[keys[i]]) })
	case codec.Marshaler:
		if nilPointer(v) {
			return f.WriteNull(w)
		}
		return f.WriteRawFragment(w, x.Marshal(nil))
	case json.Marshaler:
		if nilPointer(v) {
			return f.WriteNull(w)
		}
		var b []byte
		if b, err = x.MarshalJSON(); chk.T(err) {
			return
		}
		return f.WriteRawFragment(w, b)
	case encoding.TextMarshaler:
		if nilPointer(v) {
			return f.WriteNull(w)
		}
		var b []byte
		if b, err = x.MarshalText(); chk.T(err) {
			return
		}
		return formatter.WriteString(f, w, string(b))
	}
	return reflectValue(f, w, reflect.ValueOf(v))
}

func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func reflectValue(f formatter.I, w io.Writer, rv reflect.Value) (err error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return f.WriteNull(w)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return f.WriteNull(w)
		}
		return Value(f, w, rv.Elem().Interface())
	case reflect.Bool:
		return f.WriteBool(w, rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.WriteInt(w, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return f.WriteUint(w, rv.Uint())
	case reflect.Float32:
		return f.WriteFloat32(w, float32(rv.Float()))
	case reflect.Float64:
		return f.WriteFloat(w, rv.Float())
	case reflect.String:
		return formatter.WriteString(f, w, rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return f.WriteNull(w)
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return bytesValue(f, w, rv.Bytes())
		}
		fallthrough
	case reflect.Array:
		return array(f, w, rv.Len(), func(i int) error { return Value(f, w, rv.Index(i).Interface()) })
	case reflect.Map:
		if rv.IsNil() {
			return f.WriteNull(w)
		}
		keys := make([]string, 0, rv.Len())
		vals := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			var k string
			if k, err = mapKey(iter.Key()); err != nil {
				return
			}
			keys = append(keys, k)
			vals[k] = iter.Value()
		}
		sort.Strings(keys)
		return object(f, w, keys, func(i int) error { return Value(f, w, vals[keys[i]].Interface()) })
	case reflect.Struct:
		return structValue(f, w, rv)
	}
	return errors.Errorf("walk: unsupported type %s", rv.Type())
}

// mapKey renders a map key the way encoding/json does: string kinds as they
// are, then encoding.TextMarshaler, then integers in decimal.
func mapKey(k reflect.Value) (s string, err error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return
		}
		var b []byte
		if b, err = tm.MarshalText(); chk.T(err) {
			return
		}
		return string(b), nil
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", errors.Errorf("walk: unsupported map key type %s", k.Type())
}

func bytesValue(f formatter.I, w io.Writer, b []byte) (err error) {
	return formatter.WriteString(f, w, base64.StdEncoding.EncodeToString(b))
}

func array(f formatter.I, w io.Writer, n int, elem func(i int) error) (err error) {
	if err = f.BeginArray(w); err != nil {
		return
	}
	for i := 0; i < n; i++ {
		if err = f.BeginArrayValue(w, i == 0); err != nil {
			return
		}
		if err = elem(i); err != nil {
			return
		}
		if err = f.EndArrayValue(w); err != nil {
			return
		}
	}
	return f.EndArray(w)
}

// object emits the members in the order of keys. Map keys are sorted by the
// callers so plain formatters are deterministic too; a canonical formatter
// reorders them anyway.
func object(f formatter.I, w io.Writer, keys []string, value func(i int) error) (err error) {
	if err = f.BeginObject(w); err != nil {
		return
	}
	for i, k := range keys {
		if err = f.BeginObjectKey(w, i == 0); err != nil {
			return
		}
		if err = formatter.WriteString(f, w, k); err != nil {
			return
		}
		if err = f.EndObjectKey(w); err != nil {
			return
		}
		if err = f.BeginObjectValue(w); err != nil {
			return
		}
		if err = value(i); err != nil {
			return
		}
		if err = f.EndObjectValue(w); err != nil {
			return
		}
	}
	return f.EndObject(w)
}
