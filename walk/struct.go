package walk

import (
	"bytes"
	"io"
	"reflect"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"jcs.mleku.dev/formatter"
)

// field is one JSON member of a struct type, found by the rules encoding/json
// uses for names, tags and embedded structs.
type field struct {
	name      string
	index     []int
	tagged    bool
	omitEmpty bool
	// quoted is the ",string" option: the value is written as a JSON string
	// holding its JSON text.
	quoted bool
}

var fieldCache = xsync.NewMapOf[reflect.Type, []field]()

// fields returns the members of struct type t in declaration order.
func fields(t reflect.Type) (fs []field) {
	var ok bool
	if fs, ok = fieldCache.Load(t); ok {
		return
	}
	fs = typeFields(t)
	fieldCache.Store(t, fs)
	return
}

func typeFields(t reflect.Type) (fs []field) {
	type candidate struct {
		field
		depth int
	}
	var all []candidate
	visited := map[reflect.Type]bool{}
	var scan func(t reflect.Type, index []int, depth int)
	scan = func(t reflect.Type, index []int, depth int) {
		if visited[t] {
			return
		}
		visited[t] = true
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			ft := sf.Type
			if sf.Anonymous {
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if !sf.IsExported() && ft.Kind() != reflect.Struct {
					continue
				}
			} else if !sf.IsExported() {
				continue
			}
			tag := sf.Tag.Get("json")
			if tag == "-" {
				continue
			}
			name, opts, _ := strings.Cut(tag, ",")
			idx := append(append([]int(nil), index...), i)
			if sf.Anonymous && name == "" && ft.Kind() == reflect.Struct {
				scan(ft, idx, depth+1)
				continue
			}
			f := field{name: name, index: idx, tagged: name != ""}
			if name == "" {
				f.name = sf.Name
			}
			for _, o := range strings.Split(opts, ",") {
				switch o {
				case "omitempty":
					f.omitEmpty = true
				case "string":
					f.quoted = quotable(ft)
				}
			}
			all = append(all, candidate{f, depth})
		}
	}
	scan(t, nil, 0)
	// a name claimed at several depths goes to the shallowest; at one depth
	// to the single tagged field, and otherwise to nobody
	byName := map[string][]candidate{}
	for _, c := range all {
		byName[c.name] = append(byName[c.name], c)
	}
	for _, c := range all {
		rivals := byName[c.name]
		if len(rivals) == 1 {
			fs = append(fs, c.field)
			continue
		}
		shallowest := rivals[0].depth
		for _, r := range rivals {
			if r.depth < shallowest {
				shallowest = r.depth
			}
		}
		if c.depth != shallowest {
			continue
		}
		var shallow, tagged int
		for _, r := range rivals {
			if r.depth == shallowest {
				shallow++
				if r.tagged {
					tagged++
				}
			}
		}
		if shallow == 1 || (tagged == 1 && c.tagged) {
			fs = append(fs, c.field)
		}
	}
	return
}

func quotable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// fieldValue follows index from v, reporting false if it passes through a nil
// embedded pointer.
func fieldValue(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

// structValue emits a struct as an object, members in declaration order.
func structValue(f formatter.I, w io.Writer, rv reflect.Value) (err error) {
	fs := fields(rv.Type())
	var (
		keys   []string
		values []reflect.Value
		quoted []bool
	)
	for _, fl := range fs {
		fv, ok := fieldValue(rv, fl.index)
		if !ok || (fl.omitEmpty && isEmpty(fv)) {
			continue
		}
		keys = append(keys, fl.name)
		values = append(values, fv)
		quoted = append(quoted, fl.quoted)
	}
	return object(f, w, keys, func(i int) error {
		if quoted[i] {
			return quotedValue(f, w, values[i].Interface())
		}
		return Value(f, w, values[i].Interface())
	})
}

// quotedValue writes v as a string holding its compact JSON text, which is
// what the ",string" tag option asks for.
func quotedValue(f formatter.I, w io.Writer, v any) (err error) {
	var buf bytes.Buffer
	if err = Value(formatter.Compact{}, &buf, v); err != nil {
		return
	}
	return formatter.WriteString(f, w, buf.String())
}
