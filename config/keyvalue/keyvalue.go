// Package keyvalue turns a configuration struct tagged for go-simpler.org/env
// into a sorted list of key/value pairs, and prints them in .env form.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"time"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV lists the `env` tagged fields of a struct value (not a pointer) with
// their current values. Fields with no tag are skipped.
func EnvKV(cfg any) (m KVSlice) {
	t := reflect.TypeOf(cfg)
	v := reflect.ValueOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val string
		switch x := v.Field(i).Interface().(type) {
		case string:
			val = x
		case int, int64, int32, uint64, uint32, bool, time.Duration:
			val = fmt.Sprint(x)
		case []string:
			val = strings.Join(x, ",")
		}
		m = append(m, KV{k, val})
	}
	return
}

// PrintEnv writes the key/values of cfg, sorted by key, one KEY=value per line.
func PrintEnv(cfg any, printer io.Writer) {
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		_, _ = fmt.Fprintf(printer, "%s=%s\n", v.Key, v.Value)
	}
}
