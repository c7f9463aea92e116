// Package mapper discovers the exported fields of struct types.
package mapper

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// TagKey is the struct tag consulted for field names and options.
const TagKey = "lua"

// Field describes one struct field that takes part in encoding.
type Field struct {
	Name      string
	Index     []int
	OmitEmpty bool
	tagged    bool
}

// fieldCache maps a reflect.Type to its []Field.
var fieldCache sync.Map

// Fields returns the encodable fields of struct type t in declaration
// order. Unexported fields and fields tagged `lua:"-"` are skipped.
// Untagged embedded structs contribute their own fields in place of the
// embedded field.
//
// Every name appears at most once. When names collide, the shallowest
// field wins, then a tagged field over untagged ones; if that still leaves
// more than one field, all of them are dropped.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}
	fields := dominantFields(typeFields(t, nil))
	f, _ := fieldCache.LoadOrStore(t, fields)
	return f.([]Field)
}

func typeFields(t reflect.Type, parent []int) []Field {
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get(TagKey)
		if tag == "-" {
			continue
		}
		name, opts := parseTag(tag)

		idx := make([]int, len(parent)+1)
		copy(idx, parent)
		idx[len(parent)] = i

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			// Promote the fields of an embedded struct, even an unexported one.
			fields = append(fields, typeFields(sf.Type, idx)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		f := Field{Name: sf.Name, Index: idx, OmitEmpty: lo.Contains(opts, "omitempty")}
		if name != "" {
			f.Name = name
			f.tagged = true
		}
		fields = append(fields, f)
	}
	return fields
}

// dominantFields removes name collisions from fields, keeping the order
// of the survivors.
func dominantFields(fields []Field) []Field {
	byName := lo.GroupBy(fields, func(f Field) string { return f.Name })
	return lo.Filter(fields, func(f Field, _ int) bool {
		winner, ok := dominantField(byName[f.Name])
		return ok && slices.Equal(winner.Index, f.Index)
	})
}

// dominantField picks the field that a name refers to among candidates
// sharing that name.
func dominantField(candidates []Field) (Field, bool) {
	if len(candidates) == 1 {
		return candidates[0], true
	}
	shallowest := lo.MinBy(candidates, func(a, b Field) bool { return len(a.Index) < len(b.Index) })
	candidates = lo.Filter(candidates, func(f Field, _ int) bool { return len(f.Index) == len(shallowest.Index) })
	if len(candidates) == 1 {
		return candidates[0], true
	}
	tagged := lo.Filter(candidates, func(f Field, _ int) bool { return f.tagged })
	if len(tagged) == 1 {
		return tagged[0], true
	}
	return Field{}, false
}

// parseTag splits a lua struct tag into its name and options.
func parseTag(tag string) (string, []string) {
	name, rest, _ := strings.Cut(tag, ",")
	if rest == "" {
		return name, nil
	}
	opts := lo.Map(strings.Split(rest, ","), func(opt string, _ int) string {
		return strings.TrimSpace(opt)
	})
	return name, opts
}

// IsEmptyValue reports whether v is empty for the purpose of omitempty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func IsEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
