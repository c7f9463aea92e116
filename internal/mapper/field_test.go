package mapper_test

import (
	"reflect"
	"testing"

	"github.com/KimNorgaard/go-luavalues/internal/mapper"
	"github.com/stretchr/testify/require"
)

type Base struct {
	ID   int
	Kind string `lua:"kind"`
}

type record struct {
	Zulu    string
	Alpha   int  `lua:"alpha"`
	Skipped bool `lua:"-"`
	hidden  string
	Base
	Mike   []int `lua:"mike,omitempty"`
	Spaced int   `lua:",omitempty"`
}

func TestFields_DeclarationOrder(t *testing.T) {
	fields := mapper.Fields(reflect.TypeOf(record{}))

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	require.Equal(t, []string{"Zulu", "alpha", "ID", "kind", "mike", "Spaced"}, names)

	require.Equal(t, []int{4, 0}, fields[2].Index)
	require.Equal(t, []int{4, 1}, fields[3].Index)
	require.True(t, fields[4].OmitEmpty)
	require.True(t, fields[5].OmitEmpty)
	require.False(t, fields[0].OmitEmpty)
}

func TestFields_Cached(t *testing.T) {
	typ := reflect.TypeOf(record{})
	first := mapper.Fields(typ)
	second := mapper.Fields(typ)
	require.Equal(t, first, second)
	require.Same(t, &first[0], &second[0])
}

func TestFields_TaggedEmbeddedStructIsAField(t *testing.T) {
	type wrapper struct {
		Base `lua:"base"`
	}
	fields := mapper.Fields(reflect.TypeOf(wrapper{}))
	require.Len(t, fields, 1)
	require.Equal(t, "base", fields[0].Name)
}

func TestIsEmptyValue(t *testing.T) {
	var nilPtr *int
	one := 1
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"empty string", "", true},
		{"string", "x", false},
		{"zero int", 0, true},
		{"int", 3, false},
		{"zero uint", uint8(0), true},
		{"zero float", 0.0, true},
		{"float", 0.5, false},
		{"false", false, true},
		{"true", true, false},
		{"empty slice", []int{}, true},
		{"slice", []int{1}, false},
		{"empty map", map[string]int{}, true},
		{"nil pointer", nilPtr, true},
		{"pointer", &one, false},
		{"struct", Base{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, mapper.IsEmptyValue(reflect.ValueOf(tt.value)))
		})
	}
}

func fieldNames(fields []mapper.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

type Inner struct {
	Name  string
	Depth int
}

type Labeled struct {
	Label string `lua:"Name"`
}

func TestFields_NameCollisions(t *testing.T) {
	t.Run("Outer field hides promoted field", func(t *testing.T) {
		type outer struct {
			Inner
			Name string
		}
		fields := mapper.Fields(reflect.TypeOf(outer{}))
		require.Equal(t, []string{"Depth", "Name"}, fieldNames(fields))
		require.Equal(t, []int{1}, fields[1].Index)
	})

	t.Run("Duplicate tags at the same depth are dropped", func(t *testing.T) {
		type dup struct {
			A    int `lua:"x"`
			B    int `lua:"x"`
			Kept int
		}
		fields := mapper.Fields(reflect.TypeOf(dup{}))
		require.Equal(t, []string{"Kept"}, fieldNames(fields))
	})

	t.Run("Tagged field beats untagged at the same depth", func(t *testing.T) {
		type mixed struct {
			Inner
			Labeled
		}
		fields := mapper.Fields(reflect.TypeOf(mixed{}))
		require.Equal(t, []string{"Depth", "Name"}, fieldNames(fields))
		require.Equal(t, []int{1, 0}, fields[1].Index)
	})

	t.Run("Untagged fields at the same depth are dropped", func(t *testing.T) {
		type other struct {
			Name string
		}
		type both struct {
			Inner
			other
		}
		fields := mapper.Fields(reflect.TypeOf(both{}))
		require.Equal(t, []string{"Depth"}, fieldNames(fields))
	})
}
