package luavalues

import (
	"bytes"
	"reflect"
	"strings"
)

// Marshaler is the interface implemented by types that
// can convert themselves into a Value.
type Marshaler interface {
	MarshalLua() (Value, error)
}

// Marshal returns the chunk encoding of v.
//
// See ValueOf for how Go values are mapped to chunk values.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ValueOf converts a Go value into a Value tree.
//
// Nil pointers, interfaces, slices and maps become Nil. Booleans become
// Boolean, every integer and floating-point kind becomes Number and
// strings and byte slices become String. A float32 becomes the Number
// closest to its shortest decimal form, so float32(0.1) encodes as 0.1.
// Other slices and arrays become Array. Structs become an Aggregate of
// their exported fields in declaration order, honoring
// `lua:"name,omitempty"` and `lua:"-"` tags; when field names collide the
// shallowest, then the tagged, field wins and ties are dropped.
// Maps with string keys become an Aggregate with keys in sorted order.
//
// Values that already implement Value are used as is. Types implementing
// Marshaler or encoding.TextMarshaler convert themselves. Any other type
// fails with an *UnsupportedTypeError.
func ValueOf(v any, opts ...Option) (Value, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	es := &encodeState{maxDepth: o.maxDepth}
	return es.marshalValue(reflect.ValueOf(v))
}

// ToChunk renders v as a chunk.
//
// Arrays and aggregates are written as {a, b} and {x=a, y=b}, with
// exactly one comma and one space between elements. Strings are always
// double-quoted. ToChunk fails with ErrUnsupportedValue for NaN and
// infinite numbers.
func ToChunk(v Value, opts ...Option) (string, error) {
	o, err := newOptions(opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := newChunkFormatter(&b, o).format(v); err != nil {
		return "", err
	}
	return b.String(), nil
}
