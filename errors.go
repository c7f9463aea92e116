package luavalues

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnsupportedValue is returned when a value has no chunk
	// representation: NaN, infinities, unknown Value implementations and
	// Go types the encoder cannot map. Use errors.Is to test for it.
	ErrUnsupportedValue = errors.New("luavalues: unsupported value")

	// ErrMaxDepth is returned when nesting exceeds the limit set with MaxDepth.
	ErrMaxDepth = errors.New("luavalues: reached max recursion depth")
)

// An UnsupportedTypeError is returned by Marshal and ValueOf when asked to
// encode a Go type that has no Value representation.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "luavalues: unsupported type: " + e.Type.String()
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedValue }

// A MarshalerError represents an error from calling a MarshalLua method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "luavalues: error calling MarshalLua for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }
