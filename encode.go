package luavalues

import (
	"bytes"
	"encoding"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-luavalues/internal/mapper"
	"github.com/cockroachdb/errors"
)

// Encoder writes chunks to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the chunk encoding of v to the stream.
//
// The whole chunk is built before anything is written, so a failed Encode
// leaves the stream untouched.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	es := &encodeState{maxDepth: o.maxDepth}
	val, err := es.marshalValue(reflect.ValueOf(v))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := newChunkFormatter(&buf, o).format(val); err != nil {
		return err
	}
	_, err = e.w.Write(buf.Bytes())
	return err
}

var (
	valueType         = reflect.TypeOf((*Value)(nil)).Elem()
	marshalerType     = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

type encodeState struct {
	depth    int
	maxDepth int
}

func (e *encodeState) marshalCustom(v reflect.Value, m Marshaler) (Value, error) {
	val, err := m.MarshalLua()
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: err}
	}
	if val == nil {
		return Nil{}, nil
	}
	return val, nil
}

func (e *encodeState) marshalText(v reflect.Value, m encoding.TextMarshaler) (Value, error) {
	b, err := m.MarshalText()
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: err}
	}
	return String(b), nil
}

func implementsAny(t reflect.Type) bool {
	return t.Implements(valueType) || t.Implements(marshalerType) || t.Implements(textMarshalerType)
}

// marshalInterfaces checks v, and then a pointer to v, for Value,
// Marshaler and encoding.TextMarshaler implementations. The boolean
// result reports whether one was found.
func (e *encodeState) marshalInterfaces(v reflect.Value) (Value, bool, error) {
	if v.Kind() == reflect.Interface || !v.CanInterface() {
		return nil, false, nil
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false, nil
	}

	if !implementsAny(v.Type()) {
		if v.Kind() == reflect.Pointer || !implementsAny(reflect.PointerTo(v.Type())) {
			return nil, false, nil
		}
		if v.CanAddr() {
			v = v.Addr()
		} else {
			// For non-addressable values (like struct literals),
			// create a pointer to a copy to check for the interface.
			pv := reflect.New(v.Type())
			pv.Elem().Set(v)
			v = pv
		}
	}

	switch i := v.Interface().(type) {
	case Value:
		if v.Kind() == reflect.Pointer && v.Type().Elem().Implements(valueType) {
			// *Array and friends: use the pointed-to Value.
			i = v.Elem().Interface().(Value)
		}
		return i, true, nil
	case Marshaler:
		val, err := e.marshalCustom(v, i)
		return val, true, err
	case encoding.TextMarshaler:
		val, err := e.marshalText(v, i)
		return val, true, err
	}
	return nil, false, nil
}

func (e *encodeState) marshalValue(v reflect.Value) (Value, error) { //nolint:gocyclo
	// Handle nil interfaces explicitly to avoid panics.
	if !v.IsValid() {
		return Nil{}, nil
	}

	if val, ok, err := e.marshalInterfaces(v); ok {
		return val, err
	}

	// Follow pointers and interfaces to find the concrete value.
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Nil{}, nil
		}
		if err := e.enter(); err != nil {
			return nil, err
		}
		defer e.leave()
		return e.marshalValue(v.Elem())
	}

	switch v.Kind() {
	case reflect.Bool:
		return Boolean(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(v.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(v.Uint())), nil
	case reflect.Float32:
		// Widen the shortest float32 text, not the binary value, so that
		// float32(0.1) stays 0.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(v.Float(), 'g', -1, 32), 64)
		return Number(f), nil
	case reflect.Float64:
		return Number(v.Float()), nil
	case reflect.String:
		return String(v.String()), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return Nil{}, nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return String(bytesOf(v)), nil
		}
		return e.marshalArray(v)
	case reflect.Map:
		if v.IsNil() {
			return Nil{}, nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{Type: v.Type()}
		}
		return e.marshalMap(v)
	case reflect.Struct:
		return e.marshalStruct(v)
	default:
		return nil, &UnsupportedTypeError{Type: v.Type()}
	}
}

func (e *encodeState) enter() error {
	e.depth++
	if e.maxDepth > 0 && e.depth > e.maxDepth {
		return ErrMaxDepth
	}
	return nil
}

func (e *encodeState) leave() { e.depth-- }

func (e *encodeState) marshalArray(v reflect.Value) (Value, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.leave()

	elements := make(Array, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem, err := e.marshalValue(v.Index(i))
		if err != nil {
			return nil, errors.Wrapf(err, "index %d", i)
		}
		elements[i] = elem
	}
	return elements, nil
}

// marshalMap encodes a map with string keys. Maps carry no declaration
// order, so keys are sorted to keep the output deterministic.
func (e *encodeState) marshalMap(v reflect.Value) (Value, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.leave()

	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})

	fields := make(Aggregate, 0, len(keys))
	for _, key := range keys {
		val, err := e.marshalValue(v.MapIndex(key))
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", key.String())
		}
		fields = append(fields, Field{Name: key.String(), Value: val})
	}
	return fields, nil
}

func (e *encodeState) marshalStruct(v reflect.Value) (Value, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.leave()

	structFields := mapper.Fields(v.Type())
	fields := make(Aggregate, 0, len(structFields))
	for _, sf := range structFields {
		fv := v.FieldByIndex(sf.Index)
		if sf.OmitEmpty && mapper.IsEmptyValue(fv) {
			continue
		}
		val, err := e.marshalValue(fv)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", sf.Name)
		}
		fields = append(fields, Field{Name: sf.Name, Value: val})
	}
	return fields, nil
}

func bytesOf(v reflect.Value) []byte {
	if v.Kind() == reflect.Slice {
		return v.Bytes()
	}
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}
	return b
}
