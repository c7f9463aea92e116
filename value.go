package luavalues

// Value is a node of a value tree that can be rendered as a chunk.
//
// The set of implementations is closed: Nil, Boolean, Number, String,
// Array and Aggregate. A nil Value renders the same as Nil.
//
// A Value tree must not contain cycles, and it must not be mutated while
// it is being serialized.
type Value interface {
	value()
}

// Nil represents the absence of a value.
type Nil struct{}

// Boolean is a true or false value.
type Boolean bool

// Number is the single numeric representation. Integral values are
// recognized by having no fractional part.
type Number float64

// String is a text value.
type String string

// Array is an ordered sequence of values without keys.
type Array []Value

// Aggregate is an ordered sequence of named fields. Names are expected to
// be unique bare identifiers; this is not validated. Field order is kept
// exactly as given.
//
// An empty Aggregate and an empty Array render identically as {}.
type Aggregate []Field

// Field is a single name=value pair of an Aggregate.
type Field struct {
	Name  string
	Value Value
}

func (Nil) value()       {}
func (Boolean) value()   {}
func (Number) value()    {}
func (String) value()    {}
func (Array) value()     {}
func (Aggregate) value() {}
