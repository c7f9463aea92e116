/*
Package luavalues converts Go values into Lua table-constructor literals,
called chunks, and parses scalar chunks back into Go values.

A chunk is text such as

	{message="Hello", data={number=37, values={37, 15, 72}}, flag=true}

that an interpreter accepting this literal syntax can load directly as data.

# Encoding

Any Go value can be encoded with Marshal, or with an Encoder writing to an
io.Writer. The value is first converted into a Value tree (see ValueOf) and
then rendered:

	type Reading struct {
		Message      string    `lua:"message"`
		Measurements []float64 `lua:"measurements"`
	}

	b, err := luavalues.Marshal(Reading{Message: "Hello", Measurements: []float64{1.23, 4.56}})
	if err != nil {
		// handle error
	}
	// b is {message="Hello", measurements={1.23, 4.56}}

Struct fields keep their declaration order. A Value tree can also be built
by hand and rendered with ToChunk:

	chunk, err := luavalues.ToChunk(luavalues.Aggregate{
		{Name: "X", Value: luavalues.Number(1)},
		{Name: "Y", Value: luavalues.Nil{}},
	})
	// chunk is {X=1, Y=nil}

Numbers are written in their shortest round-trip form. Integral values
below one million carry no decimal point; very small and very large
magnitudes switch to scientific notation with a signed two-digit exponent,
such as 5.29E-05 and 1.7E+07.

Empty arrays and empty aggregates are both written as {}; the format cannot
tell them apart.

# Parsing

ParseBoolean, ParseNumber and ParseString recognize a single scalar literal.
They never fail with an error; the second result reports whether the whole
chunk was a literal of the requested kind:

	if s, ok := luavalues.ParseString(`'Hello'`); ok {
		// s is Hello
	}

Nested arrays and aggregates are not parsed.

All functions are safe for concurrent use on independent inputs.
*/
package luavalues
