package luavalues

import (
	"io"

	"github.com/KimNorgaard/go-luavalues/internal/formatter"
	"github.com/cockroachdb/errors"
)

const separator = ", "

// chunkFormatter writes a Value tree to an output stream.
type chunkFormatter struct {
	w        io.Writer
	depth    int
	maxDepth int
}

// newChunkFormatter returns a new chunkFormatter that writes to w.
func newChunkFormatter(w io.Writer, opts *options) *chunkFormatter {
	return &chunkFormatter{w: w, maxDepth: opts.maxDepth}
}

// format writes the chunk representation of v to the writer.
func (f *chunkFormatter) format(v Value) error {
	return f.writeValue(v)
}

func (f *chunkFormatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *chunkFormatter) writeValue(v Value) error {
	switch n := v.(type) {
	case nil, Nil:
		return f.write("nil")

	case Boolean:
		if n {
			return f.write("true")
		}
		return f.write("false")

	case Number:
		s, err := formatter.Number(float64(n))
		if err != nil {
			return errors.Wrapf(ErrUnsupportedValue, "number %v", float64(n))
		}
		return f.write(s)

	case String:
		return f.write(formatter.Quote(string(n)))

	case Array:
		return f.writeArray(n)

	case Aggregate:
		return f.writeAggregate(n)

	default:
		return errors.Wrapf(ErrUnsupportedValue, "value of type %T", n)
	}
}

func (f *chunkFormatter) enter() error {
	f.depth++
	if f.maxDepth > 0 && f.depth > f.maxDepth {
		return ErrMaxDepth
	}
	return nil
}

func (f *chunkFormatter) writeArray(arr Array) error {
	if err := f.enter(); err != nil {
		return err
	}
	defer func() { f.depth-- }()

	if err := f.write("{"); err != nil {
		return err
	}
	for i, elem := range arr {
		if i > 0 {
			if err := f.write(separator); err != nil {
				return err
			}
		}
		if err := f.writeValue(elem); err != nil {
			return err
		}
	}
	return f.write("}")
}

func (f *chunkFormatter) writeAggregate(agg Aggregate) error {
	if err := f.enter(); err != nil {
		return err
	}
	defer func() { f.depth-- }()

	if err := f.write("{"); err != nil {
		return err
	}
	for i, field := range agg {
		if i > 0 {
			if err := f.write(separator); err != nil {
				return err
			}
		}
		if err := f.write(field.Name + "="); err != nil {
			return err
		}
		if err := f.writeValue(field.Value); err != nil {
			return err
		}
	}
	return f.write("}")
}
