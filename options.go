package luavalues

import "github.com/cockroachdb/errors"

// Option configures encoding.
type Option func(*options) error

type options struct {
	maxDepth int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that limits how deeply values may nest.
// Exceeding the limit fails with ErrMaxDepth instead of recursing further,
// which turns a cyclic pointer graph into an error rather than a stack
// overflow.
//
// By default nesting is unbounded. The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return errors.New("luavalues: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
