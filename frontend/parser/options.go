package parser

// DefaultMaxDepth bounds how deeply statements and expressions may nest.
const DefaultMaxDepth = 256

type options struct {
	maxDepth int
}

type Option func(*options)

// WithMaxDepth sets the nesting limit. Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
