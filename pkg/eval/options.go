package eval

// defaultMaxIterations bounds Kleene iteration on any single strongly
// connected component of variables.  10000 is generous for the interval and
// float interpretations in pkg/interp, which converge in a handful of
// rounds; it exists as a backstop against a genuinely non-monotone or
// misbehaving interpretation rather than as a tuning knob.
const defaultMaxIterations = 10000

// Option configures a single Eval or EvalMany call.
type Option func(*options)

type options struct {
	maxIterations uint
}

func newOptions(opts ...Option) *options {
	o := &options{maxIterations: defaultMaxIterations}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithMaxIterations overrides the Kleene iteration bound for one call.
func WithMaxIterations(n uint) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}
