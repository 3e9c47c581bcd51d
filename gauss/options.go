package gauss

import "math"

// DefaultEpsilon is the single zero-comparison threshold. It decides an
// exact 1 (preferred pivot), a usable pivot, a negligible factor and the
// final snapping of near-zero entries.
const DefaultEpsilon = 1e-10

const panicEpsilonInvalid = "gauss: WithEpsilon: eps must be finite and positive"

// Option mutates internal options.
type Option func(*Options)

// Options is the effective engine configuration.
type Options struct {
	eps float64 // DefaultEpsilon
}

// WithEpsilon overrides the zero threshold for one call.
// Panics when eps is not finite or not strictly positive (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
