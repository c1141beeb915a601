package nn

import (
	"golang.org/x/exp/rand"
)

// LinearOption configures a Linear layer.
type LinearOption func(*linearOptions)

type linearOptions struct {
	weightInit Initializer
	biasInit   Initializer
	src        rand.Source

	// Legacy behaviors, off by default.
	resampleOnForward   bool
	gradWeightInputGrad bool
}

func defaultLinearOptions() *linearOptions {
	return &linearOptions{
		weightInit: Randn,
		biasInit:   Randn,
	}
}

// WithSeed seeds the random source used to initialize parameters.
//
// Two layers of the same size built with the same seed start with identical
// parameters.
func WithSeed(seed uint64) LinearOption {
	return func(o *linearOptions) {
		o.src = rand.NewSource(seed)
	}
}

// WithSource sets the random source used to initialize parameters.
func WithSource(src rand.Source) LinearOption {
	return func(o *linearOptions) {
		o.src = src
	}
}

// WithInitializer sets the weight initializer (default Randn).
func WithInitializer(fn Initializer) LinearOption {
	return func(o *linearOptions) {
		o.weightInit = fn
	}
}

// WithBiasInitializer sets the bias initializer (default Randn).
func WithBiasInitializer(fn Initializer) LinearOption {
	return func(o *linearOptions) {
		o.biasInit = fn
	}
}

// WithLegacyResample re-samples weights and bias at the start of every
// Forward call, matching the first releases of this layer.
//
// A layer built with this option cannot learn: any update written through
// SetParams is discarded by the next Forward.
func WithLegacyResample() LinearOption {
	return func(o *linearOptions) {
		o.resampleOnForward = true
	}
}

// WithLegacyInputGradient makes Backward return grad @ GradWeights.T instead
// of grad @ Weights.T, matching the first releases of this layer.
//
// The returned gradient is not the derivative of the layer output with
// respect to its input.
func WithLegacyInputGradient() LinearOption {
	return func(o *linearOptions) {
		o.gradWeightInputGrad = true
	}
}
