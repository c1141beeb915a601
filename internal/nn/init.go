package nn

import (
	"math"

	"github.com/born-ml/ffnet/internal/tensor"
	"golang.org/x/exp/rand"
)

// Initializer creates a parameter tensor of the given shape.
//
// fanIn and fanOut are the layer's input and output feature counts; shape is
// either [fanIn, fanOut] for weights or [fanOut] for bias. src may be nil, in
// which case the global golang.org/x/exp/rand source is used.
type Initializer func(fanIn, fanOut int, shape tensor.Shape, src rand.Source) (*tensor.Tensor, error)

// Randn draws every value from the standard normal distribution N(0, 1).
//
// This is the default for both weights and bias of Linear.
func Randn(_, _ int, shape tensor.Shape, src rand.Source) (*tensor.Tensor, error) {
	return tensor.Randn(shape, src)
}

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// Parameters:
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - shape: Shape of the tensor to fill
//   - src: Random source, or nil for the global source
//
// Returns a tensor with uniformly distributed values.
func Xavier(fanIn, fanOut int, shape tensor.Shape, src rand.Source) (*tensor.Tensor, error) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return tensor.Uniform(shape, -bound, bound, src)
}

// Zeros creates a tensor filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros(_, _ int, shape tensor.Shape, _ rand.Source) (*tensor.Tensor, error) {
	return tensor.Zeros(shape)
}
