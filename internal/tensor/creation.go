package tensor

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newTensor(shape, mat.NewDense(shape.rows(), shape.cols(), nil)), nil
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return fill(shape, func() float64 { return value }), nil
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1).
//
// A nil src uses the global source of golang.org/x/exp/rand.
func Randn(shape Shape, src rand.Source) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	return fill(shape, dist.Rand), nil
}

// Uniform creates a tensor with values drawn uniformly from [lo, hi).
//
// A nil src uses the global source of golang.org/x/exp/rand.
func Uniform(shape Shape, lo, hi float64, src rand.Source) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	dist := distuv.Uniform{Min: lo, Max: hi, Src: src}
	return fill(shape, dist.Rand), nil
}

// fill assumes shape is valid.
func fill(shape Shape, next func() float64) *Tensor {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = next()
	}
	return newTensor(shape, mat.NewDense(shape.rows(), shape.cols(), data))
}
