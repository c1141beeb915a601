// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ffnet/internal/tensor"
	"golang.org/x/exp/rand"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{4, 3} represents a matrix with 4 rows and 3 columns.
type Shape = tensor.Shape

// Tensor is a rank-1 or rank-2 float64 array.
type Tensor = tensor.Tensor

// ShapeError reports an operation that received incompatible shapes.
type ShapeError = tensor.ShapeError

// Errors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrInvalidShape  = tensor.ErrInvalidShape
)

// Creation functions

// FromSlice creates a tensor from row-major data. The data is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// Randn creates a tensor filled with random values from standard normal distribution N(0, 1).
//
// Example:
//
//	x, err := tensor.Randn(tensor.Shape{2, 3}, rand.NewSource(42))
func Randn(shape Shape, src rand.Source) (*Tensor, error) {
	return tensor.Randn(shape, src)
}

// Uniform creates a tensor filled with random values from U(lo, hi).
func Uniform(shape Shape, lo, hi float64, src rand.Source) (*Tensor, error) {
	return tensor.Uniform(shape, lo, hi, src)
}

// Operations

// MatMul computes a @ b for rank-2 tensors.
func MatMul(a, b *Tensor) (*Tensor, error) {
	return tensor.MatMul(a, b)
}

// AddRowVector adds the rank-1 tensor v to every row of m.
func AddRowVector(m, v *Tensor) (*Tensor, error) {
	return tensor.AddRowVector(m, v)
}

// Transpose returns the transpose of a rank-2 tensor.
func Transpose(t *Tensor) (*Tensor, error) {
	return tensor.Transpose(t)
}

// Sum reduces a rank-2 tensor over axis 0 or 1.
func Sum(t *Tensor, axis int) (*Tensor, error) {
	return tensor.Sum(t, axis)
}

// AllClose reports whether a and b have equal shapes and elements within tol.
func AllClose(a, b *Tensor, tol float64) bool {
	return tensor.AllClose(a, b, tol)
}
