// Package tensor is a small float64 tensor adapter over gonum's dense matrices.
//
// Only rank-1 and rank-2 tensors exist. A rank-1 tensor of length n is stored
// as a 1×n row so every value can be handed to gonum/mat directly.
//
// Operations never panic on incompatible operands. Shapes are checked up
// front and failures are returned as *ShapeError, which matches
// ErrShapeMismatch under errors.Is.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tensor is a rank-1 or rank-2 float64 array.
type Tensor struct {
	shape Shape
	dense *mat.Dense // rank-1 tensors are stored as a single row
}

// newTensor wraps dense without copying. shape must describe dense.
func newTensor(shape Shape, dense *mat.Dense) *Tensor {
	return &Tensor{shape: shape.Clone(), dense: dense}
}

// FromSlice creates a tensor from row-major data. The data is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, NewShapeError("from_slice",
			fmt.Sprintf("%d values cannot fill %d elements", len(data), shape.NumElements()), shape)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return newTensor(shape, mat.NewDense(shape.rows(), shape.cols(), buf)), nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// At returns the element at the given indices.
//
// Panics if the number of indices does not match the rank, like gonum's At
// panics on out-of-range access.
func (t *Tensor) At(indices ...int) float64 {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor.At: expected %d indices, got %d", len(t.shape), len(indices)))
	}
	if len(indices) == 1 {
		return t.dense.At(0, indices[0])
	}
	return t.dense.At(indices[0], indices[1])
}

// Data returns a row-major copy of the tensor's values.
func (t *Tensor) Data() []float64 {
	r, c := t.dense.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, t.dense.RawRowView(i)...)
	}
	return out
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	return newTensor(t.shape, mat.DenseCopyOf(t.dense))
}

// Matrix returns the tensor as a gonum matrix. Rank-1 tensors appear as a
// 1×n row. The result shares storage with t and must not be modified.
func (t *Tensor) Matrix() mat.Matrix {
	return t.dense
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v %v", t.shape, t.Data())
}

// AllClose reports whether a and b have equal shapes and every pair of
// elements differs by at most tol.
func AllClose(a, b *Tensor, tol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	return floats.EqualApprox(a.Data(), b.Data(), tol)
}
