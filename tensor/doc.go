// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the float64 tensors consumed by package nn.
//
// # Overview
//
// A Tensor is a rank-1 or rank-2 array stored in a gonum dense matrix. The
// package provides exactly the algebra a dense layer needs:
//   - MatMul: matrix product of two rank-2 tensors
//   - AddRowVector: add a vector to every row of a matrix
//   - Transpose: rank-2 transpose
//   - Sum: reduction over axis 0 or 1
//   - Randn, Uniform: random sampling from a seedable source
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/tensor"
//	    "golang.org/x/exp/rand"
//	)
//
//	func main() {
//	    x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    w, err := tensor.Randn(tensor.Shape{3, 4}, rand.NewSource(1))
//	    y, err := tensor.MatMul(x, w) // (2, 4)
//	}
//
// # Errors
//
// Operations check shapes before touching gonum, so they return errors
// instead of panicking:
//
//	_, err := tensor.MatMul(a, b)
//	if errors.Is(err, tensor.ErrShapeMismatch) {
//	    var se *tensor.ShapeError
//	    errors.As(err, &se)
//	    fmt.Println(se.Op, se.Shapes)
//	}
//
// # Immutability
//
// No operation modifies its operands, and Tensor has no setters. Data and
// Clone return copies.
package tensor
