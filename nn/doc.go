// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward network layers with explicit forward and
// backward passes.
//
// # Overview
//
// This package contains:
//   - Layer interface: Forward and Backward
//   - Linear: Fully connected layer y = x @ W + b
//   - Network: Ordered container of layers
//   - Initialization: Randn, Xavier, Zeros
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/nn"
//	    "github.com/born-ml/ffnet/tensor"
//	)
//
//	func main() {
//	    l1, _ := nn.NewLinear(3, 4, nn.WithSeed(1))
//	    l2, _ := nn.NewLinear(4, 2, nn.WithSeed(2))
//	    net, _ := nn.NewNetwork(l1, l2)
//
//	    // Forward pass: [5, 3] -> [5, 2]
//	    output, err := net.Forward(input)
//
//	    // Backward pass: dL/dy [5, 2] -> dL/dx [5, 3]
//	    gradIn, err := net.Backward(gradOut, input)
//	}
//
// # Backward Pass
//
// Network.Forward records the input each layer receives. Network.Backward
// walks the layers in reverse and hands each one its own recorded input.
// Linear.Backward stores
//
//	GradBias    = sum(dL/dy, axis 0)
//	GradWeights = x.T @ dL/dy
//
// and returns dL/dx = dL/dy @ W.T.
//
// # Parameter Management
//
// An external optimizer reads (parameter, gradient) pairs and writes updates
// back per layer:
//
//	pairs := net.ParamsAndGrads() // [(W1, b1), (dW1, db1), (W2, b2), (dW2, db2)]
//	err := l1.SetParams(newW1, newB1)
//
// Gradient pairs are zero-filled before the first Backward and after
// ZeroGrad. A Backward that fails leaves every Linear's gradients as they
// were.
//
// # Errors
//
// Shape problems match ErrShapeMismatch and bad constructor arguments match
// ErrInvalidConstruction under errors.Is.
package nn
