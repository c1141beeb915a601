// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/tensor"
	"golang.org/x/exp/rand"
)

// Layer is the interface implemented by every network component.
type Layer = nn.Layer

// Trainable is a Layer that owns learnable parameters.
type Trainable = nn.Trainable

// Params holds a layer's weights, bias and their gradients.
type Params = nn.Params

// TensorPair is one entry of Network.ParamsAndGrads.
type TensorPair = nn.TensorPair

// ConstructionError reports which constructor check failed.
type ConstructionError = nn.ConstructionError

// Errors.
var (
	ErrShapeMismatch       = nn.ErrShapeMismatch
	ErrInvalidConstruction = nn.ErrInvalidConstruction
)

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// LinearOption configures a Linear layer.
type LinearOption = nn.LinearOption

// NewLinear creates a new linear layer with N(0, 1) initialization.
//
// Example:
//
//	layer, err := nn.NewLinear(784, 128, nn.WithSeed(1))
func NewLinear(inFeatures, outFeatures int, opts ...LinearOption) (*Linear, error) {
	return nn.NewLinear(inFeatures, outFeatures, opts...)
}

// WithSeed seeds the random source used to initialize parameters.
func WithSeed(seed uint64) LinearOption {
	return nn.WithSeed(seed)
}

// WithSource sets the random source used to initialize parameters.
func WithSource(src rand.Source) LinearOption {
	return nn.WithSource(src)
}

// WithInitializer sets the weight initializer.
func WithInitializer(fn Initializer) LinearOption {
	return nn.WithInitializer(fn)
}

// WithBiasInitializer sets the bias initializer.
func WithBiasInitializer(fn Initializer) LinearOption {
	return nn.WithBiasInitializer(fn)
}

// WithLegacyResample re-samples parameters on every Forward call.
func WithLegacyResample() LinearOption {
	return nn.WithLegacyResample()
}

// WithLegacyInputGradient makes Backward propagate grad @ GradWeights.T.
func WithLegacyInputGradient() LinearOption {
	return nn.WithLegacyInputGradient()
}

// Network

// Network represents an ordered container of layers.
type Network = nn.Network

// NewNetwork creates a network from an ordered, non-empty list of layers.
//
// Example:
//
//	l1, _ := nn.NewLinear(3, 4)
//	l2, _ := nn.NewLinear(4, 2)
//	net, err := nn.NewNetwork(l1, l2)
func NewNetwork(layers ...Layer) (*Network, error) {
	return nn.NewNetwork(layers...)
}

// Initialization functions

// Initializer creates a parameter tensor of the given shape.
type Initializer = nn.Initializer

// Randn initializes a tensor with values from N(0, 1).
func Randn(fanIn, fanOut int, shape tensor.Shape, src rand.Source) (*tensor.Tensor, error) {
	return nn.Randn(fanIn, fanOut, shape, src)
}

// Xavier initializes a tensor using Xavier/Glorot uniform initialization.
func Xavier(fanIn, fanOut int, shape tensor.Shape, src rand.Source) (*tensor.Tensor, error) {
	return nn.Xavier(fanIn, fanOut, shape, src)
}

// Zeros initializes a tensor with zeros (for biases).
func Zeros(fanIn, fanOut int, shape tensor.Shape, src rand.Source) (*tensor.Tensor, error) {
	return nn.Zeros(fanIn, fanOut, shape, src)
}
