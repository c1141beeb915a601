// Package nn implements feed-forward neural network layers with explicit
// forward and backward passes.
//
// This package provides:
//   - Layer interface: Forward and Backward over tensors
//   - Trainable interface: layers that own Params
//   - Linear: Fully connected layer with analytic gradients
//   - Network: Ordered container that chains layers
//
// There is no computation graph. Each layer computes its own gradients when
// Backward is called with the gradient of its output and the input it saw on
// the matching Forward.
package nn

import (
	"github.com/born-ml/ffnet/internal/tensor"
)

// Layer is the interface implemented by every network component.
//
// Layers are composed by Network:
//
//	net, err := nn.NewNetwork(layer1, layer2)
//	out, err := net.Forward(input)
//	gradIn, err := net.Backward(gradOut, input)
type Layer interface {
	// Forward computes the output of the layer for the given input.
	//
	// For example, Linear expects [batch_size, in_features] and returns
	// [batch_size, out_features].
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Backward takes the gradient of the loss with respect to this layer's
	// output and the input the layer received on the matching Forward call.
	//
	// It returns the gradient with respect to the input and, as a side
	// effect, stores the gradients of the layer's own parameters.
	Backward(grad, input *tensor.Tensor) (*tensor.Tensor, error)
}

// Trainable is a Layer that owns learnable parameters.
type Trainable interface {
	Layer

	// Params returns a snapshot of the layer's parameters and gradients.
	Params() Params

	// ZeroGrad clears the stored gradients.
	ZeroGrad()
}

// replayer recomputes a forward pass without touching parameters. Network
// uses it when Backward has to rebuild per-layer inputs.
type replayer interface {
	replay(input *tensor.Tensor) (*tensor.Tensor, error)
}

// stager computes a backward pass but defers writing gradients until commit
// is called, so a Network can apply all layers' gradients or none.
type stager interface {
	stageBackward(grad, input *tensor.Tensor) (gradIn *tensor.Tensor, commit func(), err error)
}
