package nn

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/tensor"
)

// Network is a container that chains layers together.
//
// Each layer's output becomes the next layer's input on Forward. Backward
// walks the layers in reverse, handing every layer the input it received on
// the forward pass.
//
// Example:
//
//	l1, _ := nn.NewLinear(3, 4)
//	l2, _ := nn.NewLinear(4, 2)
//	net, err := nn.NewNetwork(l1, l2)
//
//	output, err := net.Forward(input)           // [5, 3] -> [5, 2]
//	gradIn, err := net.Backward(gradOut, input) // [5, 2] -> [5, 3]
//	pairs := net.ParamsAndGrads()               // 4 entries
//
// A Network is not safe for concurrent use.
type Network struct {
	layers []Layer

	// Per-layer inputs recorded by the last successful Forward call.
	// inputs[0] is the network input.
	inputs []*tensor.Tensor
}

// NewNetwork creates a network from an ordered, non-empty list of layers.
//
// Parameters:
//   - layers: Layers to chain together, in forward order
//
// Adjacent layer sizes are not checked here; a mismatch surfaces as
// ErrShapeMismatch on the first Forward that reaches it.
//
// Returns a new Network, or an error matching ErrInvalidConstruction if
// layers is empty or contains nil.
func NewNetwork(layers ...Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, &ConstructionError{Component: "network", Details: "at least one layer is required"}
	}
	for i, layer := range layers {
		if layer == nil {
			return nil, &ConstructionError{Component: "network", Details: fmt.Sprintf("layer %d is nil", i)}
		}
	}

	owned := make([]Layer, len(layers))
	copy(owned, layers)
	return &Network{layers: owned}, nil
}

// Forward applies all layers in sequence and returns the last layer's output.
func (n *Network) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	inputs, output, err := n.forward(input, false)
	if err != nil {
		n.inputs = nil
		return nil, err
	}
	n.inputs = inputs
	return output, nil
}

// replay is Forward without parameter side effects in any layer that
// supports it.
func (n *Network) replay(input *tensor.Tensor) (*tensor.Tensor, error) {
	inputs, output, err := n.forward(input, true)
	if err != nil {
		return nil, err
	}
	n.inputs = inputs
	return output, nil
}

func (n *Network) forward(input *tensor.Tensor, replay bool) ([]*tensor.Tensor, *tensor.Tensor, error) {
	if input == nil {
		return nil, nil, tensor.NewShapeError("network.forward", "nil input")
	}

	inputs := make([]*tensor.Tensor, len(n.layers))
	output := input
	for i, layer := range n.layers {
		inputs[i] = output
		var err error
		if r, ok := layer.(replayer); ok && replay {
			output, err = r.replay(output)
		} else {
			output, err = layer.Forward(output)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return inputs, output, nil
}

// Backward propagates grad, the gradient of the loss with respect to the
// network output, through the layers in reverse order.
//
// input must be the network input of the matching Forward call. When it is
// the same tensor the last Forward received, the recorded per-layer inputs
// are replayed; otherwise they are recomputed with a forward pass over input
// that never re-samples parameters.
//
// Returns the gradient with respect to input. Gradients are written only if
// every layer succeeds; a layer outside this package that does not stage its
// gradients writes them as soon as its own Backward returns.
func (n *Network) Backward(grad, input *tensor.Tensor) (*tensor.Tensor, error) {
	gradIn, commit, err := n.stageBackward(grad, input)
	if err != nil {
		return nil, err
	}
	commit()
	return gradIn, nil
}

func (n *Network) stageBackward(grad, input *tensor.Tensor) (*tensor.Tensor, func(), error) {
	if grad == nil || input == nil {
		return nil, nil, tensor.NewShapeError("network.backward", "nil gradient or input")
	}

	inputs := n.inputs
	if len(inputs) == 0 || inputs[0] != input {
		var err error
		inputs, _, err = n.forward(input, true)
		if err != nil {
			return nil, nil, err
		}
		n.inputs = inputs
	}

	commits := make([]func(), 0, len(n.layers))
	for i := len(n.layers) - 1; i >= 0; i-- {
		var err error
		if s, ok := n.layers[i].(stager); ok {
			var commit func()
			grad, commit, err = s.stageBackward(grad, inputs[i])
			if err == nil {
				commits = append(commits, commit)
			}
		} else {
			grad, err = n.layers[i].Backward(grad, inputs[i])
		}
		if err != nil {
			return nil, nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	commit := func() {
		for _, c := range commits {
			c()
		}
	}
	return grad, commit, nil
}

// ParamsAndGrads returns, for every trainable layer in forward order, the
// pair (weights, bias) followed by the pair (grad_weights, grad_bias).
//
// A network of k Linear layers yields 2*k entries. Nested networks are
// flattened in place and stateless layers are skipped. The tensors are copies,
// so an optimizer can read them freely; write updates back through
// Linear.SetParams. Before the first Backward and after ZeroGrad the gradient
// pair holds zeros shaped like the weights and bias.
func (n *Network) ParamsAndGrads() []TensorPair {
	pairs := make([]TensorPair, 0, 2*len(n.layers))
	for _, layer := range n.layers {
		if sub, ok := layer.(*Network); ok {
			pairs = append(pairs, sub.ParamsAndGrads()...)
			continue
		}
		trainable, ok := layer.(Trainable)
		if !ok {
			continue
		}
		p := trainable.Params()
		pairs = append(pairs,
			TensorPair{First: p.Weights, Second: p.Bias},
			TensorPair{First: zerosIfNil(p.GradWeights, p.Weights), Second: zerosIfNil(p.GradBias, p.Bias)},
		)
	}
	return pairs
}

// zerosIfNil returns grad, or zeros shaped like like when grad is nil.
func zerosIfNil(grad, like *tensor.Tensor) *tensor.Tensor {
	if grad != nil || like == nil {
		return grad
	}
	z, err := tensor.Zeros(like.Shape())
	if err != nil {
		return nil
	}
	return z
}

// ZeroGrad clears the gradients of every trainable layer.
func (n *Network) ZeroGrad() {
	for _, layer := range n.layers {
		switch l := layer.(type) {
		case *Network:
			l.ZeroGrad()
		case Trainable:
			l.ZeroGrad()
		}
	}
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Network) Layer(index int) Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// Layers returns a copy of the layer list in forward order.
func (n *Network) Layers() []Layer {
	out := make([]Layer, len(n.layers))
	copy(out, n.layers)
	return out
}
