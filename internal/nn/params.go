package nn

import (
	"github.com/born-ml/ffnet/internal/tensor"
)

// Params holds the learnable tensors of a Linear layer and their gradients.
//
// Shapes:
//   - Weights, GradWeights: [in_features, out_features]
//   - Bias, GradBias: [out_features]
//
// GradWeights and GradBias are nil until the first backward pass.
type Params struct {
	Weights     *tensor.Tensor
	Bias        *tensor.Tensor
	GradWeights *tensor.Tensor
	GradBias    *tensor.Tensor
}

// Clone returns a deep copy. Nil gradients stay nil.
func (p Params) Clone() Params {
	return Params{
		Weights:     cloneOrNil(p.Weights),
		Bias:        cloneOrNil(p.Bias),
		GradWeights: cloneOrNil(p.GradWeights),
		GradBias:    cloneOrNil(p.GradBias),
	}
}

// HasGrad reports whether a backward pass has populated the gradients.
func (p Params) HasGrad() bool {
	return p.GradWeights != nil && p.GradBias != nil
}

// TensorPair is one entry of Network.ParamsAndGrads: either (weights, bias)
// or (grad_weights, grad_bias) of a single layer.
type TensorPair struct {
	First  *tensor.Tensor
	Second *tensor.Tensor
}

func cloneOrNil(t *tensor.Tensor) *tensor.Tensor {
	if t == nil {
		return nil
	}
	return t.Clone()
}
