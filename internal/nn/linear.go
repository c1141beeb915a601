package nn

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/tensor"
	"golang.org/x/exp/rand"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights and bias are drawn from N(0, 1) once, at construction.
//
// Example:
//
//	layer, err := nn.NewLinear(784, 128, nn.WithSeed(1))
//	output, err := layer.Forward(input)           // [32, 784] -> [32, 128]
//	gradIn, err := layer.Backward(gradOut, input) // [32, 128] -> [32, 784]
type Linear struct {
	inFeatures  int
	outFeatures int
	params      Params

	weightInit Initializer
	biasInit   Initializer
	src        rand.Source

	resampleOnForward   bool
	gradWeightInputGrad bool
}

// NewLinear creates a new Linear layer.
//
// Parameters:
//   - inFeatures: Size of each input sample
//   - outFeatures: Size of each output sample
//   - opts: Initialization and legacy options (see LinearOption)
//
// Weights [inFeatures, outFeatures] and bias [outFeatures] are sampled once
// here, from N(0, 1) unless WithInitializer or WithBiasInitializer say
// otherwise.
//
// Returns the new layer, or an error matching ErrInvalidConstruction if
// either size is not positive or an initializer is nil.
func NewLinear(inFeatures, outFeatures int, opts ...LinearOption) (*Linear, error) {
	if inFeatures <= 0 || outFeatures <= 0 {
		return nil, &ConstructionError{
			Component: "linear",
			Details:   fmt.Sprintf("sizes must be positive, got in=%d out=%d", inFeatures, outFeatures),
		}
	}

	options := defaultLinearOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.weightInit == nil || options.biasInit == nil {
		return nil, &ConstructionError{Component: "linear", Details: "nil initializer"}
	}

	l := &Linear{
		inFeatures:          inFeatures,
		outFeatures:         outFeatures,
		weightInit:          options.weightInit,
		biasInit:            options.biasInit,
		src:                 options.src,
		resampleOnForward:   options.resampleOnForward,
		gradWeightInputGrad: options.gradWeightInputGrad,
	}
	if err := l.initialize(); err != nil {
		return nil, fmt.Errorf("linear: initialize parameters: %w", err)
	}
	return l, nil
}

// initialize samples fresh weights and bias.
func (l *Linear) initialize() error {
	weights, err := l.weightInit(l.inFeatures, l.outFeatures, tensor.Shape{l.inFeatures, l.outFeatures}, l.src)
	if err != nil {
		return err
	}
	bias, err := l.biasInit(l.inFeatures, l.outFeatures, tensor.Shape{l.outFeatures}, l.src)
	if err != nil {
		return err
	}
	if err := l.checkParamShapes("linear.initialize", weights, bias); err != nil {
		return err
	}

	l.params.Weights = weights
	l.params.Bias = bias
	return nil
}

// Forward computes the output of the linear layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	if err := l.checkInput("linear.forward", input); err != nil {
		return nil, err
	}

	if l.resampleOnForward {
		if err := l.initialize(); err != nil {
			return nil, err
		}
	}
	return l.affine(input)
}

// replay is Forward without re-sampling.
func (l *Linear) replay(input *tensor.Tensor) (*tensor.Tensor, error) {
	if err := l.checkInput("linear.forward", input); err != nil {
		return nil, err
	}
	return l.affine(input)
}

func (l *Linear) checkInput(op string, input *tensor.Tensor) error {
	if input == nil {
		return tensor.NewShapeError(op, "nil input")
	}
	if input.Rank() != 2 || input.Shape()[1] != l.inFeatures {
		return tensor.NewShapeError(op, fmt.Sprintf("expected input [batch, %d]", l.inFeatures), input.Shape())
	}
	return nil
}

func (l *Linear) affine(input *tensor.Tensor) (*tensor.Tensor, error) {
	// [batch, in] @ [in, out] = [batch, out]
	output, err := tensor.MatMul(input, l.params.Weights)
	if err != nil {
		return nil, err
	}
	return tensor.AddRowVector(output, l.params.Bias)
}

// Backward computes parameter gradients and the gradient for the input.
//
// Given dL/dy with shape [batch, out_features] and the input x with shape
// [batch, in_features] from the matching Forward call:
//
//	GradBias    = sum(dL/dy, axis 0)  [out_features]
//	GradWeights = x.T @ dL/dy         [in_features, out_features]
//	dL/dx       = dL/dy @ W.T         [batch, in_features]
//
// Stored gradients are overwritten, not accumulated. On error the layer is
// left unchanged.
func (l *Linear) Backward(grad, input *tensor.Tensor) (*tensor.Tensor, error) {
	gradInput, commit, err := l.stageBackward(grad, input)
	if err != nil {
		return nil, err
	}
	commit()
	return gradInput, nil
}

func (l *Linear) stageBackward(grad, input *tensor.Tensor) (*tensor.Tensor, func(), error) {
	if grad == nil || input == nil {
		return nil, nil, tensor.NewShapeError("linear.backward", "nil gradient or input")
	}

	gShape, xShape := grad.Shape(), input.Shape()
	switch {
	case grad.Rank() != 2 || gShape[1] != l.outFeatures:
		return nil, nil, tensor.NewShapeError("linear.backward",
			fmt.Sprintf("expected gradient [batch, %d]", l.outFeatures), gShape, xShape)
	case input.Rank() != 2 || xShape[1] != l.inFeatures:
		return nil, nil, tensor.NewShapeError("linear.backward",
			fmt.Sprintf("expected input [batch, %d]", l.inFeatures), gShape, xShape)
	case gShape[0] != xShape[0]:
		return nil, nil, tensor.NewShapeError("linear.backward",
			fmt.Sprintf("gradient batch %d does not match input batch %d", gShape[0], xShape[0]), gShape, xShape)
	}

	gradBias, err := tensor.Sum(grad, 0)
	if err != nil {
		return nil, nil, err
	}

	inputT, err := tensor.Transpose(input)
	if err != nil {
		return nil, nil, err
	}
	gradWeights, err := tensor.MatMul(inputT, grad)
	if err != nil {
		return nil, nil, err
	}

	w := l.params.Weights
	if l.gradWeightInputGrad {
		w = gradWeights
	}
	wT, err := tensor.Transpose(w)
	if err != nil {
		return nil, nil, err
	}
	gradInput, err := tensor.MatMul(grad, wT)
	if err != nil {
		return nil, nil, err
	}

	commit := func() {
		l.params.GradWeights = gradWeights
		l.params.GradBias = gradBias
	}
	return gradInput, commit, nil
}

// Params returns a deep copy of the layer's parameters and gradients.
func (l *Linear) Params() Params {
	return l.params.Clone()
}

// SetParams replaces the weights and bias with copies of the given tensors.
//
// Shapes must be [in_features, out_features] and [out_features]. Gradients
// are kept.
func (l *Linear) SetParams(weights, bias *tensor.Tensor) error {
	if weights == nil || bias == nil {
		return fmt.Errorf("linear.set_params: %w: nil tensor", ErrShapeMismatch)
	}
	if err := l.checkParamShapes("linear.set_params", weights, bias); err != nil {
		return err
	}
	l.params.Weights = weights.Clone()
	l.params.Bias = bias.Clone()
	return nil
}

func (l *Linear) checkParamShapes(op string, weights, bias *tensor.Tensor) error {
	wantW := tensor.Shape{l.inFeatures, l.outFeatures}
	wantB := tensor.Shape{l.outFeatures}
	if !weights.Shape().Equal(wantW) || !bias.Shape().Equal(wantB) {
		return tensor.NewShapeError(op,
			fmt.Sprintf("expected weights %v and bias %v", wantW, wantB), weights.Shape(), bias.Shape())
	}
	return nil
}

// ZeroGrad clears the stored gradients.
func (l *Linear) ZeroGrad() {
	l.params.GradWeights = nil
	l.params.GradBias = nil
}

// Weights returns a copy of the weight matrix.
func (l *Linear) Weights() *tensor.Tensor {
	return l.params.Weights.Clone()
}

// Bias returns a copy of the bias vector.
func (l *Linear) Bias() *tensor.Tensor {
	return l.params.Bias.Clone()
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// NumParameters returns the number of learnable scalars.
func (l *Linear) NumParameters() int {
	return l.inFeatures*l.outFeatures + l.outFeatures
}

// String implements fmt.Stringer.
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(in=%d, out=%d)", l.inFeatures, l.outFeatures)
}
