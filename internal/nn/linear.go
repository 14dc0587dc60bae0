package nn

import (
	"errors"

	"github.com/mnist-fpga/mf/internal/weights"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// ApplyLayer computes one fully connected layer with ReLU activation:
//
//	out[o] = max(0, bias[o] + Σ_i input[i] * kernel[i*O + o])
//
// The kernel is stored [I, O] row-major, so the sum is the transposed
// matrix-vector product kernelᵀ·input, accumulated onto a copy of the bias.
// The returned slice is freshly allocated with length layer.OutputSize().
func ApplyLayer(input []float32, layer *weights.Layer) ([]float32, error) {
	in, out := layer.InputSize(), layer.OutputSize()
	if len(input) != in {
		return nil, &LayerShapeMismatchError{Want: in, Got: len(input)}
	}

	output := make([]float32, out)
	copy(output, layer.Bias())

	blas32.Gemv(blas.Trans, 1,
		blas32.General{Rows: in, Cols: out, Stride: out, Data: layer.Kernel()},
		blas32.Vector{N: in, Inc: 1, Data: input},
		1,
		blas32.Vector{N: out, Inc: 1, Data: output},
	)

	return ReLU(output), nil
}

// Linear is a loaded fully connected layer with ReLU activation.
//
// Example:
//
//	dense, _ := collection.Get("dense")
//	layer := nn.NewLinear("dense", dense)
//	hidden, err := layer.Forward(image) // len(hidden) == 128
type Linear struct {
	name  string
	layer *weights.Layer
}

// NewLinear wraps the weights of the layer called name.
func NewLinear(name string, layer *weights.Layer) *Linear {
	return &Linear{name: name, layer: layer}
}

// Forward applies the layer to input.
func (l *Linear) Forward(input []float32) ([]float32, error) {
	output, err := ApplyLayer(input, l.layer)
	if err != nil {
		var mismatch *LayerShapeMismatchError
		if errors.As(err, &mismatch) {
			mismatch.Layer = l.name
		}
		return nil, err
	}
	return output, nil
}

// Name returns the layer name.
func (l *Linear) Name() string {
	return l.name
}

// Weights returns the underlying parameters.
func (l *Linear) Weights() *weights.Layer {
	return l.layer
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.layer.InputSize()
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.layer.OutputSize()
}
