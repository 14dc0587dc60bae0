package weights

import (
	"fmt"
	"sort"
)

// Layer holds the parameters of one fully connected layer. It is immutable
// once constructed; the slices returned by Kernel and Bias must not be
// modified.
type Layer struct {
	inputSize  int
	outputSize int
	kernel     []float32 // [inputSize, outputSize], row-major
	bias       []float32 // [outputSize]
}

// NewLayer builds a Layer, checking that kernel holds inputSize*outputSize
// elements and bias holds outputSize elements.
func NewLayer(inputSize, outputSize int, kernel, bias []float32) (*Layer, error) {
	if inputSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("invalid layer size %dx%d (dimensions must be > 0)", inputSize, outputSize)
	}
	if len(kernel) != inputSize*outputSize {
		return nil, &ShapeError{Param: "kernel", Want: inputSize * outputSize, Got: len(kernel)}
	}
	if len(bias) != outputSize {
		return nil, &ShapeError{Param: "bias", Want: outputSize, Got: len(bias)}
	}
	return &Layer{
		inputSize:  inputSize,
		outputSize: outputSize,
		kernel:     kernel,
		bias:       bias,
	}, nil
}

// InputSize returns the length of the input vector.
func (l *Layer) InputSize() int {
	return l.inputSize
}

// OutputSize returns the length of the output vector.
func (l *Layer) OutputSize() int {
	return l.outputSize
}

// Kernel returns the weight of the matmul operation. The dimension of the
// matrix is (I, O), where I is the length of the input and O is the length
// of the output.
func (l *Layer) Kernel() []float32 {
	return l.kernel
}

// Bias returns the weight of the vector addition. Its length is O.
func (l *Layer) Bias() []float32 {
	return l.bias
}

// String describes the layer shape.
func (l *Layer) String() string {
	return fmt.Sprintf("%d→%d", l.inputSize, l.outputSize)
}

// Collection maps layer names to their weights. Names are case-sensitive.
type Collection map[string]*Layer

// Get returns the layer called name.
func (c Collection) Get(name string) (*Layer, error) {
	l, ok := c[name]
	if !ok {
		return nil, &LayerNotFoundError{Name: name}
	}
	return l, nil
}

// Names returns the layer names in sorted order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns one "name in→out" line per layer, in name order.
func (c Collection) Describe() []string {
	lines := make([]string, 0, len(c))
	for _, name := range c.Names() {
		lines = append(lines, fmt.Sprintf("%s %s", name, c[name]))
	}
	return lines
}
