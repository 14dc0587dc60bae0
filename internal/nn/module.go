// Package nn implements the forward pass of fully connected networks whose
// parameters come from a weights.Collection.
//
// This package provides:
//   - ApplyLayer: affine transform followed by ReLU, the only numeric primitive
//   - Linear: one loaded layer as a Module
//   - Sequential: an ordered chain of modules with checked sizes
//
// Every Forward call allocates its own output, so modules are safe for
// concurrent use by multiple goroutines.
package nn

// Module is the interface implemented by every network component.
type Module interface {
	// Forward computes the output of the module for one input vector.
	// An input of the wrong length yields *LayerShapeMismatchError.
	Forward(input []float32) ([]float32, error)

	// InFeatures returns the expected input length.
	InFeatures() int

	// OutFeatures returns the output length.
	OutFeatures() int
}
