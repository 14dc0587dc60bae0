// Copyright 2026 The mf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/mnist-fpga/mf/internal/nn"
	"github.com/mnist-fpga/mf/internal/weights"
)

// Module is one stage of a network.
type Module = nn.Module

// Linear is a loaded dense layer with ReLU activation.
type Linear = nn.Linear

// Sequential is an ordered chain of modules.
type Sequential = nn.Sequential

// LayerShapeMismatchError reports a vector of the wrong length.
type LayerShapeMismatchError = nn.LayerShapeMismatchError

// ErrEmptyChain is returned when a chain has no modules.
var ErrEmptyChain = nn.ErrEmptyChain

// ApplyLayer computes max(0, bias + kernelᵀ·input) for one layer.
func ApplyLayer(input []float32, layer *weights.Layer) ([]float32, error) {
	return nn.ApplyLayer(input, layer)
}

// NewLinear wraps the weights of the layer called name.
func NewLinear(name string, layer *weights.Layer) *Linear {
	return nn.NewLinear(name, layer)
}

// NewSequential chains modules, checking adjacent sizes.
func NewSequential(modules ...Module) (*Sequential, error) {
	return nn.NewSequential(modules...)
}

// FromCollection builds a chain of the named layers, in order.
//
// Example:
//
//	model, err := nn.FromCollection(layers, "dense", "dense_1", "dense_2")
func FromCollection(c weights.Collection, names ...string) (*Sequential, error) {
	return nn.FromCollection(c, names...)
}

// ReLU clamps negative elements of x to zero in place and returns x.
func ReLU(x []float32) []float32 {
	return nn.ReLU(x)
}

// Argmax returns the index of the largest element, the lowest on ties, or
// -1 for an empty slice.
func Argmax(x []float32) int {
	return nn.Argmax(x)
}
