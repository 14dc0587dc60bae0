// Copyright 2026 The mf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package eval measures classification accuracy of a dense network on MNIST.
//
// Example:
//
//	ds, _ := mnist.LoadFiles(imagePath, labelPath)
//	layers, _ := weights.LoadHDF5(weightPath)
//	model, _ := nn.FromCollection(layers, "dense", "dense_1", "dense_2")
//	res, err := eval.Evaluate(ds, model, eval.WithWorkers(4))
//	fmt.Println(res) // 9712/10000 (97.12%)
package eval

import (
	"github.com/mnist-fpga/mf/internal/eval"
	"github.com/mnist-fpga/mf/internal/mnist"
	"github.com/mnist-fpga/mf/internal/nn"
)

// Result is the outcome of an evaluation run.
type Result = eval.Result

// Option configures Evaluate.
type Option = eval.Option

// ErrOutputSize is returned for a chain that does not emit one score per class.
var ErrOutputSize = eval.ErrOutputSize

// WithWorkers scores samples on n goroutines. Zero uses one per logical core.
func WithWorkers(n int) Option {
	return eval.WithWorkers(n)
}

// Classify returns the predicted digit for one normalized image.
func Classify(image []float32, chain *nn.Sequential) (int, error) {
	return eval.Classify(image, chain)
}

// Evaluate classifies every sample of ds and reports accuracy.
func Evaluate(ds *mnist.Dataset, chain *nn.Sequential, opts ...Option) (Result, error) {
	return eval.Evaluate(ds, chain, opts...)
}
