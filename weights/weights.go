// Copyright 2026 The mf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package weights

import (
	"github.com/mnist-fpga/mf/internal/hdf5"
	"github.com/mnist-fpga/mf/internal/weights"
)

// Layout names.
const (
	RootGroup     = weights.RootGroup
	BiasDataset   = weights.BiasDataset
	KernelDataset = weights.KernelDataset
)

// Layer holds the parameters of one dense layer.
type Layer = weights.Layer

// Collection maps layer names to their parameters.
type Collection = weights.Collection

// Container is an open hierarchical weight file.
type Container = weights.Container

// Group is a node of a Container holding named children.
type Group = weights.Group

// Dataset is a numeric array stored in a Container.
type Dataset = weights.Dataset

// OpenFunc opens the container stored at a path.
type OpenFunc = weights.OpenFunc

// ReadOption configures Read and Load.
type ReadOption = weights.ReadOption

// Errors.
type (
	ContainerFormatError = weights.ContainerFormatError
	ShapeError           = weights.ShapeError
	LayerNotFoundError   = weights.LayerNotFoundError
)

// Lookup failures reported by Container implementations.
var (
	ErrNoSuchObject = weights.ErrNoSuchObject
	ErrWrongKind    = weights.ErrWrongKind
)

// NewLayer validates and wraps kernel ([in, out] row-major) and bias.
func NewLayer(inputSize, outputSize int, kernel, bias []float32) (*Layer, error) {
	return weights.NewLayer(inputSize, outputSize, kernel, bias)
}

// WithSkipHandler registers fn to be called for every entry that is not read
// as a layer.
func WithSkipHandler(fn func(name string, reason error)) ReadOption {
	return weights.WithSkipHandler(fn)
}

// Read extracts every dense layer from an open container.
func Read(c Container, opts ...ReadOption) (Collection, error) {
	return weights.Read(c, opts...)
}

// Load opens the container at path with open, reads it and closes it.
func Load(path string, open OpenFunc, opts ...ReadOption) (Collection, error) {
	return weights.Load(path, open, opts...)
}

// OpenHDF5 opens an HDF5 weight file read-only.
func OpenHDF5(path string) (Container, error) {
	return hdf5.Open(path)
}

// LoadHDF5 reads every dense layer of the HDF5 weight file at path.
//
// Example:
//
//	layers, err := weights.LoadHDF5("model.h5")
func LoadHDF5(path string, opts ...ReadOption) (Collection, error) {
	return weights.Load(path, hdf5.Open, opts...)
}
