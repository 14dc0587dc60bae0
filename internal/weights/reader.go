package weights

import (
	"errors"
	"fmt"

	"github.com/mnist-fpga/mf/internal/source"
)

// RootGroup is the top-level group holding the layer weights.
const RootGroup = "model_weights"

// Names of the parameter datasets inside a layer group.
const (
	BiasDataset   = "bias:0"
	KernelDataset = "kernel:0"
)

// ReadOption configures Read and Load.
type ReadOption func(*readOptions)

type readOptions struct {
	onSkip func(name string, reason error)
}

// WithSkipHandler registers fn to be called for every child of RootGroup
// that is not read as a layer. Skipping stays silent without it.
func WithSkipHandler(fn func(name string, reason error)) ReadOption {
	return func(o *readOptions) {
		o.onSkip = fn
	}
}

// Read extracts every conforming layer below RootGroup of c.
//
// A missing RootGroup fails the whole read with *ContainerFormatError and
// no partial result. A child of RootGroup without the expected layout is
// skipped. When two children yield the same name the later one wins.
func Read(c Container, opts ...ReadOption) (Collection, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	root, err := c.OpenGroup(RootGroup)
	if err != nil {
		return nil, &ContainerFormatError{Group: RootGroup, Err: err}
	}
	defer root.Close()

	names, err := root.Members()
	if err != nil {
		return nil, &ContainerFormatError{Group: RootGroup, Err: err}
	}

	result := make(Collection, len(names))
	for _, name := range names {
		layer, err := readLayer(root, name)
		if err != nil {
			if o.onSkip != nil {
				o.onSkip(name, err)
			}
			continue
		}
		result[name] = layer
	}

	return result, nil
}

// readLayer reads root/name/name/{bias:0,kernel:0}. Every handle opened
// here is closed before it returns, whatever the outcome.
func readLayer(root Group, name string) (*Layer, error) {
	outer, err := root.OpenGroup(name)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", name, err)
	}
	defer outer.Close()

	inner, err := outer.OpenGroup(name)
	if err != nil {
		return nil, fmt.Errorf("group %s/%s: %w", name, name, err)
	}
	defer inner.Close()

	bias, err := inner.OpenDataset(BiasDataset)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", BiasDataset, err)
	}
	defer bias.Close()

	kernel, err := inner.OpenDataset(KernelDataset)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", KernelDataset, err)
	}
	defer kernel.Close()

	biasDims, err := bias.Dims()
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", BiasDataset, err)
	}
	kernelDims, err := kernel.Dims()
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", KernelDataset, err)
	}
	if len(biasDims) != 1 || len(kernelDims) != 2 {
		return nil, fmt.Errorf("rank mismatch: bias %v, kernel %v (want rank 1 and 2)", biasDims, kernelDims)
	}

	inputSize, outputSize := kernelDims[0], kernelDims[1]
	if outputSize != biasDims[0] {
		return nil, fmt.Errorf("kernel %v does not match bias %v", kernelDims, biasDims)
	}
	if inputSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("empty kernel %v", kernelDims)
	}

	b := make([]float32, outputSize)
	if err := bias.ReadFloat32(b); err != nil {
		return nil, fmt.Errorf("read %s: %w", BiasDataset, err)
	}

	k := make([]float32, inputSize*outputSize)
	if err := kernel.ReadFloat32(k); err != nil {
		return nil, fmt.Errorf("read %s: %w", KernelDataset, err)
	}

	return NewLayer(inputSize, outputSize, k, b)
}

// Load opens the container at path with open, reads it, and closes it.
// A container that cannot be opened yields *source.NotFoundError.
func Load(path string, open OpenFunc, opts ...ReadOption) (Collection, error) {
	c, err := open(path)
	if err != nil {
		var nf *source.NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		return nil, &source.NotFoundError{Path: path, Err: err}
	}
	defer c.Close()

	result, err := Read(c, opts...)
	if err != nil {
		var cfe *ContainerFormatError
		if errors.As(err, &cfe) {
			cfe.Path = path
		}
		return nil, err
	}

	return result, nil
}
