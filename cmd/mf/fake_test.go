package main

import (
	"fmt"
	"sort"

	"github.com/mnist-fpga/mf/internal/weights"
)

// fakeLayer is one Dense layer of a fakeContainer.
type fakeLayer struct {
	in, out      int
	kernel, bias []float32
}

// fakeContainer serves layers in the Keras layout without touching HDF5.
// A nil container has no model_weights group.
type fakeContainer map[string]fakeLayer

func (c fakeContainer) open(string) (weights.Container, error) {
	return c, nil
}

func (c fakeContainer) OpenGroup(name string) (weights.Group, error) {
	if c == nil || name != weights.RootGroup {
		return nil, fmt.Errorf("%q: %w", name, weights.ErrNoSuchObject)
	}
	return fakeRoot(c), nil
}

func (c fakeContainer) Close() error { return nil }

type fakeRoot map[string]fakeLayer

func (r fakeRoot) Members() ([]string, error) {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r fakeRoot) OpenGroup(name string) (weights.Group, error) {
	l, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, weights.ErrNoSuchObject)
	}
	return &fakeOuter{name: name, layer: l}, nil
}

func (r fakeRoot) OpenDataset(name string) (weights.Dataset, error) {
	return nil, fmt.Errorf("%q: %w", name, weights.ErrWrongKind)
}

func (r fakeRoot) Close() error { return nil }

type fakeOuter struct {
	name  string
	layer fakeLayer
}

func (o *fakeOuter) Members() ([]string, error) { return []string{o.name}, nil }

func (o *fakeOuter) OpenGroup(name string) (weights.Group, error) {
	if name != o.name {
		return nil, fmt.Errorf("%q: %w", name, weights.ErrNoSuchObject)
	}
	return &fakeInner{layer: o.layer}, nil
}

func (o *fakeOuter) OpenDataset(name string) (weights.Dataset, error) {
	return nil, fmt.Errorf("%q: %w", name, weights.ErrWrongKind)
}

func (o *fakeOuter) Close() error { return nil }

type fakeInner struct {
	layer fakeLayer
}

func (g *fakeInner) Members() ([]string, error) {
	return []string{weights.BiasDataset, weights.KernelDataset}, nil
}

func (g *fakeInner) OpenGroup(name string) (weights.Group, error) {
	return nil, fmt.Errorf("%q: %w", name, weights.ErrWrongKind)
}

func (g *fakeInner) OpenDataset(name string) (weights.Dataset, error) {
	switch name {
	case weights.BiasDataset:
		return &fakeData{dims: []int{len(g.layer.bias)}, data: g.layer.bias}, nil
	case weights.KernelDataset:
		return &fakeData{dims: []int{g.layer.in, g.layer.out}, data: g.layer.kernel}, nil
	}
	return nil, fmt.Errorf("%q: %w", name, weights.ErrNoSuchObject)
}

func (g *fakeInner) Close() error { return nil }

type fakeData struct {
	dims []int
	data []float32
}

func (d *fakeData) Dims() ([]int, error) { return d.dims, nil }

func (d *fakeData) ReadFloat32(dst []float32) error {
	if len(dst) != len(d.data) {
		return fmt.Errorf("destination holds %d elements, dataset %d", len(dst), len(d.data))
	}
	copy(dst, d.data)
	return nil
}

func (d *fakeData) Close() error { return nil }
