// Package hdf5 opens Keras HDF5 weight files as weights.Container values.
//
// It is a thin adapter over gonum.org/v1/hdf5 and therefore needs cgo and
// the HDF5 C library.
package hdf5

import (
	"fmt"
	"os"

	"github.com/mnist-fpga/mf/internal/source"
	"github.com/mnist-fpga/mf/internal/weights"
	"gonum.org/v1/hdf5"
)

// File is a read-only HDF5 file.
type File struct {
	f *hdf5.File
}

// Open opens the HDF5 file at path read-only. A missing, unreadable or
// non-HDF5 file yields *source.NotFoundError.
func Open(path string) (weights.Container, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &source.NotFoundError{Path: path, Err: err}
	}
	if !hdf5.IsHDF5(path) {
		return nil, &source.NotFoundError{Path: path, Err: fmt.Errorf("not an HDF5 file")}
	}

	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, &source.NotFoundError{Path: path, Err: err}
	}
	return &File{f: f}, nil
}

// OpenGroup opens a top-level group.
func (f *File) OpenGroup(name string) (weights.Group, error) {
	return openGroup(&f.f.CommonFG, name)
}

// Close closes the file.
func (f *File) Close() error {
	return f.f.Close()
}

// group is an open HDF5 group.
type group struct {
	g *hdf5.Group
}

func openGroup(parent *hdf5.CommonFG, name string) (weights.Group, error) {
	if err := expectKind(parent, name, hdf5.H5G_GROUP); err != nil {
		return nil, err
	}
	g, err := parent.OpenGroup(name)
	if err != nil {
		return nil, fmt.Errorf("open group %q: %w", name, err)
	}
	return &group{g: g}, nil
}

// expectKind fails with weights.ErrNoSuchObject or weights.ErrWrongKind
// unless parent has a child name of the given kind. Checking first keeps
// the HDF5 library from printing its error stack for expected misses.
func expectKind(parent *hdf5.CommonFG, name string, want hdf5.GType) error {
	if !parent.LinkExists(name) {
		return fmt.Errorf("%q: %w", name, weights.ErrNoSuchObject)
	}

	n, err := parent.NumObjects()
	if err != nil {
		return err
	}
	for i := uint(0); i < n; i++ {
		member, err := parent.ObjectNameByIndex(i)
		if err != nil {
			return err
		}
		if member != name {
			continue
		}
		kind, err := parent.ObjectTypeByIndex(i)
		if err != nil {
			return err
		}
		if kind != want {
			return fmt.Errorf("%q is a %v: %w", name, kind, weights.ErrWrongKind)
		}
		return nil
	}
	return fmt.Errorf("%q: %w", name, weights.ErrNoSuchObject)
}

// Members returns the names of the group's children in name order.
func (g *group) Members() ([]string, error) {
	n, err := g.g.NumObjects()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, n)
	for i := uint(0); i < n; i++ {
		name, err := g.g.ObjectNameByIndex(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// OpenGroup opens a child group.
func (g *group) OpenGroup(name string) (weights.Group, error) {
	return openGroup(&g.g.CommonFG, name)
}

// OpenDataset opens a child floating-point dataset.
func (g *group) OpenDataset(name string) (weights.Dataset, error) {
	if err := expectKind(&g.g.CommonFG, name, hdf5.H5G_DATASET); err != nil {
		return nil, err
	}
	d, err := g.g.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", name, err)
	}

	dtype, err := d.Datatype()
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("dataset %q datatype: %w", name, err)
	}
	defer dtype.Close()

	// Reads use the file type as the memory type, so only native layouts
	// can be copied into Go slices.
	switch {
	case dtype.Equal(hdf5.T_NATIVE_FLOAT):
		return &dataset{d: d}, nil
	case dtype.Equal(hdf5.T_NATIVE_DOUBLE):
		return &dataset{d: d, double: true}, nil
	}
	_ = d.Close()
	return nil, fmt.Errorf("dataset %q has class %v, want native float: %w", name, dtype.Class(), weights.ErrWrongKind)
}

// Close closes the group.
func (g *group) Close() error {
	return g.g.Close()
}

// dataset is an open HDF5 floating-point dataset.
type dataset struct {
	d      *hdf5.Dataset
	double bool
}

// Dims returns the dataset extent.
func (d *dataset) Dims() ([]int, error) {
	space := d.d.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(dims))
	for i, v := range dims {
		out[i] = int(v)
	}
	return out, nil
}

// ReadFloat32 reads the whole dataset into dst. Native float64 data is read
// at full width and narrowed.
func (d *dataset) ReadFloat32(dst []float32) error {
	dims, err := d.Dims()
	if err != nil {
		return err
	}
	n := 1
	for _, v := range dims {
		n *= v
	}
	if len(dst) != n {
		return fmt.Errorf("destination holds %d elements, dataset %d", len(dst), n)
	}
	if n == 0 {
		return nil
	}
	if !d.double {
		return d.d.Read(&dst)
	}

	wide := make([]float64, n)
	if err := d.d.Read(&wide); err != nil {
		return err
	}
	for i, v := range wide {
		dst[i] = float32(v)
	}
	return nil
}

// Close closes the dataset.
func (d *dataset) Close() error {
	return d.d.Close()
}
