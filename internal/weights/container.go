package weights

// Container is an open hierarchical weight file.
type Container interface {
	// OpenGroup opens a top-level group.
	OpenGroup(name string) (Group, error)

	// Close releases the file.
	Close() error
}

// Group is a named node holding groups and datasets.
type Group interface {
	// Members returns the names of the direct children in name order.
	Members() ([]string, error)

	// OpenGroup opens the child group name. It fails with ErrNoSuchObject
	// when the child does not exist and ErrWrongKind when it is not a group.
	OpenGroup(name string) (Group, error)

	// OpenDataset opens the child dataset name. It fails with
	// ErrNoSuchObject when the child does not exist and ErrWrongKind when
	// it is not a floating-point dataset.
	OpenDataset(name string) (Dataset, error)

	// Close releases the group handle.
	Close() error
}

// Dataset is a dense n-dimensional array stored in the container.
type Dataset interface {
	// Dims returns the extent of each dimension.
	Dims() ([]int, error)

	// ReadFloat32 reads the whole dataset into dst, which must hold exactly
	// the product of Dims elements.
	ReadFloat32(dst []float32) error

	// Close releases the dataset handle.
	Close() error
}

// OpenFunc opens the container stored at path.
type OpenFunc func(path string) (Container, error)
