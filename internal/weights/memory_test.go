package weights

import (
	"errors"
	"fmt"
	"sort"
)

// memNode is a group (children != nil) or a dataset in an in-memory
// container used by the tests.
type memNode struct {
	children map[string]*memNode
	dims     []int
	data     []float32
	readErr  error
}

func group(children map[string]*memNode) *memNode {
	if children == nil {
		children = map[string]*memNode{}
	}
	return &memNode{children: children}
}

func dataset(dims []int, data []float32) *memNode {
	return &memNode{dims: dims, data: data}
}

// kerasLayer returns the doubled-name layout Keras writes for one Dense layer.
// kernel[i][o] = i*out + o + 1 and bias[o] = -(o + 1).
func kerasLayer(name string, in, out int) *memNode {
	kernel := make([]float32, in*out)
	for i := range kernel {
		kernel[i] = float32(i + 1)
	}
	bias := make([]float32, out)
	for o := range bias {
		bias[o] = -float32(o + 1)
	}
	return group(map[string]*memNode{
		name: group(map[string]*memNode{
			BiasDataset:   dataset([]int{out}, bias),
			KernelDataset: dataset([]int{in, out}, kernel),
		}),
	})
}

// handleTracker counts open handles so tests can check that every handle is
// released.
type handleTracker struct {
	open   int
	opened int
}

func (t *handleTracker) acquire() { t.open++; t.opened++ }
func (t *handleTracker) release() { t.open-- }

type memContainer struct {
	root    *memNode
	tracker *handleTracker
	closed  bool
}

func newMemContainer(top map[string]*memNode) *memContainer {
	return &memContainer{root: group(top), tracker: &handleTracker{}}
}

func (c *memContainer) OpenGroup(name string) (Group, error) {
	return openGroup(c.root, name, c.tracker)
}

func (c *memContainer) Close() error {
	if c.closed {
		return errors.New("container closed twice")
	}
	c.closed = true
	return nil
}

func openGroup(parent *memNode, name string, tracker *handleTracker) (Group, error) {
	child, ok := parent.children[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoSuchObject)
	}
	if child.children == nil {
		return nil, fmt.Errorf("%q is a dataset: %w", name, ErrWrongKind)
	}
	tracker.acquire()
	return &memGroup{node: child, tracker: tracker}, nil
}

type memGroup struct {
	node    *memNode
	tracker *handleTracker
	closed  bool
}

func (g *memGroup) Members() ([]string, error) {
	names := make([]string, 0, len(g.node.children))
	for name := range g.node.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (g *memGroup) OpenGroup(name string) (Group, error) {
	return openGroup(g.node, name, g.tracker)
}

func (g *memGroup) OpenDataset(name string) (Dataset, error) {
	child, ok := g.node.children[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoSuchObject)
	}
	if child.children != nil {
		return nil, fmt.Errorf("%q is a group: %w", name, ErrWrongKind)
	}
	g.tracker.acquire()
	return &memDataset{node: child, tracker: g.tracker}, nil
}

func (g *memGroup) Close() error {
	if g.closed {
		return errors.New("group closed twice")
	}
	g.closed = true
	g.tracker.release()
	return nil
}

type memDataset struct {
	node    *memNode
	tracker *handleTracker
	closed  bool
}

func (d *memDataset) Dims() ([]int, error) {
	return append([]int(nil), d.node.dims...), nil
}

func (d *memDataset) ReadFloat32(dst []float32) error {
	if d.node.readErr != nil {
		return d.node.readErr
	}
	if len(dst) != len(d.node.data) {
		return fmt.Errorf("destination holds %d elements, dataset %d", len(dst), len(d.node.data))
	}
	copy(dst, d.node.data)
	return nil
}

func (d *memDataset) Close() error {
	if d.closed {
		return errors.New("dataset closed twice")
	}
	d.closed = true
	d.tracker.release()
	return nil
}
