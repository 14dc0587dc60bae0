package nn

import (
	"fmt"

	"github.com/mnist-fpga/mf/internal/weights"
)

// Sequential is a chain of modules where each module's output becomes the
// next module's input.
//
// Example:
//
//	model, err := nn.FromCollection(collection, "dense", "dense_1", "dense_2")
//	if err != nil {
//	    return err
//	}
//	logits, err := model.Forward(image) // 784 → 128 → 64 → 10
type Sequential struct {
	modules []Module
}

// NewSequential builds a chain from modules, checking that every module's
// InFeatures equals the previous module's OutFeatures.
func NewSequential(modules ...Module) (*Sequential, error) {
	if len(modules) == 0 {
		return nil, ErrEmptyChain
	}
	for i := 1; i < len(modules); i++ {
		prev, cur := modules[i-1], modules[i]
		if cur.InFeatures() != prev.OutFeatures() {
			return nil, &LayerShapeMismatchError{
				Layer: moduleName(cur, i),
				Want:  cur.InFeatures(),
				Got:   prev.OutFeatures(),
			}
		}
	}
	return &Sequential{modules: modules}, nil
}

// FromCollection builds a chain of Linear layers looked up by name in c.
// An unknown name yields *weights.LayerNotFoundError.
func FromCollection(c weights.Collection, names ...string) (*Sequential, error) {
	modules := make([]Module, 0, len(names))
	for _, name := range names {
		layer, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		modules = append(modules, NewLinear(name, layer))
	}
	return NewSequential(modules...)
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input []float32) ([]float32, error) {
	output := input
	for i, module := range s.modules {
		var err error
		output, err = module.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", i, err)
		}
	}
	return output, nil
}

// InFeatures returns the input length of the first module.
func (s *Sequential) InFeatures() int {
	return s.modules[0].InFeatures()
}

// OutFeatures returns the output length of the last module.
func (s *Sequential) OutFeatures() int {
	return s.modules[len(s.modules)-1].OutFeatures()
}

// Len returns the number of modules in the chain.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// Sizes returns the vector length at every stage of the chain, input first.
func (s *Sequential) Sizes() []int {
	sizes := make([]int, 0, len(s.modules)+1)
	sizes = append(sizes, s.InFeatures())
	for _, m := range s.modules {
		sizes = append(sizes, m.OutFeatures())
	}
	return sizes
}

func moduleName(m Module, index int) string {
	if named, ok := m.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%d", index)
}
