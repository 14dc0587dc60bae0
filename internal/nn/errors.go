package nn

import (
	"errors"
	"fmt"
)

// ErrEmptyChain is returned when a Sequential is built without modules.
var ErrEmptyChain = errors.New("layer chain is empty")

// LayerShapeMismatchError reports a layer that received a vector of the
// wrong length. It signals a wrong weight file or a wrong chain and is never
// recoverable at runtime.
type LayerShapeMismatchError struct {
	Layer string // Name of the layer, empty for an anonymous layer
	Want  int    // Input length the layer expects
	Got   int    // Length it was given
}

// Error implements the error interface.
func (e *LayerShapeMismatchError) Error() string {
	if e.Layer != "" {
		return fmt.Sprintf("layer %q expects %d inputs, got %d", e.Layer, e.Want, e.Got)
	}
	return fmt.Sprintf("layer expects %d inputs, got %d", e.Want, e.Got)
}
