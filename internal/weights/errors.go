package weights

import (
	"errors"
	"fmt"
)

// Container lookup failures reported by Group implementations.
var (
	ErrNoSuchObject = errors.New("no such object")
	ErrWrongKind    = errors.New("object has the wrong kind")
)

// ContainerFormatError is returned when a container lacks the structure
// every weight file must have.
type ContainerFormatError struct {
	Path  string
	Group string
	Err   error
}

// Error implements the error interface.
func (e *ContainerFormatError) Error() string {
	msg := "weight file does not contain model weights"
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	msg += fmt.Sprintf(": group %q", e.Group)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the lookup error.
func (e *ContainerFormatError) Unwrap() error {
	return e.Err
}

// ShapeError is returned by NewLayer when the parameter lengths disagree
// with the declared layer size.
type ShapeError struct {
	Param string // "kernel" or "bias"
	Want  int
	Got   int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s has %d elements, want %d", e.Param, e.Got, e.Want)
}

// LayerNotFoundError is returned by Collection.Get for an unknown name.
type LayerNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *LayerNotFoundError) Error() string {
	return fmt.Sprintf("layer %q not found in weight collection", e.Name)
}
