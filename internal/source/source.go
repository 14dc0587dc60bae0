// Package source reads whole files into memory for the decoders.
//
// Every I/O failure is reported as a *NotFoundError so callers can tell a
// missing or unreadable input apart from an input that is present but
// malformed.
package source

import (
	"fmt"
	"os"
)

// NotFoundError is returned when a path cannot be opened or read.
type NotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not open the file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ReadFile returns the complete contents of path.
func ReadFile(path string) ([]byte, error) {
	//nolint:gosec // G304: dataset and weight paths come from the user by design
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return data, nil
}
