package mnist

import (
	"errors"
	"fmt"
)

// Format violations, wrapped by FormatError.
var (
	ErrTruncatedHeader   = errors.New("stream is shorter than its header")
	ErrInvalidMagic      = errors.New("invalid magic number")
	ErrInvalidDimensions = errors.New("unexpected image dimensions")
	ErrPartialImage      = errors.New("image payload is not a whole number of images")
	ErrCountMismatch     = errors.New("payload does not match the declared item count")
	ErrInvalidLabel      = errors.New("label out of range")
)

// ErrIndexOutOfRange is returned by Dataset.Sample for an invalid index.
var ErrIndexOutOfRange = errors.New("sample index out of range")

// Stream names one of the two IDX files of a dataset.
type Stream string

// Dataset streams.
const (
	StreamImages Stream = "images"
	StreamLabels Stream = "labels"
)

// FormatError reports a structurally invalid IDX stream.
type FormatError struct {
	Stream Stream
	Path   string // Empty when decoding from memory
	Err    error  // One of the Err* format sentinels
	Detail string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("MNIST dataset file is corrupted: %s", e.Stream)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	msg += ": " + e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the format sentinel.
func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatError(stream Stream, err error, format string, args ...any) *FormatError {
	return &FormatError{Stream: stream, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// SampleCountMismatchError is returned when the image and label streams
// are individually valid but describe a different number of samples.
type SampleCountMismatchError struct {
	Images int
	Labels int
}

// Error implements the error interface.
func (e *SampleCountMismatchError) Error() string {
	return fmt.Sprintf("the number of images and the number of labels are different: %d images, %d labels",
		e.Images, e.Labels)
}
