package main

import (
	"errors"

	"github.com/mnist-fpga/mf/internal/config"
	"github.com/mnist-fpga/mf/internal/eval"
	"github.com/mnist-fpga/mf/internal/mnist"
	"github.com/mnist-fpga/mf/internal/nn"
	"github.com/mnist-fpga/mf/internal/source"
	"github.com/mnist-fpga/mf/internal/weights"
)

// Process exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitNotFound = 3
	exitFormat   = 4
	exitShape    = 5
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var (
		missing   *config.MissingError
		notFound  *source.NotFoundError
		format    *mnist.FormatError
		count     *mnist.SampleCountMismatchError
		container *weights.ContainerFormatError
		mismatch  *nn.LayerShapeMismatchError
		shape     *weights.ShapeError
		layer     *weights.LayerNotFoundError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &missing):
		return exitConfig
	case errors.As(err, &notFound):
		return exitNotFound
	case errors.As(err, &format), errors.As(err, &count), errors.As(err, &container):
		return exitFormat
	case errors.As(err, &mismatch), errors.As(err, &shape), errors.As(err, &layer),
		errors.Is(err, nn.ErrEmptyChain), errors.Is(err, eval.ErrOutputSize):
		return exitShape
	default:
		return exitFailure
	}
}
