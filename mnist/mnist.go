// Copyright 2026 The mf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mnist

import (
	"github.com/mnist-fpga/mf/internal/mnist"
)

// Image geometry and class count.
const (
	Width      = mnist.Width
	Height     = mnist.Height
	ImageSize  = mnist.ImageSize
	NumClasses = mnist.NumClasses
)

// File magic numbers, as read big-endian from the first four bytes.
const (
	ImageMagic = mnist.ImageMagic
	LabelMagic = mnist.LabelMagic
)

// Dataset is a decoded set of normalized images and their labels.
type Dataset = mnist.Dataset

// Sample is one image with its label.
type Sample = mnist.Sample

// Label is a digit class in [0, 9].
type Label = mnist.Label

// Stream names which input a FormatError refers to.
type Stream = mnist.Stream

// Streams.
const (
	StreamImages = mnist.StreamImages
	StreamLabels = mnist.StreamLabels
)

// FormatError reports a malformed image or label stream.
type FormatError = mnist.FormatError

// SampleCountMismatchError reports decoded streams of different lengths.
type SampleCountMismatchError = mnist.SampleCountMismatchError

// Errors wrapped by FormatError.
var (
	ErrTruncatedHeader   = mnist.ErrTruncatedHeader
	ErrInvalidMagic      = mnist.ErrInvalidMagic
	ErrInvalidDimensions = mnist.ErrInvalidDimensions
	ErrPartialImage      = mnist.ErrPartialImage
	ErrCountMismatch     = mnist.ErrCountMismatch
	ErrInvalidLabel      = mnist.ErrInvalidLabel
)

// ErrIndexOutOfRange is returned by Dataset.Sample for an invalid index.
var ErrIndexOutOfRange = mnist.ErrIndexOutOfRange

// Decode decodes an image stream and a label stream held in memory.
func Decode(imageBytes, labelBytes []byte) (*Dataset, error) {
	return mnist.Decode(imageBytes, labelBytes)
}

// LoadFiles reads and decodes the image and label files.
//
// Example:
//
//	ds, err := mnist.LoadFiles(imagePath, labelPath)
func LoadFiles(imagePath, labelPath string) (*Dataset, error) {
	return mnist.LoadFiles(imagePath, labelPath)
}
