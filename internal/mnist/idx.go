package mnist

import (
	"encoding/binary"
	"errors"

	"github.com/mnist-fpga/mf/internal/source"
)

// Image geometry and label range.
const (
	Width      = 28
	Height     = 28
	ImageSize  = Width * Height
	NumClasses = 10
)

// Magic numbers as big-endian words. On disk they are the bytes 00 00 08 03
// and 00 00 08 01, which a little-endian host reading the raw word sees as
// 0x03080000 and 0x01080000.
const (
	ImageMagic uint32 = 0x00000803
	LabelMagic uint32 = 0x00000801
)

const (
	imageHeaderSize = 16 // magic, count, rows, cols
	labelHeaderSize = 8  // magic, count
)

// Decode parses an image stream and a label stream into a Dataset.
//
// Both streams must be complete. Format violations are reported as
// *FormatError; a disagreement between the two sample counts is reported
// as *SampleCountMismatchError.
func Decode(imageBytes, labelBytes []byte) (*Dataset, error) {
	images, err := decodeImages(imageBytes)
	if err != nil {
		return nil, err
	}

	labels, err := decodeLabels(labelBytes)
	if err != nil {
		return nil, err
	}

	return newDataset(images, labels)
}

// LoadFiles reads and decodes the dataset stored at imagePath and labelPath.
// An unreadable file yields *source.NotFoundError.
func LoadFiles(imagePath, labelPath string) (*Dataset, error) {
	imageBytes, err := source.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}
	images, err := decodeImages(imageBytes)
	if err != nil {
		return nil, withPath(err, imagePath)
	}

	labelBytes, err := source.ReadFile(labelPath)
	if err != nil {
		return nil, err
	}
	labels, err := decodeLabels(labelBytes)
	if err != nil {
		return nil, withPath(err, labelPath)
	}

	return newDataset(images, labels)
}

func withPath(err error, path string) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		fe.Path = path
	}
	return err
}

// decodeImages validates the image header and returns the normalized pixels
// of every image, back to back.
func decodeImages(b []byte) ([]float32, error) {
	if len(b) < imageHeaderSize {
		return nil, formatError(StreamImages, ErrTruncatedHeader,
			"got %d bytes, need %d", len(b), imageHeaderSize)
	}

	magic := binary.BigEndian.Uint32(b[0:4])
	if magic != ImageMagic {
		return nil, formatError(StreamImages, ErrInvalidMagic,
			"got 0x%08x, want 0x%08x", magic, ImageMagic)
	}

	count := binary.BigEndian.Uint32(b[4:8])
	rows := binary.BigEndian.Uint32(b[8:12])
	cols := binary.BigEndian.Uint32(b[12:16])
	if rows != Height || cols != Width {
		return nil, formatError(StreamImages, ErrInvalidDimensions,
			"got %dx%d, want %dx%d", rows, cols, Height, Width)
	}

	payload := b[imageHeaderSize:]
	if len(payload)%ImageSize != 0 {
		return nil, formatError(StreamImages, ErrPartialImage,
			"%d bytes is not a multiple of %d", len(payload), ImageSize)
	}
	if n := len(payload) / ImageSize; uint64(n) != uint64(count) {
		return nil, formatError(StreamImages, ErrCountMismatch,
			"header declares %d images, payload holds %d", count, n)
	}

	images := make([]float32, len(payload))
	for i, px := range payload {
		images[i] = float32(px) / 255.0
	}
	return images, nil
}

// decodeLabels validates the label header and returns the labels.
func decodeLabels(b []byte) ([]Label, error) {
	if len(b) < labelHeaderSize {
		return nil, formatError(StreamLabels, ErrTruncatedHeader,
			"got %d bytes, need %d", len(b), labelHeaderSize)
	}

	magic := binary.BigEndian.Uint32(b[0:4])
	if magic != LabelMagic {
		return nil, formatError(StreamLabels, ErrInvalidMagic,
			"got 0x%08x, want 0x%08x", magic, LabelMagic)
	}

	count := binary.BigEndian.Uint32(b[4:8])
	payload := b[labelHeaderSize:]
	if uint64(len(payload)) != uint64(count) {
		return nil, formatError(StreamLabels, ErrCountMismatch,
			"header declares %d labels, payload holds %d", count, len(payload))
	}

	labels := make([]Label, len(payload))
	for i, v := range payload {
		l := Label(v)
		if !l.Valid() {
			return nil, formatError(StreamLabels, ErrInvalidLabel,
				"label %d at index %d", v, i)
		}
		labels[i] = l
	}
	return labels, nil
}
