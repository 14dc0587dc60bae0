package mnist

import (
	"fmt"
	"strconv"
)

// Label is the digit class of one sample.
type Label uint8

// Valid reports whether l is one of the ten digit classes.
func (l Label) Valid() bool {
	return l < NumClasses
}

// String returns the digit.
func (l Label) String() string {
	return strconv.Itoa(int(l))
}

// Sample is one image and its label. Image is a view into the Dataset's
// backing buffer of length ImageSize, laid out row-major; it must not be
// modified.
type Sample struct {
	Image []float32
	Label Label
}

// At returns the normalized intensity at row y, column x.
func (s Sample) At(y, x int) float32 {
	return s.Image[y*Width+x]
}

// Dataset is an immutable, ordered collection of samples backed by two
// flat buffers.
type Dataset struct {
	images []float32 // len(labels) * ImageSize
	labels []Label
}

func newDataset(images []float32, labels []Label) (*Dataset, error) {
	if len(images) != len(labels)*ImageSize {
		return nil, &SampleCountMismatchError{
			Images: len(images) / ImageSize,
			Labels: len(labels),
		}
	}
	return &Dataset{images: images, labels: labels}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.labels)
}

// Sample returns the sample at idx without copying its image.
func (d *Dataset) Sample(idx int) (Sample, error) {
	if idx < 0 || idx >= len(d.labels) {
		return Sample{}, fmt.Errorf("%w: %d (dataset has %d samples)", ErrIndexOutOfRange, idx, len(d.labels))
	}
	off := idx * ImageSize
	end := off + ImageSize
	return Sample{
		Image: d.images[off:end:end],
		Label: d.labels[idx],
	}, nil
}

// Images returns the backing image buffer. Its length is ImageSize * Len().
func (d *Dataset) Images() []float32 {
	return d.images
}

// Labels returns the backing label buffer. Its length is Len().
func (d *Dataset) Labels() []Label {
	return d.labels
}

// Head returns a dataset holding the first n samples. The result shares
// the receiver's buffers. n larger than Len() returns the whole dataset.
func (d *Dataset) Head(n int) *Dataset {
	if n < 0 {
		n = 0
	}
	if n >= len(d.labels) {
		return d
	}
	return &Dataset{
		images: d.images[: n*ImageSize : n*ImageSize],
		labels: d.labels[:n:n],
	}
}

// LabelHistogram counts the samples of each class.
func (d *Dataset) LabelHistogram() [NumClasses]int {
	var hist [NumClasses]int
	for _, l := range d.labels {
		hist[l]++
	}
	return hist
}
