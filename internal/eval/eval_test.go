package eval

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mnist-fpga/mf/internal/mnist"
	"github.com/mnist-fpga/mf/internal/nn"
	"github.com/mnist-fpga/mf/internal/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataset builds an in-memory dataset. images[i] lists the lit pixels of
// sample i; every other pixel is zero.
func dataset(t *testing.T, images [][]int, labels []byte) *mnist.Dataset {
	t.Helper()
	n := len(images)

	img := make([]byte, 16, 16+n*mnist.ImageSize)
	binary.BigEndian.PutUint32(img[0:4], mnist.ImageMagic)
	binary.BigEndian.PutUint32(img[4:8], uint32(n))
	binary.BigEndian.PutUint32(img[8:12], mnist.Height)
	binary.BigEndian.PutUint32(img[12:16], mnist.Width)
	for _, lit := range images {
		px := make([]byte, mnist.ImageSize)
		for _, p := range lit {
			px[p] = 255
		}
		img = append(img, px...)
	}

	lbl := make([]byte, 8, 8+n)
	binary.BigEndian.PutUint32(lbl[0:4], mnist.LabelMagic)
	binary.BigEndian.PutUint32(lbl[4:8], uint32(n))
	lbl = append(lbl, labels...)

	ds, err := mnist.Decode(img, lbl)
	require.NoError(t, err)
	return ds
}

func layer(t *testing.T, in, out int, kernel, bias []float32) *weights.Layer {
	t.Helper()
	if kernel == nil {
		kernel = make([]float32, in*out)
	}
	if bias == nil {
		bias = make([]float32, out)
	}
	l, err := weights.NewLayer(in, out, kernel, bias)
	require.NoError(t, err)
	return l
}

// pixelChain maps pixel k to class k for k < 10, so an image with only
// pixel k lit is classified as k.
func pixelChain(t *testing.T) *nn.Sequential {
	t.Helper()
	kernel := make([]float32, mnist.ImageSize*mnist.NumClasses)
	for k := 0; k < mnist.NumClasses; k++ {
		kernel[k*mnist.NumClasses+k] = 1
	}
	chain, err := nn.NewSequential(
		nn.NewLinear("dense", layer(t, mnist.ImageSize, mnist.NumClasses, kernel, nil)),
	)
	require.NoError(t, err)
	return chain
}

func TestEvaluate_SingleSample(t *testing.T) {
	ds := dataset(t, [][]int{nil}, []byte{3})

	bias := make([]float32, mnist.NumClasses)
	bias[3] = 1
	chain, err := nn.FromCollection(weights.Collection{
		"dense":   layer(t, mnist.ImageSize, 128, nil, nil),
		"dense_1": layer(t, 128, 64, nil, nil),
		"dense_2": layer(t, 64, mnist.NumClasses, nil, bias),
	}, "dense", "dense_1", "dense_2")
	require.NoError(t, err)

	r, err := Evaluate(ds, chain)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Correct)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, 1.0, r.Accuracy)
	assert.Equal(t, 1, r.Confusion[3][3])
}

func TestEvaluate_CountsAndConfusion(t *testing.T) {
	// Sample i lights pixel i%10. Every fourth label is shifted by one.
	n := 40
	images := make([][]int, n)
	labels := make([]byte, n)
	for i := 0; i < n; i++ {
		images[i] = []int{i % 10}
		labels[i] = byte(i % 10)
		if i%4 == 0 {
			labels[i] = byte((i + 1) % 10)
		}
	}
	ds := dataset(t, images, labels)

	r, err := Evaluate(ds, pixelChain(t))
	require.NoError(t, err)

	assert.Equal(t, n, r.Total)
	assert.Equal(t, 30, r.Correct)
	assert.InDelta(t, 0.75, r.Accuracy, 1e-12)

	total := 0
	for label, row := range r.Confusion {
		for predicted, c := range row {
			total += c
			if label == predicted {
				continue
			}
			if c > 0 {
				assert.Equal(t, (predicted+1)%10, label)
			}
		}
	}
	assert.Equal(t, r.Total, total)
	assert.Equal(t, "30/40 (75.00%)", r.String())
}

func TestEvaluate_ParallelMatchesSerial(t *testing.T) {
	n := 500
	images := make([][]int, n)
	labels := make([]byte, n)
	for i := 0; i < n; i++ {
		images[i] = []int{(i * 7) % 10, 100 + i%200}
		labels[i] = byte((i * 3) % 10)
	}
	ds := dataset(t, images, labels)
	chain := pixelChain(t)

	serial, err := Evaluate(ds, chain)
	require.NoError(t, err)
	par, err := Evaluate(ds, chain, WithWorkers(8))
	require.NoError(t, err)

	if diff := cmp.Diff(serial, par); diff != "" {
		t.Errorf("parallel result differs from serial (-serial +parallel):\n%s", diff)
	}
	assert.Equal(t, n, par.Total)
}

func TestEvaluate_AutoWorkers(t *testing.T) {
	n := 300
	images := make([][]int, n)
	labels := make([]byte, n)
	for i := 0; i < n; i++ {
		images[i] = []int{i % 10, 50 + i%100}
		labels[i] = byte(i % 10)
	}
	ds := dataset(t, images, labels)
	chain := pixelChain(t)

	serial, err := Evaluate(ds, chain, WithWorkers(1))
	require.NoError(t, err)
	auto, err := Evaluate(ds, chain, WithWorkers(0))
	require.NoError(t, err)

	if diff := cmp.Diff(serial, auto); diff != "" {
		t.Errorf("auto-sized result differs from serial (-serial +auto):\n%s", diff)
	}
}

func TestEvaluate_NilChain(t *testing.T) {
	ds := dataset(t, [][]int{{1, 2}}, []byte{1})

	_, err := Evaluate(ds, nil)
	assert.ErrorIs(t, err, nn.ErrEmptyChain)

	_, err = Classify(make([]float32, mnist.ImageSize), nil)
	assert.ErrorIs(t, err, nn.ErrEmptyChain)
}

func TestEvaluate_Empty(t *testing.T) {
	ds := dataset(t, nil, nil)

	r, err := Evaluate(ds, pixelChain(t))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Total)
	assert.Equal(t, 0, r.Correct)
	assert.Equal(t, 0.0, r.Accuracy)
}

func TestEvaluate_WrongInputSize(t *testing.T) {
	ds := dataset(t, [][]int{{0}}, []byte{0})
	chain, err := nn.NewSequential(nn.NewLinear("dense", layer(t, 100, 10, nil, nil)))
	require.NoError(t, err)

	_, err = Evaluate(ds, chain)
	var mismatch *nn.LayerShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "dense", mismatch.Layer)
	assert.Equal(t, 100, mismatch.Want)
	assert.Equal(t, mnist.ImageSize, mismatch.Got)
}

func TestEvaluate_WrongOutputSize(t *testing.T) {
	ds := dataset(t, [][]int{{0}}, []byte{0})
	chain, err := nn.NewSequential(nn.NewLinear("dense", layer(t, mnist.ImageSize, 4, nil, nil)))
	require.NoError(t, err)

	_, err = Evaluate(ds, chain)
	assert.ErrorIs(t, err, ErrOutputSize)
}

func TestClassify(t *testing.T) {
	chain := pixelChain(t)

	image := make([]float32, mnist.ImageSize)
	image[7] = 0.5
	got, err := Classify(image, chain)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	// All outputs zero: the tie goes to class 0.
	got, err = Classify(make([]float32, mnist.ImageSize), chain)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = Classify(make([]float32, 3), chain)
	var mismatch *nn.LayerShapeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestPerClassAccuracy(t *testing.T) {
	var r Result
	r.Confusion[2][2] = 3
	r.Confusion[2][5] = 1
	r.Confusion[9][9] = 2

	acc := r.PerClassAccuracy()
	assert.InDelta(t, 0.75, acc[2], 1e-12)
	assert.Equal(t, 1.0, acc[9])
	assert.Equal(t, 0.0, acc[0])
}
