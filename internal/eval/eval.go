// Package eval scores a dense network chain against a labeled MNIST dataset.
package eval

import (
	"errors"
	"fmt"

	"github.com/mnist-fpga/mf/internal/mnist"
	"github.com/mnist-fpga/mf/internal/nn"
	"github.com/mnist-fpga/mf/internal/parallel"
)

// ErrOutputSize is returned when the chain does not produce one score per
// digit class.
var ErrOutputSize = errors.New("chain output does not match the number of classes")

// Result is the outcome of an evaluation run.
type Result struct {
	Correct  int
	Total    int
	Accuracy float64

	// Confusion[label][predicted] counts samples by true and predicted class.
	Confusion [mnist.NumClasses][mnist.NumClasses]int
}

// PerClassAccuracy returns, for each digit, the fraction of samples with
// that label which were predicted correctly. Classes with no samples are 0.
func (r Result) PerClassAccuracy() [mnist.NumClasses]float64 {
	var acc [mnist.NumClasses]float64
	for label, row := range r.Confusion {
		total := 0
		for _, n := range row {
			total += n
		}
		if total > 0 {
			acc[label] = float64(row[label]) / float64(total)
		}
	}
	return acc
}

// String formats the result as "correct/total (accuracy%)".
func (r Result) String() string {
	return fmt.Sprintf("%d/%d (%.2f%%)", r.Correct, r.Total, r.Accuracy*100)
}

type options struct {
	workers int
}

// Option configures Evaluate.
type Option func(*options)

// WithWorkers scores samples on n goroutines. The result is identical to a
// serial run. Zero sizes the fan-out to the host's logical cores; 1 or a
// negative value keeps evaluation serial.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Classify runs image through chain and returns the index of the largest
// output. Ties resolve to the lowest index.
func Classify(image []float32, chain *nn.Sequential) (int, error) {
	if chain == nil {
		return -1, nn.ErrEmptyChain
	}
	out, err := chain.Forward(image)
	if err != nil {
		return -1, err
	}
	return nn.Argmax(out), nil
}

// Evaluate classifies every sample of ds and counts correct predictions.
//
// The chain must accept a flattened 28×28 image and produce one score per
// class; otherwise an error is returned before any sample is scored. An
// empty dataset yields a zero Result.
func Evaluate(ds *mnist.Dataset, chain *nn.Sequential, opts ...Option) (Result, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkChain(chain); err != nil {
		return Result{}, err
	}

	n := ds.Len()
	predicted := make([]int, n)
	errs := make([]error, n)

	parallel.For(n, func(i int) {
		sample, err := ds.Sample(i)
		if err != nil {
			errs[i] = err
			return
		}
		predicted[i], errs[i] = Classify(sample.Image, chain)
	}, workerConfig(o.workers))

	var r Result
	labels := ds.Labels()
	for i := range predicted {
		if errs[i] != nil {
			return Result{}, fmt.Errorf("sample %d: %w", i, errs[i])
		}
		label := int(labels[i])
		r.Confusion[label][predicted[i]]++
		if predicted[i] == label {
			r.Correct++
		}
	}
	r.Total = n
	if n > 0 {
		r.Accuracy = float64(r.Correct) / float64(n)
	}
	return r, nil
}

func workerConfig(n int) parallel.Config {
	if n == 0 {
		return parallel.DefaultConfig()
	}
	return parallel.WithWorkers(n)
}

func checkChain(chain *nn.Sequential) error {
	if chain == nil {
		return nn.ErrEmptyChain
	}
	if chain.InFeatures() != mnist.ImageSize {
		mismatch := &nn.LayerShapeMismatchError{
			Want: chain.InFeatures(),
			Got:  mnist.ImageSize,
		}
		if named, ok := chain.Module(0).(interface{ Name() string }); ok {
			mismatch.Layer = named.Name()
		}
		return mismatch
	}
	if chain.OutFeatures() != mnist.NumClasses {
		return fmt.Errorf("%w: got %d outputs, want %d",
			ErrOutputSize, chain.OutFeatures(), mnist.NumClasses)
	}
	return nil
}
