package nn

import (
	"github.com/chewxy/math32"
)

// ReLU applies f(x) = max(0, x) to every element of x in place and returns x.
// NaN maps to 0.
func ReLU(x []float32) []float32 {
	for i, v := range x {
		if !(v > 0) {
			x[i] = 0
		}
	}
	return x
}

// Argmax returns the index of the largest element of x. Ties resolve to the
// lowest index and NaN never wins. It returns -1 for an empty slice.
func Argmax(x []float32) int {
	if len(x) == 0 {
		return -1
	}
	best, bestIdx := math32.Inf(-1), 0
	for i, v := range x {
		if v > best {
			best, bestIdx = v, i
		}
	}
	return bestIdx
}
