// Package utilities holds the numeric helpers shared by the word2vec kernel
// and its training driver.
package utilities

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Softmax returns exp(x_i - max(x)) / sum_j exp(x_j - max(x)) as a new slice.
// Shifting by the maximum keeps every exponent <= 0, so large scores cannot overflow.
func Softmax(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	copy(out, x)
	floats.AddConst(-floats.Max(x), out)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}
