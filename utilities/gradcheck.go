package utilities

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	DefaultCheckStep      = 1e-4
	DefaultCheckTolerance = 1e-5
)

// GradientCheck compares grad against the centered difference
// (cost(x+h) - cost(x-h)) / 2h for every coordinate of x.
//
// cost must read x, which is overwritten with each evaluation point and restored
// before GradientCheck returns. The relative error is
// |numeric - analytic| / max(1, |numeric|, |analytic|).
func GradientCheck(cost func() (float64, error), x, grad []float64, h, tol float64) error {
	if len(x) != len(grad) {
		return fmt.Errorf("gradient check: %d parameters but %d gradient entries", len(x), len(grad))
	}
	if len(x) == 0 {
		return nil
	}

	orig := make([]float64, len(x))
	copy(orig, x)
	defer copy(x, orig)

	var costErr error
	f := func(y []float64) float64 {
		if costErr != nil {
			return math.NaN()
		}
		copy(x, y)
		c, err := cost()
		if err != nil {
			costErr = err
			return math.NaN()
		}
		return c
	}
	numeric := fd.Gradient(nil, f, orig, &fd.Settings{Formula: fd.Central, Step: h})
	if costErr != nil {
		return costErr
	}

	for i := range numeric {
		rel := math.Abs(numeric[i]-grad[i]) / math.Max(1, math.Max(math.Abs(numeric[i]), math.Abs(grad[i])))
		if rel > tol {
			return fmt.Errorf("gradient check failed at %d: analytic %g, numeric %g, relative error %g", i, grad[i], numeric[i], rel)
		}
	}
	return nil
}
