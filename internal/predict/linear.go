// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package predict

import (
	"fmt"

	"github.com/pdiddy/paperlens/pkg/types"
)

// Linear is a simple least-squares line fit, used for per-keyword trend
// extrapolation. Fields are exported for YAML persistence.
type Linear struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
}

// FitLinear fits y = Slope*x + Intercept by ordinary least squares. With a
// single point the fit is a flat line through it.
func FitLinear(xs, ys []float64) (Linear, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return Linear{}, fmt.Errorf("%w: linear fit needs matching non-empty xs and ys", types.ErrInputInvalid)
	}
	if len(xs) == 1 {
		return Linear{Intercept: ys[0]}, nil
	}

	mx := mean(xs)
	my := mean(ys)
	var num, den float64
	for i := range xs {
		num += (xs[i] - mx) * (ys[i] - my)
		den += (xs[i] - mx) * (xs[i] - mx)
	}
	if den == 0 {
		return Linear{Intercept: my}, nil
	}
	slope := num / den
	return Linear{Slope: slope, Intercept: my - slope*mx}, nil
}

// Predict evaluates the fitted line at x.
func (l Linear) Predict(x float64) float64 {
	return l.Slope*x + l.Intercept
}
