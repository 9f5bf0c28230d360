// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package predict

import (
	"fmt"
	"math"

	"github.com/pdiddy/paperlens/pkg/types"
)

// Scaler standardizes feature vectors to zero mean and unit variance per
// dimension, matching the statistics of its training matrix. Fields are
// exported for YAML persistence.
type Scaler struct {
	Means []float64 `yaml:"means"`
	Stds  []float64 `yaml:"stds"`
}

// FitScaler computes per-dimension mean and population standard deviation.
// Dimensions with zero variance scale to zero rather than dividing by zero.
func FitScaler(X [][]float64) (*Scaler, error) {
	if len(X) == 0 {
		return nil, fmt.Errorf("%w: scaler training needs at least one sample", types.ErrInputInvalid)
	}
	dim := len(X[0])
	means := make([]float64, dim)
	stds := make([]float64, dim)

	for _, row := range X {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: ragged feature matrix", types.ErrInputInvalid)
		}
		for d, v := range row {
			means[d] += v
		}
	}
	n := float64(len(X))
	for d := range means {
		means[d] /= n
	}
	for _, row := range X {
		for d, v := range row {
			stds[d] += (v - means[d]) * (v - means[d])
		}
	}
	for d := range stds {
		stds[d] = math.Sqrt(stds[d] / n)
	}

	return &Scaler{Means: means, Stds: stds}, nil
}

// Transform standardizes one sample.
func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Means) {
		return nil, fmt.Errorf("%w: sample has %d features, scaler expects %d",
			types.ErrInputInvalid, len(x), len(s.Means))
	}
	out := make([]float64, len(x))
	for d, v := range x {
		if s.Stds[d] == 0 {
			out[d] = 0
			continue
		}
		out[d] = (v - s.Means[d]) / s.Stds[d]
	}
	return out, nil
}

// stddev returns the population standard deviation of v.
func stddev(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	m := mean(v)
	var sum float64
	for _, x := range v {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(v)))
}
