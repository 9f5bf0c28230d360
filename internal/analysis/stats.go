// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"math"
	"sort"

	"github.com/pdiddy/paperlens/pkg/types"
)

// DescribeExperiment computes descriptive statistics per named sample
// group. Empty groups yield zero-valued stats.
func DescribeExperiment(groups map[string][]float64) map[string]types.ExperimentStats {
	out := make(map[string]types.ExperimentStats, len(groups))
	for name, samples := range groups {
		out[name] = describe(samples)
	}
	return out
}

func describe(samples []float64) types.ExperimentStats {
	n := len(samples)
	if n == 0 {
		return types.ExperimentStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range sorted {
		sq += (v - mean) * (v - mean)
	}

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return types.ExperimentStats{
		Mean:   mean,
		Std:    math.Sqrt(sq / float64(n)),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}
