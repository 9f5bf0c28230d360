// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package predict

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/pdiddy/paperlens/pkg/types"
)

// TreeNode is one node of a regression tree. Leaves carry the mean target
// of their training samples; internal nodes split on Feature < Threshold.
// Fields are exported for YAML persistence.
type TreeNode struct {
	Leaf      bool      `yaml:"leaf"`
	Value     float64   `yaml:"value,omitempty"`
	Feature   int       `yaml:"feature,omitempty"`
	Threshold float64   `yaml:"threshold,omitempty"`
	Left      *TreeNode `yaml:"left,omitempty"`
	Right     *TreeNode `yaml:"right,omitempty"`
}

// predict walks the tree for one sample.
func (n *TreeNode) predict(x []float64) float64 {
	node := n
	for !node.Leaf {
		if x[node.Feature] < node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

// Forest is a bagged ensemble of regression trees, the rendition of the
// ensemble-tree regressor used for trend and impact fitting. Bootstrap
// sampling is seeded, so fitting the same data twice yields the same model.
type Forest struct {
	Trees []*TreeNode `yaml:"trees"`
	Dim   int         `yaml:"dim"`
}

const maxTreeDepth = 6

// FitForest fits size bagged regression trees on X, y using the seeded
// bootstrap. X rows must share one width and match len(y).
func FitForest(X [][]float64, y []float64, size int, seed int64) (*Forest, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, fmt.Errorf("%w: forest training needs matching non-empty X and y", types.ErrInputInvalid)
	}
	dim := len(X[0])
	for _, row := range X {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: ragged feature matrix", types.ErrInputInvalid)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	f := &Forest{Trees: make([]*TreeNode, 0, size), Dim: dim}
	for t := 0; t < size; t++ {
		sampleX := make([][]float64, len(X))
		sampleY := make([]float64, len(y))
		for i := range X {
			j := rng.Intn(len(X))
			sampleX[i] = X[j]
			sampleY[i] = y[j]
		}
		f.Trees = append(f.Trees, growTree(sampleX, sampleY, 0))
	}
	return f, nil
}

// Predict averages the per-tree predictions for one sample.
func (f *Forest) Predict(x []float64) (float64, error) {
	if len(x) != f.Dim {
		return 0, fmt.Errorf("%w: sample has %d features, model expects %d",
			types.ErrInputInvalid, len(x), f.Dim)
	}
	var sum float64
	for _, tree := range f.Trees {
		sum += tree.predict(x)
	}
	return sum / float64(len(f.Trees)), nil
}

// growTree builds a regression tree by greedy SSE-minimizing splits.
func growTree(X [][]float64, y []float64, depth int) *TreeNode {
	if depth >= maxTreeDepth || len(y) < 2 || constant(y) {
		return &TreeNode{Leaf: true, Value: mean(y)}
	}

	feature, threshold, ok := bestSplit(X, y)
	if !ok {
		return &TreeNode{Leaf: true, Value: mean(y)}
	}

	var leftX, rightX [][]float64
	var leftY, rightY []float64
	for i, row := range X {
		if row[feature] < threshold {
			leftX = append(leftX, row)
			leftY = append(leftY, y[i])
		} else {
			rightX = append(rightX, row)
			rightY = append(rightY, y[i])
		}
	}
	if len(leftY) == 0 || len(rightY) == 0 {
		return &TreeNode{Leaf: true, Value: mean(y)}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      growTree(leftX, leftY, depth+1),
		Right:     growTree(rightX, rightY, depth+1),
	}
}

// bestSplit scans every feature and every midpoint between adjacent
// distinct values for the split minimizing the summed squared error.
func bestSplit(X [][]float64, y []float64) (feature int, threshold float64, ok bool) {
	bestSSE := math.Inf(1)
	dim := len(X[0])

	for f := 0; f < dim; f++ {
		values := make([]float64, 0, len(X))
		seen := make(map[float64]bool)
		for _, row := range X {
			if !seen[row[f]] {
				seen[row[f]] = true
				values = append(values, row[f])
			}
		}
		if len(values) < 2 {
			continue
		}
		sort.Float64s(values)

		for v := 0; v+1 < len(values); v++ {
			mid := (values[v] + values[v+1]) / 2
			var leftY, rightY []float64
			for i, row := range X {
				if row[f] < mid {
					leftY = append(leftY, y[i])
				} else {
					rightY = append(rightY, y[i])
				}
			}
			sse := sumSquaredError(leftY) + sumSquaredError(rightY)
			if sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = mid
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func sumSquaredError(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	m := mean(y)
	var sse float64
	for _, v := range y {
		sse += (v - m) * (v - m)
	}
	return sse
}

func mean(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	var sum float64
	for _, v := range y {
		sum += v
	}
	return sum / float64(len(y))
}

func constant(y []float64) bool {
	for _, v := range y[1:] {
		if v != y[0] {
			return false
		}
	}
	return true
}
