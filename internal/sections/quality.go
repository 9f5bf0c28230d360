// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sections

import (
	"strings"

	"github.com/pdiddy/paperlens/pkg/types"
)

// Quality indicator keywords: five per dimension. A dimension scores the
// fraction of its indicators present anywhere in the lowercased text,
// capped at 1.0.
var qualityIndicators = map[types.QualityDimension][]string{
	types.QualityMethodology: {"novel", "rigorous", "systematic", "improve", "robust"},
	types.QualityExperiments: {"experiment", "dataset", "baseline", "ablation", "statistical"},
	types.QualityResults:     {"result", "performance", "accuracy", "significant", "outperform"},
	types.QualityWriting:     {"clear", "concise", "detailed", "comprehensive", "thorough"},
}

// scoredDimensions lists the keyword-scored dimensions; overall is derived.
var scoredDimensions = []types.QualityDimension{
	types.QualityMethodology,
	types.QualityExperiments,
	types.QualityResults,
	types.QualityWriting,
}

// ScoreQuality scores the text on the four fixed quality dimensions and
// derives the overall score as their arithmetic mean. Each dimension counts
// distinct indicator keywords present as case-insensitive substrings.
// Empty text yields all-zero scores.
func ScoreQuality(text string) types.QualityScore {
	lower := strings.ToLower(text)

	score := make(types.QualityScore, len(scoredDimensions)+1)
	var sum float64
	for _, dim := range scoredDimensions {
		indicators := qualityIndicators[dim]
		var hits int
		for _, kw := range indicators {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		s := float64(hits) / float64(len(indicators))
		if s > 1.0 {
			s = 1.0
		}
		score[dim] = s
		sum += s
	}
	score[types.QualityOverall] = sum / float64(len(scoredDimensions))
	return score
}
