// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sections buckets sentences into rhetorical categories via fixed
// keyword tables and scores text quality with keyword-density heuristics.
package sections

import (
	"strings"

	"github.com/pdiddy/paperlens/internal/nlp"
	"github.com/pdiddy/paperlens/pkg/types"
)

// Category keyword tables. A sentence belongs to a category iff it contains
// at least one of the category's keywords (case-insensitive substring).
// Categories are independent; a sentence may land in several buckets.
var categoryKeywords = map[types.SectionCategory][]string{
	types.SectionMethodology: {
		"method", "approach", "propose", "algorithm", "framework",
		"technique", "procedure", "architecture",
	},
	types.SectionResults: {
		"result", "performance", "accuracy", "achieve", "outperform",
		"demonstrate", "improvement over",
	},
	types.SectionLimitations: {
		"limitation", "drawback", "weakness", "shortcoming", "constraint",
		"however", "fails to", "does not",
	},
	types.SectionFutureWork: {
		"future work", "future research", "further study", "next step",
		"remains open", "plan to", "could be extended",
	},
}

// InnovationSubcategories names the innovation buckets in report order.
var InnovationSubcategories = []string{"method", "improvement", "application", "comparison"}

// innovationKeywords buckets sentences describing what is new about a paper.
var innovationKeywords = map[string][]string{
	"method":      {"novel", "new method", "propose", "introduce", "develop"},
	"improvement": {"improve", "enhance", "boost", "optimize", "refine"},
	"application": {"apply", "application", "deploy", "use case", "real-world"},
	"comparison":  {"compare", "comparison", "versus", "outperform", "against baseline"},
}

// ExperimentSubcategories names the experiment buckets in report order.
var ExperimentSubcategories = []string{"dataset", "evaluation", "metrics", "baseline"}

// experimentKeywords buckets sentences describing the experimental setup.
var experimentKeywords = map[string][]string{
	"dataset":    {"dataset", "corpus", "benchmark", "data set", "samples"},
	"evaluation": {"evaluate", "evaluation", "validation", "test set", "cross-validation"},
	"metrics":    {"accuracy", "precision", "recall", "f1", "auc"},
	"baseline":   {"baseline", "state-of-the-art", "prior work", "existing method", "compared with"},
}

// Result holds the classified sentence buckets for one text.
type Result struct {
	// Buckets holds the four top-level rhetorical categories plus union
	// buckets for innovation and experiment sentences.
	Buckets types.SectionBucket

	// Innovations maps innovation subcategories to matching sentences.
	Innovations map[string][]string

	// Experiments maps experiment subcategories to matching sentences.
	Experiments map[string][]string
}

// Classifier buckets sentences by keyword-set membership.
type Classifier struct {
	ctx *nlp.Context
}

// NewClassifier builds a Classifier bound to the shared linguistic context.
func NewClassifier(ctx *nlp.Context) *Classifier {
	return &Classifier{ctx: ctx}
}

// Classify splits the text into sentences and buckets each sentence into
// every category whose keyword table it matches. Buckets keep original
// sentence order. Degenerate input yields empty buckets.
func (c *Classifier) Classify(text string) Result {
	res := Result{
		Buckets:     make(types.SectionBucket, 6),
		Innovations: make(map[string][]string, len(innovationKeywords)),
		Experiments: make(map[string][]string, len(experimentKeywords)),
	}

	for _, sentence := range c.ctx.Sentences(text) {
		lower := strings.ToLower(sentence)

		for category, keywords := range categoryKeywords {
			if matchesAny(lower, keywords) {
				res.Buckets[category] = append(res.Buckets[category], sentence)
			}
		}

		var isInnovation bool
		for sub, keywords := range innovationKeywords {
			if matchesAny(lower, keywords) {
				res.Innovations[sub] = append(res.Innovations[sub], sentence)
				isInnovation = true
			}
		}
		if isInnovation {
			res.Buckets[types.SectionInnovation] = append(res.Buckets[types.SectionInnovation], sentence)
		}

		var isExperiment bool
		for sub, keywords := range experimentKeywords {
			if matchesAny(lower, keywords) {
				res.Experiments[sub] = append(res.Experiments[sub], sentence)
				isExperiment = true
			}
		}
		if isExperiment {
			res.Buckets[types.SectionExperiment] = append(res.Buckets[types.SectionExperiment], sentence)
		}
	}

	return res
}

// matchesAny reports whether the lowercased sentence contains at least one
// of the keywords.
func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
