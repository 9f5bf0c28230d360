// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gaps cross-references extracted method descriptions against
// reported results to flag low-overlap pairs, and checks a fixed checklist
// of essential experiment elements for absence.
package gaps

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/paperlens/internal/nlp"
	"github.com/pdiddy/paperlens/pkg/types"
)

// Analyzer detects method/result and experiment gaps.
type Analyzer struct {
	ctx       *nlp.Context
	threshold float64
}

// NewAnalyzer builds an Analyzer bound to the shared linguistic context.
func NewAnalyzer(ctx *nlp.Context, cfg types.AnalysisConfig) *Analyzer {
	cfg = cfg.WithDefaults()
	return &Analyzer{ctx: ctx, threshold: cfg.GapSimilarityThreshold}
}

// FindGaps compares every method sentence against every result sentence and
// emits one method_result_gap per method whose similarity to at least one
// result falls strictly below the threshold. If either sequence is empty
// the comparison is skipped and no gaps of this kind are emitted.
func (a *Analyzer) FindGaps(methods, results []string) []types.ResearchGap {
	if len(methods) == 0 || len(results) == 0 {
		return nil
	}
	sim := a.SimilarityMatrix(methods, results)
	return a.gapsFromMatrix(methods, results, sim)
}

// SimilarityMatrix vectorizes methods and results with tf-idf weighting
// fit separately on each sequence and returns the pairwise cosine
// similarity matrix, rows indexed by method and columns by result.
func (a *Analyzer) SimilarityMatrix(methods, results []string) [][]float64 {
	methodVecs := a.vectorize(methods)
	resultVecs := a.vectorize(results)

	sim := make([][]float64, len(methods))
	for i := range methods {
		sim[i] = make([]float64, len(results))
		for j := range results {
			sim[i][j] = cosine(methodVecs[i], resultVecs[j])
		}
	}
	return sim
}

func (a *Analyzer) gapsFromMatrix(methods, results []string, sim [][]float64) []types.ResearchGap {
	var found []types.ResearchGap
	for i, method := range methods {
		var weak []string
		for j, s := range sim[i] {
			if s < a.threshold {
				weak = append(weak, results[j])
			}
		}
		if len(weak) == 0 {
			continue
		}

		methodTopic := a.topTerm(method)
		directions := make([]string, 0, len(weak))
		for _, area := range weak {
			directions = append(directions, fmt.Sprintf(
				"Investigate how %s affects %s", methodTopic, a.topTerm(area)))
		}

		found = append(found, types.ResearchGap{
			Kind: types.GapMethodResult,
			Description: fmt.Sprintf(
				"Method %q has low overlap with %d reported result(s)", method, len(weak)),
			RelatedAreas:        weak,
			PotentialDirections: directions,
		})
	}
	return found
}

// essentialElements is the fixed checklist of experiment elements, in
// report order, with the cues that mark an element as present and the
// remediation suggestions emitted when it is absent.
var essentialElements = []struct {
	name        string
	cues        []string
	suggestions []string
}{
	{
		name: "dataset",
		cues: []string{"dataset", "corpus", "benchmark", "data"},
		suggestions: []string{
			"Describe the datasets used, including size and source",
			"Report how the data was split for training and evaluation",
		},
	},
	{
		name: "metrics",
		cues: []string{"accuracy", "precision", "recall", "f1", "metric"},
		suggestions: []string{
			"State the evaluation metrics and why they fit the task",
			"Report metric values for all compared systems",
		},
	},
	{
		name: "baseline",
		cues: []string{"baseline", "state-of-the-art", "compared", "prior"},
		suggestions: []string{
			"Compare against at least one established baseline",
			"Include the strongest published system as a reference point",
		},
	},
	{
		name: "ablation",
		cues: []string{"ablation", "component", "variant"},
		suggestions: []string{
			"Add an ablation study isolating each component's contribution",
		},
	},
	{
		name: "statistical",
		cues: []string{"significance", "significant", "p-value", "confidence interval", "statistical"},
		suggestions: []string{
			"Report statistical significance of the main comparisons",
			"State the number of runs and the variance across them",
		},
	},
}

// ExperimentGaps checks the experiment sentences against the fixed element
// checklist and emits one experiment_gap per element with no matching
// sentence. The check runs regardless of the method/result comparison.
func (a *Analyzer) ExperimentGaps(sentences []string) []types.ResearchGap {
	lowered := make([]string, len(sentences))
	for i, s := range sentences {
		lowered[i] = strings.ToLower(s)
	}

	var found []types.ResearchGap
	for _, elem := range essentialElements {
		if anySentenceMatches(lowered, elem.cues) {
			continue
		}
		found = append(found, types.ResearchGap{
			Kind:        types.GapExperiment,
			Description: fmt.Sprintf("Essential experiment element %q is not described", elem.name),
			Suggestions: elem.suggestions,
		})
	}
	return found
}

func anySentenceMatches(lowered []string, cues []string) bool {
	for _, s := range lowered {
		for _, cue := range cues {
			if strings.Contains(s, cue) {
				return true
			}
		}
	}
	return false
}

// vectorize builds l2-normalized tf-idf vectors for the texts, with idf fit
// on the given sequence alone (smoothed: log((1+n)/(1+df)) + 1).
func (a *Analyzer) vectorize(texts []string) []map[string]float64 {
	docs := make([]map[string]int, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		counts := a.ctx.TokenCounts(text)
		docs[i] = counts
		for term := range counts {
			df[term]++
		}
	}

	n := float64(len(texts))
	vecs := make([]map[string]float64, len(texts))
	for i, counts := range docs {
		vec := make(map[string]float64, len(counts))
		var norm float64
		for term, tf := range counts {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			w := float64(tf) * idf
			vec[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vecs[i] = vec
	}
	return vecs
}

// cosine returns the dot product of two l2-normalized sparse vectors.
func cosine(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		dot += wa * b[term]
	}
	return dot
}

// topTerm returns the text's most frequent content term, first occurrence
// winning ties, falling back to the trimmed text when tokenization yields
// nothing.
func (a *Analyzer) topTerm(text string) string {
	counts := make(map[string]int)
	var best string
	bestCount := 0
	for _, tok := range a.ctx.Tokens(text) {
		counts[tok]++
		if counts[tok] > bestCount {
			best, bestCount = tok, counts[tok]
		}
	}
	if best == "" {
		return strings.TrimSpace(text)
	}
	return best
}
