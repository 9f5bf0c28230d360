// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations detects citation markers in free text, counts them, and
// classifies the sentences carrying them by rhetorical category.
package citations

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paperlens/internal/nlp"
	"github.com/pdiddy/paperlens/pkg/types"
)

// Citation marker patterns.
var (
	// bracketCiteRe matches bracketed numeric citations like [1] or [12].
	bracketCiteRe = regexp.MustCompile(`\[(\d+)\]`)

	// etAlCiteRe matches author-year citations like (Smith et al., 2020).
	etAlCiteRe = regexp.MustCompile(`\([A-Z][A-Za-z]+\s+et\s+al\.,\s*\d{4}\)`)

	// authorPairCiteRe matches citations like (Smith and Jones, 2020).
	authorPairCiteRe = regexp.MustCompile(`\([A-Z][A-Za-z]+\s+and\s+[A-Z][A-Za-z]+,\s*\d{4}\)`)
)

// Sentence-classification keyword tables. Methodology is checked before
// results; sentences matching neither fall back to background. The branch
// order is a preserved product behavior, not independent labeling.
var (
	methodologyCues = []string{"method", "approach", "technique", "algorithm", "framework", "based on"}
	resultsCues     = []string{"result", "performance", "accuracy", "achieve", "outperform", "improve"}
)

// Analyzer classifies citation contexts. It is stateless apart from the
// shared read-only Context.
type Analyzer struct {
	ctx *nlp.Context
}

// NewAnalyzer builds an Analyzer bound to the shared linguistic context.
func NewAnalyzer(ctx *nlp.Context) *Analyzer {
	return &Analyzer{ctx: ctx}
}

// Analyze scans the text for citation markers. TotalCitations counts every
// marker match, so a sentence with two markers contributes two; the
// per-class sentence counts are disjoint and sum to the number of
// citation-bearing sentences. Text without markers yields a zeroed report
// with an empty (non-nil) type table.
func (a *Analyzer) Analyze(text string) types.CitationReport {
	report := types.CitationReport{
		CitationTypes: map[types.CitationClass]int{},
	}
	if strings.TrimSpace(text) == "" {
		return report
	}

	report.TotalCitations = countMarkers(text)

	for _, sentence := range a.ctx.Sentences(text) {
		if countMarkers(sentence) == 0 {
			continue
		}
		report.CitationSentences = append(report.CitationSentences, sentence)
		report.CitationTypes[classify(sentence)]++
	}

	return report
}

// countMarkers counts all citation-marker matches across the three patterns.
func countMarkers(text string) int {
	return len(bracketCiteRe.FindAllString(text, -1)) +
		len(etAlCiteRe.FindAllString(text, -1)) +
		len(authorPairCiteRe.FindAllString(text, -1))
}

// classify assigns one citation class per sentence with methodology taking
// precedence over results and background as the fallback.
func classify(sentence string) types.CitationClass {
	lower := strings.ToLower(sentence)
	switch {
	case containsAny(lower, methodologyCues):
		return types.CiteMethodology
	case containsAny(lower, resultsCues):
		return types.CiteResults
	default:
		return types.CiteBackground
	}
}

func containsAny(lower string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
