// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords extracts ranked keywords from free text using three
// independent strategies: term-frequency weighting, phrase ranking, and
// co-occurrence graph centrality. The combined method unions all three.
package keywords

import (
	"fmt"
	"math"
	"sort"

	"github.com/pdiddy/paperlens/internal/nlp"
	"github.com/pdiddy/paperlens/pkg/types"
)

// Extractor applies the keyword-extraction strategies. It is stateless apart
// from the shared read-only Context and safe for concurrent use.
type Extractor struct {
	ctx  *nlp.Context
	topN int
}

// NewExtractor builds an Extractor bound to the shared linguistic context.
func NewExtractor(ctx *nlp.Context, cfg types.AnalysisConfig) *Extractor {
	cfg = cfg.WithDefaults()
	return &Extractor{ctx: ctx, topN: cfg.MaxKeywords}
}

// Extract runs the selected strategy and returns its ranked keywords keyed
// by method name. The combined method runs all three strategies and adds
// their deduplicated union. Empty text yields empty sequences, not an error.
func (e *Extractor) Extract(text string, method types.ExtractionMethod) (types.KeywordSet, error) {
	switch method {
	case types.MethodFrequency:
		return types.KeywordSet{method: e.byFrequency(text)}, nil
	case types.MethodPhraseRank:
		return types.KeywordSet{method: e.byPhraseRank(text)}, nil
	case types.MethodGraphRank:
		return types.KeywordSet{method: e.byGraphRank(text)}, nil
	case types.MethodCombined, "":
		freq := e.byFrequency(text)
		phrases := e.byPhraseRank(text)
		graph := e.byGraphRank(text)
		return types.KeywordSet{
			types.MethodFrequency:  freq,
			types.MethodPhraseRank: phrases,
			types.MethodGraphRank:  graph,
			types.MethodCombined:   union(freq, phrases, graph),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown extraction method %q", types.ErrInputInvalid, method)
	}
}

// scored pairs a term with its weight and first-occurrence position for
// deterministic tie-breaking.
type scored struct {
	term  string
	score float64
	pos   int
}

// rank sorts by score descending, breaking ties by original term order, and
// returns up to topN terms.
func (e *Extractor) rank(items []scored) []string {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].pos < items[j].pos
	})
	n := e.topN
	if len(items) < n {
		n = len(items)
	}
	out := make([]string, 0, n)
	for _, it := range items[:n] {
		out = append(out, it.term)
	}
	return out
}

// byFrequency weighs each stopword-filtered, lemmatized term by its
// tf-idf weight over the single document. With one document the smoothed
// idf term is constant, so the ordering reduces to term frequency with
// first-occurrence tie-breaking.
func (e *Extractor) byFrequency(text string) []string {
	tokens := e.ctx.Tokens(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	firstPos := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			firstPos[tok] = i
		}
		counts[tok]++
	}

	// Smoothed idf over a single-document corpus: log((1+n)/(1+df)) + 1.
	const idf = 1.0
	items := make([]scored, 0, len(counts))
	for term, tf := range counts {
		items = append(items, scored{
			term:  term,
			score: float64(tf) * idf,
			pos:   firstPos[term],
		})
	}
	return e.rank(items)
}

// byPhraseRank scores candidate phrases of one to three tokens. Candidates
// are contiguous non-stopword runs within a sentence; longer runs split into
// chunks of three. A word's degree counts its co-members across all
// candidates, and a phrase scores the sum of degree/frequency over its
// words. Repeated phrases are kept once.
func (e *Extractor) byPhraseRank(text string) []string {
	var candidates [][]string
	for _, sentence := range e.ctx.Sentences(text) {
		var run []string
		flush := func() {
			for len(run) > 3 {
				candidates = append(candidates, run[:3])
				run = run[3:]
			}
			if len(run) > 0 {
				candidates = append(candidates, run)
			}
			run = nil
		}
		for _, w := range e.ctx.Words(sentence) {
			if e.ctx.IsStopword(w) {
				flush()
				continue
			}
			run = append(run, w)
		}
		flush()
	}
	if len(candidates) == 0 {
		return nil
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, cand := range candidates {
		for _, w := range cand {
			freq[w]++
			degree[w] += len(cand)
		}
	}

	seen := make(map[string]bool, len(candidates))
	var items []scored
	for i, cand := range candidates {
		phrase := joinPhrase(cand)
		if seen[phrase] {
			continue
		}
		seen[phrase] = true

		var score float64
		for _, w := range cand {
			score += float64(degree[w]) / float64(freq[w])
		}
		items = append(items, scored{term: phrase, score: score, pos: i})
	}
	return e.rank(items)
}

// byGraphRank builds a co-occurrence graph over the stopword-filtered token
// sequence with a sliding window of two, weighs edges by co-occurrence
// count, and ranks nodes with iterative PageRank.
func (e *Extractor) byGraphRank(text string) []string {
	tokens := e.ctx.Tokens(text)
	if len(tokens) == 0 {
		return nil
	}

	firstPos := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, seen := firstPos[tok]; !seen {
			firstPos[tok] = i
		}
	}

	// Undirected weighted adjacency; window of 2 pairs adjacent tokens.
	adj := make(map[string]map[string]float64)
	addEdge := func(a, b string) {
		if adj[a] == nil {
			adj[a] = make(map[string]float64)
		}
		adj[a][b]++
	}
	for i := 0; i+1 < len(tokens); i++ {
		a, b := tokens[i], tokens[i+1]
		if a == b {
			continue
		}
		addEdge(a, b)
		addEdge(b, a)
	}

	scores := make(map[string]float64, len(firstPos))
	for term := range firstPos {
		scores[term] = 1.0
	}

	weightSum := make(map[string]float64, len(adj))
	for node, edges := range adj {
		for _, w := range edges {
			weightSum[node] += w
		}
	}

	const (
		damping    = 0.85
		iterations = 30
		epsilon    = 1e-4
	)
	for iter := 0; iter < iterations; iter++ {
		next := make(map[string]float64, len(scores))
		var delta float64
		for term := range scores {
			var rankIn float64
			for neighbor, w := range adj[term] {
				if weightSum[neighbor] > 0 {
					rankIn += w / weightSum[neighbor] * scores[neighbor]
				}
			}
			next[term] = (1 - damping) + damping*rankIn
			delta += math.Abs(next[term] - scores[term])
		}
		scores = next
		if delta < epsilon {
			break
		}
	}

	items := make([]scored, 0, len(scores))
	for term, score := range scores {
		items = append(items, scored{term: term, score: score, pos: firstPos[term]})
	}
	return e.rank(items)
}

// union deduplicates the concatenation of the given keyword slices. The
// result order follows input order but is not part of the contract.
func union(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, kw := range list {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}

func joinPhrase(words []string) string {
	switch len(words) {
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + words[1]
	default:
		return words[0] + " " + words[1] + " " + words[2]
	}
}
