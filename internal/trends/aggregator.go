// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trends buckets a paper corpus by year and by equal-count periods
// and computes per-bucket statistics: paper and citation counts, keyword
// frequencies, and emerging/declining topic sets.
package trends

import (
	"fmt"
	"sort"

	"github.com/pdiddy/paperlens/internal/citations"
	"github.com/pdiddy/paperlens/internal/keywords"
	"github.com/pdiddy/paperlens/internal/sections"
	"github.com/pdiddy/paperlens/pkg/types"
)

// Aggregator computes corpus-level trend reports.
type Aggregator struct {
	extractor  *keywords.Extractor
	citations  *citations.Analyzer
	classifier *sections.Classifier
	cfg        types.TrendConfig
}

// NewAggregator wires the aggregator to its analysis collaborators.
func NewAggregator(extractor *keywords.Extractor, cites *citations.Analyzer, classifier *sections.Classifier, cfg types.TrendConfig) *Aggregator {
	return &Aggregator{
		extractor:  extractor,
		citations:  cites,
		classifier: classifier,
		cfg:        cfg.WithDefaults(),
	}
}

// Aggregate sorts the papers by date, buckets them by year, splits them
// into equal-count periods, and fills a TrendReport. An empty corpus yields
// a well-formed report with empty series and the configured number of empty
// periods. A paper without an abstract is an input error.
func (ag *Aggregator) Aggregate(papers []types.PaperRecord) (types.TrendReport, error) {
	for _, p := range papers {
		if err := p.Validate(); err != nil {
			return types.TrendReport{}, fmt.Errorf("aggregating trends: %w", err)
		}
	}

	sorted := sortByDate(papers)

	// Per-paper analysis shared by the year and period passes.
	combined := make([][]string, len(sorted))
	citationCounts := make([]int, len(sorted))
	methodology := make([]int, len(sorted))
	experiments := make([]int, len(sorted))
	for i, p := range sorted {
		ks, err := ag.extractor.Extract(p.Abstract, types.MethodCombined)
		if err != nil {
			return types.TrendReport{}, fmt.Errorf("extracting keywords for %q: %w", p.Title, err)
		}
		combined[i] = ks[types.MethodCombined]

		report := ag.citations.Analyze(p.Abstract)
		citationCounts[i] = len(report.CitationSentences)

		classified := ag.classifier.Classify(p.Abstract)
		methodology[i] = len(classified.Buckets[types.SectionMethodology])
		experiments[i] = len(classified.Buckets[types.SectionExperiment])
	}

	report := types.TrendReport{
		Series:         ag.buildSeries(sorted, combined, citationCounts),
		TopicEvolution: make([]types.PeriodSummary, 0, ag.cfg.Periods),
	}

	periods := splitPeriods(len(sorted), ag.cfg.Periods)
	for idx, span := range periods {
		report.TopicEvolution = append(report.TopicEvolution,
			ag.summarizePeriod(idx, span, combined))

		var cites, methods, exps int
		for i := span.start; i < span.end; i++ {
			cites += citationCounts[i]
			methods += methodology[i]
			exps += experiments[i]
		}
		report.CitationTrends = append(report.CitationTrends, cites)
		report.MethodologyEvolution = append(report.MethodologyEvolution, methods)
		report.ExperimentTrends = append(report.ExperimentTrends, exps)
	}

	return report, nil
}

// sortByDate returns the papers sorted ascending by the raw ISO date
// string. Papers without a date compare as the empty string and sort first.
func sortByDate(papers []types.PaperRecord) []types.PaperRecord {
	sorted := make([]types.PaperRecord, len(papers))
	copy(sorted, papers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedDate < sorted[j].PublishedDate
	})
	return sorted
}

// buildSeries buckets the sorted papers by year key (first four bytes of
// the date; dateless papers share the "" bucket) and fills the parallel
// TimeSeries slices.
func (ag *Aggregator) buildSeries(sorted []types.PaperRecord, combined [][]string, citationCounts []int) types.TimeSeries {
	byYear := make(map[string][]int)
	for i, p := range sorted {
		year := p.Year()
		byYear[year] = append(byYear[year], i)
	}

	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Strings(years)

	series := types.TimeSeries{
		Years:              years,
		PaperCounts:        make([]float64, len(years)),
		CitationCounts:     make([]float64, len(years)),
		KeywordFrequencies: make([]map[string]int, len(years)),
	}
	for yi, year := range years {
		indices := byYear[year]
		series.PaperCounts[yi] = float64(len(indices))

		freq := make(map[string]int)
		for _, i := range indices {
			series.CitationCounts[yi] += float64(citationCounts[i])
			for _, kw := range combined[i] {
				freq[kw]++
			}
		}
		series.KeywordFrequencies[yi] = topN(freq, ag.cfg.TopKeywords)
	}
	return series
}

// span is a half-open index range into the sorted corpus.
type span struct{ start, end int }

// splitPeriods divides n papers into exactly periods contiguous spans of
// n/periods papers each, with the remainder assigned to the last period.
// With fewer papers than periods some spans are empty but still present.
func splitPeriods(n, periods int) []span {
	size := n / periods
	spans := make([]span, 0, periods)
	start := 0
	for p := 0; p < periods; p++ {
		end := start + size
		if p == periods-1 {
			end = n
		}
		spans = append(spans, span{start: start, end: end})
		start = end
	}
	return spans
}

// summarizePeriod computes the period's keyword table and its emerging and
// declining topic sets. Emerging topics appear in this period's papers but
// in no other paper; declining topics are the complement direction. The
// set-union over all other papers makes this quadratic in corpus size,
// which is fine at the intended scale; rewriting it as a period-to-period
// diff would change the result sets.
func (ag *Aggregator) summarizePeriod(idx int, sp span, combined [][]string) types.PeriodSummary {
	inPeriod := make(map[string]bool)
	freq := make(map[string]int)
	for i := sp.start; i < sp.end; i++ {
		for _, kw := range combined[i] {
			inPeriod[kw] = true
			freq[kw]++
		}
	}

	elsewhere := make(map[string]bool)
	for i := range combined {
		if i >= sp.start && i < sp.end {
			continue
		}
		for _, kw := range combined[i] {
			elsewhere[kw] = true
		}
	}

	var emerging, declining []string
	for kw := range inPeriod {
		if !elsewhere[kw] {
			emerging = append(emerging, kw)
		}
	}
	for kw := range elsewhere {
		if !inPeriod[kw] {
			declining = append(declining, kw)
		}
	}
	sort.Strings(emerging)
	sort.Strings(declining)

	return types.PeriodSummary{
		Period:          idx,
		PaperCount:      sp.end - sp.start,
		TopKeywords:     topN(freq, ag.cfg.TopKeywords),
		EmergingTopics:  emerging,
		DecliningTopics: declining,
	}
}

// topN keeps the n highest-count entries of the frequency table, ties
// broken alphabetically.
func topN(freq map[string]int, n int) map[string]int {
	if len(freq) <= n {
		return freq
	}
	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	kept := make(map[string]int, n)
	for _, term := range terms[:n] {
		kept[term] = freq[term]
	}
	return kept
}

// PeriodPapers splits the date-sorted corpus into the configured number of
// contiguous periods and returns the actual paper groups. The groups
// partition the input: non-overlapping, union covering.
func (ag *Aggregator) PeriodPapers(papers []types.PaperRecord) [][]types.PaperRecord {
	sorted := sortByDate(papers)
	spans := splitPeriods(len(sorted), ag.cfg.Periods)
	groups := make([][]types.PaperRecord, 0, len(spans))
	for _, sp := range spans {
		groups = append(groups, sorted[sp.start:sp.end])
	}
	return groups
}
