// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TimeSeries holds the year-bucketed corpus statistics as parallel slices,
// all the same length and indexed by position. Years ascend; the empty year
// (dateless papers) sorts first when present.
type TimeSeries struct {
	// Years are the bucket keys in ascending order.
	Years []string `json:"years" yaml:"years"`

	// PaperCounts is the number of papers per bucket.
	PaperCounts []float64 `json:"paper_counts" yaml:"paper_counts"`

	// CitationCounts sums per-paper citation-sentence counts per bucket.
	CitationCounts []float64 `json:"citation_counts" yaml:"citation_counts"`

	// KeywordFrequencies holds one top-10 keyword frequency table per
	// bucket, pooled over the combined keywords of the bucket's papers.
	KeywordFrequencies []map[string]int `json:"keyword_frequencies" yaml:"keyword_frequencies"`
}

// Len returns the number of buckets.
func (ts TimeSeries) Len() int { return len(ts.Years) }

// PeriodSummary describes one of the equal-count corpus periods.
type PeriodSummary struct {
	// Period is the 0-based period index.
	Period int `json:"period" yaml:"period"`

	// PaperCount is the number of papers in the period.
	PaperCount int `json:"paper_count" yaml:"paper_count"`

	// TopKeywords is the period's top-10 keyword frequency table.
	TopKeywords map[string]int `json:"top_keywords" yaml:"top_keywords"`

	// EmergingTopics are keywords seen in this period but in no other paper.
	EmergingTopics []string `json:"emerging_topics" yaml:"emerging_topics"`

	// DecliningTopics are keywords seen in other papers but not here.
	DecliningTopics []string `json:"declining_topics" yaml:"declining_topics"`
}

// Forecast holds extrapolated counts for the periods after the observed
// series. The slices are parallel, one entry per future bucket.
type Forecast struct {
	// Years labels the forecast buckets ("2024", "2025", ...).
	Years []string `json:"years" yaml:"years"`

	// PaperPredictions are the extrapolated paper counts.
	PaperPredictions []float64 `json:"paper_predictions" yaml:"paper_predictions"`

	// CitationPredictions are the extrapolated citation counts.
	CitationPredictions []float64 `json:"citation_predictions" yaml:"citation_predictions"`

	// KeywordPredictions maps each keyword with enough history (two or
	// more observed buckets) to its extrapolated per-bucket frequencies.
	KeywordPredictions map[string][]float64 `json:"keyword_predictions" yaml:"keyword_predictions"`
}

// TrendReport is the corpus-level aggregation result.
type TrendReport struct {
	// Series is the year-bucketed statistics for the corpus.
	Series TimeSeries `json:"series" yaml:"series"`

	// TopicEvolution summarizes the three equal-count periods in order.
	TopicEvolution []PeriodSummary `json:"topic_evolution" yaml:"topic_evolution"`

	// MethodologyEvolution lists per-period methodology sentence counts.
	MethodologyEvolution []int `json:"methodology_evolution" yaml:"methodology_evolution"`

	// ExperimentTrends lists per-period experiment sentence counts.
	ExperimentTrends []int `json:"experiment_trends" yaml:"experiment_trends"`

	// CitationTrends lists per-period summed citation-sentence counts.
	CitationTrends []int `json:"citation_trends" yaml:"citation_trends"`

	// FutureTrends is present when a prediction pass ran after aggregation.
	FutureTrends *Forecast `json:"future_trends,omitempty" yaml:"future_trends,omitempty"`
}
