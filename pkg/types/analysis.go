// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionMethod selects a keyword-extraction strategy.
type ExtractionMethod string

const (
	MethodFrequency  ExtractionMethod = "frequency"
	MethodPhraseRank ExtractionMethod = "phrase_rank"
	MethodGraphRank  ExtractionMethod = "graph_rank"
	MethodCombined   ExtractionMethod = "combined"
)

// KeywordSet maps an extraction method name to its ranked keywords, most
// relevant first. The "combined" entry is the deduplicated union of the
// other methods; its order carries no meaning.
type KeywordSet map[ExtractionMethod][]string

// SectionCategory names a rhetorical bucket for classified sentences.
type SectionCategory string

const (
	SectionMethodology SectionCategory = "methodology"
	SectionResults     SectionCategory = "results"
	SectionLimitations SectionCategory = "limitations"
	SectionFutureWork  SectionCategory = "future_work"
	SectionInnovation  SectionCategory = "innovation"
	SectionExperiment  SectionCategory = "experiment"
)

// SectionBucket maps rhetorical categories to the sentences classified into
// them, in original order. Categories are independent keyword matches, not a
// partition: a sentence may appear in any number of buckets.
type SectionBucket map[SectionCategory][]string

// CitationClass names a citation-context bucket. Each citation-bearing
// sentence lands in exactly one class, with methodology taking precedence
// over results and background as the fallback.
type CitationClass string

const (
	CiteMethodology CitationClass = "methodology"
	CiteResults     CitationClass = "results"
	CiteBackground  CitationClass = "background"
)

// CitationReport summarizes citation markers found in a text.
type CitationReport struct {
	// TotalCitations counts all marker matches across all patterns. A
	// sentence carrying two markers contributes two.
	TotalCitations int `json:"total_citations" yaml:"total_citations"`

	// CitationTypes counts citation-bearing sentences per class. The
	// counts are disjoint and sum to len(CitationSentences).
	CitationTypes map[CitationClass]int `json:"citation_types" yaml:"citation_types"`

	// CitationSentences lists sentences containing at least one marker,
	// in original order, each at most once.
	CitationSentences []string `json:"citation_sentences" yaml:"citation_sentences"`
}

// QualityDimension names one scored quality aspect of a text.
type QualityDimension string

const (
	QualityMethodology QualityDimension = "methodology"
	QualityExperiments QualityDimension = "experiments"
	QualityResults     QualityDimension = "results"
	QualityWriting     QualityDimension = "writing"
	QualityOverall     QualityDimension = "overall"
)

// QualityScore maps each dimension to a score in [0, 1]. The overall entry
// is the arithmetic mean of the four keyword-scored dimensions.
type QualityScore map[QualityDimension]float64

// GapKind distinguishes the two research-gap findings.
type GapKind string

const (
	GapMethodResult GapKind = "method_result_gap"
	GapExperiment   GapKind = "experiment_gap"
)

// ResearchGap records one detected gap: a method whose reported results
// overlap poorly, or a missing standard experiment element.
type ResearchGap struct {
	// Kind is method_result_gap or experiment_gap.
	Kind GapKind `json:"kind" yaml:"kind"`

	// Description is a human-readable summary of the finding.
	Description string `json:"description" yaml:"description"`

	// RelatedAreas lists the low-overlap result texts (method_result_gap).
	RelatedAreas []string `json:"related_areas,omitempty" yaml:"related_areas,omitempty"`

	// PotentialDirections are templated follow-up suggestions (method_result_gap).
	PotentialDirections []string `json:"potential_directions,omitempty" yaml:"potential_directions,omitempty"`

	// Suggestions are fixed remediation hints (experiment_gap).
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// ImpactPrediction is the scored outcome of impact prediction for one paper.
type ImpactPrediction struct {
	// ImpactScore is the predicted future citation/influence scalar.
	ImpactScore float64 `json:"impact_score" yaml:"impact_score"`

	// Confidence is 1 minus the stddev of the scaled feature vector,
	// clamped to [0, 1].
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// ConferenceFit scores how well a paper matches one conference's topic set.
type ConferenceFit struct {
	// Conference is the venue name (e.g. "ICML").
	Conference string `json:"conference" yaml:"conference"`

	// SimilarityScore is the TF-IDF cosine similarity between the paper
	// text and the conference keyword set, in [0, 1].
	SimilarityScore float64 `json:"similarity_score" yaml:"similarity_score"`
}

// PaperReport is the composite per-paper analysis result exposed to callers.
type PaperReport struct {
	// Title echoes the analyzed paper's title.
	Title string `json:"title" yaml:"title"`

	// Keywords holds the per-method extraction results for the abstract.
	Keywords KeywordSet `json:"keywords" yaml:"keywords"`

	// MainContribution is a short extractive summary of the abstract.
	MainContribution string `json:"main_contribution" yaml:"main_contribution"`

	// Methodology, Results, Limitations and FutureWork are the classified
	// sentence buckets for the corresponding rhetorical categories.
	Methodology []string `json:"methodology" yaml:"methodology"`
	Results     []string `json:"results" yaml:"results"`
	Limitations []string `json:"limitations" yaml:"limitations"`
	FutureWork  []string `json:"future_work" yaml:"future_work"`

	// Citations summarizes citation markers in the abstract.
	Citations CitationReport `json:"citations" yaml:"citations"`

	// QualityScore holds the four dimension scores plus their mean.
	QualityScore QualityScore `json:"quality_score" yaml:"quality_score"`

	// Innovations maps innovation subcategories to matching sentences.
	Innovations map[string][]string `json:"innovations" yaml:"innovations"`

	// Experiments maps experiment subcategories to matching sentences.
	Experiments map[string][]string `json:"experiments" yaml:"experiments"`

	// Gaps lists detected method/result and experiment gaps.
	Gaps []ResearchGap `json:"gaps,omitempty" yaml:"gaps,omitempty"`

	// ImpactPrediction is present when a fitted prediction model was
	// available at analysis time.
	ImpactPrediction *ImpactPrediction `json:"impact_prediction,omitempty" yaml:"impact_prediction,omitempty"`

	// ConferenceFit is present when a target conference was requested.
	ConferenceFit *ConferenceFit `json:"conference_fit,omitempty" yaml:"conference_fit,omitempty"`

	// SuggestedConferences ranks all known venues by fit, best first.
	SuggestedConferences []ConferenceFit `json:"suggested_conferences,omitempty" yaml:"suggested_conferences,omitempty"`
}

// ExperimentStats holds descriptive statistics for one group of samples.
type ExperimentStats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}
