// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnalysisConfig holds settings shared by the text-analysis components.
type AnalysisConfig struct {
	// MaxKeywords is the per-method keyword cap (default 10).
	MaxKeywords int `json:"max_keywords" yaml:"max_keywords"`

	// MaxSentences bounds sentence splitting per request (default 500).
	// Pathologically large abstracts are truncated, not rejected.
	MaxSentences int `json:"max_sentences" yaml:"max_sentences"`

	// MaxTokens bounds tokenization per request (default 5000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// GapSimilarityThreshold is the strict upper bound below which a
	// method/result pair counts as a gap (default 0.30).
	GapSimilarityThreshold float64 `json:"gap_similarity_threshold" yaml:"gap_similarity_threshold"`
}

// WithDefaults fills unset fields with their default values.
func (c AnalysisConfig) WithDefaults() AnalysisConfig {
	if c.MaxKeywords <= 0 {
		c.MaxKeywords = 10
	}
	if c.MaxSentences <= 0 {
		c.MaxSentences = 500
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 5000
	}
	if c.GapSimilarityThreshold <= 0 {
		c.GapSimilarityThreshold = 0.30
	}
	return c
}

// TrendConfig holds settings for corpus trend aggregation.
type TrendConfig struct {
	// Periods is the number of equal-count corpus periods (default 3).
	Periods int `json:"periods" yaml:"periods"`

	// TopKeywords is the per-bucket keyword table size (default 10).
	TopKeywords int `json:"top_keywords" yaml:"top_keywords"`
}

// WithDefaults fills unset fields with their default values.
func (c TrendConfig) WithDefaults() TrendConfig {
	if c.Periods <= 0 {
		c.Periods = 3
	}
	if c.TopKeywords <= 0 {
		c.TopKeywords = 10
	}
	return c
}

// PredictionConfig holds settings for the prediction service.
type PredictionConfig struct {
	// Horizon is the default number of future buckets to predict (default 5).
	Horizon int `json:"horizon" yaml:"horizon"`

	// Trees is the ensemble size for the tree regressors (default 100).
	Trees int `json:"trees" yaml:"trees"`

	// Seed feeds the deterministic bootstrap sampling (default 42).
	Seed int64 `json:"seed" yaml:"seed"`

	// ModelDir is the directory for persisted models (default "models").
	ModelDir string `json:"model_dir" yaml:"model_dir"`
}

// WithDefaults fills unset fields with their default values.
func (c PredictionConfig) WithDefaults() PredictionConfig {
	if c.Horizon <= 0 {
		c.Horizon = 5
	}
	if c.Trees <= 0 {
		c.Trees = 100
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.ModelDir == "" {
		c.ModelDir = "models"
	}
	return c
}

// StoreConfig holds settings for the report store.
type StoreConfig struct {
	// ReportsDir is the base directory for the report database
	// (default "reports").
	ReportsDir string `json:"reports_dir" yaml:"reports_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// WithDefaults fills unset fields with their default values.
func (c StoreConfig) WithDefaults() StoreConfig {
	if c.ReportsDir == "" {
		c.ReportsDir = "reports"
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 20
	}
	return c
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Analysis   AnalysisConfig   `json:"analysis" yaml:"analysis"`
	Trends     TrendConfig      `json:"trends" yaml:"trends"`
	Prediction PredictionConfig `json:"prediction" yaml:"prediction"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}
