// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analysis composes the text-analysis components into per-paper
// reports and corpus-level trend reports.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paperlens/internal/citations"
	"github.com/pdiddy/paperlens/internal/gaps"
	"github.com/pdiddy/paperlens/internal/keywords"
	"github.com/pdiddy/paperlens/internal/nlp"
	"github.com/pdiddy/paperlens/internal/predict"
	"github.com/pdiddy/paperlens/internal/sections"
	"github.com/pdiddy/paperlens/internal/trends"
	"github.com/pdiddy/paperlens/pkg/types"
)

// maxContributionSentences caps the extractive main-contribution summary.
const maxContributionSentences = 2

// Service wires the analysis components behind one entry point.
type Service struct {
	ctx        *nlp.Context
	extractor  *keywords.Extractor
	classifier *sections.Classifier
	citations  *citations.Analyzer
	gaps       *gaps.Analyzer
	aggregator *trends.Aggregator
	predictor  *predict.Service
}

// NewService builds a Service from the pipeline configuration.
func NewService(cfg types.PipelineConfig) *Service {
	ctx := nlp.NewContext(cfg.Analysis)
	extractor := keywords.NewExtractor(ctx, cfg.Analysis)
	classifier := sections.NewClassifier(ctx)
	cites := citations.NewAnalyzer(ctx)

	return &Service{
		ctx:        ctx,
		extractor:  extractor,
		classifier: classifier,
		citations:  cites,
		gaps:       gaps.NewAnalyzer(ctx, cfg.Analysis),
		aggregator: trends.NewAggregator(extractor, cites, classifier, cfg.Trends),
		predictor:  predict.NewService(cfg.Prediction),
	}
}

// Predictor exposes the prediction service for model persistence.
func (s *Service) Predictor() *predict.Service {
	return s.predictor
}

// AnalyzePaper runs the full single-paper pipeline over the abstract:
// keyword extraction, section classification, citation analysis, quality
// scoring, gap detection, and conference fit. Impact prediction is included
// when a fitted model is available and skipped silently otherwise.
// targetConference may be empty.
func (s *Service) AnalyzePaper(paper types.PaperRecord, targetConference string) (*types.PaperReport, error) {
	if err := paper.Validate(); err != nil {
		return nil, err
	}

	kws, err := s.extractor.Extract(paper.Abstract, types.MethodCombined)
	if err != nil {
		return nil, fmt.Errorf("extracting keywords: %w", err)
	}

	classified := s.classifier.Classify(paper.Abstract)
	buckets := classified.Buckets

	report := &types.PaperReport{
		Title:            paper.Title,
		Keywords:         kws,
		MainContribution: s.mainContribution(paper.Abstract, kws[types.MethodCombined]),
		Methodology:      buckets[types.SectionMethodology],
		Results:          buckets[types.SectionResults],
		Limitations:      buckets[types.SectionLimitations],
		FutureWork:       buckets[types.SectionFutureWork],
		Citations:        s.citations.Analyze(paper.Abstract),
		QualityScore:     sections.ScoreQuality(paper.Abstract),
		Innovations:      classified.Innovations,
		Experiments:      classified.Experiments,
	}

	report.Gaps = append(report.Gaps,
		s.gaps.FindGaps(buckets[types.SectionMethodology], buckets[types.SectionResults])...)
	report.Gaps = append(report.Gaps,
		s.gaps.ExperimentGaps(buckets[types.SectionExperiment])...)

	if impact, err := s.predictImpact(paper, report); err == nil {
		report.ImpactPrediction = &impact
	} else if !errors.Is(err, types.ErrModelNotFitted) {
		return nil, err
	}

	report.SuggestedConferences = s.SuggestConferences(paper.Abstract)
	if targetConference != "" {
		fit, err := s.ConferenceFit(paper.Abstract, targetConference)
		if err != nil {
			return nil, err
		}
		report.ConferenceFit = fit
	}

	return report, nil
}

// AnalyzeTrends aggregates the corpus into a trend report, fits the impact
// model on the corpus, and attaches a forecast for horizon future buckets.
func (s *Service) AnalyzeTrends(papers []types.PaperRecord, horizon int) (types.TrendReport, error) {
	report, err := s.aggregator.Aggregate(papers)
	if err != nil {
		return types.TrendReport{}, err
	}

	if len(papers) > 0 {
		features := make([][]float64, 0, len(papers))
		targets := make([]float64, 0, len(papers))
		for _, paper := range papers {
			row, err := s.paperFeatures(paper)
			if err != nil {
				return types.TrendReport{}, err
			}
			features = append(features, row)
			targets = append(targets, float64(paper.CitationCount))
		}
		if err := s.predictor.FitImpact(features, targets); err != nil {
			return types.TrendReport{}, fmt.Errorf("fitting impact model: %w", err)
		}
	}

	forecast, err := s.predictor.PredictTrends(report.Series, horizon)
	if err != nil {
		return types.TrendReport{}, fmt.Errorf("forecasting trends: %w", err)
	}
	report.FutureTrends = forecast

	return report, nil
}

// PredictImpact scores one paper against the fitted impact model.
func (s *Service) PredictImpact(paper types.PaperRecord) (types.ImpactPrediction, error) {
	if err := paper.Validate(); err != nil {
		return types.ImpactPrediction{}, err
	}
	features, err := s.paperFeatures(paper)
	if err != nil {
		return types.ImpactPrediction{}, err
	}
	return s.predictor.PredictImpact(features)
}

func (s *Service) predictImpact(paper types.PaperRecord, report *types.PaperReport) (types.ImpactPrediction, error) {
	features := predict.Features(paper,
		len(report.Keywords[types.MethodCombined]),
		sentenceShare(s.ctx, paper.Abstract, report.Innovations),
		sentenceShare(s.ctx, paper.Abstract, report.Experiments),
	)
	return s.predictor.PredictImpact(features)
}

// paperFeatures assembles the impact feature vector for a paper outside an
// existing report, rerunning extraction and classification.
func (s *Service) paperFeatures(paper types.PaperRecord) ([]float64, error) {
	kws, err := s.extractor.Extract(paper.Abstract, types.MethodCombined)
	if err != nil {
		return nil, err
	}
	classified := s.classifier.Classify(paper.Abstract)
	return predict.Features(paper,
		len(kws[types.MethodCombined]),
		sentenceShare(s.ctx, paper.Abstract, classified.Innovations),
		sentenceShare(s.ctx, paper.Abstract, classified.Experiments),
	), nil
}

// sentenceShare is the fraction of the text's sentences that landed in any
// of the given subcategory buckets.
func sentenceShare(ctx *nlp.Context, text string, subcats map[string][]string) float64 {
	total := len(ctx.Sentences(text))
	if total == 0 {
		return 0
	}
	matched := make(map[string]bool)
	for _, sents := range subcats {
		for _, sent := range sents {
			matched[sent] = true
		}
	}
	return float64(len(matched)) / float64(total)
}

// mainContribution extracts the sentences densest in combined keywords as a
// short summary, preserving original order.
func (s *Service) mainContribution(text string, combined []string) string {
	sents := s.ctx.Sentences(text)
	if len(sents) == 0 {
		return ""
	}
	if len(sents) <= maxContributionSentences {
		return strings.Join(sents, " ")
	}

	type scored struct {
		pos   int
		score int
	}
	ranked := make([]scored, len(sents))
	for i, sent := range sents {
		lower := strings.ToLower(sent)
		hits := 0
		for _, kw := range combined {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		ranked[i] = scored{pos: i, score: hits}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	picked := ranked[:maxContributionSentences]
	sort.Slice(picked, func(i, j int) bool { return picked[i].pos < picked[j].pos })

	parts := make([]string, len(picked))
	for i, p := range picked {
		parts[i] = sents[p.pos]
	}
	return strings.Join(parts, " ")
}
