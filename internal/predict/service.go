// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package predict fits small regressors on bucketed corpus series to
// extrapolate paper, citation, and keyword trends, and scores a single
// paper's predicted impact from a fixed feature vector.
package predict

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/pdiddy/paperlens/internal/modelstore"
	"github.com/pdiddy/paperlens/pkg/types"
)

// Persisted model names in the model store.
const (
	modelPaperTrend    = "paper_trend"
	modelCitationTrend = "citation_trend"
	modelImpact        = "impact"
	modelScaler        = "scaler"
)

// FeatureCount is the width of the impact feature vector: title length,
// abstract length, author count, citation count, keyword count, innovation
// score, experiment score.
const FeatureCount = 7

// Service holds the fitted models. PredictTrends refits on every call under
// the write lock; impact and keyword predictions take read locks, so a
// reader never observes a partially refit model.
type Service struct {
	cfg types.PredictionConfig

	mu            sync.RWMutex
	paperModel    *Forest
	citationModel *Forest
	impactModel   *Forest
	scaler        *Scaler
}

// NewService builds a Service with unfitted models.
func NewService(cfg types.PredictionConfig) *Service {
	return &Service{cfg: cfg.WithDefaults()}
}

// Features assembles the fixed impact feature vector for one paper.
func Features(p types.PaperRecord, keywordCount int, innovationScore, experimentScore float64) []float64 {
	return []float64{
		float64(len(p.Title)),
		float64(len(p.Abstract)),
		float64(len(p.Authors)),
		float64(p.CitationCount),
		float64(keywordCount),
		innovationScore,
		experimentScore,
	}
}

// PredictTrends refits the paper-count and citation-count ensembles on the
// bucket index and extrapolates horizon further buckets, along with a
// per-keyword linear extrapolation for every keyword observed in at least
// two historical buckets. A zero or negative horizon uses the configured
// default. An empty series yields an empty forecast without touching the
// fitted models.
func (s *Service) PredictTrends(series types.TimeSeries, horizon int) (*types.Forecast, error) {
	if horizon <= 0 {
		horizon = s.cfg.Horizon
	}
	if err := validateSeries(series); err != nil {
		return nil, err
	}

	forecast := &types.Forecast{KeywordPredictions: map[string][]float64{}}
	n := series.Len()
	if n == 0 {
		return forecast, nil
	}

	X := make([][]float64, n)
	for i := range X {
		X[i] = []float64{float64(i)}
	}

	paperModel, err := FitForest(X, series.PaperCounts, s.cfg.Trees, s.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("fitting paper trend model: %w", err)
	}
	citationModel, err := FitForest(X, series.CitationCounts, s.cfg.Trees, s.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("fitting citation trend model: %w", err)
	}

	s.mu.Lock()
	s.paperModel = paperModel
	s.citationModel = citationModel
	s.mu.Unlock()

	forecast.Years = futureYears(series.Years, horizon)
	for h := 0; h < horizon; h++ {
		x := []float64{float64(n + h)}
		p, err := paperModel.Predict(x)
		if err != nil {
			return nil, err
		}
		c, err := citationModel.Predict(x)
		if err != nil {
			return nil, err
		}
		forecast.PaperPredictions = append(forecast.PaperPredictions, p)
		forecast.CitationPredictions = append(forecast.CitationPredictions, c)
	}

	if err := s.predictKeywordTrends(series, horizon, forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}

// predictKeywordTrends fits one linear model per qualifying keyword on
// position → per-bucket frequency, with missing buckets counted as zero.
func (s *Service) predictKeywordTrends(series types.TimeSeries, horizon int, forecast *types.Forecast) error {
	n := series.Len()

	observed := make(map[string]int)
	for _, freq := range series.KeywordFrequencies {
		for kw := range freq {
			observed[kw]++
		}
	}

	kws := make([]string, 0, len(observed))
	for kw, count := range observed {
		if count >= 2 {
			kws = append(kws, kw)
		}
	}
	sort.Strings(kws)

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	for _, kw := range kws {
		ys := make([]float64, n)
		for i, freq := range series.KeywordFrequencies {
			ys[i] = float64(freq[kw])
		}
		model, err := FitLinear(xs, ys)
		if err != nil {
			return fmt.Errorf("fitting keyword trend for %q: %w", kw, err)
		}
		preds := make([]float64, 0, horizon)
		for h := 0; h < horizon; h++ {
			preds = append(preds, model.Predict(float64(n+h)))
		}
		forecast.KeywordPredictions[kw] = preds
	}
	return nil
}

// FitImpact fits the impact ensemble and the feature scaler on per-paper
// feature vectors and their citation targets.
func (s *Service) FitImpact(features [][]float64, targets []float64) error {
	scaler, err := FitScaler(features)
	if err != nil {
		return fmt.Errorf("fitting impact scaler: %w", err)
	}
	scaled := make([][]float64, len(features))
	for i, row := range features {
		if scaled[i], err = scaler.Transform(row); err != nil {
			return fmt.Errorf("scaling impact features: %w", err)
		}
	}
	model, err := FitForest(scaled, targets, s.cfg.Trees, s.cfg.Seed)
	if err != nil {
		return fmt.Errorf("fitting impact model: %w", err)
	}

	s.mu.Lock()
	s.impactModel = model
	s.scaler = scaler
	s.mu.Unlock()
	return nil
}

// PredictImpact scores one paper's predicted impact from its feature
// vector. Confidence is 1 minus the standard deviation of the scaled
// features, clamped to [0, 1]. Requires a prior FitImpact or a model
// loaded from the store.
func (s *Service) PredictImpact(features []float64) (types.ImpactPrediction, error) {
	s.mu.RLock()
	model, scaler := s.impactModel, s.scaler
	s.mu.RUnlock()

	if model == nil || scaler == nil {
		return types.ImpactPrediction{}, fmt.Errorf("predicting impact: %w", types.ErrModelNotFitted)
	}

	scaled, err := scaler.Transform(features)
	if err != nil {
		return types.ImpactPrediction{}, err
	}
	score, err := model.Predict(scaled)
	if err != nil {
		return types.ImpactPrediction{}, err
	}

	confidence := 1.0 - stddev(scaled)
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return types.ImpactPrediction{ImpactScore: score, Confidence: confidence}, nil
}

// SaveModels writes every fitted model to the store under its fixed name.
func (s *Service) SaveModels(store *modelstore.Store) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	named := []struct {
		name  string
		model any
		unset bool
	}{
		{modelPaperTrend, s.paperModel, s.paperModel == nil},
		{modelCitationTrend, s.citationModel, s.citationModel == nil},
		{modelImpact, s.impactModel, s.impactModel == nil},
		{modelScaler, s.scaler, s.scaler == nil},
	}
	for _, m := range named {
		if m.unset {
			continue
		}
		if err := store.Save(m.name, m.model); err != nil {
			return fmt.Errorf("saving model %s: %w", m.name, err)
		}
	}
	return nil
}

// LoadModels reads whichever models exist in the store. Missing names are
// a cold start, not an error.
func (s *Service) LoadModels(store *modelstore.Store) error {
	var (
		paperModel, citationModel, impactModel Forest
		scaler                                 Scaler
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok, err := store.Load(modelPaperTrend, &paperModel); err != nil {
		return fmt.Errorf("loading model %s: %w", modelPaperTrend, err)
	} else if ok {
		s.paperModel = &paperModel
	}
	if ok, err := store.Load(modelCitationTrend, &citationModel); err != nil {
		return fmt.Errorf("loading model %s: %w", modelCitationTrend, err)
	} else if ok {
		s.citationModel = &citationModel
	}
	if ok, err := store.Load(modelImpact, &impactModel); err != nil {
		return fmt.Errorf("loading model %s: %w", modelImpact, err)
	} else if ok {
		s.impactModel = &impactModel
	}
	if ok, err := store.Load(modelScaler, &scaler); err != nil {
		return fmt.Errorf("loading model %s: %w", modelScaler, err)
	} else if ok {
		s.scaler = &scaler
	}
	return nil
}

// validateSeries checks the parallel-slice invariant of the TimeSeries.
func validateSeries(series types.TimeSeries) error {
	n := series.Len()
	if len(series.PaperCounts) != n || len(series.CitationCounts) != n ||
		len(series.KeywordFrequencies) != n {
		return fmt.Errorf("%w: time series slices have unequal lengths", types.ErrInputInvalid)
	}
	return nil
}

// futureYears labels horizon buckets after the last observed year. When the
// last year is not numeric (the dateless bucket), positional labels are
// used instead.
func futureYears(years []string, horizon int) []string {
	labels := make([]string, 0, horizon)
	last := 0
	numeric := false
	if len(years) > 0 {
		if y, err := strconv.Atoi(years[len(years)-1]); err == nil {
			last = y
			numeric = true
		}
	}
	for h := 1; h <= horizon; h++ {
		if numeric {
			labels = append(labels, strconv.Itoa(last+h))
		} else {
			labels = append(labels, fmt.Sprintf("t+%d", h))
		}
	}
	return labels
}
