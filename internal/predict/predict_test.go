package predict

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperlens/internal/modelstore"
	"github.com/pdiddy/paperlens/pkg/types"
)

func growingSeries() types.TimeSeries {
	return types.TimeSeries{
		Years:          []string{"2020", "2021", "2022"},
		PaperCounts:    []float64{5, 8, 13},
		CitationCounts: []float64{40, 90, 160},
		KeywordFrequencies: []map[string]int{
			{"transformer": 2, "graph": 1},
			{"transformer": 4},
			{"transformer": 7, "diffusion": 3},
		},
	}
}

func TestPredictTrendsLabelsAndValues(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	forecast, err := svc.PredictTrends(growingSeries(), 2)
	require.NoError(t, err)

	require.Equal(t, []string{"2023", "2024"}, forecast.Years)
	require.Len(t, forecast.PaperPredictions, 2)
	require.Len(t, forecast.CitationPredictions, 2)
	for i := range forecast.Years {
		assert.False(t, math.IsNaN(forecast.PaperPredictions[i]))
		assert.False(t, math.IsNaN(forecast.CitationPredictions[i]))
	}
}

func TestPredictTrendsIsDeterministic(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	first, err := svc.PredictTrends(growingSeries(), 3)
	require.NoError(t, err)
	second, err := svc.PredictTrends(growingSeries(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPredictTrendsEmptySeries(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	forecast, err := svc.PredictTrends(types.TimeSeries{}, 2)
	require.NoError(t, err)

	assert.Empty(t, forecast.Years)
	assert.Empty(t, forecast.PaperPredictions)
	assert.Empty(t, forecast.KeywordPredictions)
}

func TestPredictTrendsRejectsRaggedSeries(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	series := growingSeries()
	series.CitationCounts = series.CitationCounts[:2]

	_, err := svc.PredictTrends(series, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInputInvalid)
}

func TestKeywordForecastNeedsTwoBuckets(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	forecast, err := svc.PredictTrends(growingSeries(), 2)
	require.NoError(t, err)

	// "transformer" appears in all three buckets, "graph" and "diffusion"
	// in only one each.
	require.Contains(t, forecast.KeywordPredictions, "transformer")
	assert.NotContains(t, forecast.KeywordPredictions, "graph")
	assert.NotContains(t, forecast.KeywordPredictions, "diffusion")
	assert.Len(t, forecast.KeywordPredictions["transformer"], 2)
}

func TestFutureYearsFallbackLabels(t *testing.T) {
	assert.Equal(t, []string{"t+1", "t+2"}, futureYears([]string{""}, 2))
	assert.Equal(t, []string{"t+1"}, futureYears(nil, 1))
	assert.Equal(t, []string{"2024", "2025"}, futureYears([]string{"2022", "2023"}, 2))
}

func impactTrainingSet() ([][]float64, []float64) {
	features := [][]float64{
		{40, 900, 3, 10, 8, 0.5, 0.3},
		{80, 1400, 5, 120, 10, 0.8, 0.9},
		{55, 1100, 2, 35, 9, 0.2, 0.6},
		{30, 700, 4, 5, 7, 0.1, 0.1},
	}
	targets := []float64{10, 120, 35, 5}
	return features, targets
}

func TestPredictImpactBeforeFit(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	_, err := svc.PredictImpact(make([]float64, FeatureCount))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrModelNotFitted)
}

func TestFitImpactThenPredict(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	features, targets := impactTrainingSet()
	require.NoError(t, svc.FitImpact(features, targets))

	pred, err := svc.PredictImpact(features[1])
	require.NoError(t, err)

	assert.False(t, math.IsNaN(pred.ImpactScore))
	assert.GreaterOrEqual(t, pred.Confidence, 0.0)
	assert.LessOrEqual(t, pred.Confidence, 1.0)
}

func TestPredictImpactRejectsWrongWidth(t *testing.T) {
	svc := NewService(types.PredictionConfig{})

	features, targets := impactTrainingSet()
	require.NoError(t, svc.FitImpact(features, targets))

	_, err := svc.PredictImpact([]float64{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInputInvalid)
}

func TestSaveLoadModels(t *testing.T) {
	store, err := modelstore.NewStore(t.TempDir())
	require.NoError(t, err)

	svc := NewService(types.PredictionConfig{})
	features, targets := impactTrainingSet()
	require.NoError(t, svc.FitImpact(features, targets))
	_, err = svc.PredictTrends(growingSeries(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.SaveModels(store))

	fresh := NewService(types.PredictionConfig{})
	require.NoError(t, fresh.LoadModels(store))

	want, err := svc.PredictImpact(features[2])
	require.NoError(t, err)
	got, err := fresh.PredictImpact(features[2])
	require.NoError(t, err)
	assert.InDelta(t, want.ImpactScore, got.ImpactScore, 1e-9)
	assert.InDelta(t, want.Confidence, got.Confidence, 1e-9)
}

func TestLoadModelsColdStart(t *testing.T) {
	store, err := modelstore.NewStore(t.TempDir())
	require.NoError(t, err)

	svc := NewService(types.PredictionConfig{})
	require.NoError(t, svc.LoadModels(store))

	_, err = svc.PredictImpact(make([]float64, FeatureCount))
	assert.ErrorIs(t, err, types.ErrModelNotFitted)
}

func TestFitLinearExactLine(t *testing.T) {
	model, err := FitLinear([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, model.Slope, 1e-9)
	assert.InDelta(t, 1.0, model.Intercept, 1e-9)
	assert.InDelta(t, 9.0, model.Predict(4), 1e-9)
}

func TestFitLinearSinglePoint(t *testing.T) {
	model, err := FitLinear([]float64{5}, []float64{3})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, model.Predict(100), 1e-9)
}

func TestForestDeterministicFit(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}, {4}}
	y := []float64{1, 2, 4, 8, 16}

	a, err := FitForest(X, y, 20, 42)
	require.NoError(t, err)
	b, err := FitForest(X, y, 20, 42)
	require.NoError(t, err)

	pa, err := a.Predict([]float64{5})
	require.NoError(t, err)
	pb, err := b.Predict([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestForestConstantTarget(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}}
	y := []float64{7, 7, 7}

	f, err := FitForest(X, y, 10, 1)
	require.NoError(t, err)

	p, err := f.Predict([]float64{9})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, p, 1e-9)
}

func TestScalerTransformsTrainingMean(t *testing.T) {
	X := [][]float64{{1, 10}, {3, 30}, {5, 50}}

	scaler, err := FitScaler(X)
	require.NoError(t, err)

	mid, err := scaler.Transform([]float64{3, 30})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mid[0], 1e-9)
	assert.InDelta(t, 0.0, mid[1], 1e-9)
}

func TestScalerZeroVarianceDimension(t *testing.T) {
	X := [][]float64{{1, 5}, {2, 5}, {3, 5}}

	scaler, err := FitScaler(X)
	require.NoError(t, err)

	out, err := scaler.Transform([]float64{2, 999})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out[1], 1e-9)
}
