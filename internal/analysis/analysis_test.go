package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperlens/pkg/types"
)

const sampleAbstract = "We propose a novel graph attention method for molecule property " +
	"prediction. Our method uses a transformer architecture with sparse attention. " +
	"Experiments on three benchmark datasets show significant accuracy improvements. " +
	"Results outperform strong baselines by a wide margin. " +
	"However, the approach is limited to small molecules. " +
	"Future work will extend the model to proteins."

func testService() *Service {
	return NewService(types.PipelineConfig{})
}

func samplePaper() types.PaperRecord {
	return types.PaperRecord{
		Title:         "Graph Attention for Molecules",
		Abstract:      sampleAbstract,
		Authors:       []string{"A. Author", "B. Author"},
		PublishedDate: "2022-06-01",
		CitationCount: 12,
	}
}

func TestAnalyzePaperFullReport(t *testing.T) {
	svc := testService()

	report, err := svc.AnalyzePaper(samplePaper(), "")
	require.NoError(t, err)

	assert.Equal(t, "Graph Attention for Molecules", report.Title)
	assert.NotEmpty(t, report.Keywords[types.MethodCombined])
	assert.NotEmpty(t, report.Methodology)
	assert.NotEmpty(t, report.Results)
	assert.NotEmpty(t, report.Limitations)
	assert.NotEmpty(t, report.FutureWork)
	assert.NotEmpty(t, report.MainContribution)
	assert.Len(t, report.SuggestedConferences, 5)

	// No model fitted yet, so impact must be absent rather than an error.
	assert.Nil(t, report.ImpactPrediction)
}

func TestAnalyzePaperRejectsMissingAbstract(t *testing.T) {
	svc := testService()

	_, err := svc.AnalyzePaper(types.PaperRecord{Title: "no abstract"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInputInvalid)
}

func TestAnalyzePaperTargetConference(t *testing.T) {
	svc := testService()

	report, err := svc.AnalyzePaper(samplePaper(), "ICML")
	require.NoError(t, err)
	require.NotNil(t, report.ConferenceFit)
	assert.Equal(t, "ICML", report.ConferenceFit.Conference)
	assert.GreaterOrEqual(t, report.ConferenceFit.SimilarityScore, 0.0)
	assert.LessOrEqual(t, report.ConferenceFit.SimilarityScore, 1.0)
}

func TestAnalyzePaperUnknownConference(t *testing.T) {
	svc := testService()

	_, err := svc.AnalyzePaper(samplePaper(), "SIGBOVIK")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInputInvalid)
}

func TestMainContributionAtMostTwoSentences(t *testing.T) {
	svc := testService()

	report, err := svc.AnalyzePaper(samplePaper(), "")
	require.NoError(t, err)

	count := strings.Count(report.MainContribution, ".")
	assert.LessOrEqual(t, count, 2)
	assert.Contains(t, sampleAbstract, strings.Split(report.MainContribution, ". ")[0])
}

func TestPredictImpactBeforeTrends(t *testing.T) {
	svc := testService()

	_, err := svc.PredictImpact(samplePaper())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrModelNotFitted)
}

func TestAnalyzeTrendsFitsImpactModel(t *testing.T) {
	svc := testService()

	corpus := []types.PaperRecord{
		samplePaper(),
		{
			Title:         "Convolutional Baselines Revisited",
			Abstract:      "We evaluate convolutional baselines on image benchmarks with new metrics.",
			PublishedDate: "2020-03-01",
			CitationCount: 40,
		},
		{
			Title:         "Diffusion Models for Audio",
			Abstract:      "A diffusion approach to audio synthesis with strong results.",
			PublishedDate: "2023-09-01",
			CitationCount: 5,
		},
	}

	report, err := svc.AnalyzeTrends(corpus, 2)
	require.NoError(t, err)
	require.NotNil(t, report.FutureTrends)
	assert.Len(t, report.FutureTrends.Years, 2)

	// The trends pass fits the impact model as a side effect.
	pred, err := svc.PredictImpact(samplePaper())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pred.Confidence, 0.0)
	assert.LessOrEqual(t, pred.Confidence, 1.0)

	// Analysis reports now carry an impact prediction.
	paperReport, err := svc.AnalyzePaper(samplePaper(), "")
	require.NoError(t, err)
	assert.NotNil(t, paperReport.ImpactPrediction)
}

func TestSuggestConferencesRanked(t *testing.T) {
	svc := testService()

	text := "Deep learning and neural networks for machine learning optimization."
	fits := svc.SuggestConferences(text)
	require.Len(t, fits, 5)

	for i := 1; i < len(fits); i++ {
		assert.GreaterOrEqual(t, fits[i-1].SimilarityScore, fits[i].SimilarityScore)
	}
}

func TestConferences(t *testing.T) {
	assert.Equal(t, []string{"ACL", "CVPR", "ICLR", "ICML", "NeurIPS"}, Conferences())
}

func TestDescribeExperiment(t *testing.T) {
	stats := DescribeExperiment(map[string][]float64{
		"accuracy": {0.8, 0.9, 1.0},
		"empty":    nil,
	})

	acc := stats["accuracy"]
	assert.InDelta(t, 0.9, acc.Mean, 1e-9)
	assert.InDelta(t, 0.9, acc.Median, 1e-9)
	assert.InDelta(t, 0.8, acc.Min, 1e-9)
	assert.InDelta(t, 1.0, acc.Max, 1e-9)
	assert.InDelta(t, 0.0816496580927726, acc.Std, 1e-9)

	assert.Zero(t, stats["empty"])
}

func TestDescribeExperimentEvenMedian(t *testing.T) {
	stats := DescribeExperiment(map[string][]float64{"m": {4, 1, 3, 2}})
	assert.InDelta(t, 2.5, stats["m"].Median, 1e-9)
}
