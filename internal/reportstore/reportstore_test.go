package reportstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperlens/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.StoreConfig{ReportsDir: filepath.Join(t.TempDir(), "reports")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testPaper(title, abstract string) types.PaperRecord {
	return types.PaperRecord{
		Title:         title,
		Abstract:      abstract,
		Authors:       []string{"Ada Lovelace"},
		PublishedDate: "2023-05-01",
	}
}

func testReport(quality float64) *types.PaperReport {
	return &types.PaperReport{
		Keywords: types.KeywordSet{types.MethodFrequency: {"graph", "network"}},
		QualityScore: types.QualityScore{
			types.QualityOverall:     quality,
			types.QualityMethodology: quality,
		},
	}
}

func TestStableID(t *testing.T) {
	a := StableID("Attention Is All You Need")
	b := StableID("  attention is all you need ")

	assert.Len(t, a, 12)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, StableID("A different paper"))
}

func TestSaveAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	paper := testPaper("Graph Attention", "Attention over graph structures.")
	id, err := store.Save(ctx, paper, testReport(0.6))
	require.NoError(t, err)
	require.Equal(t, StableID(paper.Title), id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Graph Attention", got.Title)
	assert.Equal(t, "2023", got.Year)
	assert.Equal(t, []string{"Ada Lovelace"}, got.Authors)
	require.NotNil(t, got.Report)
	assert.Equal(t, []string{"graph", "network"}, got.Report.Keywords[types.MethodFrequency])
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)

	got, err := store.Get(context.Background(), "000000000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveUpserts(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	paper := testPaper("Same Paper", "First pass abstract.")
	_, err := store.Save(ctx, paper, testReport(0.4))
	require.NoError(t, err)

	paper.Abstract = "Second pass abstract."
	id, err := store.Save(ctx, paper, testReport(0.9))
	require.NoError(t, err)

	all, err := store.Retrieve(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	assert.InDelta(t, 0.9, all[0].Quality, 1e-9)
}

func TestRetrieveFullText(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, testPaper("Protein Folding", "Folding proteins with deep networks."), testReport(0.5))
	require.NoError(t, err)
	_, err = store.Save(ctx, testPaper("Speech Synthesis", "Generating audio waveforms."), testReport(0.5))
	require.NoError(t, err)

	results, err := store.Retrieve(ctx, QueryOptions{Query: "proteins"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Protein Folding", results[0].Title)
}

func TestRetrieveFilters(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	low := testPaper("Low Quality", "Sparse evaluation.")
	_, err := store.Save(ctx, low, testReport(0.2))
	require.NoError(t, err)

	high := testPaper("High Quality", "Thorough evaluation.")
	high.PublishedDate = "2021-01-01"
	_, err = store.Save(ctx, high, testReport(0.8))
	require.NoError(t, err)

	results, err := store.Retrieve(ctx, QueryOptions{MinQuality: 0.5})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "High Quality", results[0].Title)

	results, err = store.Retrieve(ctx, QueryOptions{Year: "2021"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "High Quality", results[0].Title)
}

func TestRetrieveOrdersByQuality(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, testPaper("Middling", "One."), testReport(0.5))
	require.NoError(t, err)
	_, err = store.Save(ctx, testPaper("Best", "Two."), testReport(0.9))
	require.NoError(t, err)
	_, err = store.Save(ctx, testPaper("Worst", "Three."), testReport(0.1))
	require.NoError(t, err)

	results, err := store.Retrieve(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Best", results[0].Title)
	assert.Equal(t, "Worst", results[2].Title)
}

func TestRetrieveRespectsMaxResults(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, testPaper("A", "One."), testReport(0.5))
	require.NoError(t, err)
	_, err = store.Save(ctx, testPaper("B", "Two."), testReport(0.5))
	require.NoError(t, err)

	results, err := store.Retrieve(ctx, QueryOptions{MaxResults: 1})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestExportYAML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store, err := NewStore(types.StoreConfig{ReportsDir: dir})
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	_, err = store.Save(ctx, testPaper("Exported", "Content to export."), testReport(0.7))
	require.NoError(t, err)

	require.NoError(t, store.ExportYAML(ctx, QueryOptions{}))

	data, err := os.ReadFile(filepath.Join(dir, "export.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exported")
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.True(t, QueryOptions{MaxResults: 5}.IsEmpty())
	assert.False(t, QueryOptions{Query: "x"}.IsEmpty())
	assert.False(t, QueryOptions{MinQuality: 0.1}.IsEmpty())
	assert.False(t, QueryOptions{Year: "2020"}.IsEmpty())
}
