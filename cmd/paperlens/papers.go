// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperlens/internal/analysis"
	"github.com/pdiddy/paperlens/internal/modelstore"
	"github.com/pdiddy/paperlens/pkg/types"
)

// loadPapers reads a YAML corpus file holding a list of paper records.
func loadPapers(path string) ([]types.PaperRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var papers []types.PaperRecord
	if err := yaml.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return papers, nil
}

// loadPaper reads a YAML file holding a single paper record. A file holding
// a one-element list also works.
func loadPaper(path string) (types.PaperRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PaperRecord{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var paper types.PaperRecord
	if err := yaml.Unmarshal(data, &paper); err == nil && paper.Title != "" {
		return paper, nil
	}
	var papers []types.PaperRecord
	if err := yaml.Unmarshal(data, &papers); err != nil || len(papers) == 0 {
		return types.PaperRecord{}, fmt.Errorf("parsing %s: expected a paper record", path)
	}
	return papers[0], nil
}

// newService builds the analysis service and loads any persisted models
// from the directory given by --models-dir.
func newService(cmd *cobra.Command) (*analysis.Service, *modelstore.Store, error) {
	modelsDir, _ := cmd.Flags().GetString("models-dir")

	cfg := types.PipelineConfig{
		Prediction: types.PredictionConfig{ModelDir: modelsDir}.WithDefaults(),
	}
	svc := analysis.NewService(cfg)

	store, err := modelstore.NewStore(cfg.Prediction.ModelDir)
	if err != nil {
		return nil, nil, err
	}
	if err := svc.Predictor().LoadModels(store); err != nil {
		return nil, nil, err
	}
	return svc, store, nil
}
