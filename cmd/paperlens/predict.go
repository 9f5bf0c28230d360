// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperlens/pkg/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict [paper.yaml]",
	Short: "Predict a paper's impact with previously fitted models",
	Long: `Predict scores a single paper against the impact model fitted by a
prior trends run and loaded from the model directory. Without fitted
models the command fails; run trends over a corpus first.`,
	Args: cobra.ExactArgs(1),
	RunE: runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
	paper, err := loadPaper(args[0])
	if err != nil {
		return err
	}

	svc, _, err := newService(cmd)
	if err != nil {
		return err
	}

	pred, err := svc.PredictImpact(paper)
	if errors.Is(err, types.ErrModelNotFitted) {
		return fmt.Errorf("no fitted models found: run 'paperlens trends' over a corpus first")
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", paper.Title)
	fmt.Printf("Predicted impact: %.1f\n", pred.ImpactScore)
	fmt.Printf("Confidence: %.2f\n", pred.Confidence)
	return nil
}

func init() {
	predictCmd.Flags().String("models-dir", "models", "directory holding persisted models")

	rootCmd.AddCommand(predictCmd)
}
