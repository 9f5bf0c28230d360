// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperlens/internal/reportstore"
	"github.com/pdiddy/paperlens/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [paper.yaml]",
	Short: "Analyze a single paper abstract",
	Long: `Analyze runs the full single-paper pipeline over a paper record read
from YAML: keyword extraction, section classification, citation analysis,
quality scoring, gap detection, and conference fit. With fitted models in
the model directory, the report also includes an impact prediction.

Use --save to persist the report in the report store for later retrieval.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	paper, err := loadPaper(args[0])
	if err != nil {
		return err
	}

	svc, _, err := newService(cmd)
	if err != nil {
		return err
	}

	conference, _ := cmd.Flags().GetString("conference")
	report, err := svc.AnalyzePaper(paper, conference)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		reportsDir, _ := cmd.Flags().GetString("reports-dir")
		store, err := reportstore.NewStore(types.StoreConfig{ReportsDir: reportsDir})
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Save(context.Background(), paper, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved report %s\n", id)
	}

	if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
		return printReportYAML(report)
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printReport(report, jsonOutput)
}

func printReport(report *types.PaperReport, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Title: %s\n", report.Title)
	if report.MainContribution != "" {
		fmt.Printf("Contribution: %s\n", report.MainContribution)
	}
	fmt.Printf("Keywords: %s\n", strings.Join(report.Keywords[types.MethodCombined], ", "))
	fmt.Printf("Quality: %.2f (methodology %.2f, experiments %.2f, results %.2f, writing %.2f)\n",
		report.QualityScore[types.QualityOverall],
		report.QualityScore[types.QualityMethodology],
		report.QualityScore[types.QualityExperiments],
		report.QualityScore[types.QualityResults],
		report.QualityScore[types.QualityWriting])
	fmt.Printf("Citations: %d total, %d sentences\n",
		report.Citations.TotalCitations, len(report.Citations.CitationSentences))

	if len(report.Gaps) > 0 {
		fmt.Printf("Gaps (%d):\n", len(report.Gaps))
		for _, gap := range report.Gaps {
			fmt.Printf("  - [%s] %s\n", gap.Kind, gap.Description)
		}
	}
	if report.ImpactPrediction != nil {
		fmt.Printf("Predicted impact: %.1f (confidence %.2f)\n",
			report.ImpactPrediction.ImpactScore, report.ImpactPrediction.Confidence)
	}
	if report.ConferenceFit != nil {
		fmt.Printf("Fit for %s: %.3f\n",
			report.ConferenceFit.Conference, report.ConferenceFit.SimilarityScore)
	}
	if len(report.SuggestedConferences) > 0 {
		best := report.SuggestedConferences[0]
		fmt.Printf("Best venue: %s (%.3f)\n", best.Conference, best.SimilarityScore)
	}

	return nil
}

// printReportYAML writes the complete report as YAML.
func printReportYAML(report *types.PaperReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func init() {
	analyzeCmd.Flags().String("conference", "", "target conference for fit scoring (ICML, ICLR, NeurIPS, CVPR, ACL)")
	analyzeCmd.Flags().Bool("json", false, "output the full report as JSON")
	analyzeCmd.Flags().Bool("yaml", false, "output the full report as YAML")
	analyzeCmd.Flags().Bool("save", false, "persist the report in the report store")
	analyzeCmd.Flags().String("reports-dir", "reports", "base directory for the report store")
	analyzeCmd.Flags().String("models-dir", "models", "directory holding persisted models")

	rootCmd.AddCommand(analyzeCmd)
}
