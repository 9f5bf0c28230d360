// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperlens/pkg/types"
)

var trendsCmd = &cobra.Command{
	Use:   "trends [corpus.yaml]",
	Short: "Aggregate trends over a paper corpus and forecast their continuation",
	Long: `Trends reads a YAML corpus of paper records, buckets it by publication
year, summarizes topic evolution across equal-count periods, and fits
prediction models to forecast paper counts, citation counts, and keyword
frequencies for future years.

Fitted models (including the impact model used by analyze and predict)
are saved to the model directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrends,
}

func runTrends(cmd *cobra.Command, args []string) error {
	papers, err := loadPapers(args[0])
	if err != nil {
		return err
	}

	svc, store, err := newService(cmd)
	if err != nil {
		return err
	}

	horizon, _ := cmd.Flags().GetInt("horizon")
	report, err := svc.AnalyzeTrends(papers, horizon)
	if err != nil {
		return err
	}

	if err := svc.Predictor().SaveModels(store); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved models to %s\n", store.Dir())

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printTrendReport(report, jsonOutput)
}

func printTrendReport(report types.TrendReport, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Years: %s\n", strings.Join(report.Series.Years, ", "))
	for i, year := range report.Series.Years {
		fmt.Printf("  %s: %d papers, %d citation sentences\n",
			year, int(report.Series.PaperCounts[i]), int(report.Series.CitationCounts[i]))
	}

	for _, period := range report.TopicEvolution {
		fmt.Printf("Period %d: %d papers\n", period.Period+1, period.PaperCount)
		if len(period.TopKeywords) > 0 {
			fmt.Printf("  top keywords: %s\n", formatKeywordTable(period.TopKeywords))
		}
		if len(period.EmergingTopics) > 0 {
			fmt.Printf("  emerging: %s\n", strings.Join(period.EmergingTopics, ", "))
		}
		if len(period.DecliningTopics) > 0 {
			fmt.Printf("  declining: %s\n", strings.Join(period.DecliningTopics, ", "))
		}
	}

	if report.FutureTrends != nil && len(report.FutureTrends.Years) > 0 {
		fmt.Println("Forecast:")
		for i, year := range report.FutureTrends.Years {
			fmt.Printf("  %s: %.1f papers, %.1f citations\n",
				year, report.FutureTrends.PaperPredictions[i], report.FutureTrends.CitationPredictions[i])
		}
	}
	return nil
}

func formatKeywordTable(freq map[string]int) string {
	kws := make([]string, 0, len(freq))
	for kw := range freq {
		kws = append(kws, kw)
	}
	sort.Slice(kws, func(i, j int) bool {
		if freq[kws[i]] != freq[kws[j]] {
			return freq[kws[i]] > freq[kws[j]]
		}
		return kws[i] < kws[j]
	})

	parts := make([]string, len(kws))
	for i, kw := range kws {
		parts[i] = fmt.Sprintf("%s (%d)", kw, freq[kw])
	}
	return strings.Join(parts, ", ")
}

func init() {
	trendsCmd.Flags().Int("horizon", 0, "future buckets to forecast (0 = default)")
	trendsCmd.Flags().Bool("json", false, "output the full report as JSON")
	trendsCmd.Flags().String("models-dir", "models", "directory for persisted models")

	rootCmd.AddCommand(trendsCmd)
}
