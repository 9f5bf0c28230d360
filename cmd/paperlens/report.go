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

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Query stored analysis reports (retrieve, show, export)",
	Long: `Report manages the local SQLite report store populated by analyze --save.
Use subcommands to search stored reports, show one in full, or export.`,
}

// --- retrieve subcommand ---

var reportRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Search stored reports with full-text search and filters",
	Long: `Retrieve searches stored reports using FTS5 full-text search over title
and abstract, structured filters (conference, year, minimum quality), or a
combination of both.`,
	RunE: runReportRetrieve,
}

func runReportRetrieve(cmd *cobra.Command, args []string) error {
	store, err := openReportStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := reportOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --conference, --year, or --min-quality")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatReportResults(results, jsonOutput)
}

func formatReportResults(results []reportstore.StoredReport, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-50s  %-6s  %-8s  %s\n",
		"ID", "Title", "Year", "Quality", "Impact")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))

	for _, r := range results {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-14s  %-50s  %-6s  %-8.2f  %.1f\n",
			r.ID, title, r.Year, r.Quality, r.Impact)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- show subcommand ---

var reportShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one stored report in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportShow,
}

func runReportShow(cmd *cobra.Command, args []string) error {
	store, err := openReportStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	stored, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("report %s not found", args[0])
	}

	data, err := yaml.Marshal(stored)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// --- export subcommand ---

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored reports to YAML or JSON",
	Long: `Export writes all stored reports (or a filtered subset) to
export.yaml or export.json in the reports directory. Supports the same
filter flags as retrieve for partial exports.`,
	RunE: runReportExport,
}

func runReportExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openReportStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := reportOptsFromFlags(cmd, args)
	reportsDir, _ := cmd.Flags().GetString("reports-dir")

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", reportsDir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", reportsDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func openReportStore(cmd *cobra.Command) (*reportstore.Store, error) {
	reportsDir, _ := cmd.Flags().GetString("reports-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return reportstore.NewStore(types.StoreConfig{
		ReportsDir: reportsDir,
		MaxResults: maxResults,
	})
}

func reportOptsFromFlags(cmd *cobra.Command, args []string) reportstore.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	conference, _ := cmd.Flags().GetString("conference")
	year, _ := cmd.Flags().GetString("year")
	minQuality, _ := cmd.Flags().GetFloat64("min-quality")
	limit, _ := cmd.Flags().GetInt("limit")

	return reportstore.QueryOptions{
		Query:      queryText,
		Conference: conference,
		Year:       year,
		MinQuality: minQuality,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	reportCmd.PersistentFlags().String("reports-dir", "reports", "base directory for the report store")
	reportCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Retrieve flags.
	reportRetrieveCmd.Flags().String("query", "", "full-text search query")
	reportRetrieveCmd.Flags().String("conference", "", "filter by suggested conference")
	reportRetrieveCmd.Flags().String("year", "", "filter by publication year")
	reportRetrieveCmd.Flags().Float64("min-quality", 0, "minimum overall quality score")
	reportRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	reportRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	reportExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	reportExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	reportExportCmd.Flags().String("conference", "", "filter by conference for partial export")
	reportExportCmd.Flags().String("year", "", "filter by year for partial export")
	reportExportCmd.Flags().Float64("min-quality", 0, "minimum quality for partial export")

	// Wire subcommands.
	reportCmd.AddCommand(reportRetrieveCmd)
	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportExportCmd)

	rootCmd.AddCommand(reportCmd)
}
