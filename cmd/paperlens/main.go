// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperlens CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperlens CLI.
var rootCmd = &cobra.Command{
	Use:   "paperlens",
	Short: "Analyze research papers, corpus trends, and predicted impact",
	Long: `paperlens analyzes research paper abstracts: keyword extraction, section
classification, citation analysis, quality scoring, and research gap
detection, plus corpus-level trend aggregation and impact prediction.

Each operation is a subcommand: analyze a single paper, aggregate trends
over a corpus, predict impact with fitted models, and query stored
reports.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperlens.yaml or ~/.config/paperlens/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperlens")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperlens"))
		}
	}

	viper.SetEnvPrefix("PAPERLENS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
