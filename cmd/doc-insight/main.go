// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc-insight CLI.
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

// rootCmd is the base command for the doc-insight CLI.
var rootCmd = &cobra.Command{
	Use:   "doc-insight",
	Short: "Persona-driven section extraction and ranking for PDF collections",
	Long: `doc-insight analyzes collections of PDF documents against a declared
persona and job-to-be-done. For each collection it extracts per-page text,
detects section headers, scores each section's relevance to the task, and
writes a ranked analysis artifact with refined text excerpts.

A collection is a directory holding an input descriptor (documents,
persona, task) and a PDFs/ subdirectory. Use analyze for one collection
or --all for every collection under the base directory; serve exposes
the same pipeline over HTTP.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doc-insight.yaml or ~/.config/doc-insight/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doc-insight")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc-insight"))
		}
	}

	viper.SetEnvPrefix("DOC_INSIGHT")
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
