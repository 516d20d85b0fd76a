package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-insight/pkg/types"
)

// layoutFromFlags builds the collection layout from flags, falling back
// to config-file values and then the documented defaults.
func layoutFromFlags(cmd *cobra.Command) types.LayoutConfig {
	layout := types.DefaultLayoutConfig()

	if v := viper.GetString("layout.base_dir"); v != "" {
		layout.BaseDir = v
	}
	if v := viper.GetString("layout.input_file"); v != "" {
		layout.InputFile = v
	}
	if v := viper.GetString("layout.output_file"); v != "" {
		layout.OutputFile = v
	}
	if v := viper.GetString("layout.pdf_dir"); v != "" {
		layout.PDFDir = v
	}

	if cmd.Flags().Changed("base-dir") {
		layout.BaseDir, _ = cmd.Flags().GetString("base-dir")
	}
	if cmd.Flags().Changed("input") {
		layout.InputFile, _ = cmd.Flags().GetString("input")
	}
	if cmd.Flags().Changed("output") {
		layout.OutputFile, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		layout.Format = types.ArtifactFormat(format)
	}
	return layout
}

// analysisFromFlags builds the pipeline config from flags over
// config-file values over defaults.
func analysisFromFlags(cmd *cobra.Command) types.AnalysisConfig {
	cfg := types.DefaultAnalysisConfig()

	if v := viper.GetInt("analysis.top_sections"); v > 0 {
		cfg.TopSections = v
	}
	if v := viper.GetInt("analysis.top_subsections"); v > 0 {
		cfg.TopSubsections = v
	}
	if v := viper.GetInt("analysis.refined_text_max_len"); v > 0 {
		cfg.RefinedTextMaxLen = v
	}
	if v := viper.GetInt("analysis.parallelism"); v > 0 {
		cfg.Parallelism = v
	}

	if cmd.Flags().Changed("top-sections") {
		cfg.TopSections, _ = cmd.Flags().GetInt("top-sections")
	}
	if cmd.Flags().Changed("top-subsections") {
		cfg.TopSubsections, _ = cmd.Flags().GetInt("top-subsections")
	}
	if cmd.Flags().Changed("parallelism") {
		cfg.Parallelism, _ = cmd.Flags().GetInt("parallelism")
	}
	return cfg
}

// newLogger builds the process logger, honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
