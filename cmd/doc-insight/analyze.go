package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-insight/internal/collection"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [collection-dir]",
	Short: "Analyze a PDF collection against its persona and task",
	Long: `Analyze runs the extraction, scoring, and ranking pipeline on one
collection directory and writes the analysis artifact into it. With
--all, every collection under the base directory is analyzed in turn;
one collection's failure never halts the batch.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	writeReport, _ := cmd.Flags().GetBool("report")

	layout := layoutFromFlags(cmd)
	cfg := analysisFromFlags(cmd)
	analyzer := collection.NewAnalyzer(cfg, layout, nil, newLogger())

	if all {
		if len(args) > 0 {
			return fmt.Errorf("--all does not take a collection argument")
		}
		batch, err := analyzer.AnalyzeAll(context.Background(), os.Stdout)
		if err != nil {
			return err
		}
		if batch.HasFailures() {
			return fmt.Errorf("%d of %d collections failed:\n  %s",
				batch.Failed, batch.Total(), strings.Join(batch.Errors, "\n  "))
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one collection directory (or use --all)")
	}

	outPath, report, err := analyzer.AnalyzeCollection(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Analyzed %s: %d/%d documents, %d sections pooled\n",
		report.Collection, report.Processed, report.Total(), report.Sections)
	for _, f := range report.Failures {
		fmt.Printf("  skipped %s: %s\n", f.Document, f.Reason)
	}
	fmt.Printf("Output written to %s\n", outPath)

	if writeReport {
		reportPath := filepath.Join(args[0], "run_report.yaml")
		if err := collection.WriteReport(report, reportPath); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().Bool("all", false, "analyze every collection under the base directory")
	analyzeCmd.Flags().String("base-dir", "", "directory containing collections (used with --all)")
	analyzeCmd.Flags().String("input", "", "input descriptor filename (default input.json)")
	analyzeCmd.Flags().String("output", "", "output artifact filename (default output.json)")
	analyzeCmd.Flags().String("format", "", "artifact format: json or yaml (default json)")
	analyzeCmd.Flags().Int("top-sections", 0, "maximum extracted sections (default 10)")
	analyzeCmd.Flags().Int("top-subsections", 0, "maximum refined excerpts (default 5)")
	analyzeCmd.Flags().Int("parallelism", 0, "documents processed concurrently (default 1)")
	analyzeCmd.Flags().Bool("report", false, "also write run_report.yaml into the collection")

	rootCmd.AddCommand(analyzeCmd)
}
