// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doc-insight/pkg/types"
)

// WriteResult serializes the analysis artifact to path in the given
// format (json or yaml).
func WriteResult(result *types.AnalysisResult, path string, format types.ArtifactFormat) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.ArtifactYAML:
		data, err = yaml.Marshal(result)
	case types.ArtifactJSON, "":
		data, err = json.MarshalIndent(result, "", "    ")
	default:
		return fmt.Errorf("unknown artifact format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding analysis result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing analysis result: %w", err)
	}
	return nil
}

// WriteReport serializes the run report as YAML next to the artifact.
func WriteReport(report *types.RunReport, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}
	return nil
}

// AnalyzeCollection runs the pipeline on one collection directory and
// writes the artifact into it per the layout. It returns the artifact
// path and the run report.
func (a *Analyzer) AnalyzeCollection(ctx context.Context, dir string) (string, *types.RunReport, error) {
	result, report, err := a.ProcessCollection(ctx, dir)
	if err != nil {
		return "", nil, err
	}

	outPath := filepath.Join(dir, a.layout.OutputFile)
	if err := WriteResult(result, outPath, a.layout.Format); err != nil {
		return "", nil, err
	}
	return outPath, report, nil
}

// BatchResult holds the outcome of an all-collections run.
type BatchResult struct {
	Succeeded int
	Failed    int
	Reports   []*types.RunReport
	Errors    []string
}

// Total returns the number of collections attempted.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any collections failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// AnalyzeAll discovers and analyzes every collection under the layout's
// base directory. One collection's failure is isolated from the others;
// the batch always runs to completion. Progress lines go to w.
func (a *Analyzer) AnalyzeAll(ctx context.Context, w io.Writer) (BatchResult, error) {
	infos, err := Discover(a.layout)
	if err != nil {
		return BatchResult{}, err
	}

	fmt.Fprintf(w, "found %d collections in %s\n", len(infos), a.layout.BaseDir)

	var batch BatchResult
	for _, info := range infos {
		outPath, report, err := a.AnalyzeCollection(ctx, info.Path)
		if err != nil {
			batch.Failed++
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s: %v", info.Name, err))
			fmt.Fprintf(w, "failed: %s: %v\n", info.Name, err)
			continue
		}
		batch.Succeeded++
		batch.Reports = append(batch.Reports, report)
		fmt.Fprintf(w, "analyzed: %s (%d/%d documents, output %s)\n",
			info.Name, report.Processed, report.Total(), outPath)
	}

	fmt.Fprintf(w, "batch complete: %d succeeded, %d failed\n", batch.Succeeded, batch.Failed)
	return batch, nil
}
