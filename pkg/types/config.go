// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScoreWeights holds the relative weight of each scoring factor. The
// four weights sum to 1.0 so the composite score stays in [0, 1].
type ScoreWeights struct {
	// Keyword weights the keyword-density factor (default 0.40).
	Keyword float64 `json:"keyword" yaml:"keyword"`

	// Length weights the body-length suitability factor (default 0.25).
	Length float64 `json:"length" yaml:"length"`

	// Position weights the early-page bonus (default 0.20).
	Position float64 `json:"position" yaml:"position"`

	// Title weights the title-contains-keyword bonus (default 0.15).
	Title float64 `json:"title" yaml:"title"`
}

// IsZero reports whether no weight has been set.
func (w ScoreWeights) IsZero() bool {
	return w.Keyword == 0 && w.Length == 0 && w.Position == 0 && w.Title == 0
}

// DefaultScoreWeights returns the standard factor weights.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Keyword: 0.40, Length: 0.25, Position: 0.20, Title: 0.15}
}

// AnalysisConfig holds the tunable constants of the scoring and ranking
// pipeline. Zero values fall back to the documented defaults where the
// config is consumed.
type AnalysisConfig struct {
	// TopSections is the maximum number of extracted sections in the
	// output (default 10).
	TopSections int `json:"top_sections" yaml:"top_sections"`

	// TopSubsections is the maximum number of refined excerpts in the
	// output (default 5). Never exceeds TopSections.
	TopSubsections int `json:"top_subsections" yaml:"top_subsections"`

	// RefinedTextMaxLen is the maximum character length of a refined
	// excerpt (default 500).
	RefinedTextMaxLen int `json:"refined_text_max_len" yaml:"refined_text_max_len"`

	// OptimalSectionLength is the body length, in characters, at which
	// the length-suitability factor saturates at 1.0 (default 600).
	OptimalSectionLength int `json:"optimal_section_length" yaml:"optimal_section_length"`

	// PositionDecay scales how quickly later pages lose the positional
	// bonus (default 0.5).
	PositionDecay float64 `json:"position_decay" yaml:"position_decay"`

	// Weights are the scoring factor weights.
	Weights ScoreWeights `json:"weights" yaml:"weights"`

	// Parallelism is the number of documents processed concurrently
	// (default 1, i.e. sequential).
	Parallelism int `json:"parallelism" yaml:"parallelism"`
}

// DefaultAnalysisConfig returns the documented pipeline defaults.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TopSections:          10,
		TopSubsections:       5,
		RefinedTextMaxLen:    500,
		OptimalSectionLength: 600,
		PositionDecay:        0.5,
		Weights:              DefaultScoreWeights(),
		Parallelism:          1,
	}
}

// ArtifactFormat selects the analysis artifact serialization.
type ArtifactFormat string

const (
	ArtifactJSON ArtifactFormat = "json"
	ArtifactYAML ArtifactFormat = "yaml"
)

// LayoutConfig describes how collections are laid out on disk.
type LayoutConfig struct {
	// BaseDir is the directory containing collection directories.
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// InputFile is the descriptor filename inside each collection
	// (default "input.json").
	InputFile string `json:"input_file" yaml:"input_file"`

	// OutputFile is the artifact filename written into each collection
	// (default "output.json").
	OutputFile string `json:"output_file" yaml:"output_file"`

	// PDFDir is the subdirectory holding the collection's PDFs
	// (default "PDFs").
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`

	// Format selects the artifact serialization: json or yaml.
	Format ArtifactFormat `json:"format" yaml:"format"`
}

// DefaultLayoutConfig returns the standard collection layout.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		BaseDir:    "collections",
		InputFile:  "input.json",
		OutputFile: "output.json",
		PDFDir:     "PDFs",
		Format:     ArtifactJSON,
	}
}

// ServerConfig holds settings for the HTTP API front end.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// Config groups all component configurations.
type Config struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Layout   LayoutConfig   `json:"layout" yaml:"layout"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}
