// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collection orchestrates the analysis of PDF collections:
// descriptor loading, per-document extraction and scoring, ranking, and
// artifact writing.
package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/doc-insight/pkg/types"
)

// ErrCollectionNotFound reports a collection directory that does not
// exist.
var ErrCollectionNotFound = errors.New("collection not found")

// DescriptorError reports a structurally invalid input descriptor. The
// collection run fails immediately; missing required fields are never
// silently defaulted.
type DescriptorError struct {
	// Path is the descriptor file that failed validation.
	Path string

	// Field names the missing or malformed field, when known.
	Field string

	// Err is the underlying cause.
	Err error
}

func (e *DescriptorError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input descriptor %s: missing or invalid %q", e.Path, e.Field)
	}
	return fmt.Sprintf("invalid input descriptor %s: %v", e.Path, e.Err)
}

func (e *DescriptorError) Unwrap() error { return e.Err }

// Info summarizes one discovered collection.
type Info struct {
	// Name is the collection directory name.
	Name string `json:"name" yaml:"name"`

	// Path is the collection directory path.
	Path string `json:"path" yaml:"path"`

	// Documents counts the documents listed in the input descriptor.
	Documents int `json:"documents" yaml:"documents"`

	// HasResults reports whether an output artifact already exists.
	HasResults bool `json:"has_results" yaml:"has_results"`
}

// LoadInput reads and validates a collection input descriptor. The
// documents, persona, and job_to_be_done fields are structurally
// required; free-text fields may be empty strings. Unknown fields are
// ignored.
func LoadInput(path string) (*types.CollectionInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input descriptor: %w", err)
	}

	var input types.CollectionInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, &DescriptorError{Path: path, Err: err}
	}

	if len(input.Documents) == 0 {
		return nil, &DescriptorError{Path: path, Field: "documents"}
	}
	for i, doc := range input.Documents {
		if doc.Filename == "" {
			return nil, &DescriptorError{Path: path, Field: fmt.Sprintf("documents[%d].filename", i)}
		}
	}
	if !rawHasKey(data, "persona") {
		return nil, &DescriptorError{Path: path, Field: "persona"}
	}
	if !rawHasKey(data, "job_to_be_done") {
		return nil, &DescriptorError{Path: path, Field: "job_to_be_done"}
	}

	return &input, nil
}

// rawHasKey reports whether the descriptor's top-level object carries
// the key at all, distinguishing an absent required field from one
// present with empty free text.
func rawHasKey(data []byte, key string) bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, ok := raw[key]
	return ok
}

// withDefaults fills unset layout fields with the documented defaults.
func withDefaults(layout types.LayoutConfig) types.LayoutConfig {
	def := types.DefaultLayoutConfig()
	if layout.BaseDir == "" {
		layout.BaseDir = def.BaseDir
	}
	if layout.InputFile == "" {
		layout.InputFile = def.InputFile
	}
	if layout.OutputFile == "" {
		layout.OutputFile = def.OutputFile
	}
	if layout.PDFDir == "" {
		layout.PDFDir = def.PDFDir
	}
	if layout.Format == "" {
		layout.Format = def.Format
	}
	return layout
}

// Discover lists the collections under the layout's base directory:
// every subdirectory that contains the input descriptor and the PDF
// subdirectory. Results are sorted by name for stable output.
func Discover(layout types.LayoutConfig) ([]Info, error) {
	layout = withDefaults(layout)

	entries, err := os.ReadDir(layout.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: base directory %s", ErrCollectionNotFound, layout.BaseDir)
		}
		return nil, fmt.Errorf("reading base directory %s: %w", layout.BaseDir, err)
	}

	var out []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(layout.BaseDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, layout.InputFile)); err != nil {
			continue
		}
		if fi, err := os.Stat(filepath.Join(dir, layout.PDFDir)); err != nil || !fi.IsDir() {
			continue
		}

		info := Info{Name: entry.Name(), Path: dir}
		if input, err := LoadInput(filepath.Join(dir, layout.InputFile)); err == nil {
			info.Documents = len(input.Documents)
		}
		if _, err := os.Stat(filepath.Join(dir, layout.OutputFile)); err == nil {
			info.HasResults = true
		}
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
