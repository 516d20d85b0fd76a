// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the doc-insight pipeline.
package types

import "time"

// DocumentRef identifies one PDF inside a collection's input descriptor.
type DocumentRef struct {
	// Filename is the PDF file name, relative to the collection's PDF directory.
	Filename string `json:"filename" yaml:"filename"`

	// Title is an optional human-readable document title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Persona is the declared professional role guiding relevance judgments.
type Persona struct {
	Role string `json:"role" yaml:"role"`
}

// JobToBeDone is the free-text task the persona is trying to accomplish.
type JobToBeDone struct {
	Task string `json:"task" yaml:"task"`
}

// CollectionInput is a collection's input descriptor: the documents to
// analyze plus the persona and task that drive scoring. It is immutable
// once loaded and shared read-only across per-document workers.
type CollectionInput struct {
	Documents   []DocumentRef `json:"documents" yaml:"documents"`
	Persona     Persona       `json:"persona" yaml:"persona"`
	JobToBeDone JobToBeDone   `json:"job_to_be_done" yaml:"job_to_be_done"`
}

// PageText is the raw extracted text of one page of one document.
// Text may be empty when extraction failed for that page; empty pages
// yield zero candidate sections downstream rather than errors.
type PageText struct {
	// Document is the owning document's filename.
	Document string

	// Page is the 1-based page number.
	Page int

	// Text is the raw extracted page text.
	Text string
}

// CandidateSection is a detected header plus its following body text
// within one document.
type CandidateSection struct {
	// Document is the owning document's filename.
	Document string

	// Page is the 1-based page number the header was found on.
	Page int

	// Title is the detected (or synthesized fallback) section title.
	Title string

	// Body is the text following the header, up to the next header or
	// page end.
	Body string

	// Ordinal is the section's position within its document, increasing
	// monotonically in page-then-line order.
	Ordinal int
}

// ScoredSection pairs a CandidateSection with its importance score.
// Never mutated after creation; ranking reads scores, it does not
// rewrite them.
type ScoredSection struct {
	CandidateSection

	// Score is the weighted composite relevance value in [0, 1].
	Score float64
}

// ExtractedSection is one ranked section in the output artifact.
type ExtractedSection struct {
	Document       string `json:"document" yaml:"document"`
	SectionTitle   string `json:"section_title" yaml:"section_title"`
	ImportanceRank int    `json:"importance_rank" yaml:"importance_rank"`
	PageNumber     int    `json:"page_number" yaml:"page_number"`
}

// SubsectionAnalysis is one refined-text excerpt in the output artifact.
type SubsectionAnalysis struct {
	Document    string `json:"document" yaml:"document"`
	RefinedText string `json:"refined_text" yaml:"refined_text"`
	PageNumber  int    `json:"page_number" yaml:"page_number"`
}

// Metadata describes the inputs and timing of one analysis run.
type Metadata struct {
	InputDocuments      []string  `json:"input_documents" yaml:"input_documents"`
	Persona             string    `json:"persona" yaml:"persona"`
	JobToBeDone         string    `json:"job_to_be_done" yaml:"job_to_be_done"`
	ProcessingTimestamp time.Time `json:"processing_timestamp" yaml:"processing_timestamp"`
}

// AnalysisResult is the terminal artifact of a collection run: metadata,
// the top-ranked sections, and refined subsection excerpts. Written once,
// never mutated. ImportanceRank values form a dense 1..N sequence ordered
// by descending score.
type AnalysisResult struct {
	Metadata           Metadata             `json:"metadata" yaml:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections" yaml:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis" yaml:"subsection_analysis"`
}

// DocumentFailure records one document that could not be processed.
type DocumentFailure struct {
	// Document is the failed document's filename.
	Document string `json:"document" yaml:"document"`

	// Reason is the human-readable failure cause.
	Reason string `json:"reason" yaml:"reason"`
}

// RunReport summarizes one collection run: which documents were
// processed and which failed, kept separate from the analysis artifact
// so failures never leak into the ranked output.
type RunReport struct {
	// Collection is the collection directory name.
	Collection string `json:"collection" yaml:"collection"`

	// Processed counts documents whose text was extracted and scored.
	Processed int `json:"processed" yaml:"processed"`

	// Failed counts documents skipped due to extraction failure.
	Failed int `json:"failed" yaml:"failed"`

	// Sections is the total number of candidate sections detected.
	Sections int `json:"sections" yaml:"sections"`

	// Failures lists the per-document failure reasons.
	Failures []DocumentFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Total returns the number of documents attempted.
func (r RunReport) Total() int {
	return r.Processed + r.Failed
}

// HasFailures reports whether any documents failed.
func (r RunReport) HasFailures() bool {
	return r.Failed > 0
}
