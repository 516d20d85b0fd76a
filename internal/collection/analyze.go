// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collection

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pdiddy/doc-insight/internal/keywords"
	"github.com/pdiddy/doc-insight/internal/pdftext"
	"github.com/pdiddy/doc-insight/internal/ranking"
	"github.com/pdiddy/doc-insight/internal/scoring"
	"github.com/pdiddy/doc-insight/internal/sections"
	"github.com/pdiddy/doc-insight/pkg/types"
)

// Analyzer runs the full pipeline over collections. The zero value is
// not usable; construct with NewAnalyzer.
type Analyzer struct {
	cfg       types.AnalysisConfig
	layout    types.LayoutConfig
	extractor pdftext.Extractor
	logger    *slog.Logger
}

// NewAnalyzer builds an Analyzer. A nil extractor selects the built-in
// PDF reader; a nil logger selects slog.Default().
func NewAnalyzer(cfg types.AnalysisConfig, layout types.LayoutConfig, extractor pdftext.Extractor, logger *slog.Logger) *Analyzer {
	if extractor == nil {
		extractor = pdftext.PDF{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{cfg: cfg, layout: withDefaults(layout), extractor: extractor, logger: logger}
}

// docResult carries one document's scored sections out of the fan-out.
type docResult struct {
	sections []types.ScoredSection
	err      error
}

// ProcessCollection loads the collection's input descriptor, runs every
// listed document through extraction, section detection, and scoring,
// pools the results, and assembles the ranked AnalysisResult plus a
// RunReport. A document whose extraction fails is recorded in the
// report and skipped; the collection never aborts for one bad document,
// and zero successes still yield a well-formed empty result.
func (a *Analyzer) ProcessCollection(ctx context.Context, dir string) (*types.AnalysisResult, *types.RunReport, error) {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, dir)
	}

	input, err := LoadInput(filepath.Join(dir, a.layout.InputFile))
	if err != nil {
		return nil, nil, err
	}

	kw := keywords.Extract(input.Persona.Role, input.JobToBeDone.Task)
	a.logger.Info("extracted task keywords",
		"collection", filepath.Base(dir),
		"keywords", kw.Len())

	results := a.processDocuments(ctx, dir, input.Documents, kw)

	report := &types.RunReport{Collection: filepath.Base(dir)}
	var pool []types.ScoredSection
	for i, res := range results {
		doc := input.Documents[i].Filename
		if res.err != nil {
			report.Failed++
			report.Failures = append(report.Failures, types.DocumentFailure{
				Document: doc,
				Reason:   res.err.Error(),
			})
			a.logger.Warn("document skipped",
				"collection", report.Collection,
				"document", doc,
				"error", res.err)
			continue
		}
		report.Processed++
		pool = append(pool, res.sections...)
	}
	report.Sections = len(pool)

	docOrder := make(map[string]int, len(input.Documents))
	for i, doc := range input.Documents {
		if _, ok := docOrder[doc.Filename]; !ok {
			docOrder[doc.Filename] = i
		}
	}

	topN := a.cfg.TopSections
	if topN <= 0 {
		topN = types.DefaultAnalysisConfig().TopSections
	}
	topM := a.cfg.TopSubsections
	if topM <= 0 {
		topM = types.DefaultAnalysisConfig().TopSubsections
	}
	if topM > topN {
		topM = topN
	}
	maxLen := a.cfg.RefinedTextMaxLen
	if maxLen <= 0 {
		maxLen = types.DefaultAnalysisConfig().RefinedTextMaxLen
	}

	ranked := ranking.Rank(pool, topN, docOrder)

	names := make([]string, 0, len(input.Documents))
	for _, doc := range input.Documents {
		names = append(names, doc.Filename)
	}

	result := &types.AnalysisResult{
		Metadata: types.Metadata{
			InputDocuments:      names,
			Persona:             input.Persona.Role,
			JobToBeDone:         input.JobToBeDone.Task,
			ProcessingTimestamp: time.Now().UTC(),
		},
		ExtractedSections:  ranking.ExtractedSections(ranked),
		SubsectionAnalysis: ranking.SubsectionAnalyses(ranked, topM, maxLen),
	}

	a.logger.Info("analysis complete",
		"collection", report.Collection,
		"processed", report.Processed,
		"failed", report.Failed,
		"sections", len(result.ExtractedSections),
		"analyses", len(result.SubsectionAnalysis))

	return result, report, nil
}

// processDocuments fans the documents out over up to cfg.Parallelism
// workers and returns one result per document, indexed by descriptor
// order so scheduling never affects output.
func (a *Analyzer) processDocuments(ctx context.Context, dir string, docs []types.DocumentRef, kw keywords.Set) []docResult {
	workers := a.cfg.Parallelism
	if workers <= 0 {
		workers = 1
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	results := make([]docResult, len(docs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				secs, err := a.processDocument(ctx, dir, docs[i].Filename, kw)
				results[i] = docResult{sections: secs, err: err}
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// processDocument extracts one document's pages and scores its candidate
// sections against the shared keyword set.
func (a *Analyzer) processDocument(ctx context.Context, dir, filename string, kw keywords.Set) ([]types.ScoredSection, error) {
	path := filepath.Join(dir, a.layout.PDFDir, filename)
	pages, err := a.extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	nonEmpty := 0
	for i := range pages {
		pages[i].Document = filename
		if pages[i].Text != "" {
			nonEmpty++
		}
	}
	if len(pages) == 0 || nonEmpty == 0 {
		return nil, pdftext.ErrNoExtractableText
	}

	candidates := sections.Detect(pages)

	scored := make([]types.ScoredSection, 0, len(candidates))
	for _, sec := range candidates {
		scored = append(scored, scoring.Score(sec, len(pages), kw, a.cfg))
	}

	a.logger.Debug("document processed",
		"document", filename,
		"pages", len(pages),
		"sections", len(scored))
	return scored, nil
}
