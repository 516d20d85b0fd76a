package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/pdiddy/doc-insight/pkg/types"
)

// fakeExtractor serves canned page text per document filename.
type fakeExtractor struct {
	pages map[string][]types.PageText
	errs  map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, path string) ([]types.PageText, error) {
	name := filepath.Base(path)
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	pages, ok := f.pages[name]
	if !ok {
		return nil, fmt.Errorf("open pdf %s: no such file", path)
	}
	out := make([]types.PageText, len(pages))
	copy(out, pages)
	return out, nil
}

func pages(texts ...string) []types.PageText {
	out := make([]types.PageText, 0, len(texts))
	for i, text := range texts {
		out = append(out, types.PageText{Page: i + 1, Text: text})
	}
	return out
}

// newCollection lays a collection out on disk and returns its directory.
func newCollection(t *testing.T, descriptor string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "col1")
	writeFile(t, filepath.Join(dir, "input.json"), descriptor)
	if err := os.MkdirAll(filepath.Join(dir, "PDFs"), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func descriptorFor(role, task string, docs ...string) string {
	type doc struct {
		Filename string `json:"filename"`
	}
	refs := make([]doc, 0, len(docs))
	for _, d := range docs {
		refs = append(refs, doc{Filename: d})
	}
	data, _ := json.Marshal(map[string]any{
		"documents":      refs,
		"persona":        map[string]string{"role": role},
		"job_to_be_done": map[string]string{"task": task},
	})
	return string(data)
}

const travelPage = "OVERVIEW\nThis is a test section about travel and hotels.\nDETAILS\nMore content here."

func TestProcessCollectionSingleDocument(t *testing.T) {
	dir := newCollection(t, descriptorFor("Travel Planner", "Plan a trip and book hotels", "guide.pdf"))
	ext := &fakeExtractor{pages: map[string][]types.PageText{"guide.pdf": pages(travelPage)}}

	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{}, ext, nil)
	result, report, err := a.ProcessCollection(context.Background(), dir)
	if err != nil {
		t.Fatalf("ProcessCollection: %v", err)
	}

	if report.Processed != 1 || report.Failed != 0 {
		t.Errorf("report = %d processed, %d failed; want 1, 0", report.Processed, report.Failed)
	}
	if len(result.ExtractedSections) != 2 {
		t.Fatalf("extracted %d sections, want 2", len(result.ExtractedSections))
	}
	if result.ExtractedSections[0].SectionTitle != "OVERVIEW" {
		t.Errorf("top section = %q, want OVERVIEW (keyword-bearing body)", result.ExtractedSections[0].SectionTitle)
	}
	if result.ExtractedSections[1].SectionTitle != "DETAILS" {
		t.Errorf("second section = %q, want DETAILS", result.ExtractedSections[1].SectionTitle)
	}
	for i, sec := range result.ExtractedSections {
		if sec.ImportanceRank != i+1 {
			t.Errorf("rank[%d] = %d, want dense sequence", i, sec.ImportanceRank)
		}
		if sec.Document != "guide.pdf" {
			t.Errorf("document = %q, want guide.pdf", sec.Document)
		}
	}
	if result.Metadata.Persona != "Travel Planner" {
		t.Errorf("metadata persona = %q", result.Metadata.Persona)
	}
	if result.Metadata.ProcessingTimestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestProcessCollectionIsolatesDocumentFailure(t *testing.T) {
	dir := newCollection(t, descriptorFor("Travel Planner", "Plan a trip", "good1.pdf", "bad.pdf", "good2.pdf"))
	ext := &fakeExtractor{
		pages: map[string][]types.PageText{
			"good1.pdf": pages("OVERVIEW\ntravel content on the first page"),
			"good2.pdf": pages("SUMMARY\nmore travel content here"),
		},
		errs: map[string]error{"bad.pdf": errors.New("open pdf: corrupt xref table")},
	}

	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{}, ext, nil)
	result, report, err := a.ProcessCollection(context.Background(), dir)
	if err != nil {
		t.Fatalf("ProcessCollection: %v", err)
	}

	if report.Processed != 2 || report.Failed != 1 {
		t.Fatalf("report = %d processed, %d failed; want 2, 1", report.Processed, report.Failed)
	}
	if len(report.Failures) != 1 || report.Failures[0].Document != "bad.pdf" {
		t.Errorf("failures = %+v, want bad.pdf recorded", report.Failures)
	}
	for _, sec := range result.ExtractedSections {
		if sec.Document == "bad.pdf" {
			t.Errorf("failed document leaked into output: %+v", sec)
		}
	}
	if len(result.ExtractedSections) == 0 {
		t.Error("surviving documents should still contribute sections")
	}
}

func TestProcessCollectionAllDocumentsFail(t *testing.T) {
	dir := newCollection(t, descriptorFor("Travel Planner", "Plan a trip", "bad.pdf"))
	ext := &fakeExtractor{errs: map[string]error{"bad.pdf": errors.New("unreadable")}}

	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{}, ext, nil)
	result, report, err := a.ProcessCollection(context.Background(), dir)
	if err != nil {
		t.Fatalf("ProcessCollection should not fail outright: %v", err)
	}
	if report.Processed != 0 || report.Failed != 1 {
		t.Errorf("report = %+v", report)
	}
	if len(result.ExtractedSections) != 0 || len(result.SubsectionAnalysis) != 0 {
		t.Error("want well-formed empty result")
	}
	if len(result.Metadata.InputDocuments) != 1 {
		t.Error("metadata must still list the input documents")
	}
}

func TestProcessCollectionFewerSectionsThanConfigured(t *testing.T) {
	dir := newCollection(t, descriptorFor("Travel Planner", "Plan a trip", "a.pdf"))
	ext := &fakeExtractor{pages: map[string][]types.PageText{
		"a.pdf": pages("ONE\nbody\nTWO\nbody", "THREE\nbody\nFOUR\nbody"),
	}}

	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{}, ext, nil)
	result, _, err := a.ProcessCollection(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.ExtractedSections) != 4 {
		t.Fatalf("extracted %d sections, want exactly 4 (no padding)", len(result.ExtractedSections))
	}
	for i, sec := range result.ExtractedSections {
		if sec.ImportanceRank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, sec.ImportanceRank, i+1)
		}
	}
}

func TestProcessCollectionReproducible(t *testing.T) {
	descriptor := descriptorFor("Travel Planner", "Plan a trip and book hotels", "a.pdf", "b.pdf")
	ext := &fakeExtractor{pages: map[string][]types.PageText{
		"a.pdf": pages(travelPage, "ITINERARY\nday by day plan with hotel stops"),
		"b.pdf": pages("NOTES\ngeneral remarks", "BUDGET\ntrip budget and booking costs"),
	}}

	run := func(par int) *types.AnalysisResult {
		dir := newCollection(t, descriptor)
		cfg := types.DefaultAnalysisConfig()
		cfg.Parallelism = par
		a := NewAnalyzer(cfg, types.LayoutConfig{}, ext, nil)
		result, _, err := a.ProcessCollection(context.Background(), dir)
		if err != nil {
			t.Fatal(err)
		}
		result.Metadata.ProcessingTimestamp = time.Time{}
		return result
	}

	first := run(1)
	second := run(1)
	parallel := run(4)

	if !reflect.DeepEqual(first, second) {
		t.Error("two sequential runs differ")
	}
	if !reflect.DeepEqual(first, parallel) {
		t.Error("parallel run differs from sequential run")
	}
}

func TestProcessCollectionRoundTripDocumentNames(t *testing.T) {
	dir := newCollection(t, descriptorFor("Travel Planner", "Plan a trip", "a.pdf", "b.pdf"))
	ext := &fakeExtractor{pages: map[string][]types.PageText{
		"a.pdf": pages("OVERVIEW\ntravel body"),
		"b.pdf": pages("DETAILS\ntrip body"),
	}}

	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{}, ext, nil)
	result, _, err := a.ProcessCollection(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}

	allowed := map[string]bool{"a.pdf": true, "b.pdf": true}
	for _, sec := range result.ExtractedSections {
		if !allowed[sec.Document] {
			t.Errorf("fabricated document name %q", sec.Document)
		}
	}
	for _, sub := range result.SubsectionAnalysis {
		if !allowed[sub.Document] {
			t.Errorf("fabricated document name %q", sub.Document)
		}
	}
}

func TestProcessCollectionMissingDir(t *testing.T) {
	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{}, &fakeExtractor{}, nil)
	_, _, err := a.ProcessCollection(context.Background(), filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("err = %v, want ErrCollectionNotFound", err)
	}
}

func TestAnalyzeCollectionWritesArtifact(t *testing.T) {
	dir := newCollection(t, descriptorFor("Travel Planner", "Plan a trip and book hotels", "guide.pdf"))
	ext := &fakeExtractor{pages: map[string][]types.PageText{"guide.pdf": pages(travelPage)}}

	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{}, ext, nil)
	outPath, report, err := a.AnalyzeCollection(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if report.Processed != 1 {
		t.Errorf("processed = %d, want 1", report.Processed)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	var decoded types.AnalysisResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(decoded.ExtractedSections) != 2 {
		t.Errorf("decoded %d sections, want 2", len(decoded.ExtractedSections))
	}
}

func TestAnalyzeAllIsolatesCollectionFailure(t *testing.T) {
	base := t.TempDir()

	good := filepath.Join(base, "good")
	writeFile(t, filepath.Join(good, "input.json"), descriptorFor("Travel Planner", "Plan a trip", "a.pdf"))
	if err := os.MkdirAll(filepath.Join(good, "PDFs"), 0o755); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(base, "broken")
	writeFile(t, filepath.Join(bad, "input.json"), `{not json`)
	if err := os.MkdirAll(filepath.Join(bad, "PDFs"), 0o755); err != nil {
		t.Fatal(err)
	}

	ext := &fakeExtractor{pages: map[string][]types.PageText{
		"a.pdf": pages("OVERVIEW\ntravel body"),
	}}
	a := NewAnalyzer(types.DefaultAnalysisConfig(), types.LayoutConfig{BaseDir: base}, ext, nil)

	var buf bytes.Buffer
	batch, err := a.AnalyzeAll(context.Background(), &buf)
	if err != nil {
		t.Fatalf("AnalyzeAll: %v", err)
	}

	if batch.Succeeded != 1 || batch.Failed != 1 {
		t.Fatalf("batch = %d succeeded, %d failed; want 1, 1", batch.Succeeded, batch.Failed)
	}
	if len(batch.Errors) != 1 {
		t.Errorf("errors = %v, want the broken collection recorded", batch.Errors)
	}
	if _, err := os.Stat(filepath.Join(good, "output.json")); err != nil {
		t.Error("good collection's artifact missing")
	}
}
