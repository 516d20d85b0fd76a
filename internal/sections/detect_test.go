package sections

import (
	"strings"
	"testing"

	"github.com/pdiddy/doc-insight/pkg/types"
)

func page(doc string, num int, text string) types.PageText {
	return types.PageText{Document: doc, Page: num, Text: text}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		header bool
	}{
		{"all caps", "OVERVIEW", true},
		{"all caps with ampersand", "TERMS & CONDITIONS", true},
		{"all caps too short", "AB", false},
		{"title case two words", "Getting Started", true},
		{"title case three words", "Things To Do", true},
		{"single capitalized word", "Overview", false},
		{"numbered", "1. Introduction to the region", true},
		{"numbered lowercase", "1. introduction", false},
		{"colon", "Packing List:", true},
		{"colon with period", "E.g. some label:", false},
		{"plain sentence", "This is ordinary body text.", false},
		{"lowercase line", "some notes about hotels", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := classifyLine(tt.line)
			if ok != tt.header {
				t.Errorf("classifyLine(%q) header = %v, want %v", tt.line, ok, tt.header)
			}
		})
	}
}

func TestDetectTwoSections(t *testing.T) {
	text := "OVERVIEW\nThis is a test section about travel and hotels.\nDETAILS\nMore content here."
	got := Detect([]types.PageText{page("doc.pdf", 1, text)})

	if len(got) != 2 {
		t.Fatalf("got %d sections, want 2", len(got))
	}
	if got[0].Title != "OVERVIEW" || got[1].Title != "DETAILS" {
		t.Errorf("titles = %q, %q; want OVERVIEW, DETAILS", got[0].Title, got[1].Title)
	}
	if !strings.Contains(got[0].Body, "travel and hotels") {
		t.Errorf("OVERVIEW body = %q, want the travel sentence", got[0].Body)
	}
	if got[0].Ordinal != 0 || got[1].Ordinal != 1 {
		t.Errorf("ordinals = %d, %d; want 0, 1", got[0].Ordinal, got[1].Ordinal)
	}
}

func TestDetectFallbackSection(t *testing.T) {
	got := Detect([]types.PageText{page("doc.pdf", 3, "just some lowercase text\nspanning two lines")})

	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1 fallback", len(got))
	}
	if got[0].Title != "just some lowercase text" {
		t.Errorf("fallback title = %q, want first line", got[0].Title)
	}
	if got[0].Page != 3 {
		t.Errorf("page = %d, want 3", got[0].Page)
	}
}

func TestDetectFallbackTitleTruncated(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := Detect([]types.PageText{page("doc.pdf", 1, long)})

	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if n := len([]rune(got[0].Title)); n != fallbackTitleMaxLen {
		t.Errorf("fallback title length = %d, want %d", n, fallbackTitleMaxLen)
	}
}

func TestDetectEmptyPages(t *testing.T) {
	got := Detect([]types.PageText{
		page("doc.pdf", 1, ""),
		page("doc.pdf", 2, "   \n\t\n"),
	})
	if len(got) != 0 {
		t.Errorf("got %d sections from empty pages, want 0", len(got))
	}
}

func TestDetectOrdinalsSpanPages(t *testing.T) {
	got := Detect([]types.PageText{
		page("doc.pdf", 1, "INTRO\nfirst page body"),
		page("doc.pdf", 2, "MIDDLE\nbody\nENDING\nbody"),
	})

	if len(got) != 3 {
		t.Fatalf("got %d sections, want 3", len(got))
	}
	for i, sec := range got {
		if sec.Ordinal != i {
			t.Errorf("section %q ordinal = %d, want %d", sec.Title, sec.Ordinal, i)
		}
	}
}

func TestDetectHeaderPriorityFirstMatchWins(t *testing.T) {
	// "PACKING LIST:" satisfies both the colon rule and (without the
	// colon) neither; the all-caps rule does not admit ':', so the colon
	// rule should claim it.
	title, ok := classifyLine("Packing List:")
	if !ok || title != "Packing List:" {
		t.Fatalf("classifyLine = %q, %v", title, ok)
	}

	// A pure all-caps line must be claimed by the all-caps rule even
	// though later rules could never see it.
	title, ok = classifyLine("CONCLUSION")
	if !ok || title != "CONCLUSION" {
		t.Fatalf("classifyLine = %q, %v", title, ok)
	}
}
