package ranking

import (
	"strings"
	"testing"
)

func TestRefineShortTextUnchanged(t *testing.T) {
	got := Refine("A short note.", 500)
	if got != "A short note." {
		t.Errorf("Refine = %q, want unchanged", got)
	}
}

func TestRefineCondensesWhitespace(t *testing.T) {
	got := Refine("line one\n\n  line\ttwo", 500)
	if got != "line one line two" {
		t.Errorf("Refine = %q, want condensed whitespace", got)
	}
}

func TestRefineTruncatesAtSentenceBoundary(t *testing.T) {
	text := "First sentence here. Second sentence is a bit longer. Third one will not fit at all."
	got := Refine(text, 55)

	if got != "First sentence here. Second sentence is a bit longer." {
		t.Errorf("Refine = %q, want first two sentences", got)
	}
}

func TestRefineFallsBackToWordBoundary(t *testing.T) {
	text := strings.Repeat("word ", 40) + "ending"
	got := Refine(text, 30)

	if len(got) > 30 {
		t.Errorf("len(Refine) = %d, want <= 30", len(got))
	}
	if strings.HasSuffix(got, "wor") || strings.Contains(got, "  ") {
		t.Errorf("Refine = %q, cut mid-word", got)
	}
	for _, w := range strings.Fields(got) {
		if w != "word" {
			t.Errorf("unexpected fragment %q in %q", w, got)
		}
	}
}

func TestRefineEmpty(t *testing.T) {
	if got := Refine("", 500); got != "" {
		t.Errorf("Refine(\"\") = %q, want \"\"", got)
	}
	if got := Refine("   \n\t ", 500); got != "" {
		t.Errorf("Refine(whitespace) = %q, want \"\"", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One. Two! Three? Four")
	want := []string{"One.", "Two!", "Three?", "Four"}
	if len(got) != len(want) {
		t.Fatalf("splitSentences = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}
