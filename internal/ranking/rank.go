// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ranking selects the top-scored sections across a collection
// and produces length-bounded refined excerpts for subsection analysis.
package ranking

import (
	"sort"

	"github.com/pdiddy/doc-insight/pkg/types"
)

// Rank orders the pooled sections by descending score and returns the
// top n. Ties break by input document order, then page number, then
// in-document ordinal, so the ordering is total and repeated runs on
// identical input produce identical ranks. docOrder maps a document
// filename to its position in the input descriptor; unknown documents
// sort last. The input slice is not modified.
func Rank(scored []types.ScoredSection, n int, docOrder map[string]int) []types.ScoredSection {
	out := make([]types.ScoredSection, len(scored))
	copy(out, scored)

	order := func(doc string) int {
		if i, ok := docOrder[doc]; ok {
			return i
		}
		return len(docOrder)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if oa, ob := order(a.Document), order(b.Document); oa != ob {
			return oa < ob
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Ordinal < b.Ordinal
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ExtractedSections converts ranked sections into the output form with
// dense 1..N importance ranks.
func ExtractedSections(ranked []types.ScoredSection) []types.ExtractedSection {
	out := make([]types.ExtractedSection, 0, len(ranked))
	for i, sec := range ranked {
		out = append(out, types.ExtractedSection{
			Document:       sec.Document,
			SectionTitle:   sec.Title,
			ImportanceRank: i + 1,
			PageNumber:     sec.Page,
		})
	}
	return out
}

// SubsectionAnalyses produces refined excerpts for the m highest-ranked
// sections (m never exceeds the ranked pool). Sections whose body
// refines to nothing are skipped; document and page citations are
// carried through untouched.
func SubsectionAnalyses(ranked []types.ScoredSection, m, maxLen int) []types.SubsectionAnalysis {
	if m > len(ranked) {
		m = len(ranked)
	}
	out := make([]types.SubsectionAnalysis, 0, m)
	for _, sec := range ranked[:m] {
		refined := Refine(sec.Body, maxLen)
		if refined == "" {
			continue
		}
		out = append(out, types.SubsectionAnalysis{
			Document:    sec.Document,
			RefinedText: refined,
			PageNumber:  sec.Page,
		})
	}
	return out
}
