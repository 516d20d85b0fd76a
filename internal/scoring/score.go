// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring assigns each candidate section a composite relevance
// score against the active keyword set.
package scoring

import (
	"strings"

	"github.com/pdiddy/doc-insight/internal/keywords"
	"github.com/pdiddy/doc-insight/pkg/types"
)

// frequencySaturation is the occurrence count at which the keyword
// frequency boost stops growing.
const frequencySaturation = 5

// Score computes a section's importance as the weighted sum of four
// factors: keyword density, body-length suitability, page position, and
// title relevance. Identical inputs always produce identical scores,
// and the result is finite and non-negative even for empty sections or
// an empty keyword set.
func Score(sec types.CandidateSection, totalPages int, kw keywords.Set, cfg types.AnalysisConfig) types.ScoredSection {
	weights := cfg.Weights
	if weights.IsZero() {
		weights = types.DefaultScoreWeights()
	}
	optimal := cfg.OptimalSectionLength
	if optimal <= 0 {
		optimal = types.DefaultAnalysisConfig().OptimalSectionLength
	}
	decay := cfg.PositionDecay
	if decay <= 0 {
		decay = types.DefaultAnalysisConfig().PositionDecay
	}

	score := weights.Keyword*keywordDensity(sec.Title+" "+sec.Body, kw) +
		weights.Length*lengthSuitability(len(sec.Body), optimal) +
		weights.Position*positional(sec.Page, totalPages, decay) +
		weights.Title*titleRelevance(sec.Title, kw)

	return types.ScoredSection{CandidateSection: sec, Score: score}
}

// keywordDensity returns the fraction of keywords whose token appears
// (case-insensitive substring) in the text, boosted by how often the
// matched keywords occur. An empty keyword set contributes zero signal.
func keywordDensity(text string, kw keywords.Set) float64 {
	if len(kw) == 0 || text == "" {
		return 0
	}
	lower := strings.ToLower(text)

	matched := 0
	occurrences := 0
	for keyword := range kw {
		n := strings.Count(lower, keyword)
		if n > 0 {
			matched++
			occurrences += n
		}
	}
	if matched == 0 {
		return 0
	}

	fraction := float64(matched) / float64(len(kw))

	// Saturating frequency boost: repeated mentions lift the density a
	// little, capped so the factor never exceeds 1.
	avg := float64(occurrences) / float64(matched)
	if avg > frequencySaturation {
		avg = frequencySaturation
	}
	boost := 1 + (avg-1)/(2*frequencySaturation)

	density := fraction * boost
	if density > 1 {
		density = 1
	}
	return density
}

// lengthSuitability favors bodies near the optimal character length,
// saturating at 1.0 beyond it and scaling down for short sections.
func lengthSuitability(bodyLen, optimal int) float64 {
	if bodyLen <= 0 {
		return 0
	}
	if bodyLen >= optimal {
		return 1
	}
	return float64(bodyLen) / float64(optimal)
}

// positional rewards front-loaded content: 1 − (page/totalPages)·decay,
// clamped to [0, 1].
func positional(page, totalPages int, decay float64) float64 {
	if totalPages <= 0 || page <= 0 {
		return 0
	}
	v := 1 - (float64(page)/float64(totalPages))*decay
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// titleRelevance returns 1 when the title itself contains any keyword,
// independent of the body's density.
func titleRelevance(title string, kw keywords.Set) float64 {
	if title == "" || len(kw) == 0 {
		return 0
	}
	lower := strings.ToLower(title)
	for keyword := range kw {
		if strings.Contains(lower, keyword) {
			return 1
		}
	}
	return 0
}
