// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

import "strings"

// Refine condenses whitespace and truncates text to at most maxLen
// characters, preferring a sentence boundary and falling back to a word
// boundary, never cutting mid-word.
func Refine(text string, maxLen int) string {
	condensed := strings.Join(strings.Fields(text), " ")
	if condensed == "" {
		return ""
	}
	if maxLen <= 0 || len(condensed) <= maxLen {
		return condensed
	}

	// Accumulate whole sentences while they fit.
	var b strings.Builder
	for _, sentence := range splitSentences(condensed) {
		add := len(sentence)
		if b.Len() > 0 {
			add++ // joining space
		}
		if b.Len()+add > maxLen {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentence)
	}
	if b.Len() > 0 {
		return b.String()
	}

	// First sentence alone exceeds the budget: cut at the last word
	// boundary inside it. Rune-based so a multi-byte rune is never split.
	runes := []rune(condensed)
	if maxLen > len(runes) {
		maxLen = len(runes)
	}
	cut := string(runes[:maxLen])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}

// splitSentences breaks text on sentence-ending punctuation, keeping
// the terminator with its sentence.
func splitSentences(text string) []string {
	var (
		out   []string
		start int
	)
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(text[start : i+1])
			if s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		out = append(out, tail)
	}
	return out
}
