// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords derives a task-relevant keyword set from a persona
// role and a free-text job-to-be-done description.
package keywords

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest token kept by Extract.
const minTokenLength = 3

// stopwords lists common words that carry no task signal.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "can": true, "each": true,
	"else": true, "few": true, "for": true, "from": true, "has": true,
	"he": true, "how": true, "if": true, "in": true, "is": true, "it": true,
	"its": true, "just": true, "more": true, "most": true, "no": true,
	"nor": true, "not": true, "now": true, "of": true, "on": true,
	"only": true, "or": true, "other": true, "own": true, "same": true,
	"should": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "them": true, "then": true, "these": true,
	"they": true, "this": true, "those": true, "to": true, "too": true,
	"very": true, "was": true, "we": true, "when": true, "where": true,
	"why": true, "will": true, "with": true, "you": true, "your": true,
	"all": true, "any": true, "both": true,
}

// Set is a deduplicated bag of normalized keywords. It is never mutated
// after Extract returns it and may be shared across concurrent workers.
type Set map[string]bool

// Contains reports whether the set holds the exact keyword.
func (s Set) Contains(kw string) bool {
	return s[kw]
}

// Len returns the number of keywords in the set.
func (s Set) Len() int { return len(s) }

// generalTaskWords is the minimal fallback vocabulary used when a
// non-empty task filters down to nothing.
var generalTaskWords = []string{"plan", "prepare", "create", "manage", "organize", "arrange"}

// Extract tokenizes the persona role and task text into a keyword set:
// split on non-alphanumeric boundaries, lower-case, drop short tokens
// and stop-words, deduplicate. Known persona categories additionally
// union in their expansion vocabulary. Both inputs empty yields an
// empty set, which downstream scoring treats as "no keyword signal";
// a non-empty task never yields an empty set.
func Extract(role, task string) Set {
	set := make(Set)
	for _, tok := range tokenize(role + " " + task) {
		if len(tok) < minTokenLength || stopwords[tok] {
			continue
		}
		set[tok] = true
	}

	for _, cat := range Classify(role) {
		for _, kw := range expansions[cat] {
			set[kw] = true
		}
	}

	if len(set) == 0 && strings.TrimSpace(task) != "" {
		for _, kw := range generalTaskWords {
			set[kw] = true
		}
	}

	return set
}

// tokenize splits text on non-alphanumeric boundaries and lower-cases
// every token.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
