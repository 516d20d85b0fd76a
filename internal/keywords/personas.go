// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import "strings"

// Category tags a recognized persona domain. The set is closed; the
// fuzzy classifier below maps free-form role text onto it.
type Category string

const (
	CategoryTravel     Category = "travel"
	CategoryHR         Category = "hr"
	CategoryResearch   Category = "research"
	CategoryFood       Category = "food"
	CategoryInvestment Category = "investment"
	CategoryStudent    Category = "student"
)

// triggers maps each category to the role substrings that select it.
// Matching is case-insensitive substring containment; more than one
// category may match a single role.
var triggers = map[Category][]string{
	CategoryTravel:     {"travel", "trip", "tour", "itinerary", "guide"},
	CategoryHR:         {"hr", "human resource", "recruit", "onboard", "people ops"},
	CategoryResearch:   {"research", "scientist", "analyst", "phd", "academic"},
	CategoryFood:       {"food", "chef", "caterer", "cook", "menu", "contractor"},
	CategoryInvestment: {"invest", "finance", "financial", "portfolio", "wealth"},
	CategoryStudent:    {"student", "undergraduate", "graduate", "learner"},
}

// expansions is the per-category keyword vocabulary unioned into the
// base set when a category matches. The lists are tunable data, not a
// behavior contract.
var expansions = map[Category][]string{
	CategoryTravel: {
		"travel", "trip", "visit", "explore", "tour", "vacation", "holiday",
		"city", "restaurant", "hotel", "activity", "attraction", "culture",
		"beach", "coast", "adventure", "nightlife", "entertainment",
	},
	CategoryHR: {
		"form", "fillable", "onboarding", "compliance", "document",
		"signature", "pdf", "acrobat", "create", "manage", "workflow",
		"employee", "process", "automation",
	},
	CategoryResearch: {
		"method", "methodology", "result", "analysis", "literature",
		"benchmark", "dataset", "experiment", "survey", "review",
		"finding", "conclusion",
	},
	CategoryFood: {
		"menu", "recipe", "cooking", "food", "meal", "dinner", "buffet",
		"vegetarian", "gluten", "corporate", "gathering", "ingredient",
		"preparation", "serving", "nutrition",
	},
	CategoryInvestment: {
		"revenue", "income", "profit", "growth", "market", "risk",
		"return", "asset", "valuation", "trend", "statement", "fund",
	},
	CategoryStudent: {
		"exam", "study", "chapter", "summary", "concept", "definition",
		"example", "exercise", "practice", "key", "topic",
	},
}

// Classify fuzzy-matches free-form persona role text onto zero or more
// known categories. No match is not an error; extraction degrades to
// the base tokenization.
func Classify(role string) []Category {
	lower := strings.ToLower(role)
	var cats []Category
	for _, cat := range []Category{
		CategoryTravel, CategoryHR, CategoryResearch,
		CategoryFood, CategoryInvestment, CategoryStudent,
	} {
		for _, t := range triggers[cat] {
			if strings.Contains(lower, t) {
				cats = append(cats, cat)
				break
			}
		}
	}
	return cats
}
