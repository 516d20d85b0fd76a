// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sections locates candidate section boundaries and titles in
// extracted page text.
package sections

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/doc-insight/pkg/types"
)

// fallbackTitleMaxLen bounds the synthesized title for headerless pages.
const fallbackTitleMaxLen = 60

// headerRule classifies one line as a section header and extracts its
// title. Rules are evaluated in slice order; the first match wins.
type headerRule struct {
	name  string
	match func(line string) (title string, ok bool)
}

var (
	allCapsRe   = regexp.MustCompile(`^[A-Z][A-Z\s&]{2,}$`)
	titleCaseRe = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+$`)
	numberedRe  = regexp.MustCompile(`^\d+\.\s+[A-Z][^.]*$`)
	colonRe     = regexp.MustCompile(`^[A-Z][^.]*:$`)
)

// headerRules is the prioritized classifier: all-caps headings first,
// then Title Case, numbered entries, and trailing-colon labels. New
// patterns append without disturbing existing precedence.
var headerRules = []headerRule{
	{name: "all-caps", match: regexRule(allCapsRe)},
	{name: "title-case", match: regexRule(titleCaseRe)},
	{name: "numbered", match: regexRule(numberedRe)},
	{name: "colon", match: regexRule(colonRe)},
}

func regexRule(re *regexp.Regexp) func(string) (string, bool) {
	return func(line string) (string, bool) {
		if re.MatchString(line) {
			return line, true
		}
		return "", false
	}
}

// classifyLine runs the rule list over one trimmed line.
func classifyLine(line string) (string, bool) {
	for _, rule := range headerRules {
		if title, ok := rule.match(line); ok {
			return title, true
		}
	}
	return "", false
}

// Detect scans a document's pages line-by-line and returns its candidate
// sections in page-then-line order. A recognized header starts a new
// section whose body accumulates subsequent non-header lines until the
// next header or page end. Pages without any recognized header become a
// single fallback section; pages with empty text yield nothing. Ordinals
// increase monotonically across the whole document.
func Detect(pages []types.PageText) []types.CandidateSection {
	var out []types.CandidateSection
	ordinal := 0

	for _, page := range pages {
		for _, sec := range detectPage(page) {
			sec.Ordinal = ordinal
			ordinal++
			out = append(out, sec)
		}
	}
	return out
}

// detectPage extracts the sections of a single page, without ordinals.
func detectPage(page types.PageText) []types.CandidateSection {
	if strings.TrimSpace(page.Text) == "" {
		return nil
	}

	var (
		sections []types.CandidateSection
		current  *types.CandidateSection
		orphans  []string // body lines seen before the first header
	)

	flush := func() {
		if current != nil {
			current.Body = strings.TrimSpace(current.Body)
			sections = append(sections, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(page.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if title, ok := classifyLine(line); ok {
			flush()
			current = &types.CandidateSection{
				Document: page.Document,
				Page:     page.Page,
				Title:    title,
			}
			continue
		}

		if current == nil {
			orphans = append(orphans, line)
			continue
		}
		if current.Body == "" {
			current.Body = line
		} else {
			current.Body += "\n" + line
		}
	}
	flush()

	// No header anywhere on the page: keep its text as one section under
	// a synthesized title so the page is not silently dropped.
	if len(sections) == 0 {
		return []types.CandidateSection{{
			Document: page.Document,
			Page:     page.Page,
			Title:    fallbackTitle(orphans, page.Page),
			Body:     strings.Join(orphans, "\n"),
		}}
	}
	return sections
}

// fallbackTitle synthesizes a title for a headerless page from its first
// non-empty line, truncated on a rune boundary.
func fallbackTitle(lines []string, pageNum int) string {
	if len(lines) == 0 {
		return fmt.Sprintf("Page %d Content", pageNum)
	}
	title := lines[0]
	if runes := []rune(title); len(runes) > fallbackTitleMaxLen {
		title = string(runes[:fallbackTitleMaxLen])
	}
	return title
}
