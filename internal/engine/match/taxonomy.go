// Package match implements the rule-based resume and job-description
// analysis engine: attribute extraction, summary generation, keyword match
// scoring and ranking. Every exported analysis function is a total
// function over arbitrary string input — empty, whitespace-only and binary
// garbage all degrade to conservative defaults instead of errors.
package match

import (
	"regexp"
	"strings"
)

// taxonomy maps a display category to the keywords that vote for it.
// Order matters: ties and title-line lookups keep the first entry.
type taxonomy struct {
	Name     string
	Keywords []string
}

// keywordRe caches compiled word-boundary patterns per keyword.
var keywordRe = map[string]*regexp.Regexp{}

func init() {
	for _, t := range resumeCategories {
		for _, kw := range t.Keywords {
			keywordRe[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
}

// countKeyword returns the number of word-boundary occurrences of kw in
// the normalized text.
func countKeyword(norm, kw string) int {
	re, ok := keywordRe[kw]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		keywordRe[kw] = re
	}
	return len(re.FindAllStringIndex(norm, -1))
}

// bestCategory scores every taxonomy entry by summed keyword occurrence
// count and returns the winner with its score. Ties keep the earliest
// entry; an empty text scores every category zero and yields fallback.
func bestCategory(norm string, taxa []taxonomy, fallback string) (string, int) {
	best := fallback
	bestScore := 0
	for _, t := range taxa {
		score := 0
		for _, kw := range t.Keywords {
			score += countKeyword(norm, kw)
		}
		if score > bestScore {
			bestScore = score
			best = t.Name
		}
	}
	return best, bestScore
}

// categoryByTitleKeyword returns the first taxonomy entry whose keyword is
// a substring of title, or "" when none qualifies.
func categoryByTitleKeyword(title string, taxa []taxonomy) string {
	title = strings.ToLower(title)
	for _, t := range taxa {
		for _, kw := range t.Keywords {
			if strings.Contains(title, kw) {
				return t.Name
			}
		}
	}
	return ""
}
