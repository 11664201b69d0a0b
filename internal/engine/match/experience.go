package match

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Direct "N years of experience" statements, tried first and in order.
var directExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s+years?(?:\s+of)?\s+experience`),
	regexp.MustCompile(`experience\s+(?:of\s+)?(\d+)\+?\s+years?`),
	regexp.MustCompile(`(?:over|more\s+than)\s+(\d+)\s+years?(?:\s+of)?\s+experience`),
	regexp.MustCompile(`(\d+)\s*\+\s*years?(?:\s+of)?\s+(?:industry|professional|work)`),
}

// Employment date ranges. Text is already lowercased, so month names and
// "present"/"current" match in lowercase only.
var (
	monthRangeRe = regexp.MustCompile(`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{4})\s*(?:–|—|-|to)\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{4})|present|current)`)
	yearRangeRe  = regexp.MustCompile(`\b(\d{4})\s*(?:–|—|-|to)\s*(?:(\d{4})\b|present|current)`)
)

// Graduation year statements used as a last textual resort.
var graduationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`graduated\s+(?:in\s+|on\s+)?(\d{4})`),
	regexp.MustCompile(`class\s+of\s+(\d{4})`),
	regexp.MustCompile(`(?:degree|diploma|certificate)\s+(?:received|awarded|conferred)\s+(?:in\s+|on\s+)?(\d{4})`),
}

// yearSpan is a half-open employment interval in whole years.
type yearSpan struct {
	Start int
	End   int
}

// ExtractExperienceYears estimates total professional experience from a
// resume. Tiers, in order: direct statements, merged employment date
// ranges, graduation year, then a document-size proxy. The size proxy
// counts lines on the original text because normalization collapses
// newlines.
func ExtractExperienceYears(norm, original string) int {
	for _, re := range directExperiencePatterns {
		if m := re.FindStringSubmatch(norm); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}

	if spans := collectDateSpans(norm); len(spans) > 0 {
		return mergeSpanYears(spans)
	}

	now := time.Now().Year()
	for _, re := range graduationPatterns {
		if m := re.FindStringSubmatch(norm); m != nil {
			if y, err := strconv.Atoi(m[1]); err == nil && y >= 1980 && y <= now {
				return now - y
			}
		}
	}

	lines := strings.Count(original, "\n") + 1
	words := len(strings.Fields(norm))
	switch {
	case lines > 70 || words > 700:
		return 5
	case lines > 50 || words > 500:
		return 3
	default:
		return 1
	}
}

func collectDateSpans(norm string) []yearSpan {
	now := time.Now().Year()
	var spans []yearSpan
	for _, re := range []*regexp.Regexp{monthRangeRe, yearRangeRe} {
		for _, m := range re.FindAllStringSubmatch(norm, -1) {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			end := now
			if m[2] != "" {
				if e, err := strconv.Atoi(m[2]); err == nil {
					end = e
				}
			}
			spans = append(spans, yearSpan{Start: start, End: end})
		}
	}
	return spans
}

// mergeSpanYears sums employment years without double-counting overlap.
// Spans are sorted by start year; a span ending before it starts is
// skipped; a span starting inside the current merged span only
// contributes the part extending past it. A non-empty span list always
// yields at least one year.
func mergeSpanYears(spans []yearSpan) int {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	total := 0
	cur := yearSpan{}
	open := false
	for _, s := range spans {
		if s.End < s.Start {
			continue
		}
		switch {
		case !open:
			cur, open = s, true
			total += s.End - s.Start
		case s.Start <= cur.End:
			if s.End > cur.End {
				total += s.End - cur.End
				cur.End = s.End
			}
		default:
			cur = s
			total += s.End - s.Start
		}
	}
	if total < 1 {
		return 1
	}
	return total
}
