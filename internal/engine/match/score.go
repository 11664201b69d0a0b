package match

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// SourceKeyword tags results produced by the deterministic scorer.
const SourceKeyword = "keyword_matching"

const noMatchReason = "No specific match reasons found for keyword search."

// Component weights of the keyword score. They sum to 1.0 so the final
// score stays in [0,100] before clamping.
const (
	weightSummary    = 0.4
	weightSkills     = 0.3
	weightExperience = 0.2
	weightEducation  = 0.1
)

var (
	queryWordRe      = regexp.MustCompile(`\b\w+\b`)
	queryYearsRe     = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*year(?:s)?(?:\s+experience)?`)
	degreeQueryTerms = []string{"master", "bachelor", "phd"}
)

// ScoreResumeKeyword computes the deterministic weighted match score for
// a resume against a free-text query. Same inputs always produce the
// same MatchResult.
func ScoreResumeKeyword(query string, rec engine.ResumeRecord) engine.MatchResult {
	engine.IncrScoreRequests()

	var score float64
	var reasons []string
	queryLower := strings.ToLower(query)

	// Summary relevance: query words of length > 2 found in the summary.
	if rec.Summary != "" {
		summaryLower := strings.ToLower(rec.Summary)
		hits := 0
		for _, w := range queryWordRe.FindAllString(queryLower, -1) {
			if len(w) > 2 && strings.Contains(summaryLower, w) {
				hits++
			}
		}
		if hits > 0 {
			sub := math.Min(float64(hits)*10, 100)
			score += sub * weightSummary
			reasons = append(reasons, fmt.Sprintf("Summary relevance: %d keyword(s) matched.", hits))
		}
	}

	// Skills: each resume skill containing any query token counts once.
	var matched []string
	for _, skill := range rec.Skills {
		skillLower := strings.ToLower(skill)
		for _, tok := range strings.Fields(queryLower) {
			if strings.Contains(skillLower, tok) {
				matched = append(matched, skill)
				break
			}
		}
	}
	if len(matched) > 0 {
		sub := math.Min(float64(len(matched))*20, 100)
		score += sub * weightSkills
		reasons = append(reasons, fmt.Sprintf("Skills match: %d relevant skill(s) found: %s.", len(matched), strings.Join(matched, ", ")))
	}

	// Experience: full credit when the resume meets the query's stated
	// requirement, otherwise proportional credit.
	resumeYears := parseResumeYears(rec.Experience)
	requiredYears := parseQueryYears(query)
	switch {
	case resumeYears >= requiredYears:
		score += 100 * weightExperience
		reasons = append(reasons, fmt.Sprintf("Experience: Matches required %d+ years.", requiredYears))
	case resumeYears > 0 && requiredYears > 0:
		score += float64(resumeYears) / float64(requiredYears) * 100 * weightExperience
		reasons = append(reasons, fmt.Sprintf("Experience: %d years, %d years required.", resumeYears, requiredYears))
	}

	// Education: exact degree-family hit scores full, any education on
	// file scores half when the query names no degree.
	eduLower := strings.ToLower(rec.EducationLevel)
	eduSub := 0.0
	queryNamesDegree := false
	for _, term := range degreeQueryTerms {
		if strings.Contains(queryLower, term) {
			queryNamesDegree = true
			if strings.Contains(eduLower, term) {
				eduSub = 100
				break
			}
		}
	}
	if !queryNamesDegree && eduLower != "" {
		eduSub = 50
	}
	if eduSub > 0 {
		score += eduSub * weightEducation
		reasons = append(reasons, fmt.Sprintf("Education: %s matches query.", rec.EducationLevel))
	}

	reason := noMatchReason
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "; ")
	}
	return engine.MatchResult{
		Score:  clampScore(math.Round(score)),
		Reason: reason,
		Source: SourceKeyword,
	}
}

// parseResumeYears coerces the stored free-form experience value ("5",
// "5+", "5.5") to whole years, defaulting to zero.
func parseResumeYears(s string) int {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "+"))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// parseQueryYears extracts a required-years figure from the query text.
func parseQueryYears(query string) int {
	if m := queryYearsRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}

func clampScore(f float64) int {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return int(f)
}
