package match

import (
	"strings"
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

func TestScoreResumeKeyword(t *testing.T) {
	rec := engine.ResumeRecord{
		Experience:     "5",
		Skills:         []string{"Python", "React", "AWS"},
		Summary:        "Seasoned engineer with Python expertise",
		EducationLevel: "Bachelor's",
	}
	got := ScoreResumeKeyword("3 years experience Python React", rec)

	// summary: 1 hit ("python") -> 10 * 0.4 = 4
	// skills: Python, React matched -> 40 * 0.3 = 12
	// experience: 5 >= 3 -> 100 * 0.2 = 20
	// education: query names no degree, resume has one -> 50 * 0.1 = 5
	if got.Score != 41 {
		t.Errorf("score = %d, want 41 (%s)", got.Score, got.Reason)
	}
	if got.Source != SourceKeyword {
		t.Errorf("source = %q, want %q", got.Source, SourceKeyword)
	}
	for _, clause := range []string{
		"Summary relevance: 1 keyword(s) matched.",
		"Skills match: 2 relevant skill(s) found: Python, React.",
		"Experience: Matches required 3+ years.",
		"Education: Bachelor's matches query.",
	} {
		if !strings.Contains(got.Reason, clause) {
			t.Errorf("reason %q missing clause %q", got.Reason, clause)
		}
	}
}

func TestScoreResumeKeywordPartialExperience(t *testing.T) {
	rec := engine.ResumeRecord{Experience: "2"}
	got := ScoreResumeKeyword("4 years experience underwater welding", rec)

	// experience: 2/4 * 100 * 0.2 = 10, nothing else contributes.
	if got.Score != 10 {
		t.Errorf("score = %d, want 10 (%s)", got.Score, got.Reason)
	}
	if !strings.Contains(got.Reason, "Experience: 2 years, 4 years required.") {
		t.Errorf("reason %q missing partial experience clause", got.Reason)
	}
}

func TestScoreResumeKeywordDegreeMatch(t *testing.T) {
	rec := engine.ResumeRecord{Experience: "0", EducationLevel: "Master's"}
	got := ScoreResumeKeyword("master degree required", rec)

	// experience: 0 >= 0 -> 20; education exact family match -> 10.
	if got.Score != 30 {
		t.Errorf("score = %d, want 30 (%s)", got.Score, got.Reason)
	}
}

func TestScoreResumeKeywordDegreeMismatch(t *testing.T) {
	rec := engine.ResumeRecord{Experience: "0", EducationLevel: "Bachelor's"}
	got := ScoreResumeKeyword("phd required", rec)
	if strings.Contains(got.Reason, "Education") {
		t.Errorf("mismatched degree should not contribute: %q", got.Reason)
	}
}

func TestScoreResumeKeywordClamp(t *testing.T) {
	rec := engine.ResumeRecord{
		Experience:     "20",
		Skills:         []string{"Python Python", "python tooling", "micropython", "pythonic", "py python", "Python"},
		Summary:        "python python developer experience years react python",
		EducationLevel: "PhD",
	}
	queries := []string{"", "python", "10 years experience python phd", "zzz"}
	for _, q := range queries {
		got := ScoreResumeKeyword(q, rec)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("query %q: score %d out of range", q, got.Score)
		}
	}
}

func TestScoreResumeKeywordDeterministic(t *testing.T) {
	rec := engine.ResumeRecord{Experience: "5", Skills: []string{"Go"}, Summary: "Go services"}
	a := ScoreResumeKeyword("go developer", rec)
	b := ScoreResumeKeyword("go developer", rec)
	if a != b {
		t.Errorf("same inputs produced %+v and %+v", a, b)
	}
}

func TestParseResumeYears(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{"5+", 5},
		{" 7 ", 7},
		{"5.5", 5},
		{"", 0},
		{"senior", 0},
	}
	for _, tt := range tests {
		if got := parseResumeYears(tt.in); got != tt.want {
			t.Errorf("parseResumeYears(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
