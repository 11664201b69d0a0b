package match

import (
	"strings"
	"testing"
)

func TestExperienceBand(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{0, "2-3"},
		{1, "1"},
		{2, "2-3"},
		{4, "3-5"},
		{6, "5-7"},
		{10, "8-10"},
		{12, "10+"},
		{30, "10+"},
	}
	for _, tt := range tests {
		if got := experienceBand(tt.years); got != tt.want {
			t.Errorf("experienceBand(%d) = %q, want %q", tt.years, got, tt.want)
		}
	}
}

func TestJoinSkills(t *testing.T) {
	if got := joinSkills(nil); got != fallbackSkillsPhrase {
		t.Errorf("empty skills: got %q", got)
	}
	if got := joinSkills([]string{"Go"}); got != "Go" {
		t.Errorf("single skill: got %q", got)
	}
	if got := joinSkills([]string{"Go", "Python"}); got != "Go and Python" {
		t.Errorf("two skills: got %q", got)
	}

	many := []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "AWS"}
	got := joinSkills(many)
	if !strings.Contains(got, " and ") {
		t.Errorf("many skills: %q lacks natural-language join", got)
	}
	parts := strings.Split(strings.ReplaceAll(got, " and ", ", "), ", ")
	if len(parts) < 3 || len(parts) > 5 {
		t.Errorf("many skills: %q uses %d skills, want 3-5", got, len(parts))
	}
}

func TestGenerateSummary(t *testing.T) {
	got := GenerateSummary("Data Science", 6, "Master's", []string{"Python", "SQL"})

	// Every template names the category, band and skills; education
	// appears in most but not all, so it is not asserted here.
	for _, want := range []string{"Data Science", "5-7", "Python and SQL"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}
}

func TestGenerateSummaryNoSkills(t *testing.T) {
	got := GenerateSummary("Professional", 1, "High School", nil)
	if !strings.Contains(got, fallbackSkillsPhrase) {
		t.Errorf("summary %q missing fallback skills phrase", got)
	}
}
