package match

import (
	"strings"
	"testing"
)

const sampleJD = `NLP Engineer

We are building text analysis pipelines at scale.

Requirements:
- 3-5 years of industry experience
- Strong Python and experience with spaCy or NLTK
- Machine learning fundamentals, ideally deep learning
- Web scraping with Scrapy is a plus
- Bachelor's degree in CS or related field`

func TestAnalyzeJobDescriptionText(t *testing.T) {
	got := AnalyzeJobDescriptionText(sampleJD)

	if got.Category != "NLP Engineer" {
		t.Errorf("category = %q, want NLP Engineer", got.Category)
	}
	if got.Experience != "3-5 years" {
		t.Errorf("experience = %q, want 3-5 years", got.Experience)
	}
	for _, want := range []string{"Python", "Machine Learning", "Deep Learning", "Web Scraping"} {
		if !containsSkill(got.Skills, want) {
			t.Errorf("skills %v missing %q", got.Skills, want)
		}
	}
	wantReqs := []string{
		"Bachelor's degree",
		"3-5 years experience",
		"Machine Learning experience",
		"Web scraping experience",
	}
	for _, want := range wantReqs {
		found := false
		for _, r := range got.Requirements {
			if r == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("requirements %v missing %q", got.Requirements, want)
		}
	}
	if !strings.Contains(got.Summary, "NLP Engineer position focusing on NLP and machine learning and web scraping and data extraction") {
		t.Errorf("summary = %q", got.Summary)
	}
	if !strings.Contains(got.Summary, "requiring 3-5 years experience") {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestAnalyzeJobDescriptionDefaults(t *testing.T) {
	got := AnalyzeJobDescriptionText("")

	if got.Experience != defaultJDExperience {
		t.Errorf("experience = %q, want %q", got.Experience, defaultJDExperience)
	}
	if got.Category != defaultJDCategory {
		t.Errorf("category = %q, want %q", got.Category, defaultJDCategory)
	}
	if len(got.Skills) != 0 {
		t.Errorf("skills = %v, want empty", got.Skills)
	}
	if !strings.Contains(got.Summary, "various technologies") {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestJDSummaryCombinesFocusAreas(t *testing.T) {
	text := "Natural language pipelines plus large-scale data extraction."
	got := jdSummary("NLP Engineer", "2-4 years", nil, strings.ToLower(text))
	if !strings.Contains(got, "focusing on NLP and machine learning and web scraping and data extraction") {
		t.Errorf("summary = %q", got)
	}
}

func TestJDSummarySingleFocusArea(t *testing.T) {
	got := jdSummary("Machine Learning Engineer", "2-4 years", nil, "model training at scale")
	if !strings.Contains(got, "focusing on model development and deployment,") {
		t.Errorf("summary = %q", got)
	}
}

func TestExtractJDRequirementsListsAllDegrees(t *testing.T) {
	text := "Bachelor's degree required, Master's degree a strong plus."
	got := extractJDRequirements(text, nil, defaultJDExperience)

	want := []string{"Bachelor's degree", "Master's degree preferred"}
	if len(got) < 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("requirements = %v, want prefix %v", got, want)
	}
}

func TestExtractJDExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"range", "We need 3 to 5 years in production ML", "3-5 years"},
		{"plus widens", "7+ years building backend services", "7-9 years"},
		{"minimum", "Minimum of 4 years required", "4-6 years"},
		{"at least", "at least 2 years with Kubernetes", "2-4 years"},
		{"plain experience", "2 years of relevant experience", "2-4 years"},
		{"absent defaults", "Senior role on a distributed team", defaultJDExperience},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJDExperience(tt.text); got != tt.want {
				t.Errorf("extractJDExperience(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractJDSkillsDedupAndCanonical(t *testing.T) {
	text := "Python, python, PYTHON. REST API design and restful APIs. Natural language understanding."
	got := extractJDSkills(text, strings.ToLower(text))

	count := 0
	for _, s := range got {
		if strings.EqualFold(s, "python") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("python appears %d times in %v", count, got)
	}
	if !containsSkill(got, "REST API") {
		t.Errorf("skills %v missing canonical REST API", got)
	}
	if !containsSkill(got, "NLU") {
		t.Errorf("skills %v missing canonical NLU", got)
	}
}

func TestExtractJDCategoryFirstMatchWins(t *testing.T) {
	// Mentions both data science and NLP; the earlier taxonomy entry wins.
	if got := extractJDCategory("data scientist with nlp background"); got != "Data Scientist" {
		t.Errorf("got %q, want Data Scientist", got)
	}
	if got := extractJDCategory("devops team"); got != "DevOps Engineer" {
		t.Errorf("got %q, want DevOps Engineer", got)
	}
}
