package match

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

func extractSkills(text string) []string {
	return ExtractSkills(engine.NormalizeText(text), text)
}

func TestExtractSkillsTaxonomy(t *testing.T) {
	text := "Built services in Python and React, deployed with Docker. Strong communication."
	got := extractSkills(text)

	for _, want := range []string{"Python", "React", "Docker", "Communication"} {
		if !containsSkill(got, want) {
			t.Errorf("skills %v missing %q", got, want)
		}
	}
}

func TestExtractSkillsMultiWordTitleCase(t *testing.T) {
	got := extractSkills("Applied machine learning and attention to detail daily.")
	if !containsSkill(got, "Machine Learning") {
		t.Errorf("skills %v missing Machine Learning", got)
	}
	if !containsSkill(got, "Attention To Detail") {
		t.Errorf("skills %v missing Attention To Detail", got)
	}
}

func TestExtractSkillsCaseDedup(t *testing.T) {
	got := extractSkills("Python expert. PYTHON tooling. python scripts.")
	count := 0
	for _, s := range got {
		if strings.EqualFold(s, "python") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %d python entries in %v, want exactly 1", count, got)
	}
}

func TestExtractSkillsSection(t *testing.T) {
	// The section body must follow the heading on the same line; a list
	// starting on its own capitalized line reads as the next section.
	text := "John Doe\n\nSkills: Terraform Cloud, Quantum Annealing, QA\n\nExperience\nAcme Corp"
	got := extractSkills(text)

	if !containsSkill(got, "Terraform Cloud") {
		t.Errorf("skills %v missing section entry Terraform Cloud", got)
	}
	if !containsSkill(got, "Quantum Annealing") {
		t.Errorf("skills %v missing section entry Quantum Annealing", got)
	}
	// Entries of length <= 2 are dropped.
	if containsSkill(got, "QA") {
		t.Errorf("short section entry QA should have been dropped from %v", got)
	}
}

func TestExtractSkillsCap(t *testing.T) {
	text := "python java javascript typescript ruby php rust swift kotlin scala sql mysql postgresql mongodb redis docker kubernetes aws azure gcp git linux"
	got := extractSkills(text)
	if len(got) > maxResumeSkills {
		t.Errorf("got %d skills, cap is %d", len(got), maxResumeSkills)
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	got := extractSkills("")
	if got == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no skills for empty input, got %v", got)
	}
	if b, err := json.Marshal(got); err != nil || string(b) != "[]" {
		t.Errorf("marshaled as %s (err %v), want []", b, err)
	}
}

func containsSkill(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}
