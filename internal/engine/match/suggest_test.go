package match

import (
	"context"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

func TestDiffSkills(t *testing.T) {
	resume := []string{"Python", "Machine Learning", "Docker"}
	jd := []string{"python", "ML Engineering", "Kubernetes", "Learning"}

	matched, missing := diffSkills(resume, jd)

	// "python" matches Python, "Learning" is contained in Machine Learning.
	wantMatched := []string{"python", "Learning"}
	wantMissing := []string{"ML Engineering", "Kubernetes"}

	if len(matched) != len(wantMatched) {
		t.Fatalf("matched = %v, want %v", matched, wantMatched)
	}
	for i := range wantMatched {
		if matched[i] != wantMatched[i] {
			t.Errorf("matched[%d] = %q, want %q", i, matched[i], wantMatched[i])
		}
	}
	if len(missing) != len(wantMissing) {
		t.Fatalf("missing = %v, want %v", missing, wantMissing)
	}
	for i := range wantMissing {
		if missing[i] != wantMissing[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], wantMissing[i])
		}
	}
}

func TestBuildSuggestionsTemplates(t *testing.T) {
	ctx := context.Background()

	t.Run("matched and missing", func(t *testing.T) {
		out := BuildSuggestions(ctx, engine.SuggestionsInput{
			ResumeSkills: []string{"Python"},
			JDSkills:     []string{"Python", "Kubernetes"},
		})
		if !strings.Contains(out.Suggestions, "Great match on Python") {
			t.Errorf("suggestions = %q", out.Suggestions)
		}
		if !strings.Contains(out.Suggestions, "Kubernetes") {
			t.Errorf("suggestions = %q should name the missing skill", out.Suggestions)
		}
	})

	t.Run("all matched", func(t *testing.T) {
		out := BuildSuggestions(ctx, engine.SuggestionsInput{
			ResumeSkills: []string{"Python", "Go"},
			JDSkills:     []string{"Python", "Go"},
		})
		if !strings.Contains(out.Suggestions, "Excellent skill alignment") {
			t.Errorf("suggestions = %q", out.Suggestions)
		}
	})

	t.Run("none matched", func(t *testing.T) {
		out := BuildSuggestions(ctx, engine.SuggestionsInput{
			ResumeSkills: []string{"Cooking"},
			JDSkills:     []string{"Rust"},
		})
		if !strings.Contains(out.Suggestions, "consider developing skills in Rust") {
			t.Errorf("suggestions = %q", out.Suggestions)
		}
		if len(out.MissingSkills) != 1 || out.MissingSkills[0] != "Rust" {
			t.Errorf("missing = %v", out.MissingSkills)
		}
	})
}
