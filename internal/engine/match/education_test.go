package match

import (
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

func TestExtractEducationLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"phd outranks bachelors", "PhD candidate, holds a Bachelor's degree in CS", "PhD"},
		{"doctorate", "Completed a doctorate at MIT", "PhD"},
		{"masters", "Master of Science in Computer Science", "Master's"},
		{"mba", "MBA from a state school", "Master's"},
		{"bachelors abbreviation", "B.S. in Computer Science", "Bachelor's"},
		{"associates", "Associate's degree in nursing", "Associate's"},
		{"high school", "High school diploma, 2010", "High School"},
		{"institution implies bachelors", "Studied computer science at Stanford University", "Bachelor's"},
		{"empty defaults", "", "High School"},
		{"no signal defaults", "self-taught programmer", "High School"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEducationLevel(engine.NormalizeText(tt.text))
			if got != tt.want {
				t.Errorf("ExtractEducationLevel(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
