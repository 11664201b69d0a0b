package match

import (
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

func TestDetermineJobCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"software engineering",
			"Software developer focused on backend development, API design and programming.",
			"Software Engineering",
		},
		{
			"data science",
			"Data scientist applying machine learning and deep learning to data analytics problems.",
			"Data Science",
		},
		{
			"healthcare",
			"Registered nurse providing patient care in a hospital clinical setting.",
			"Healthcare",
		},
		{
			"empty defaults",
			"",
			"Professional",
		},
		{
			"garbage defaults",
			"asdf qwer zxcv",
			"Professional",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineJobCategory(engine.NormalizeText(tt.text), tt.text)
			if got != tt.want {
				t.Errorf("DetermineJobCategory(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetermineJobCategoryTitleFallback(t *testing.T) {
	// Keyword score stays below the floor, so the title line decides.
	text := "Title: Senior Designer\nCreative portfolio available on request."
	got := DetermineJobCategory(engine.NormalizeText(text), text)
	if got != "Design" {
		t.Errorf("got %q, want Design", got)
	}
}

func TestDetermineJobCategoryTieKeepsFirst(t *testing.T) {
	// One keyword each for Software Engineering and Design; the earlier
	// taxonomy entry wins the tie via the title pass.
	text := "backend designer"
	got := DetermineJobCategory(engine.NormalizeText(text), text)
	if got != "Software Engineering" {
		t.Errorf("got %q, want Software Engineering", got)
	}
}

func TestDetermineJobCategoryFirstLineBeatsSeniorityPhrase(t *testing.T) {
	// Below the score floor, the first line is consulted before any
	// seniority phrase deeper in the text.
	text := "Marketing coordinator\nWorked alongside a senior developer on campaign tooling."
	got := DetermineJobCategory(engine.NormalizeText(text), text)
	if got != "Marketing" {
		t.Errorf("got %q, want Marketing", got)
	}
}
