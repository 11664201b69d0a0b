package match

import (
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

func extractYears(t *testing.T, text string) int {
	t.Helper()
	return ExtractExperienceYears(engine.NormalizeText(text), text)
}

func TestExtractExperienceYearsDirect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plus years", "5+ years of experience in Python development", 5},
		{"plain years", "8 years experience building distributed systems", 8},
		{"experience of", "Experience of 7 years in backend teams", 7},
		{"over", "over 12 years of experience leading projects", 12},
		{"professional suffix", "3+ years professional software work", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractYears(t, tt.text); got != tt.want {
				t.Errorf("ExtractExperienceYears(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractExperienceYearsDateRanges(t *testing.T) {
	now := time.Now().Year()

	t.Run("contiguous ranges merge", func(t *testing.T) {
		text := "Software Engineer\nAcme Corp 2018 - 2021\nBeta LLC 2021 - present"
		want := now - 2018
		if got := extractYears(t, text); got != want {
			t.Errorf("got %d, want %d", got, want)
		}
	})

	t.Run("contained span not double counted", func(t *testing.T) {
		text := "Acme 2015 - 2020\nSide project 2016 - 2018"
		if got := extractYears(t, text); got != 5 {
			t.Errorf("got %d, want 5", got)
		}
	})

	t.Run("disjoint spans sum", func(t *testing.T) {
		text := "First role 2010 to 2012\nSecond role 2015 to 2017"
		if got := extractYears(t, text); got != 4 {
			t.Errorf("got %d, want 4", got)
		}
	})

	t.Run("month ranges", func(t *testing.T) {
		text := "Engineer, Jan 2019 - Mar 2022"
		if got := extractYears(t, text); got != 3 {
			t.Errorf("got %d, want 3", got)
		}
	})

	t.Run("reversed range floors at one", func(t *testing.T) {
		text := "Worked somewhere 2020 - 2018"
		if got := extractYears(t, text); got != 1 {
			t.Errorf("got %d, want 1", got)
		}
	})
}

func TestExtractExperienceYearsGraduation(t *testing.T) {
	now := time.Now().Year()
	text := "BA in English. Graduated in 2015."
	if got := extractYears(t, text); got != now-2015 {
		t.Errorf("got %d, want %d", got, now-2015)
	}

	// Out-of-range years fall through to the size proxy.
	if got := extractYears(t, "graduated in 1901"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestExtractExperienceYearsSizeProxy(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"short", "junior developer", 1},
		{"medium", strings.Repeat("word ", 550), 3},
		{"long", strings.Repeat("word ", 750), 5},
		{"many lines", strings.Repeat("line\n", 80), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractYears(t, tt.text); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMergeSpanYearsTieBreak(t *testing.T) {
	// A span starting exactly at the current span's end extends it.
	spans := []yearSpan{{2018, 2021}, {2021, 2023}}
	if got := mergeSpanYears(spans); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}
