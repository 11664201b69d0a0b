package match

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// BuildSuggestions compares resume skills against job-description skills
// and produces coaching advice. Matched/missing sets come from a
// case-insensitive bidirectional substring comparison; the advice text
// comes from the LLM when available and from fixed templates otherwise.
func BuildSuggestions(ctx context.Context, in engine.SuggestionsInput) engine.SuggestionsOutput {
	matched, missing := diffSkills(in.ResumeSkills, in.JDSkills)

	out := engine.SuggestionsOutput{
		MatchedSkills: matched,
		MissingSkills: missing,
	}

	if engine.LLMAvailable() {
		text, err := suggestLLM(ctx, in, matched, missing)
		if err == nil && text != "" {
			out.Suggestions = text
			return out
		}
		slog.Warn("llm suggestions failed, using templates", slog.Any("error", err))
		engine.IncrLLMFallbacks()
	}

	out.Suggestions = templateSuggestions(matched, missing)
	return out
}

// diffSkills splits jd skills into matched and missing relative to the
// resume. A jd skill is matched when it and some resume skill contain
// each other in either direction, case-insensitively.
func diffSkills(resumeSkills, jdSkills []string) (matched, missing []string) {
	for _, jd := range jdSkills {
		jdLower := strings.ToLower(jd)
		found := false
		for _, rs := range resumeSkills {
			rsLower := strings.ToLower(rs)
			if strings.Contains(rsLower, jdLower) || strings.Contains(jdLower, rsLower) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, jd)
		} else {
			missing = append(missing, jd)
		}
	}
	return matched, missing
}

func templateSuggestions(matched, missing []string) string {
	const headCount = 3
	head := func(items []string) string {
		if len(items) > headCount {
			items = items[:headCount]
		}
		return strings.Join(items, ", ")
	}

	switch {
	case len(matched) > 0 && len(missing) > 0:
		return fmt.Sprintf("Great match on %s! To strengthen your profile, consider highlighting experience with %s if you've used them in your projects but haven't mentioned them prominently in your resume.",
			head(matched), head(missing))
	case len(matched) > 0:
		return fmt.Sprintf("Excellent skill alignment! Your expertise in %s makes you a strong candidate for this position.", head(matched))
	case len(missing) > 0:
		return fmt.Sprintf("While your background is valuable, consider developing skills in %s to better align with this role's requirements.", head(missing))
	default:
		return "Unable to generate suggestions at this time. Please try again later."
	}
}

func suggestLLM(ctx context.Context, in engine.SuggestionsInput, matched, missing []string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nMatched skills: %s\nMissing skills: %s\nResume summary: %s",
		suggestionsPrompt,
		strings.Join(matched, ", "),
		strings.Join(missing, ", "),
		engine.TruncateAtWord(in.ResumeSummary, 1000))
	return engine.CallLLM(ctx, prompt)
}
