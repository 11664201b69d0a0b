package match

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// AnalyzeResumeText runs the rule-based pipeline over raw resume text.
// It never fails: empty or unparseable input yields the documented
// conservative defaults.
func AnalyzeResumeText(text string) engine.ResumeAnalysis {
	engine.IncrResumeAnalyses()

	norm := engine.NormalizeText(text)
	skills := ExtractSkills(norm, text)
	years := ExtractExperienceYears(norm, text)
	education := ExtractEducationLevel(norm)
	category := DetermineJobCategory(norm, text)

	return engine.ResumeAnalysis{
		Summary:        GenerateSummary(category, years, education, skills),
		Skills:         skills,
		Experience:     years,
		EducationLevel: education,
		Category:       category,
	}
}

// AnalyzeResume dispatches between the LLM analyzer and the rule-based
// pipeline according to the configured analyzer mode. The returned source
// is "llm" or "regex"; any LLM failure in auto/api mode degrades to the
// rule-based result.
func AnalyzeResume(ctx context.Context, text string) (engine.ResumeAnalysis, string) {
	if engine.Cfg.AnalyzerMode == engine.ModeRegex || !engine.LLMAvailable() {
		return AnalyzeResumeText(text), "regex"
	}

	res, err := analyzeResumeLLM(ctx, text)
	if err != nil {
		slog.Warn("llm resume analysis failed, using rules", slog.Any("error", err))
		engine.IncrLLMFallbacks()
		return AnalyzeResumeText(text), "regex"
	}
	return res, "llm"
}

func analyzeResumeLLM(ctx context.Context, text string) (engine.ResumeAnalysis, error) {
	prompt := resumeAnalyzePrompt + "\n\nResume:\n" + engine.Truncate(text, engine.Cfg.MaxContentChars)
	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return engine.ResumeAnalysis{}, err
	}

	var res engine.ResumeAnalysis
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return engine.ResumeAnalysis{}, err
	}
	sanitizeResumeAnalysis(&res, text)
	engine.IncrResumeAnalyses()
	return res, nil
}

// sanitizeResumeAnalysis backfills fields the model left empty or out of
// range so downstream scorers always see the same shape the rule-based
// pipeline produces.
func sanitizeResumeAnalysis(res *engine.ResumeAnalysis, text string) {
	norm := engine.NormalizeText(text)
	if res.Experience < 0 {
		res.Experience = 0
	}
	if len(res.Skills) > maxResumeSkills {
		res.Skills = res.Skills[:maxResumeSkills]
	}
	if res.EducationLevel == "" {
		res.EducationLevel = ExtractEducationLevel(norm)
	}
	if res.Category == "" {
		res.Category = DetermineJobCategory(norm, text)
	}
	if res.Summary == "" {
		res.Summary = GenerateSummary(res.Category, res.Experience, res.EducationLevel, res.Skills)
	}
}
