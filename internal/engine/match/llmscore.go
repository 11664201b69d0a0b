package match

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

var rawScoreRe = regexp.MustCompile(`"score"\s*:\s*(\d+)`)

// Source tags for LLM-backed scoring.
const (
	SourceLLM         = "llm"
	SourceLLMFallback = "llm_error_fallback"
)

// LLMScorer asks the configured model for a match verdict. Each resume
// gets its own timeout, and any failure degrades that single resume to
// the keyword scorer's result under a fallback source tag.
type LLMScorer struct{}

func (LLMScorer) ScoreResume(ctx context.Context, query string, rec engine.ResumeRecord) engine.MatchResult {
	res, err := scoreResumeLLM(ctx, query, rec)
	if err != nil {
		slog.Warn("llm score failed, using keyword fallback",
			slog.String("resume_id", rec.ID),
			slog.Any("error", err))
		engine.IncrLLMFallbacks()
		fb := ScoreResumeKeyword(query, rec)
		fb.Source = SourceLLMFallback
		return fb
	}
	return res
}

func scoreResumeLLM(ctx context.Context, query string, rec engine.ResumeRecord) (engine.MatchResult, error) {
	if !engine.LLMAvailable() {
		return engine.MatchResult{}, engine.ErrLLMDisabled
	}

	timeout := engine.Cfg.LLMScoreTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf("%s\n\nQuery: %s\n\nResume summary: %s\nSkills: %s\nExperience: %s years\nEducation: %s",
		scorePrompt, query, rec.Summary, strings.Join(rec.Skills, ", "), rec.Experience, rec.EducationLevel)
	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return engine.MatchResult{}, err
	}

	var verdict struct {
		Score  int    `json:"score"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		// Models occasionally emit almost-JSON with unescaped newlines
		// in the reason; salvage the fields before giving up.
		verdict.Reason = engine.ExtractJSONField(raw, "reason")
		m := rawScoreRe.FindStringSubmatch(raw)
		if verdict.Reason == "" || m == nil {
			return engine.MatchResult{}, fmt.Errorf("parse score response: %w", err)
		}
		verdict.Score, _ = strconv.Atoi(m[1])
	}
	return engine.MatchResult{
		Score:  clampScore(float64(verdict.Score)),
		Reason: verdict.Reason,
		Source: SourceLLM,
	}, nil
}
