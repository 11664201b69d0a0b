package engine

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/time/rate"
)

// ErrLLMDisabled is returned when an LLM path is requested but no client
// is configured or the analyzer mode forbids it.
var ErrLLMDisabled = errors.New("llm client not configured")

// llmLimiter throttles batch LLM usage (ranking scores many resumes at
// once); nil until InitLLMLimiter.
var llmLimiter *rate.Limiter

// InitLLMLimiter installs a call-rate cap for LLM requests.
// callsPerSecond <= 0 disables throttling.
func InitLLMLimiter(callsPerSecond float64) {
	if callsPerSecond <= 0 {
		llmLimiter = nil
		return
	}
	burst := int(callsPerSecond)
	if burst < 1 {
		burst = 1
	}
	llmLimiter = rate.NewLimiter(rate.Limit(callsPerSecond), burst)
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
// Respects the batch rate limiter when one is installed.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", ErrLLMDisabled
	}
	if llmLimiter != nil {
		if err := llmLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

// ExtractJSONField extracts a string field from malformed JSON where the
// value may contain unescaped newlines or special characters. Used when
// the LLM returns almost-JSON.
func ExtractJSONField(raw, field string) string {
	prefix := `"` + field + `"`
	idx := strings.Index(raw, prefix)
	if idx < 0 {
		return ""
	}
	rest := raw[idx+len(prefix):]
	rest = strings.TrimSpace(rest)
	if len(rest) == 0 || rest[0] != ':' {
		return ""
	}
	rest = strings.TrimSpace(rest[1:])
	if len(rest) == 0 || rest[0] != '"' {
		return ""
	}
	rest = rest[1:] // skip opening quote

	var sb strings.Builder
	for i := 0; i < len(rest); i++ {
		if rest[i] == '\\' && i+1 < len(rest) {
			switch rest[i+1] {
			case '"':
				sb.WriteByte('"')
				i++
				continue
			case 'n':
				sb.WriteByte('\n')
				i++
				continue
			}
			sb.WriteByte(rest[i])
			continue
		}
		if rest[i] == '"' {
			return sb.String()
		}
		sb.WriteByte(rest[i])
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	return ""
}
