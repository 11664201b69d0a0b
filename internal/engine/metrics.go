package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ResumeAnalyses  atomic.Int64
	JDAnalyses      atomic.Int64
	ScoreRequests   atomic.Int64
	RankRequests    atomic.Int64
	LLMCalls        atomic.Int64
	LLMErrors       atomic.Int64
	LLMFallbacks    atomic.Int64
	FetchRequests   atomic.Int64
	FetchErrors     atomic.Int64
	StoreOperations atomic.Int64
}

// GetMetrics returns a snapshot of all counters including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"resume_analyses":  metrics.ResumeAnalyses.Load(),
		"jd_analyses":      metrics.JDAnalyses.Load(),
		"score_requests":   metrics.ScoreRequests.Load(),
		"rank_requests":    metrics.RankRequests.Load(),
		"llm_calls":        metrics.LLMCalls.Load(),
		"llm_errors":       metrics.LLMErrors.Load(),
		"llm_fallbacks":    metrics.LLMFallbacks.Load(),
		"fetch_requests":   metrics.FetchRequests.Load(),
		"fetch_errors":     metrics.FetchErrors.Load(),
		"store_operations": metrics.StoreOperations.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"resume_analyses", "jd_analyses",
		"score_requests", "rank_requests",
		"llm_calls", "llm_errors", "llm_fallbacks",
		"fetch_requests", "fetch_errors",
		"store_operations",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the match sub-package.
func IncrResumeAnalyses()  { metrics.ResumeAnalyses.Add(1) }
func IncrJDAnalyses()      { metrics.JDAnalyses.Add(1) }
func IncrScoreRequests()   { metrics.ScoreRequests.Add(1) }
func IncrRankRequests()    { metrics.RankRequests.Add(1) }
func IncrLLMFallbacks()    { metrics.LLMFallbacks.Add(1) }
func IncrStoreOperations() { metrics.StoreOperations.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
