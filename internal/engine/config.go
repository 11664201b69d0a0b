package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Analyzer modes. "auto" tries the LLM first and falls back to the regex
// engine; "api" requires the LLM; "regex" never calls it.
const (
	ModeAuto  = "auto"
	ModeAPI   = "api"
	ModeRegex = "regex"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	AnalyzerMode         string
	LLMAPIKey            string
	LLMAPIKeyFallbacks   []string
	LLMAPIBase           string
	LLMModel             string
	LLMTemperature       float64
	LLMMaxTokens         int
	LLMRateLimit         float64 // LLM calls per second during batch ranking
	LLMScoreTimeout      time.Duration
	MaxContentChars      int
	FetchTimeout         time.Duration
	RankWorkers          int
	DatabaseURL          string // non-empty = Postgres resume store
	ResumeDBPath         string // SQLite store path ("" = ~/.go_resume)
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
	LLMClient            *llm.Client // nil = LLM paths disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (match, resumeserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.AnalyzerMode == "" {
		c.AnalyzerMode = ModeAuto
	}
	if c.RankWorkers <= 0 {
		c.RankWorkers = 8
	}
	cfg = c
	Cfg = &cfg
}

// LLMAvailable reports whether the LLM augmentation path may be used at all.
func LLMAvailable() bool {
	return cfg.LLMClient != nil && cfg.AnalyzerMode != ModeRegex
}
