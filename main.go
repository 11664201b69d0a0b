// go_resume — Resume Analysis & Match Scoring MCP server.
//
// Exposes resume and job-description analysis tools backed by a
// deterministic rule engine with an optional LLM analyzer on top.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
	"github.com/anatolykoptev/go_resume/internal/resumeserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	initEngine()

	slog.Info("starting go_resume",
		slog.String("port", mcpPort),
		slog.String("analyzer_mode", engine.Cfg.AnalyzerMode),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_resume",
		Version: version,
	}, nil)

	resumeserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 8))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_resume",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		AnalyzerMode:         env.Str("ANALYZER_MODE", engine.ModeAuto),
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 4096),
		LLMRateLimit:         env.Float("LLM_RATE_LIMIT", 2),
		LLMScoreTimeout:      env.Duration("LLM_SCORE_TIMEOUT", 30*time.Second),
		MaxContentChars:      env.Int("MAX_CONTENT_CHARS", 6000),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		RankWorkers:          env.Int("RANK_WORKERS", 8),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		ResumeDBPath:         env.Str("RESUME_DB_PATH", ""),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	} else if c.AnalyzerMode == engine.ModeAPI {
		slog.Warn("ANALYZER_MODE=api but no LLM_API_KEY set, analysis requests will fail")
	}

	engine.Init(c)
	engine.InitLLMLimiter(c.LLMRateLimit)

	initStore(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}

// initStore prefers Postgres when DATABASE_URL is set and falls back to
// the local SQLite file otherwise.
func initStore(c engine.Config) {
	if c.DatabaseURL != "" {
		ps, err := match.ConnectPostgresStore(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("postgres resume store init failed, falling back to sqlite", slog.Any("error", err))
		} else {
			match.SetStore(ps)
			slog.Info("resume store ready", slog.String("backend", "postgres"))
			return
		}
	}

	path := c.ResumeDBPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("resolve home dir failed, resume store disabled", slog.Any("error", err))
			return
		}
		path = filepath.Join(home, ".go_resume", "resumes.db")
	}
	ss, err := match.OpenSQLiteStore(path)
	if err != nil {
		slog.Error("sqlite resume store init failed, resume store disabled", slog.Any("error", err))
		return
	}
	match.SetStore(ss)
	slog.Info("resume store ready", slog.String("backend", "sqlite"), slog.String("path", path))
}
