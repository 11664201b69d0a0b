package resumeserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
)

func registerJDAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jd_analyze",
		Description: "Analyze a job description: required skills, experience range, requirements and category. Pass either the text or a posting URL to fetch.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.JDAnalyzeInput) (*mcp.CallToolResult, engine.JDAnalyzeOutput, error) {
		text := input.Text
		if text == "" && input.URL == "" {
			return nil, engine.JDAnalyzeOutput{}, errors.New("either text or url is required")
		}

		cacheKey := ""
		if input.URL != "" {
			cacheKey = engine.CacheKey("jd_analyze", input.URL)
			if cached, ok := engine.CacheLoadJSON[engine.JDAnalyzeOutput](ctx, cacheKey); ok {
				return nil, cached, nil
			}
			title, content, err := engine.FetchJobPosting(ctx, input.URL)
			if err != nil {
				return nil, engine.JDAnalyzeOutput{}, fmt.Errorf("fetch posting: %w", err)
			}
			slog.Info("fetched job posting",
				slog.String("url", input.URL),
				slog.String("title", title),
				slog.Int("chars", len(content)))
			text = title + "\n\n" + content
		}

		analysis, source := match.AnalyzeJobDescription(ctx, text)
		out := engine.JDAnalyzeOutput{Analysis: analysis, Source: source}
		if cacheKey != "" {
			engine.CacheStoreJSON(ctx, cacheKey, out)
		}
		return nil, out, nil
	})
}
