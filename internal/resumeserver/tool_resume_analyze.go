package resumeserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
)

func registerResumeAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_analyze",
		Description: "Analyze resume text: professional summary, skills, years of experience, education level and job category. Does not persist anything.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeAnalyzeInput) (*mcp.CallToolResult, engine.ResumeAnalyzeOutput, error) {
		if input.Text == "" {
			return nil, engine.ResumeAnalyzeOutput{}, errors.New("text is required")
		}

		key := engine.CacheKey("resume_analyze", input.Text)
		if cached, ok := engine.CacheLoadJSON[engine.ResumeAnalyzeOutput](ctx, key); ok {
			return nil, cached, nil
		}

		analysis, source := match.AnalyzeResume(ctx, input.Text)
		out := engine.ResumeAnalyzeOutput{Analysis: analysis, Source: source}
		engine.CacheStoreJSON(ctx, key, out)
		return nil, out, nil
	})
}
