package resumeserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// emptyInput is for tools that take no arguments.
type emptyInput struct{}

func registerModelStatus(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "model_status",
		Description: "Report which analyzer backs resume and job-description analysis right now.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, engine.ModelStatusOutput, error) {
		out := engine.ModelStatusOutput{Mode: engine.Cfg.AnalyzerMode}
		switch {
		case engine.Cfg.AnalyzerMode == engine.ModeRegex:
			out.Status = "regex"
			out.Message = "Rule-based analyzer selected; LLM is not used."
		case engine.LLMAvailable():
			out.Status = "ready"
			out.Message = "LLM analyzer is configured and will be used, with rule-based fallback on errors."
		default:
			out.Status = "fallback"
			out.Message = "No LLM configured; the rule-based analyzer handles all requests."
			out.UsingFallback = true
		}
		return nil, out, nil
	})
}
