package resumeserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
)

func registerSuggestions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_suggestions",
		Description: "Compare resume skills against job-description skills and suggest how to improve the match.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SuggestionsInput) (*mcp.CallToolResult, engine.SuggestionsOutput, error) {
		if len(input.JDSkills) == 0 {
			return nil, engine.SuggestionsOutput{}, errors.New("jd_skills is required")
		}
		return nil, match.BuildSuggestions(ctx, input), nil
	})
}
