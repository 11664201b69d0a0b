package resumeserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
)

func registerResumeSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_search",
		Description: "Rank stored resumes against a free-text query. Scorer is \"keyword\" (deterministic, default) or \"ai\" (LLM-backed with per-resume keyword fallback).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeSearchInput) (*mcp.CallToolResult, engine.ResumeSearchOutput, error) {
		if input.Query == "" {
			return nil, engine.ResumeSearchOutput{}, errors.New("query is required")
		}
		store := match.Store()
		if store == nil {
			return nil, engine.ResumeSearchOutput{}, errStoreUnavailable
		}

		var scorer match.Scorer = match.KeywordScorer{}
		switch input.Scorer {
		case "", "keyword":
		case "ai":
			scorer = match.LLMScorer{}
		default:
			return nil, engine.ResumeSearchOutput{}, fmt.Errorf("unknown scorer %q", input.Scorer)
		}

		var ranked []engine.RankedResume
		var total int
		err := engine.TrackOperation(ctx, "resume_search", func(ctx context.Context) error {
			recs, n, err := store.List(ctx, 0)
			if err != nil {
				return fmt.Errorf("load resumes: %w", err)
			}
			total = n
			ranked = match.RankResumes(ctx, input.Query, recs, scorer)
			return nil
		})
		if err != nil {
			return nil, engine.ResumeSearchOutput{}, err
		}
		if input.Limit > 0 && len(ranked) > input.Limit {
			ranked = ranked[:input.Limit]
		}

		return nil, engine.ResumeSearchOutput{
			Query:   input.Query,
			Results: ranked,
			Summary: fmt.Sprintf("Ranked %d of %d stored resume(s) against the query.", len(ranked), total),
		}, nil
	})
}
