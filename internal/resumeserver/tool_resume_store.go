package resumeserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/match"
)

var errStoreUnavailable = errors.New("resume store is not configured")

func registerResumeUpload(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_upload",
		Description: "Analyze resume text and persist the result. Returns the stored record with its generated ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeUploadInput) (*mcp.CallToolResult, engine.ResumeUploadOutput, error) {
		if input.Text == "" {
			return nil, engine.ResumeUploadOutput{}, errors.New("text is required")
		}
		store := match.Store()
		if store == nil {
			return nil, engine.ResumeUploadOutput{}, errStoreUnavailable
		}

		analysis, source := match.AnalyzeResume(ctx, input.Text)
		filename := input.Filename
		if filename == "" {
			filename = "resume.txt"
		}
		rec := engine.ResumeRecord{
			ID:             uuid.NewString(),
			Filename:       filename,
			Summary:        analysis.Summary,
			Skills:         analysis.Skills,
			Experience:     strconv.Itoa(analysis.Experience),
			EducationLevel: analysis.EducationLevel,
			Category:       analysis.Category,
			UploadedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if err := store.Add(ctx, rec); err != nil {
			return nil, engine.ResumeUploadOutput{}, fmt.Errorf("store resume: %w", err)
		}
		slog.Info("resume uploaded",
			slog.String("id", rec.ID),
			slog.String("filename", rec.Filename),
			slog.String("category", rec.Category),
			slog.String("source", source))
		return nil, engine.ResumeUploadOutput{Record: rec}, nil
	})
}

func registerResumeList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_list",
		Description: "List stored resumes, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeListInput) (*mcp.CallToolResult, engine.ResumeListOutput, error) {
		store := match.Store()
		if store == nil {
			return nil, engine.ResumeListOutput{}, errStoreUnavailable
		}
		recs, total, err := store.List(ctx, input.Limit)
		if err != nil {
			return nil, engine.ResumeListOutput{}, fmt.Errorf("list resumes: %w", err)
		}
		return nil, engine.ResumeListOutput{Resumes: recs, Total: total}, nil
	})
}

func registerResumeDelete(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_delete",
		Description: "Delete a stored resume by ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeDeleteInput) (*mcp.CallToolResult, engine.ResumeDeleteOutput, error) {
		if input.ID == "" {
			return nil, engine.ResumeDeleteOutput{}, errors.New("id is required")
		}
		store := match.Store()
		if store == nil {
			return nil, engine.ResumeDeleteOutput{}, errStoreUnavailable
		}
		if err := store.Delete(ctx, input.ID); err != nil {
			return nil, engine.ResumeDeleteOutput{}, err
		}
		return nil, engine.ResumeDeleteOutput{Message: "resume " + input.ID + " deleted"}, nil
	})
}
