package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/eval-service/internal/jobs"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
)

// SubmitInput is the MCP tool input schema for batch submission
// (matches the HTTP API field names).
type SubmitInput struct {
	RequestID string            `json:"request_id,omitempty" jsonschema:"description=Optional idempotency key; resubmitting with the same id returns the existing job"`
	TargetURL string            `json:"target_url" jsonschema:"required,description=Target endpoint URL to evaluate"`
	Questions []models.Question `json:"questions" jsonschema:"required,description=Questions with expected outcomes"`
}

// SubmitOutput mirrors the HTTP submission response.
type SubmitOutput struct {
	JobID  string           `json:"job_id"`
	Status models.JobStatus `json:"status"`
}

// JobInput identifies a job for the status and results tools.
type JobInput struct {
	JobID string `json:"job_id" jsonschema:"required,description=Job identifier returned by submit_evaluation"`
}

// NewSubmitHandler returns a tool handler that enqueues a batch
// evaluation. Pass the returned function to mcp.AddTool.
func NewSubmitHandler(store *jobs.Store) func(context.Context, *mcp.CallToolRequest, SubmitInput) (*mcp.CallToolResult, SubmitOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SubmitInput) (*mcp.CallToolResult, SubmitOutput, error) {
		if input.TargetURL == "" {
			return nil, SubmitOutput{}, fmt.Errorf("target_url is required")
		}
		if len(input.Questions) == 0 {
			return nil, SubmitOutput{}, fmt.Errorf("questions must not be empty")
		}

		if input.RequestID != "" {
			if existingID, ok := store.FindByRequestID(input.RequestID); ok {
				job, err := store.Get(existingID)
				if err != nil {
					return nil, SubmitOutput{}, err
				}
				return nil, SubmitOutput{JobID: job.JobID, Status: job.Status}, nil
			}
		}

		jobID := store.Create(input.TargetURL, input.Questions, input.RequestID)

		return nil, SubmitOutput{JobID: jobID, Status: models.JobStatusQueued}, nil
	}
}

// NewStatusHandler returns a tool handler that reports a job snapshot.
func NewStatusHandler(store *jobs.Store) func(context.Context, *mcp.CallToolRequest, JobInput) (*mcp.CallToolResult, models.Job, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input JobInput) (*mcp.CallToolResult, models.Job, error) {
		job, err := store.Get(input.JobID)
		if err != nil {
			return nil, models.Job{}, err
		}

		// The status view omits the per-question detail.
		job.QuestionResults = nil
		job.Questions = nil

		return nil, job, nil
	}
}

// NewResultsHandler returns a tool handler for the full results of a
// completed job.
func NewResultsHandler(store *jobs.Store) func(context.Context, *mcp.CallToolRequest, JobInput) (*mcp.CallToolResult, models.Job, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input JobInput) (*mcp.CallToolResult, models.Job, error) {
		job, err := store.Get(input.JobID)
		if err != nil {
			return nil, models.Job{}, err
		}

		if job.Status != models.JobStatusCompleted {
			return nil, models.Job{}, fmt.Errorf("results not available, job status: %s", job.Status)
		}

		return nil, job, nil
	}
}
