package api

import (
	"time"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// EvaluationRequest is the submission payload for a batch evaluation.
// RequestID is optional: resubmitting with the same id returns the job
// created the first time instead of queueing a duplicate.
type EvaluationRequest struct {
	RequestID string            `json:"request_id,omitempty"`
	TargetURL string            `json:"target_url"`
	Questions []models.Question `json:"questions"`
}

// ScorerInfo describes one configured scorer for the listing endpoint.
type ScorerInfo struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Threshold   float64 `json:"threshold"`
	Required    bool    `json:"required"`
	Description string  `json:"description"`
}

// EvaluationResponse is the status view of a job: returned on
// submission and from the status endpoint. Progress is only present
// while the job is running.
type EvaluationResponse struct {
	JobID          string           `json:"job_id"`
	Status         models.JobStatus `json:"status"`
	SubmittedAt    time.Time        `json:"submitted_at"`
	StartedAt      *time.Time       `json:"started_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	TargetURL      string           `json:"target_url"`
	TotalQuestions int              `json:"total_questions"`
	Progress       *models.Progress `json:"progress,omitempty"`
	Error          *models.JobError `json:"error,omitempty"`
}

// EvaluationResults is the full result view, available once the job
// completed.
type EvaluationResults struct {
	JobID              string                  `json:"job_id"`
	Status             models.JobStatus        `json:"status"`
	SubmittedAt        time.Time               `json:"submitted_at"`
	StartedAt          *time.Time              `json:"started_at,omitempty"`
	CompletedAt        *time.Time              `json:"completed_at,omitempty"`
	TargetURL          string                  `json:"target_url"`
	TotalQuestions     int                     `json:"total_questions"`
	QuestionsCompleted int                     `json:"questions_completed"`
	OverallScore       float64                 `json:"overall_score"`
	OverallPassed      bool                    `json:"overall_passed"`
	QuestionResults    []models.QuestionResult `json:"question_results"`
	ReportJSONPath     string                  `json:"report_json_path,omitempty"`
	ReportHTMLPath     string                  `json:"report_html_path,omitempty"`
}

// JobSummary is one entry of the job listing.
type JobSummary struct {
	JobID          string           `json:"job_id"`
	Status         models.JobStatus `json:"status"`
	SubmittedAt    time.Time        `json:"submitted_at"`
	TotalQuestions int              `json:"total_questions"`
}

type JobList struct {
	Total int          `json:"total"`
	Jobs  []JobSummary `json:"jobs"`
}

func statusView(job models.Job) EvaluationResponse {
	resp := EvaluationResponse{
		JobID:          job.JobID,
		Status:         job.Status,
		SubmittedAt:    job.SubmittedAt,
		StartedAt:      job.StartedAt,
		CompletedAt:    job.CompletedAt,
		TargetURL:      job.TargetURL,
		TotalQuestions: len(job.Questions),
		Error:          job.Error,
	}

	if job.Status == models.JobStatusRunning {
		progress := job.Progress
		resp.Progress = &progress
	}

	return resp
}

func resultsView(job models.Job) EvaluationResults {
	return EvaluationResults{
		JobID:              job.JobID,
		Status:             job.Status,
		SubmittedAt:        job.SubmittedAt,
		StartedAt:          job.StartedAt,
		CompletedAt:        job.CompletedAt,
		TargetURL:          job.TargetURL,
		TotalQuestions:     len(job.Questions),
		QuestionsCompleted: job.Progress.QuestionsCompleted,
		OverallScore:       job.OverallScore,
		OverallPassed:      job.OverallPassed,
		QuestionResults:    job.QuestionResults,
		ReportJSONPath:     job.ReportJSONPath,
		ReportHTMLPath:     job.ReportHTMLPath,
	}
}
