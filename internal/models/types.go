package models

import (
	"time"
)

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether the status is final.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// ExpectedOutcome is the ground truth a question is scored against.
type ExpectedOutcome struct {
	Response string `json:"response" yaml:"response"`
	Agent    string `json:"agent" yaml:"agent"`
	Reason   string `json:"reason" yaml:"reason"`
}

// Question is a single question with its expected outcome. Immutable
// once submitted.
type Question struct {
	Question        string          `json:"question" yaml:"question"`
	ExpectedOutcome ExpectedOutcome `json:"expected_outcome" yaml:"expected_outcome"`
}

// ActualOutcome is the structured answer returned by the target
// endpoint for one question.
type ActualOutcome struct {
	Response      string `json:"response"`
	Agent         string `json:"agent"`
	RoutingReason string `json:"routing_reason"`
}

// ScorerResult is one scorer's verdict on one question.
type ScorerResult struct {
	ScorerName    string  `json:"scorer_name"`
	Score         float64 `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
	Passed        bool    `json:"passed"`
	Required      bool    `json:"required"`
	Rationale     string  `json:"rationale,omitempty"`
	// Errored marks a scorer whose own call failed, as opposed to one
	// that ran and scored below threshold. Any errored scorer forces
	// the owning question's Passed to false.
	Errored bool `json:"-"`
}

// QuestionResult holds the full evaluation outcome for one question.
// If the target call failed, ScorerResults is empty and Error carries
// the failure.
type QuestionResult struct {
	Question      Question       `json:"question"`
	Actual        *ActualOutcome `json:"actual,omitempty"`
	ScorerResults []ScorerResult `json:"scorer_results"`
	OverallScore  float64        `json:"overall_score"`
	Passed        bool           `json:"passed"`
	Error         string         `json:"error,omitempty"`
}

// Progress is the point-in-time completion state of a running job.
type Progress struct {
	QuestionsCompleted int `json:"questions_completed"`
	QuestionsTotal     int `json:"questions_total"`
	ScorersCompleted   int `json:"scorers_completed"`
	ScorersTotal       int `json:"scorers_total"`
	Percent            int `json:"percent"`
}

// JobError is the job-level error recorded when a job fails.
type JobError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Job tracks one batch evaluation from submission to completion. Owned
// by the job store; callers only ever see snapshots.
type Job struct {
	JobID           string           `json:"job_id"`
	RequestID       string           `json:"request_id,omitempty"`
	Status          JobStatus        `json:"status"`
	TargetURL       string           `json:"target_url"`
	Questions       []Question       `json:"questions"`
	SubmittedAt     time.Time        `json:"submitted_at"`
	StartedAt       *time.Time       `json:"started_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	QuestionResults []QuestionResult `json:"question_results"`
	Progress        Progress         `json:"progress"`
	OverallScore    float64          `json:"overall_score"`
	OverallPassed   bool             `json:"overall_passed"`
	Error           *JobError        `json:"error,omitempty"`
	ReportJSONPath  string           `json:"report_json_path,omitempty"`
	ReportHTMLPath  string           `json:"report_html_path,omitempty"`
}
