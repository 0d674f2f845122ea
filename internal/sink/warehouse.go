package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

// Warehouse writes one denormalized row per question per scorer into
// Postgres, so analysts can query scorer breakdowns without unpacking
// report files.
type Warehouse struct {
	db     *pgxpool.Pool
	logger *zerolog.Logger
}

const createResultsTable = `
CREATE TABLE IF NOT EXISTS eval_results (
    job_id                TEXT NOT NULL,
    submitted_at          TIMESTAMPTZ NOT NULL,
    started_at            TIMESTAMPTZ,
    completed_at          TIMESTAMPTZ,
    status                TEXT NOT NULL,
    target_url            TEXT NOT NULL,
    total_questions       INT NOT NULL,
    questions_completed   INT NOT NULL,
    overall_score         DOUBLE PRECISION,
    question              TEXT,
    expected_response     TEXT,
    expected_agent        TEXT,
    expected_reason       TEXT,
    actual_response       TEXT,
    actual_agent          TEXT,
    actual_routing_reason TEXT,
    scorer_name           TEXT,
    scorer_score          DOUBLE PRECISION,
    scorer_weight         DOUBLE PRECISION,
    scorer_weighted_score DOUBLE PRECISION,
    scorer_rationale      TEXT,
    question_error        TEXT,
    report_json_path      TEXT,
    report_html_path      TEXT,
    created_at            TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertResultRow = `
INSERT INTO eval_results (
    job_id, submitted_at, started_at, completed_at, status, target_url,
    total_questions, questions_completed, overall_score,
    question, expected_response, expected_agent, expected_reason,
    actual_response, actual_agent, actual_routing_reason,
    scorer_name, scorer_score, scorer_weight, scorer_weighted_score, scorer_rationale,
    question_error, report_json_path, report_html_path
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
    $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
)`

func NewWarehouse(ctx context.Context, connStr string, logger *zerolog.Logger) (*Warehouse, error) {
	db, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	if _, err := db.Exec(ctx, createResultsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure eval_results table: %w", err)
	}

	logger.Info().Msg("warehouse ready")

	return &Warehouse{db: db, logger: logger}, nil
}

func (w *Warehouse) Close() {
	w.db.Close()
}

// WriteResults inserts the denormalized rows for a finished job. A
// question whose target call failed yields a single row with empty
// scorer columns and its error.
func (w *Warehouse) WriteResults(ctx context.Context, job models.Job) error {
	rows := 0

	for _, qr := range job.QuestionResults {
		var actualResponse, actualAgent, actualReason string
		if qr.Actual != nil {
			actualResponse = qr.Actual.Response
			actualAgent = qr.Actual.Agent
			actualReason = qr.Actual.RoutingReason
		}

		scorerResults := qr.ScorerResults
		if len(scorerResults) == 0 {
			scorerResults = []models.ScorerResult{{}}
		}

		for _, sr := range scorerResults {
			_, err := w.db.Exec(ctx, insertResultRow,
				job.JobID,
				job.SubmittedAt,
				job.StartedAt,
				job.CompletedAt,
				string(job.Status),
				job.TargetURL,
				len(job.Questions),
				job.Progress.QuestionsCompleted,
				job.OverallScore,
				qr.Question.Question,
				qr.Question.ExpectedOutcome.Response,
				qr.Question.ExpectedOutcome.Agent,
				qr.Question.ExpectedOutcome.Reason,
				actualResponse,
				actualAgent,
				actualReason,
				sr.ScorerName,
				sr.Score,
				sr.Weight,
				sr.WeightedScore,
				sr.Rationale,
				qr.Error,
				job.ReportJSONPath,
				job.ReportHTMLPath,
			)
			if err != nil {
				return fmt.Errorf("failed to insert result row for job %s: %w", job.JobID, err)
			}
			rows++
		}
	}

	w.logger.Info().
		Str("job_id", job.JobID).
		Int("rows", rows).
		Msg("results written to warehouse")

	return nil
}
