package worker

import (
	"context"
	"time"

	"github.com/povarna/generative-ai-agents/eval-service/internal/jobs"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=worker.go -destination=mocks/mock_worker.go -package=mocks

// Evaluator runs one question against the target and scorers.
type Evaluator interface {
	Evaluate(ctx context.Context, question models.Question, targetURL string) models.QuestionResult
}

// JobAggregator computes the job-level score rollup.
type JobAggregator interface {
	AggregateJob(questionResults []models.QuestionResult) (float64, bool)
}

// ResultSink persists a completed job. Best-effort: a sink failure
// never reverts the job's status.
type ResultSink interface {
	Persist(ctx context.Context, job models.Job) (jsonRef string, htmlRef string, err error)
}

// Worker is the single background consumer driving queued jobs to
// completion. Request handlers only enqueue; all evaluation happens
// here.
type Worker struct {
	store              *jobs.Store
	evaluator          Evaluator
	aggregator         JobAggregator
	sink               ResultSink
	scorersPerQuestion int
	pollInterval       time.Duration
	logger             *zerolog.Logger
}

func New(
	store *jobs.Store,
	evaluator Evaluator,
	aggregator JobAggregator,
	sink ResultSink,
	scorersPerQuestion int,
	pollInterval time.Duration,
	logger *zerolog.Logger,
) *Worker {
	return &Worker{
		store:              store,
		evaluator:          evaluator,
		aggregator:         aggregator,
		sink:               sink,
		scorersPerQuestion: scorersPerQuestion,
		pollInterval:       pollInterval,
		logger:             logger,
	}
}

// Run claims and processes queued jobs until ctx is cancelled. It
// suspends on the store's notification channel between jobs, with the
// poll interval as a safety net.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info().Msg("worker started")

	for {
		if ctx.Err() != nil {
			w.logger.Info().Msg("worker stopped")
			return ctx.Err()
		}

		job, ok := w.store.Claim()
		if !ok {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("worker stopped")
				return ctx.Err()
			case <-w.store.Notify():
			case <-time.After(w.pollInterval):
			}
			continue
		}

		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job models.Job) {
	w.logger.Info().
		Str("job_id", job.JobID).
		Int("questions", len(job.Questions)).
		Msg("processing job")

	var questionResults []models.QuestionResult

	for i, question := range job.Questions {
		// Cancellation is observed between questions, never mid-call.
		if ctx.Err() != nil {
			w.failJob(job.JobID, "canceled", "worker shut down before the batch finished")
			return
		}

		result := w.evaluator.Evaluate(ctx, question, job.TargetURL)
		questionResults = append(questionResults, result)

		completed := i + 1
		if err := w.store.Update(job.JobID, func(j *models.Job) {
			j.QuestionResults = append(j.QuestionResults, result)
			j.Progress.QuestionsCompleted = completed
			j.Progress.ScorersCompleted = completed * w.scorersPerQuestion
			if j.Progress.ScorersTotal > 0 {
				j.Progress.Percent = (j.Progress.ScorersCompleted * 100) / j.Progress.ScorersTotal
			}
		}); err != nil {
			w.logger.Error().Err(err).Str("job_id", job.JobID).Msg("failed to record question result")
			return
		}
	}

	evaluated := 0
	for _, qr := range questionResults {
		if qr.Error == "" {
			evaluated++
		}
	}

	// A batch where the target answered nothing is a failed job, not a
	// completed one with a zero score.
	if evaluated == 0 {
		w.failJob(job.JobID, "target_unreachable", "no question could be evaluated: target never answered")
		return
	}

	overallScore, overallPassed := w.aggregator.AggregateJob(questionResults)

	if err := w.store.Update(job.JobID, func(j *models.Job) {
		j.Status = models.JobStatusCompleted
		j.OverallScore = overallScore
		j.OverallPassed = overallPassed
	}); err != nil {
		w.logger.Error().Err(err).Str("job_id", job.JobID).Msg("failed to complete job")
		return
	}

	w.logger.Info().
		Str("job_id", job.JobID).
		Float64("overall_score", overallScore).
		Bool("overall_passed", overallPassed).
		Msg("job completed")

	w.persist(ctx, job.JobID)
}

// persist hands the finished job to the sink. The job store stays the
// system of record: a sink failure is logged and nothing else.
func (w *Worker) persist(ctx context.Context, jobID string) {
	snapshot, err := w.store.Get(jobID)
	if err != nil {
		w.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to load job for persistence")
		return
	}

	jsonRef, htmlRef, err := w.sink.Persist(ctx, snapshot)
	if err != nil {
		w.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to persist results")
		return
	}

	if err := w.store.Update(jobID, func(j *models.Job) {
		j.ReportJSONPath = jsonRef
		j.ReportHTMLPath = htmlRef
	}); err != nil {
		w.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to record report refs")
	}
}

func (w *Worker) failJob(jobID string, code string, message string) {
	if err := w.store.Update(jobID, func(j *models.Job) {
		j.Status = models.JobStatusFailed
		j.Error = &models.JobError{Code: code, Message: message}
	}); err != nil {
		w.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to fail job")
		return
	}

	w.logger.Warn().
		Str("job_id", jobID).
		Str("code", code).
		Str("message", message).
		Msg("job failed")
}
