package runner

import (
	"context"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// TargetClient sends a question to the endpoint under evaluation.
type TargetClient interface {
	Send(ctx context.Context, targetURL string, questionText string) (*models.ActualOutcome, error)
}

// ScorerRunner runs every configured scorer over one answered question.
type ScorerRunner interface {
	Run(ctx context.Context, question models.Question, actual *models.ActualOutcome) []models.ScorerResult
}

// Aggregator folds scorer results into the per-question result.
type Aggregator interface {
	AggregateQuestion(question models.Question, actual *models.ActualOutcome, scorerResults []models.ScorerResult) models.QuestionResult
}

// Runner evaluates a single question end to end: target call, scorer
// fan-out, aggregation.
type Runner struct {
	target     TargetClient
	scorers    ScorerRunner
	aggregator Aggregator
	logger     *zerolog.Logger
}

func NewRunner(target TargetClient, scorers ScorerRunner, aggregator Aggregator, logger *zerolog.Logger) *Runner {
	return &Runner{
		target:     target,
		scorers:    scorers,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Evaluate never returns an error: a target failure produces a result
// with empty scorer results and the error recorded, so the rest of the
// batch keeps moving.
func (r *Runner) Evaluate(ctx context.Context, question models.Question, targetURL string) models.QuestionResult {
	actual, err := r.target.Send(ctx, targetURL, question.Question)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("target_url", targetURL).
			Msg("target call failed")

		return models.QuestionResult{
			Question:      question,
			ScorerResults: []models.ScorerResult{},
			Error:         err.Error(),
		}
	}

	scorerResults := r.scorers.Run(ctx, question, actual)

	result := r.aggregator.AggregateQuestion(question, actual, scorerResults)

	r.logger.Info().
		Float64("score", result.OverallScore).
		Bool("passed", result.Passed).
		Int("scorers", len(scorerResults)).
		Msg("question evaluated")

	return result
}
