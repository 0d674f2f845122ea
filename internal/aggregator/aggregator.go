package aggregator

import (
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

// Aggregator folds scorer results into question-level and job-level
// scores. Scorer weights sum to 1.0 by configuration contract, so a
// question's score is the plain sum of weighted scores.
type Aggregator struct {
	logger *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// AggregateQuestion assembles the per-question result. A question
// passes only when every required scorer met its threshold and no
// scorer errored.
func (a *Aggregator) AggregateQuestion(
	question models.Question,
	actual *models.ActualOutcome,
	scorerResults []models.ScorerResult,
) models.QuestionResult {
	result := models.QuestionResult{
		Question:      question,
		Actual:        actual,
		ScorerResults: scorerResults,
	}

	if len(scorerResults) == 0 {
		return result
	}

	passed := true
	for _, sr := range scorerResults {
		result.OverallScore += sr.WeightedScore

		if sr.Errored {
			passed = false
		}
		if sr.Required && !sr.Passed {
			passed = false
		}
	}
	result.Passed = passed

	a.logger.Debug().
		Float64("score", result.OverallScore).
		Bool("passed", result.Passed).
		Msg("question aggregated")

	return result
}

// AggregateJob computes the job-level rollup: the arithmetic mean of
// question scores and the conjunction of question passes. Questions
// whose target call failed count as zero.
func (a *Aggregator) AggregateJob(questionResults []models.QuestionResult) (float64, bool) {
	if len(questionResults) == 0 {
		return 0, false
	}

	total := 0.0
	passed := true
	for _, qr := range questionResults {
		total += qr.OverallScore
		if !qr.Passed {
			passed = false
		}
	}

	overall := total / float64(len(questionResults))

	a.logger.Info().
		Float64("overall_score", overall).
		Bool("overall_passed", passed).
		Int("questions", len(questionResults)).
		Msg("aggregation complete")

	return overall, passed
}
