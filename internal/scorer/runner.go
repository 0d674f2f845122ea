package scorer

import (
	"context"
	"sync"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
)

// Runner fans all scorers out concurrently for one question, so the
// per-question latency is bounded by the slowest scorer rather than
// the sum. Results come back in configured scorer order.
type Runner struct {
	Scorers []Scorer
}

func NewRunner(scorers []Scorer) *Runner {
	return &Runner{
		Scorers: scorers,
	}
}

func (r *Runner) Run(ctx context.Context, question models.Question, actual *models.ActualOutcome) []models.ScorerResult {
	results := make([]models.ScorerResult, len(r.Scorers))
	var wg sync.WaitGroup

	for i, sc := range r.Scorers {
		wg.Add(1)
		go func(i int, sc Scorer) {
			defer wg.Done()
			results[i] = sc.Score(ctx, question, actual)
		}(i, sc)
	}

	wg.Wait()

	return results
}
