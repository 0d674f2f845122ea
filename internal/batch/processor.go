package batch

import (
	"context"
	"sync"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

// Evaluator runs one question against the target and scorers.
type Evaluator interface {
	Evaluate(ctx context.Context, question models.Question, targetURL string) models.QuestionResult
}

// Processor drives a bounded worker pool over the dataset. Records
// that failed to parse are skipped and counted by the caller via
// their InputRecord errors.
type Processor struct {
	evaluator Evaluator
	workers   int
	logger    *zerolog.Logger
}

func NewProcessor(evaluator Evaluator, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		evaluator: evaluator,
		workers:   workers,
		logger:    logger,
	}
}

func (p *Processor) Process(ctx context.Context, targetURL string, records []InputRecord) <-chan models.QuestionResult {
	pending := make(chan models.Question)
	results := make(chan models.QuestionResult)

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for question := range pending {
				results <- p.evaluator.Evaluate(ctx, question, targetURL)
			}
		}()
	}

	go func() {
		defer close(pending)
		for _, record := range records {
			if record.Error != nil {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case pending <- record.Question:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
