package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Publisher emits one summary event per finished job onto a Redis
// stream, for downstream consumers that want completions without
// polling the API.
type Publisher struct {
	client *redis.Client
	stream string
	logger *zerolog.Logger
}

func NewPublisher(client *redis.Client, stream string, logger *zerolog.Logger) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

type jobEvent struct {
	JobID          string  `json:"job_id"`
	Status         string  `json:"status"`
	TargetURL      string  `json:"target_url"`
	TotalQuestions int     `json:"total_questions"`
	OverallScore   float64 `json:"overall_score"`
	OverallPassed  bool    `json:"overall_passed"`
}

func (p *Publisher) Publish(ctx context.Context, job models.Job) error {
	payload, err := json.Marshal(jobEvent{
		JobID:          job.JobID,
		Status:         string(job.Status),
		TargetURL:      job.TargetURL,
		TotalQuestions: len(job.Questions),
		OverallScore:   job.OverallScore,
		OverallPassed:  job.OverallPassed,
	})
	if err != nil {
		return fmt.Errorf("failed to encode job event: %w", err)
	}

	msgID, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{"payload": string(payload)},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish job event: %w", err)
	}

	p.logger.Info().
		Str("job_id", job.JobID).
		Str("stream", p.stream).
		Str("message_id", msgID).
		Msg("job event published")

	return nil
}
