package scorer

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/eval-service/internal/config"
	"github.com/povarna/generative-ai-agents/eval-service/internal/llm"
	"github.com/rs/zerolog"
)

// Pool builds the ordered scorer list from configuration.
type Pool struct {
	llmClient llm.LLMClient
	logger    *zerolog.Logger
}

func NewPool(llmClient llm.LLMClient, logger *zerolog.Logger) *Pool {
	return &Pool{
		llmClient: llmClient,
		logger:    logger,
	}
}

func (p *Pool) BuildFromConfig(cfg *config.ScorersConfig) ([]Scorer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scorers config is nil")
	}

	var scorers []Scorer

	for _, scorerCfg := range cfg.Scorers.Evaluators {
		if !scorerCfg.Enabled {
			p.logger.Info().
				Str("scorer", scorerCfg.Name).
				Msg("scorer disabled in config, skipping")
			continue
		}

		built, err := p.build(scorerCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create scorer %s: %w", scorerCfg.Name, err)
		}

		scorers = append(scorers, built)

		p.logger.Info().
			Str("scorer", scorerCfg.Name).
			Str("type", scorerCfg.Type).
			Float64("weight", scorerCfg.Weight).
			Float64("threshold", scorerCfg.Threshold).
			Bool("required", scorerCfg.Required).
			Msg("scorer created successfully")
	}

	if len(scorers) == 0 {
		return nil, fmt.Errorf("no enabled scorers found in config")
	}

	p.logger.Info().
		Int("total_scorers", len(scorers)).
		Msg("scorer pool built successfully")

	return scorers, nil
}

func (p *Pool) build(scorerCfg config.ScorerConfiguration) (Scorer, error) {
	switch scorerCfg.Type {
	case config.ScorerTypeLLM:
		return NewLLMScorer(scorerCfg, p.llmClient, p.logger)
	case config.ScorerTypeProgrammatic:
		// agent_routing is the only programmatic scorer today.
		if scorerCfg.Name != "agent_routing" {
			return nil, fmt.Errorf("unknown programmatic scorer: %s", scorerCfg.Name)
		}
		return NewRoutingScorer(scorerCfg), nil
	default:
		return nil, fmt.Errorf("unknown scorer type: %s", scorerCfg.Type)
	}
}
