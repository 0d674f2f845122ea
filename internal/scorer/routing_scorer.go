package scorer

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/eval-service/internal/config"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
)

// RoutingScorer programmatically validates that the target routed the
// question to the expected agent. Deterministic, no LLM call.
type RoutingScorer struct {
	name      string
	weight    float64
	threshold float64
	required  bool
}

func NewRoutingScorer(scorerCfg config.ScorerConfiguration) *RoutingScorer {
	return &RoutingScorer{
		name:      scorerCfg.Name,
		weight:    scorerCfg.Weight,
		threshold: scorerCfg.Threshold,
		required:  scorerCfg.Required,
	}
}

func (s *RoutingScorer) Name() string    { return s.name }
func (s *RoutingScorer) Weight() float64 { return s.weight }
func (s *RoutingScorer) Required() bool  { return s.required }

func (s *RoutingScorer) Score(ctx context.Context, question models.Question, actual *models.ActualOutcome) models.ScorerResult {
	result := models.ScorerResult{
		ScorerName: s.name,
		Weight:     s.weight,
		Required:   s.required,
	}

	expectedAgent := question.ExpectedOutcome.Agent
	actualAgent := actual.Agent

	switch {
	case expectedAgent == "":
		result.Rationale = "Expected agent not found in expected outcome"
	case actualAgent == "":
		result.Rationale = "Agent information missing from response"
	case actualAgent == expectedAgent:
		result.Score = 1.0
		result.Rationale = fmt.Sprintf("Correct agent selected: %s", actualAgent)
	default:
		result.Rationale = fmt.Sprintf("Wrong agent: expected %s, got %s", expectedAgent, actualAgent)
	}

	result.WeightedScore = result.Score * s.weight
	result.Passed = result.Score >= s.threshold

	return result
}
