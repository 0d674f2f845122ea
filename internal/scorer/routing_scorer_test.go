package scorer

import (
	"context"
	"testing"

	"github.com/povarna/generative-ai-agents/eval-service/internal/config"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
)

func routingConfig() config.ScorerConfiguration {
	return config.ScorerConfiguration{
		Name:      "agent_routing",
		Type:      config.ScorerTypeProgrammatic,
		Enabled:   true,
		Weight:    0.2,
		Threshold: 1.0,
		Required:  true,
	}
}

func TestRoutingScorer_CorrectAgent(t *testing.T) {
	scorer := NewRoutingScorer(routingConfig())

	question := models.Question{
		ExpectedOutcome: models.ExpectedOutcome{Agent: "sales_agent"},
	}
	actual := &models.ActualOutcome{Agent: "sales_agent"}

	result := scorer.Score(context.Background(), question, actual)

	if result.Score != 1.0 {
		t.Errorf("Expected score=1.0, got %f", result.Score)
	}
	if result.WeightedScore != 0.2 {
		t.Errorf("Expected weighted_score=0.2, got %f", result.WeightedScore)
	}
	if !result.Passed {
		t.Error("Expected passed=true")
	}
	if result.Rationale != "Correct agent selected: sales_agent" {
		t.Errorf("Unexpected rationale '%s'", result.Rationale)
	}
}

func TestRoutingScorer_WrongAgent(t *testing.T) {
	scorer := NewRoutingScorer(routingConfig())

	question := models.Question{
		ExpectedOutcome: models.ExpectedOutcome{Agent: "sales_agent"},
	}
	actual := &models.ActualOutcome{Agent: "support_agent"}

	result := scorer.Score(context.Background(), question, actual)

	if result.Score != 0.0 {
		t.Errorf("Expected score=0.0, got %f", result.Score)
	}
	if result.Passed {
		t.Error("Expected passed=false")
	}
	if result.Rationale != "Wrong agent: expected sales_agent, got support_agent" {
		t.Errorf("Unexpected rationale '%s'", result.Rationale)
	}
}

func TestRoutingScorer_MissingExpectedAgent(t *testing.T) {
	scorer := NewRoutingScorer(routingConfig())

	question := models.Question{
		ExpectedOutcome: models.ExpectedOutcome{Response: "some answer"},
	}
	actual := &models.ActualOutcome{Agent: "sales_agent"}

	result := scorer.Score(context.Background(), question, actual)

	if result.Score != 0.0 {
		t.Errorf("Expected score=0.0, got %f", result.Score)
	}
	if result.Errored {
		t.Error("Missing expected agent is a scoring outcome, not a scorer error")
	}
	if result.Rationale != "Expected agent not found in expected outcome" {
		t.Errorf("Unexpected rationale '%s'", result.Rationale)
	}
}

func TestRoutingScorer_MissingActualAgent(t *testing.T) {
	scorer := NewRoutingScorer(routingConfig())

	question := models.Question{
		ExpectedOutcome: models.ExpectedOutcome{Agent: "sales_agent"},
	}
	actual := &models.ActualOutcome{Response: "answer without agent info"}

	result := scorer.Score(context.Background(), question, actual)

	if result.Score != 0.0 {
		t.Errorf("Expected score=0.0, got %f", result.Score)
	}
	if result.Rationale != "Agent information missing from response" {
		t.Errorf("Unexpected rationale '%s'", result.Rationale)
	}
}
