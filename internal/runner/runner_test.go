package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/povarna/generative-ai-agents/eval-service/internal/runner/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestRunner_Evaluate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTarget := mocks.NewMockTargetClient(ctrl)
	mockScorers := mocks.NewMockScorerRunner(ctrl)
	mockAgg := mocks.NewMockAggregator(ctrl)

	logger := zerolog.Nop()
	runner := NewRunner(mockTarget, mockScorers, mockAgg, &logger)

	question := models.Question{
		Question: "What was Q3 revenue?",
		ExpectedOutcome: models.ExpectedOutcome{
			Response: "$1.2M",
			Agent:    "sales_agent",
		},
	}
	actual := &models.ActualOutcome{Response: "$1.2M", Agent: "sales_agent"}
	scorerResults := []models.ScorerResult{
		{ScorerName: "agent_routing", Score: 1.0, Weight: 0.2, WeightedScore: 0.2, Passed: true, Required: true},
	}
	aggregated := models.QuestionResult{
		Question:      question,
		Actual:        actual,
		ScorerResults: scorerResults,
		OverallScore:  0.2,
		Passed:        true,
	}

	mockTarget.EXPECT().
		Send(gomock.Any(), "http://target:8080/ask", "What was Q3 revenue?").
		Return(actual, nil)
	mockScorers.EXPECT().
		Run(gomock.Any(), question, actual).
		Return(scorerResults)
	mockAgg.EXPECT().
		AggregateQuestion(question, actual, scorerResults).
		Return(aggregated)

	result := runner.Evaluate(context.Background(), question, "http://target:8080/ask")

	if result.OverallScore != 0.2 {
		t.Errorf("Expected overall_score=0.2, got %f", result.OverallScore)
	}
	if !result.Passed {
		t.Error("Expected passed=true")
	}
}

func TestRunner_Evaluate_TargetFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTarget := mocks.NewMockTargetClient(ctrl)
	mockScorers := mocks.NewMockScorerRunner(ctrl)
	mockAgg := mocks.NewMockAggregator(ctrl)

	logger := zerolog.Nop()
	runner := NewRunner(mockTarget, mockScorers, mockAgg, &logger)

	question := models.Question{Question: "What was Q3 revenue?"}

	mockTarget.EXPECT().
		Send(gomock.Any(), "http://target:8080/ask", "What was Q3 revenue?").
		Return(nil, errors.New("target unreachable: status 502"))
	// No scorers run and nothing is aggregated for a failed target call.

	result := runner.Evaluate(context.Background(), question, "http://target:8080/ask")

	if result.Error != "target unreachable: status 502" {
		t.Errorf("Expected target error recorded, got '%s'", result.Error)
	}
	if result.OverallScore != 0.0 {
		t.Errorf("Expected overall_score=0.0, got %f", result.OverallScore)
	}
	if result.Passed {
		t.Error("Expected passed=false")
	}
	if result.ScorerResults == nil || len(result.ScorerResults) != 0 {
		t.Error("Expected empty (non-nil) scorer results")
	}
}
