package scorer

import (
	"context"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
)

//go:generate mockgen -source=scorer.go -destination=mocks/mock_scorer.go -package=mocks

// Scorer judges one actual answer against its expected outcome. A
// scorer never returns an error: its own failures are downgraded to a
// zero score with the failure as rationale, so one broken scorer never
// aborts the question.
type Scorer interface {
	Name() string
	Weight() float64
	Required() bool
	Score(ctx context.Context, question models.Question, actual *models.ActualOutcome) models.ScorerResult
}

// scorerResponse is the JSON shape LLM scorers are prompted to return.
type scorerResponse struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// promptData is the template context for LLM scorer prompts.
type promptData struct {
	Question            string
	ExpectedResponse    string
	ExpectedAgent       string
	ExpectedReason      string
	ActualResponse      string
	ActualAgent         string
	ActualRoutingReason string
}

func newPromptData(question models.Question, actual *models.ActualOutcome) promptData {
	return promptData{
		Question:            question.Question,
		ExpectedResponse:    question.ExpectedOutcome.Response,
		ExpectedAgent:       question.ExpectedOutcome.Agent,
		ExpectedReason:      question.ExpectedOutcome.Reason,
		ActualResponse:      actual.Response,
		ActualAgent:         actual.Agent,
		ActualRoutingReason: actual.RoutingReason,
	}
}
