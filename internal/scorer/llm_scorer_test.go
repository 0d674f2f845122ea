package scorer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/eval-service/internal/config"
	"github.com/povarna/generative-ai-agents/eval-service/internal/llm"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

func TestNewLLMScorer_Success(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:        "completeness",
		Type:        config.ScorerTypeLLM,
		Enabled:     true,
		Description: "Checks response completeness",
		Weight:      0.1,
		Threshold:   0.8,
		Prompt:      "Question: {{.Question}}\nAnswer: {{.ActualResponse}}",
		Model: &config.ModelConfig{
			MaxTokens:   256,
			Temperature: 0.0,
			Retry:       false,
		},
	}

	scorer, err := NewLLMScorer(cfg, &MockLLMClient{}, &logger)
	if err != nil {
		t.Fatalf("NewLLMScorer failed: %v", err)
	}

	if scorer.Name() != "completeness" {
		t.Errorf("Expected name 'completeness', got '%s'", scorer.Name())
	}
	if scorer.Weight() != 0.1 {
		t.Errorf("Expected weight=0.1, got %f", scorer.Weight())
	}
	if scorer.Required() {
		t.Error("Expected required=false")
	}
	if scorer.Threshold() != 0.8 {
		t.Errorf("Expected threshold=0.8, got %f", scorer.Threshold())
	}
}

func TestNewLLMScorer_InvalidTemplate(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:   "completeness",
		Prompt: "{{.Invalid", // Invalid template syntax
		Model: &config.ModelConfig{
			MaxTokens: 256,
		},
	}

	_, err := NewLLMScorer(cfg, &MockLLMClient{}, &logger)
	if err == nil {
		t.Error("Expected error for invalid template")
	}
}

func TestNewLLMScorer_NilModelConfig(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:   "completeness",
		Prompt: "test",
		Model:  nil, // Should not happen after config loading
	}

	_, err := NewLLMScorer(cfg, &MockLLMClient{}, &logger)
	if err == nil {
		t.Error("Expected error for nil model config")
	}
}

func TestLLMScorer_Score_Success(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "numerical_accuracy",
		Weight:    0.3,
		Threshold: 1.0,
		Required:  true,
		Prompt:    "Question: {{.Question}}\nExpected: {{.ExpectedResponse}}\nActual: {{.ActualResponse}}",
		Model: &config.ModelConfig{
			MaxTokens:   256,
			Temperature: 0.0,
			Retry:       false,
		},
	}

	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{
			Content: `{"score": 1.0, "rationale": "All figures match"}`,
		},
	}

	scorer, err := NewLLMScorer(cfg, mockClient, &logger)
	if err != nil {
		t.Fatalf("NewLLMScorer failed: %v", err)
	}

	question := models.Question{
		Question: "What was Q3 revenue?",
		ExpectedOutcome: models.ExpectedOutcome{
			Response: "Q3 revenue was $1.2M",
		},
	}
	actual := &models.ActualOutcome{Response: "Revenue for Q3 was $1.2M"}

	result := scorer.Score(context.Background(), question, actual)

	if result.Score != 1.0 {
		t.Errorf("Expected score=1.0, got %f", result.Score)
	}
	if result.WeightedScore != 0.3 {
		t.Errorf("Expected weighted_score=0.3, got %f", result.WeightedScore)
	}
	if !result.Passed {
		t.Error("Expected passed=true")
	}
	if result.Errored {
		t.Error("Expected errored=false")
	}
	if result.Rationale != "All figures match" {
		t.Errorf("Expected rationale='All figures match', got '%s'", result.Rationale)
	}
	if !mockClient.WasCalled {
		t.Error("Expected LLM client to be called")
	}
	if !strings.Contains(mockClient.LastRequest.Prompt, "What was Q3 revenue?") {
		t.Error("Expected prompt to contain the question text")
	}
}

func TestLLMScorer_Score_BelowThreshold(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "completeness",
		Weight:    0.1,
		Threshold: 0.8,
		Prompt:    "{{.ActualResponse}}",
		Model:     &config.ModelConfig{MaxTokens: 256},
	}

	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{
			Content: `{"score": 0.5, "rationale": "Missing breakdown by region"}`,
		},
	}

	scorer, _ := NewLLMScorer(cfg, mockClient, &logger)
	result := scorer.Score(context.Background(), models.Question{}, &models.ActualOutcome{Response: "partial"})

	if result.Score != 0.5 {
		t.Errorf("Expected score=0.5, got %f", result.Score)
	}
	if result.Passed {
		t.Error("Expected passed=false for score below threshold")
	}
	if result.Errored {
		t.Error("A low score is not a scorer error")
	}
}

func TestLLMScorer_Score_MarkdownWrappedResponse(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "completeness",
		Weight:    0.1,
		Threshold: 0.8,
		Prompt:    "{{.ActualResponse}}",
		Model:     &config.ModelConfig{MaxTokens: 256},
	}

	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{
			Content: "```json\n{\"score\": 0.9, \"rationale\": \"Covers everything\"}\n```",
		},
	}

	scorer, _ := NewLLMScorer(cfg, mockClient, &logger)
	result := scorer.Score(context.Background(), models.Question{}, &models.ActualOutcome{})

	if result.Score != 0.9 {
		t.Errorf("Expected score=0.9 after stripping code fences, got %f", result.Score)
	}
	if !result.Passed {
		t.Error("Expected passed=true")
	}
}

func TestLLMScorer_Score_LLMError(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "completeness",
		Weight:    0.1,
		Threshold: 0.8,
		Prompt:    "{{.ActualResponse}}",
		Model:     &config.ModelConfig{MaxTokens: 256},
	}

	mockClient := &MockLLMClient{
		ErrorToReturn: errors.New("throttled"),
	}

	scorer, _ := NewLLMScorer(cfg, mockClient, &logger)
	result := scorer.Score(context.Background(), models.Question{}, &models.ActualOutcome{})

	if result.Score != 0.0 {
		t.Errorf("Expected score=0.0 on LLM failure, got %f", result.Score)
	}
	if result.Passed {
		t.Error("Expected passed=false on LLM failure")
	}
	if !result.Errored {
		t.Error("Expected errored=true on LLM failure")
	}
	if !strings.Contains(result.Rationale, "Failed to call LLM") {
		t.Errorf("Expected failure rationale, got '%s'", result.Rationale)
	}
}

func TestLLMScorer_Score_MalformedJSON(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "completeness",
		Weight:    0.1,
		Threshold: 0.8,
		Prompt:    "{{.ActualResponse}}",
		Model:     &config.ModelConfig{MaxTokens: 256},
	}

	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: "not json at all"},
	}

	scorer, _ := NewLLMScorer(cfg, mockClient, &logger)
	result := scorer.Score(context.Background(), models.Question{}, &models.ActualOutcome{})

	if result.Score != 0.0 {
		t.Errorf("Expected score=0.0 for malformed response, got %f", result.Score)
	}
	if !result.Errored {
		t.Error("Expected errored=true for malformed response")
	}
	if result.Rationale != "Failed to deserialize LLM response" {
		t.Errorf("Unexpected rationale '%s'", result.Rationale)
	}
}

func TestLLMScorer_Score_EmptyVerdict(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "completeness",
		Weight:    0.1,
		Threshold: 0.8,
		Prompt:    "{{.ActualResponse}}",
		Model:     &config.ModelConfig{MaxTokens: 256},
	}

	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `{}`},
	}

	scorer, _ := NewLLMScorer(cfg, mockClient, &logger)
	result := scorer.Score(context.Background(), models.Question{}, &models.ActualOutcome{})

	if !result.Errored {
		t.Error("Expected errored=true for empty verdict")
	}
	if !strings.Contains(result.Rationale, "missing score and rationale") {
		t.Errorf("Unexpected rationale '%s'", result.Rationale)
	}
}

func TestLLMScorer_Score_OutOfRange(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "completeness",
		Weight:    0.1,
		Threshold: 0.8,
		Prompt:    "{{.ActualResponse}}",
		Model:     &config.ModelConfig{MaxTokens: 256},
	}

	tests := []struct {
		name    string
		content string
	}{
		{"negative", `{"score": -0.5, "rationale": "bad"}`},
		{"above one", `{"score": 1.5, "rationale": "bad"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockLLMClient{
				ResponseToReturn: &llm.LLMResponse{Content: tt.content},
			}

			scorer, _ := NewLLMScorer(cfg, mockClient, &logger)
			result := scorer.Score(context.Background(), models.Question{}, &models.ActualOutcome{})

			if result.Score != 0.0 {
				t.Errorf("Expected score=0.0 for out of range verdict, got %f", result.Score)
			}
			if !result.Errored {
				t.Error("Expected errored=true for out of range verdict")
			}
			if !strings.Contains(result.Rationale, "out of range") {
				t.Errorf("Expected out of range rationale, got '%s'", result.Rationale)
			}
		})
	}
}

func TestLLMScorer_Score_RetryConfigured(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.ScorerConfiguration{
		Name:      "completeness",
		Weight:    0.1,
		Threshold: 0.8,
		Prompt:    "{{.ActualResponse}}",
		Model: &config.ModelConfig{
			MaxTokens: 256,
			Retry:     true,
		},
	}

	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{
			Content: `{"score": 1.0, "rationale": "ok"}`,
		},
	}

	scorer, _ := NewLLMScorer(cfg, mockClient, &logger)
	scorer.Score(context.Background(), models.Question{}, &models.ActualOutcome{})

	if !mockClient.RetryWasUsed {
		t.Error("Expected InvokeModelWithRetry when retry is configured")
	}
}

func TestStripMarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"score": 1.0}`, `{"score": 1.0}`},
		{"json fence", "```json\n{\"score\": 1.0}\n```", `{"score": 1.0}`},
		{"bare fence", "```\n{\"score\": 1.0}\n```", `{"score": 1.0}`},
		{"surrounding whitespace", "  {\"score\": 1.0}  ", `{"score": 1.0}`},
		{"unterminated fence", "```json\n{\"score\": 1.0}", "```json\n{\"score\": 1.0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripMarkdownCodeBlock(tt.input)
			if got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

// MockLLMClient for testing
type MockLLMClient struct {
	ResponseToReturn *llm.LLMResponse
	ErrorToReturn    error
	WasCalled        bool
	RetryWasUsed     bool
	LastRequest      *llm.LLMRequest
}

func (m *MockLLMClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	m.WasCalled = true
	m.LastRequest = &request
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	return m.ResponseToReturn, nil
}

func (m *MockLLMClient) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	m.WasCalled = true
	m.RetryWasUsed = true
	m.LastRequest = &request
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	return m.ResponseToReturn, nil
}
