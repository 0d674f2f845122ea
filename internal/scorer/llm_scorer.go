package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/eval-service/internal/config"
	"github.com/povarna/generative-ai-agents/eval-service/internal/llm"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

// LLMScorer is a generic scorer backed by an LLM with a configurable
// prompt template.
type LLMScorer struct {
	name           string
	weight         float64
	threshold      float64
	required       bool
	promptTemplate *template.Template
	modelConfig    config.ModelConfig
	llmClient      llm.LLMClient
	logger         *zerolog.Logger
}

func NewLLMScorer(
	scorerCfg config.ScorerConfiguration,
	llmClient llm.LLMClient,
	logger *zerolog.Logger,
) (*LLMScorer, error) {
	tmpl, err := template.New(scorerCfg.Name).Parse(scorerCfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for scorer %s: %w", scorerCfg.Name, err)
	}

	if scorerCfg.Model == nil {
		return nil, fmt.Errorf("scorer %s has nil model config (should be populated by config loader)", scorerCfg.Name)
	}

	return &LLMScorer{
		name:           scorerCfg.Name,
		weight:         scorerCfg.Weight,
		threshold:      scorerCfg.Threshold,
		required:       scorerCfg.Required,
		promptTemplate: tmpl,
		modelConfig:    *scorerCfg.Model,
		llmClient:      llmClient,
		logger:         logger,
	}, nil
}

func (s *LLMScorer) Name() string     { return s.name }
func (s *LLMScorer) Weight() float64  { return s.weight }
func (s *LLMScorer) Required() bool   { return s.required }
func (s *LLMScorer) Threshold() float64 { return s.threshold }

// Score renders the prompt, invokes the judging model, and parses the
// JSON verdict. Every failure path returns a zero score with the
// failure as rationale.
func (s *LLMScorer) Score(ctx context.Context, question models.Question, actual *models.ActualOutcome) models.ScorerResult {
	result := models.ScorerResult{
		ScorerName: s.name,
		Weight:     s.weight,
		Required:   s.required,
	}

	prompt, err := s.buildPrompt(question, actual)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("scorer", s.name).
			Msg("failed to build prompt from template")
		result.Rationale = fmt.Sprintf("Failed to build prompt: %v", err)
		result.Errored = true
		return result
	}

	var resp *llm.LLMResponse
	if s.modelConfig.Retry {
		resp, err = s.llmClient.InvokeModelWithRetry(ctx, llm.LLMRequest{
			Prompt:      prompt,
			MaxTokens:   s.modelConfig.MaxTokens,
			Temperature: s.modelConfig.Temperature,
		})
	} else {
		resp, err = s.llmClient.InvokeModel(ctx, llm.LLMRequest{
			Prompt:      prompt,
			MaxTokens:   s.modelConfig.MaxTokens,
			Temperature: s.modelConfig.Temperature,
		})
	}

	if err != nil {
		s.logger.Error().
			Err(err).
			Str("scorer", s.name).
			Msg("LLM call failed")
		result.Rationale = fmt.Sprintf("Failed to call LLM: %v", err)
		result.Errored = true
		return result
	}

	content := stripMarkdownCodeBlock(resp.Content)
	var verdict scorerResponse
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		s.logger.Error().
			Err(err).
			Str("scorer", s.name).
			Str("content", resp.Content).
			Msg("failed to deserialize LLM response")
		result.Rationale = "Failed to deserialize LLM response"
		result.Errored = true
		return result
	}

	if verdict.Score == 0.0 && verdict.Rationale == "" {
		s.logger.Error().
			Str("scorer", s.name).
			Msg("LLM returned empty score and rationale")
		result.Rationale = "Invalid LLM response: missing score and rationale"
		result.Errored = true
		return result
	}

	if verdict.Score < 0.0 || verdict.Score > 1.0 {
		s.logger.Error().
			Str("scorer", s.name).
			Float64("score", verdict.Score).
			Msg("LLM returned invalid score")
		result.Rationale = fmt.Sprintf("Invalid LLM response: score %f out of range [0.0, 1.0]", verdict.Score)
		result.Errored = true
		return result
	}

	result.Score = verdict.Score
	result.WeightedScore = verdict.Score * s.weight
	result.Passed = verdict.Score >= s.threshold
	result.Rationale = verdict.Rationale

	s.logger.Info().
		Str("scorer", s.name).
		Float64("score", result.Score).
		Bool("passed", result.Passed).
		Msg("scorer completed")

	return result
}

func (s *LLMScorer) buildPrompt(question models.Question, actual *models.ActualOutcome) (string, error) {
	var buf bytes.Buffer
	if err := s.promptTemplate.Execute(&buf, newPromptData(question, actual)); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
