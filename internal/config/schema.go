package config

// ScorersConfig is the root of configs/scorers.yaml.
type ScorersConfig struct {
	Scorers Scorers `yaml:"scorers"`
}

type Scorers struct {
	DefaultModel ModelConfig           `yaml:"default_model"`
	Evaluators   []ScorerConfiguration `yaml:"evaluators"`
}

// ScorerConfiguration describes one scorer: its weight in the final
// score, the pass threshold, and whether missing the threshold vetoes
// the whole question.
type ScorerConfiguration struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"` // llm or programmatic
	Enabled     bool         `yaml:"enabled"`
	Description string       `yaml:"description"`
	Weight      float64      `yaml:"weight"`
	Threshold   float64      `yaml:"threshold"`
	Required    bool         `yaml:"required"`
	Prompt      string       `yaml:"prompt"`
	Model       *ModelConfig `yaml:"model"`
}

// ModelConfig are per-scorer LLM invocation parameters.
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}

const (
	ScorerTypeLLM          = "llm"
	ScorerTypeProgrammatic = "programmatic"
)
