package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaxTokens = 512

	// Required scorers must hit a full score unless configured
	// otherwise; optional scorers pass at 0.8.
	defaultRequiredThreshold = 1.0
	defaultOptionalThreshold = 0.8
)

func LoadScorersConfig() (*ScorersConfig, error) {
	path := os.Getenv("SCORERS_CONFIG_PATH")
	if path == "" {
		path = "configs/scorers.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg ScorersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *ScorersConfig) {
	if cfg.Scorers.DefaultModel.MaxTokens == 0 {
		cfg.Scorers.DefaultModel.MaxTokens = defaultMaxTokens
	}

	for i := range cfg.Scorers.Evaluators {
		sc := &cfg.Scorers.Evaluators[i]

		if sc.Type == "" {
			sc.Type = ScorerTypeLLM
		}

		if sc.Model == nil {
			model := cfg.Scorers.DefaultModel
			sc.Model = &model
		} else if sc.Model.MaxTokens == 0 {
			sc.Model.MaxTokens = cfg.Scorers.DefaultModel.MaxTokens
		}

		if sc.Threshold == 0 {
			if sc.Required {
				sc.Threshold = defaultRequiredThreshold
			} else {
				sc.Threshold = defaultOptionalThreshold
			}
		}
	}
}

func (c *ScorersConfig) Validate() error {
	if len(c.Scorers.Evaluators) == 0 {
		return fmt.Errorf("no scorers configured")
	}

	seen := make(map[string]bool)
	for _, sc := range c.Scorers.Evaluators {
		if sc.Name == "" {
			return fmt.Errorf("scorer with empty name")
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scorer name: %s", sc.Name)
		}
		seen[sc.Name] = true

		if sc.Type != ScorerTypeLLM && sc.Type != ScorerTypeProgrammatic {
			return fmt.Errorf("scorer %s: unknown type %q", sc.Name, sc.Type)
		}
		if sc.Type == ScorerTypeLLM && sc.Prompt == "" {
			return fmt.Errorf("scorer %s: llm scorer requires a prompt", sc.Name)
		}
		if sc.Weight < 0 || sc.Weight > 1 {
			return fmt.Errorf("scorer %s: weight %f out of range [0, 1]", sc.Name, sc.Weight)
		}
		if sc.Threshold < 0 || sc.Threshold > 1 {
			return fmt.Errorf("scorer %s: threshold %f out of range [0, 1]", sc.Name, sc.Threshold)
		}
	}

	return nil
}

// Enabled returns the configured scorers that are enabled, in file
// order. That order is the canonical scorer order for results.
func (c *ScorersConfig) Enabled() []ScorerConfiguration {
	var enabled []ScorerConfiguration
	for _, sc := range c.Scorers.Evaluators {
		if sc.Enabled {
			enabled = append(enabled, sc)
		}
	}
	return enabled
}
