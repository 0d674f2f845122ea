package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scorers.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadScorersConfig_Success(t *testing.T) {
	content := `
scorers:
  default_model:
    max_tokens: 256
    temperature: 0.5
    retry: true
  evaluators:
    - name: numerical_accuracy
      type: llm
      enabled: true
      weight: 0.3
      threshold: 1.0
      required: true
      prompt: "Score: {{.ActualResponse}}"
    - name: agent_routing
      type: programmatic
      enabled: true
      weight: 0.2
      required: true
`
	t.Setenv("SCORERS_CONFIG_PATH", writeConfigFile(t, content))

	cfg, err := LoadScorersConfig()
	if err != nil {
		t.Fatalf("LoadScorersConfig failed: %v", err)
	}

	if len(cfg.Scorers.Evaluators) != 2 {
		t.Fatalf("Expected 2 evaluators, got %d", len(cfg.Scorers.Evaluators))
	}
	if cfg.Scorers.DefaultModel.MaxTokens != 256 {
		t.Errorf("Expected default max_tokens=256, got %d", cfg.Scorers.DefaultModel.MaxTokens)
	}

	first := cfg.Scorers.Evaluators[0]
	if first.Name != "numerical_accuracy" {
		t.Errorf("Expected 'numerical_accuracy', got '%s'", first.Name)
	}
	if first.Model == nil || first.Model.MaxTokens != 256 {
		t.Error("Expected default model applied to scorer without a model block")
	}
	if !first.Model.Retry {
		t.Error("Expected retry inherited from default model")
	}
}

func TestLoadScorersConfig_FileNotFound(t *testing.T) {
	t.Setenv("SCORERS_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := LoadScorersConfig(); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadScorersConfig_InvalidYAML(t *testing.T) {
	t.Setenv("SCORERS_CONFIG_PATH", writeConfigFile(t, "scorers: [not: valid"))

	if _, err := LoadScorersConfig(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestApplyDefaults_Thresholds(t *testing.T) {
	cfg := &ScorersConfig{
		Scorers: Scorers{
			Evaluators: []ScorerConfiguration{
				{Name: "required_one", Required: true, Prompt: "x"},
				{Name: "optional_one", Prompt: "x"},
				{Name: "explicit", Threshold: 0.5, Prompt: "x"},
			},
		},
	}

	applyDefaults(cfg)

	if cfg.Scorers.Evaluators[0].Threshold != 1.0 {
		t.Errorf("Expected required threshold default 1.0, got %f", cfg.Scorers.Evaluators[0].Threshold)
	}
	if cfg.Scorers.Evaluators[1].Threshold != 0.8 {
		t.Errorf("Expected optional threshold default 0.8, got %f", cfg.Scorers.Evaluators[1].Threshold)
	}
	if cfg.Scorers.Evaluators[2].Threshold != 0.5 {
		t.Errorf("Expected explicit threshold kept, got %f", cfg.Scorers.Evaluators[2].Threshold)
	}
	if cfg.Scorers.Evaluators[0].Type != ScorerTypeLLM {
		t.Errorf("Expected type default llm, got %q", cfg.Scorers.Evaluators[0].Type)
	}
	if cfg.Scorers.DefaultModel.MaxTokens != 512 {
		t.Errorf("Expected default max_tokens=512, got %d", cfg.Scorers.DefaultModel.MaxTokens)
	}
}

func TestValidate(t *testing.T) {
	valid := func() ScorersConfig {
		return ScorersConfig{
			Scorers: Scorers{
				Evaluators: []ScorerConfiguration{
					{Name: "a", Type: ScorerTypeLLM, Prompt: "x", Weight: 0.5, Threshold: 1.0},
					{Name: "b", Type: ScorerTypeProgrammatic, Weight: 0.5, Threshold: 1.0},
				},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ScorersConfig)
		wantErr string
	}{
		{"valid", func(c *ScorersConfig) {}, ""},
		{"no scorers", func(c *ScorersConfig) { c.Scorers.Evaluators = nil }, "no scorers"},
		{"empty name", func(c *ScorersConfig) { c.Scorers.Evaluators[0].Name = "" }, "empty name"},
		{"duplicate name", func(c *ScorersConfig) { c.Scorers.Evaluators[1].Name = "a" }, "duplicate"},
		{"unknown type", func(c *ScorersConfig) { c.Scorers.Evaluators[0].Type = "regex" }, "unknown type"},
		{"llm without prompt", func(c *ScorersConfig) { c.Scorers.Evaluators[0].Prompt = "" }, "requires a prompt"},
		{"weight too high", func(c *ScorersConfig) { c.Scorers.Evaluators[0].Weight = 1.5 }, "weight"},
		{"negative threshold", func(c *ScorersConfig) { c.Scorers.Evaluators[0].Threshold = -0.1 }, "threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestEnabled_PreservesFileOrder(t *testing.T) {
	cfg := ScorersConfig{
		Scorers: Scorers{
			Evaluators: []ScorerConfiguration{
				{Name: "first", Enabled: true},
				{Name: "off", Enabled: false},
				{Name: "second", Enabled: true},
			},
		},
	}

	enabled := cfg.Enabled()
	if len(enabled) != 2 {
		t.Fatalf("Expected 2 enabled scorers, got %d", len(enabled))
	}
	if enabled[0].Name != "first" || enabled[1].Name != "second" {
		t.Error("Expected enabled scorers in file order")
	}
}
