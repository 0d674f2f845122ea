package batch

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

func TestWriter_UnsupportedFormat(t *testing.T) {
	logger := zerolog.Nop()

	if _, err := NewWriter(&bytes.Buffer{}, "xml", &logger); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestWriter_JSONL(t *testing.T) {
	logger := zerolog.Nop()
	var buf bytes.Buffer

	writer, err := NewWriter(&buf, "jsonl", &logger)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	results := []models.QuestionResult{
		{Question: models.Question{Question: "q1"}, OverallScore: 1.0, Passed: true},
		{Question: models.Question{Question: "q2"}, OverallScore: 0.5},
	}
	for _, result := range results {
		if err := writer.Write(result); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	var first models.QuestionResult
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Failed to parse first line: %v", err)
	}
	if first.Question.Question != "q1" || !first.Passed {
		t.Errorf("Unexpected first result: %+v", first)
	}
}

func TestWriter_Summary(t *testing.T) {
	logger := zerolog.Nop()
	var buf bytes.Buffer

	writer, err := NewWriter(&buf, "summary", &logger)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	results := []models.QuestionResult{
		{
			OverallScore: 1.0,
			Passed:       true,
			ScorerResults: []models.ScorerResult{
				{ScorerName: "agent_routing", Score: 1.0},
			},
		},
		{
			OverallScore: 0.4,
			ScorerResults: []models.ScorerResult{
				{ScorerName: "agent_routing", Score: 0.0},
			},
		},
		{Error: "target unreachable"},
	}
	for _, result := range results {
		if err := writer.Write(result); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	// Per-result lines are only emitted in jsonl mode.
	if buf.Len() != 0 {
		t.Error("Expected no output before Close in summary mode")
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var summary Summary
	if err := json.Unmarshal(buf.Bytes(), &summary); err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}

	if summary.Total != 3 {
		t.Errorf("Expected total=3, got %d", summary.Total)
	}
	if summary.Passed != 1 || summary.Failed != 1 || summary.Errors != 1 {
		t.Errorf("Unexpected rollup: passed=%d failed=%d errors=%d",
			summary.Passed, summary.Failed, summary.Errors)
	}
	if math.Abs(summary.MeanScore-(1.4/3.0)) > 1e-9 {
		t.Errorf("Unexpected mean_score %f", summary.MeanScore)
	}
	if math.Abs(summary.ScorerMeans["agent_routing"]-0.5) > 1e-9 {
		t.Errorf("Expected agent_routing mean 0.5, got %f", summary.ScorerMeans["agent_routing"])
	}
}
