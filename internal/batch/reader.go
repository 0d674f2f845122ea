package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// InputRecord is one parsed dataset entry. A malformed entry carries
// its parse error instead of aborting the whole file.
type InputRecord struct {
	Question   models.Question
	LineNumber int
	Error      error
}

// Reader parses evaluation datasets: JSONL (one question per line) or
// YAML (a list, the hydrated dataset format where expected_outcome may
// be a JSON string).
type Reader struct {
	input  io.Reader
	format string
	logger *zerolog.Logger
}

func NewReader(input io.Reader, format string, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		format: format,
		logger: logger,
	}
}

func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		switch r.format {
		case "yaml":
			r.readYAML(ctx, out)
		default:
			r.readJSONL(ctx, out)
		}
	}()

	return out
}

type rawQuestion struct {
	Question        string          `json:"question"`
	ExpectedOutcome json.RawMessage `json:"expected_outcome"`
}

func (r *Reader) readJSONL(ctx context.Context, out chan<- InputRecord) {
	scanner := bufio.NewScanner(r.input)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record := InputRecord{LineNumber: lineNumber}

		var raw rawQuestion
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			out <- record
			continue
		}

		record.Question.Question = raw.Question
		record.Question.ExpectedOutcome, record.Error = parseExpected(raw.ExpectedOutcome)
		if record.Error == nil && record.Question.Question == "" {
			record.Error = fmt.Errorf("line %d: question text is required", lineNumber)
		}

		out <- record
	}

	if err := scanner.Err(); err != nil {
		r.logger.Error().Err(err).Msg("failed to read input")
		out <- InputRecord{LineNumber: lineNumber + 1, Error: err}
	}
}

type yamlQuestion struct {
	Question        string    `yaml:"question"`
	ExpectedOutcome yaml.Node `yaml:"expected_outcome"`
}

func (r *Reader) readYAML(ctx context.Context, out chan<- InputRecord) {
	data, err := io.ReadAll(r.input)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read input")
		out <- InputRecord{LineNumber: 1, Error: err}
		return
	}

	var entries []yamlQuestion
	if err := yaml.Unmarshal(data, &entries); err != nil {
		out <- InputRecord{LineNumber: 1, Error: err}
		return
	}

	for i, entry := range entries {
		if ctx.Err() != nil {
			return
		}

		record := InputRecord{LineNumber: i + 1}
		record.Question.Question = entry.Question
		record.Question.ExpectedOutcome, record.Error = parseExpectedNode(entry.ExpectedOutcome)
		if record.Error == nil && record.Question.Question == "" {
			record.Error = fmt.Errorf("entry %d: question text is required", i+1)
		}

		out <- record
	}
}

// parseExpected accepts expected_outcome as either a JSON object or a
// JSON string wrapping one (the hydrated dataset encodes it as a
// string).
func parseExpected(raw json.RawMessage) (models.ExpectedOutcome, error) {
	var expected models.ExpectedOutcome

	if len(raw) == 0 {
		return expected, fmt.Errorf("expected_outcome is required")
	}

	if err := json.Unmarshal(raw, &expected); err == nil {
		return expected, nil
	}

	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return expected, fmt.Errorf("invalid expected_outcome: %w", err)
	}
	if err := json.Unmarshal([]byte(wrapped), &expected); err != nil {
		return expected, fmt.Errorf("invalid expected_outcome string: %w", err)
	}

	return expected, nil
}

func parseExpectedNode(node yaml.Node) (models.ExpectedOutcome, error) {
	var expected models.ExpectedOutcome

	switch node.Kind {
	case yaml.ScalarNode:
		if err := json.Unmarshal([]byte(node.Value), &expected); err != nil {
			return expected, fmt.Errorf("invalid expected_outcome string: %w", err)
		}
		return expected, nil
	case yaml.MappingNode:
		if err := node.Decode(&expected); err != nil {
			return expected, fmt.Errorf("invalid expected_outcome: %w", err)
		}
		return expected, nil
	default:
		return expected, fmt.Errorf("expected_outcome is required")
	}
}
