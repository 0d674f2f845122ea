package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

// Writer emits batch results either as JSONL (one result per line) or
// as a single summary document written on Close.
type Writer struct {
	output  io.Writer
	format  string
	encoder *json.Encoder
	logger  *zerolog.Logger

	summary Summary
}

// Summary aggregates a whole batch run.
type Summary struct {
	Total        int                `json:"total"`
	Passed       int                `json:"passed"`
	Failed       int                `json:"failed"`
	Errors       int                `json:"errors"`
	MeanScore    float64            `json:"mean_score"`
	ScorerMeans  map[string]float64 `json:"scorer_means"`
	scorerCounts map[string]int
	totalScore   float64
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != "jsonl" && format != "summary" {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return &Writer{
		output:  output,
		format:  format,
		encoder: json.NewEncoder(output),
		logger:  logger,
		summary: Summary{
			ScorerMeans:  make(map[string]float64),
			scorerCounts: make(map[string]int),
		},
	}, nil
}

func (w *Writer) Write(result models.QuestionResult) error {
	w.accumulate(result)

	if w.format == "jsonl" {
		return w.encoder.Encode(result)
	}

	return nil
}

// Close finishes the summary format; a no-op for jsonl.
func (w *Writer) Close() error {
	if w.format != "summary" {
		return nil
	}

	for name, total := range w.summary.ScorerMeans {
		if count := w.summary.scorerCounts[name]; count > 0 {
			w.summary.ScorerMeans[name] = total / float64(count)
		}
	}
	if w.summary.Total > 0 {
		w.summary.MeanScore = w.summary.totalScore / float64(w.summary.Total)
	}

	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(w.summary)
}

// Summary returns the accumulated rollup, final after all writes.
func (w *Writer) Summary() Summary {
	return w.summary
}

func (w *Writer) accumulate(result models.QuestionResult) {
	w.summary.Total++
	w.summary.totalScore += result.OverallScore

	switch {
	case result.Error != "":
		w.summary.Errors++
	case result.Passed:
		w.summary.Passed++
	default:
		w.summary.Failed++
	}

	for _, sr := range result.ScorerResults {
		w.summary.ScorerMeans[sr.ScorerName] += sr.Score
		w.summary.scorerCounts[sr.ScorerName]++
	}
}
