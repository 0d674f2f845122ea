package sink

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

// Reports renders a completed job into a JSON report and an HTML
// report on local disk, one directory per job.
type Reports struct {
	baseDir string
	logger  *zerolog.Logger
}

func NewReports(baseDir string, logger *zerolog.Logger) *Reports {
	return &Reports{
		baseDir: baseDir,
		logger:  logger,
	}
}

func (r *Reports) Write(job models.Job) (string, string, error) {
	dir := filepath.Join(r.baseDir, job.JobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create report dir: %w", err)
	}

	jsonPath := filepath.Join(dir, "results.json")
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write json report: %w", err)
	}

	htmlPath := filepath.Join(dir, "report.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create html report: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, job); err != nil {
		return "", "", fmt.Errorf("failed to render html report: %w", err)
	}

	r.logger.Info().
		Str("job_id", job.JobID).
		Str("json", jsonPath).
		Str("html", htmlPath).
		Msg("reports written")

	return jsonPath, htmlPath, nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Evaluation Report {{.JobID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
.pass { color: #1a7f37; }
.fail { color: #cf222e; }
</style>
</head>
<body>
<h1>Evaluation Report</h1>
<table>
<tr><th>Job</th><td>{{.JobID}}</td></tr>
<tr><th>Status</th><td>{{.Status}}</td></tr>
<tr><th>Target</th><td>{{.TargetURL}}</td></tr>
<tr><th>Overall score</th><td>{{printf "%.3f" .OverallScore}}</td></tr>
<tr><th>Overall passed</th><td>{{if .OverallPassed}}<span class="pass">yes</span>{{else}}<span class="fail">no</span>{{end}}</td></tr>
<tr><th>Submitted</th><td>{{.SubmittedAt}}</td></tr>
<tr><th>Completed</th><td>{{.CompletedAt}}</td></tr>
</table>
{{range $i, $qr := .QuestionResults}}
<h2>Question {{$i}}: {{$qr.Question.Question}}</h2>
{{if $qr.Error}}
<p class="fail">Error: {{$qr.Error}}</p>
{{else}}
<p>Score {{printf "%.3f" $qr.OverallScore}},
{{if $qr.Passed}}<span class="pass">passed</span>{{else}}<span class="fail">failed</span>{{end}}</p>
<table>
<tr><th>Scorer</th><th>Score</th><th>Weight</th><th>Weighted</th><th>Passed</th><th>Rationale</th></tr>
{{range $qr.ScorerResults}}
<tr>
<td>{{.ScorerName}}</td>
<td>{{printf "%.2f" .Score}}</td>
<td>{{printf "%.2f" .Weight}}</td>
<td>{{printf "%.3f" .WeightedScore}}</td>
<td>{{if .Passed}}<span class="pass">yes</span>{{else}}<span class="fail">no</span>{{end}}</td>
<td>{{.Rationale}}</td>
</tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
`))
