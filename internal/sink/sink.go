package sink

import (
	"context"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

// Sink is the composite result sink: report files always, warehouse
// and stream when configured. The report refs come from the report
// writer; warehouse and stream failures are logged and swallowed, the
// job store stays the system of record.
type Sink struct {
	reports   *Reports
	warehouse *Warehouse
	publisher *Publisher
	logger    *zerolog.Logger
}

func New(reports *Reports, warehouse *Warehouse, publisher *Publisher, logger *zerolog.Logger) *Sink {
	return &Sink{
		reports:   reports,
		warehouse: warehouse,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Sink) Persist(ctx context.Context, job models.Job) (string, string, error) {
	jsonRef, htmlRef, err := s.reports.Write(job)
	if err != nil {
		return "", "", err
	}

	job.ReportJSONPath = jsonRef
	job.ReportHTMLPath = htmlRef

	if s.warehouse != nil {
		if err := s.warehouse.WriteResults(ctx, job); err != nil {
			s.logger.Error().Err(err).Str("job_id", job.JobID).Msg("warehouse write failed")
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, job); err != nil {
			s.logger.Error().Err(err).Str("job_id", job.JobID).Msg("stream publish failed")
		}
	}

	return jsonRef, htmlRef, nil
}
