package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/eval-service/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/eval-service/internal/jobs"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

type Handler struct {
	store   *jobs.Store
	scorers []ScorerInfo
	logger  *zerolog.Logger
}

func NewHandler(store *jobs.Store, scorers []ScorerInfo, logger *zerolog.Logger) *Handler {
	return &Handler{
		store:   store,
		scorers: scorers,
		logger:  logger,
	}
}

// POST /api/v1/evaluate
// Creates the job and returns immediately; the worker picks it up.
func (h *Handler) Submit(req *restful.Request, resp *restful.Response) {
	var evalRequest EvaluationRequest
	if err := req.ReadEntity(&evalRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := validate(evalRequest); err != nil {
		h.logger.Warn().Err(err).Msg("Rejected submission")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if evalRequest.RequestID != "" {
		if existingID, ok := h.store.FindByRequestID(evalRequest.RequestID); ok {
			job, err := h.store.Get(existingID)
			if err != nil {
				middleware.HandleError(resp, err, http.StatusInternalServerError)
				return
			}

			h.logger.Info().
				Str("job_id", existingID).
				Str("request_id", evalRequest.RequestID).
				Msg("duplicate submission, returning existing job")

			resp.WriteHeaderAndEntity(http.StatusAccepted, statusView(job))
			return
		}
	}

	jobID := h.store.Create(evalRequest.TargetURL, evalRequest.Questions, evalRequest.RequestID)

	h.logger.Info().
		Str("job_id", jobID).
		Str("target_url", evalRequest.TargetURL).
		Int("questions", len(evalRequest.Questions)).
		Msg("evaluation submitted")

	job, err := h.store.Get(jobID)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusAccepted, statusView(job))
}

// GET /api/v1/evaluate/{job_id}
func (h *Handler) Status(req *restful.Request, resp *restful.Response) {
	jobID := req.PathParameter("job_id")

	job, err := h.store.Get(jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, statusView(job))
}

// GET /api/v1/evaluate/{job_id}/results
// Full results, only once the job completed.
func (h *Handler) Results(req *restful.Request, resp *restful.Response) {
	jobID := req.PathParameter("job_id")

	job, err := h.store.Get(jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	if job.Status != models.JobStatusCompleted {
		middleware.HandleError(resp,
			fmt.Errorf("results not available, job status: %s", job.Status),
			http.StatusBadRequest)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, resultsView(job))
}

// GET /api/v1/jobs
func (h *Handler) ListJobs(req *restful.Request, resp *restful.Response) {
	all := h.store.List()

	list := JobList{
		Total: len(all),
		Jobs:  make([]JobSummary, 0, len(all)),
	}
	for _, job := range all {
		list.Jobs = append(list.Jobs, JobSummary{
			JobID:          job.JobID,
			Status:         job.Status,
			SubmittedAt:    job.SubmittedAt,
			TotalQuestions: len(job.Questions),
		})
	}

	resp.WriteHeaderAndEntity(http.StatusOK, list)
}

// GET /api/v1/scorers
func (h *Handler) ListScorers(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.scorers)
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

// validate rejects malformed submissions before a job exists, so
// nothing invalid ever enters the queue.
func validate(req EvaluationRequest) error {
	if req.TargetURL == "" {
		return fmt.Errorf("target_url is required")
	}
	if u, err := url.Parse(req.TargetURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("target_url is not a valid URL: %s", req.TargetURL)
	}
	if len(req.Questions) == 0 {
		return fmt.Errorf("questions must not be empty")
	}
	for i, q := range req.Questions {
		if q.Question == "" {
			return fmt.Errorf("questions[%d]: question text is required", i)
		}
		if q.ExpectedOutcome.Response == "" && q.ExpectedOutcome.Agent == "" {
			return fmt.Errorf("questions[%d]: expected_outcome is required", i)
		}
	}
	return nil
}
