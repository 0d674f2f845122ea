package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/eval-service/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/scorers").
			To(handler.ListScorers).
			Doc("List configured scorers with weights and thresholds").
			Metadata(restfulspec.KeyOpenAPITags, []string{"scorers"}).
			Writes([]ScorerInfo{}).
			Returns(200, "OK", []ScorerInfo{}))

	ws.
		Route(ws.POST("/evaluate").
			To(handler.Submit).
			Doc("Submit a batch evaluation job").
			Notes("Returns 202 Accepted with a job_id for polling.").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Reads(EvaluationRequest{}).
			Writes(EvaluationResponse{}).
			Returns(202, "Accepted", EvaluationResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/evaluate/{job_id}").
			To(handler.Status).
			Doc("Get evaluation job status").
			Notes("Poll this endpoint to track progress; progress is present while running.").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Param(ws.PathParameter("job_id", "Job identifier").DataType("string")).
			Writes(EvaluationResponse{}).
			Returns(200, "OK", EvaluationResponse{}).
			Returns(404, "Job Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/evaluate/{job_id}/results").
			To(handler.Results).
			Doc("Get detailed evaluation results").
			Notes("Only available when the job status is completed.").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Param(ws.PathParameter("job_id", "Job identifier").DataType("string")).
			Writes(EvaluationResults{}).
			Returns(200, "OK", EvaluationResults{}).
			Returns(400, "Results Not Available", middleware.ErrorResponse{}).
			Returns(404, "Job Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/jobs").
			To(handler.ListJobs).
			Doc("List all evaluation jobs").
			Metadata(restfulspec.KeyOpenAPITags, []string{"jobs"}).
			Writes(JobList{}).
			Returns(200, "OK", JobList{}))

	container.Add(ws)
}
