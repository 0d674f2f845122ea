package jobs

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidTransition = errors.New("invalid job status transition")
)

// Store is a thread-safe in-memory job store. It exclusively owns all
// Job instances: callers receive deep-copied snapshots, and all
// mutation goes through Update or Claim under the store lock.
type Store struct {
	mu                 sync.Mutex
	jobs               map[string]*models.Job
	order              []string
	requestIDs         map[string]string
	notify             chan struct{}
	scorersPerQuestion int
	logger             *zerolog.Logger
}

func NewStore(scorersPerQuestion int, logger *zerolog.Logger) *Store {
	return &Store{
		jobs:               make(map[string]*models.Job),
		requestIDs:         make(map[string]string),
		notify:             make(chan struct{}, 1),
		scorersPerQuestion: scorersPerQuestion,
		logger:             logger,
	}
}

// Create inserts a new queued job and returns its id. A non-empty
// requestID is remembered for deduplication via FindByRequestID.
func (s *Store) Create(targetURL string, questions []models.Question, requestID string) string {
	jobID := newJobID()

	job := &models.Job{
		JobID:           jobID,
		RequestID:       requestID,
		Status:          models.JobStatusQueued,
		TargetURL:       targetURL,
		Questions:       questions,
		SubmittedAt:     time.Now().UTC(),
		QuestionResults: []models.QuestionResult{},
		Progress: models.Progress{
			QuestionsTotal: len(questions),
			ScorersTotal:   len(questions) * s.scorersPerQuestion,
		},
	}

	s.mu.Lock()
	s.jobs[jobID] = job
	s.order = append(s.order, jobID)
	if requestID != "" {
		s.requestIDs[requestID] = jobID
	}
	s.mu.Unlock()

	s.logger.Info().
		Str("job_id", jobID).
		Str("target_url", targetURL).
		Int("questions", len(questions)).
		Msg("job created")

	// Wake the worker; a pending signal already covers this job.
	select {
	case s.notify <- struct{}{}:
	default:
	}

	return jobID
}

// Get returns a snapshot of the job.
func (s *Store) Get(jobID string) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	return copyJob(job), nil
}

// FindByRequestID returns the id of the job created for requestID, if
// one exists. Submissions without a request id are never matched.
func (s *Store) FindByRequestID(requestID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobID, ok := s.requestIDs[requestID]
	return jobID, ok
}

// List returns snapshots of all jobs in submission order.
func (s *Store) List() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := make([]models.Job, 0, len(s.order))
	for _, jobID := range s.order {
		snapshots = append(snapshots, copyJob(s.jobs[jobID]))
	}

	return snapshots
}

// Update applies mutate to the stored job under the store lock. The
// status may only stay put or advance one step (queued to running,
// running to a terminal state) and question results never shrink; a
// mutation violating either is rejected whole.
func (s *Store) Update(jobID string, mutate func(*models.Job)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	prevStatus := job.Status
	prevResults := len(job.QuestionResults)

	next := copyJob(job)
	mutate(&next)

	if prevStatus.Terminal() && next.Status != prevStatus {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, prevStatus)
	}
	if next.Status != prevStatus && statusRank(next.Status) != statusRank(prevStatus)+1 {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prevStatus, next.Status)
	}
	if len(next.QuestionResults) < prevResults || len(next.QuestionResults) > len(next.Questions) {
		return fmt.Errorf("question results out of bounds for job %s", jobID)
	}

	if next.Status.Terminal() && job.CompletedAt == nil {
		now := time.Now().UTC()
		next.CompletedAt = &now
	}

	s.jobs[jobID] = &next
	return nil
}

// Claim atomically moves the oldest queued job to running and returns
// a snapshot of it. The second return value is false when nothing is
// queued.
func (s *Store) Claim() (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, jobID := range s.order {
		job := s.jobs[jobID]
		if job.Status != models.JobStatusQueued {
			continue
		}

		now := time.Now().UTC()
		job.Status = models.JobStatusRunning
		job.StartedAt = &now

		return copyJob(job), true
	}

	return models.Job{}, false
}

// Notify returns a channel that receives a signal when a job is
// created. The channel is buffered with size one; signals coalesce.
func (s *Store) Notify() <-chan struct{} {
	return s.notify
}

func newJobID() string {
	return fmt.Sprintf("eval_%s_%s",
		time.Now().UTC().Format("20060102_150405"),
		uuid.NewString()[:6])
}

func statusRank(status models.JobStatus) int {
	switch status {
	case models.JobStatusQueued:
		return 0
	case models.JobStatusRunning:
		return 1
	case models.JobStatusCompleted, models.JobStatusFailed:
		return 2
	default:
		return -1
	}
}

func copyJob(job *models.Job) models.Job {
	snapshot := *job

	snapshot.Questions = make([]models.Question, len(job.Questions))
	copy(snapshot.Questions, job.Questions)

	snapshot.QuestionResults = make([]models.QuestionResult, len(job.QuestionResults))
	copy(snapshot.QuestionResults, job.QuestionResults)
	for i := range snapshot.QuestionResults {
		qr := &snapshot.QuestionResults[i]
		if qr.Actual != nil {
			actual := *qr.Actual
			qr.Actual = &actual
		}
		scorerResults := make([]models.ScorerResult, len(qr.ScorerResults))
		copy(scorerResults, qr.ScorerResults)
		qr.ScorerResults = scorerResults
	}

	if job.StartedAt != nil {
		startedAt := *job.StartedAt
		snapshot.StartedAt = &startedAt
	}
	if job.CompletedAt != nil {
		completedAt := *job.CompletedAt
		snapshot.CompletedAt = &completedAt
	}
	if job.Error != nil {
		jobErr := *job.Error
		snapshot.Error = &jobErr
	}

	return snapshot
}
