package domain

import "time"

// JobStatus enumerates the lifecycle states of an accepted generation job.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job is the boundary-level tracking record for an accepted generation
// request. It is distinct from the pipeline's internal request_id.
type Job struct {
	ID           string
	Status       JobStatus
	Progress     int
	Result       *GenerationResult
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
