package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"genx-server/internal/domain"
)

// Registry tracks accepted generation jobs. Implementations must be safe
// for concurrent use; the HTTP boundary registers and looks up jobs while
// dispatcher workers update them.
type Registry interface {
	Register(ctx context.Context, jobID string) (*domain.Job, error)
	Lookup(ctx context.Context, jobID string) (*domain.Job, error)
	Start(ctx context.Context, jobID string) error
	Complete(ctx context.Context, jobID string, result *domain.GenerationResult) error
	Fail(ctx context.Context, jobID string, message string) error
}

// Memory is a process-lifetime, mutex-guarded registry. Entries are never
// evicted; jobs live as long as the process by contract.
type Memory struct {
	mu   sync.RWMutex
	jobs map[string]*domain.Job
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		jobs: make(map[string]*domain.Job),
		now:  time.Now,
	}
}

// Register creates a job in the processing state.
func (m *Memory) Register(ctx context.Context, jobID string) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[jobID]; ok {
		return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrDuplicateJob)
	}
	now := m.now()
	job := &domain.Job{
		ID:        jobID,
		Status:    domain.JobStatusProcessing,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.jobs[jobID] = job
	snapshot := *job
	return &snapshot, nil
}

// Lookup returns a snapshot of the job state.
func (m *Memory) Lookup(ctx context.Context, jobID string) (*domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
	}
	snapshot := *job
	return &snapshot, nil
}

// Start marks the job as picked up by a worker.
func (m *Memory) Start(ctx context.Context, jobID string) error {
	return m.update(jobID, func(job *domain.Job) {
		job.Status = domain.JobStatusProcessing
		job.Progress = 25
	})
}

// Complete stores the real pipeline result against the job.
func (m *Memory) Complete(ctx context.Context, jobID string, result *domain.GenerationResult) error {
	return m.update(jobID, func(job *domain.Job) {
		job.Status = domain.JobStatusCompleted
		job.Progress = 100
		job.Result = result
		job.ErrorMessage = ""
	})
}

// Fail records a terminal failure.
func (m *Memory) Fail(ctx context.Context, jobID string, message string) error {
	return m.update(jobID, func(job *domain.Job) {
		job.Status = domain.JobStatusFailed
		job.ErrorMessage = message
	})
}

func (m *Memory) update(jobID string, apply func(*domain.Job)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
	}
	apply(job)
	job.UpdatedAt = m.now()
	return nil
}

var _ Registry = (*Memory)(nil)
