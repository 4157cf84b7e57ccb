package genjob

import (
	"time"
)

// JobStatus represents the lifecycle state for a job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Request describes one requested dataset regeneration. A Seed of zero asks
// for a clock-derived seed.
type Request struct {
	Seed     int64  `json:"seed"`
	NumClubs int    `json:"num_clubs"`
	Season   string `json:"season"`
}

// Job tracks one regeneration through its lifecycle.
type Job struct {
	JobID         string     `json:"job_id"`
	Seed          int64      `json:"seed"`
	NumClubs      int        `json:"num_clubs"`
	Season        string     `json:"season"`
	Status        JobStatus  `json:"status"`
	StatusMessage string     `json:"status_message,omitempty"`
	RunID         string     `json:"run_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Copy returns a shallow copy to prevent external mutation.
func (j *Job) Copy() *Job {
	if j == nil {
		return nil
	}
	cpy := *j
	return &cpy
}

// StatusSummary is returned to API callers.
type StatusSummary struct {
	ActiveJob *Job   `json:"active_job,omitempty"`
	History   []*Job `json:"recent_jobs,omitempty"`
}

// Notifier receives a callback once a regeneration has been loaded into the
// store. Implementations must not block for long; they run on the worker
// goroutine.
type Notifier interface {
	DatasetGenerated(jobID, runID, season string, seed int64, numClubs, numPlayers int)
}
