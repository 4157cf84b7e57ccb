// Package genjob runs dataset regenerations in the background and reports
// their status to API callers.
package genjob

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ironforge/footylab/internal/dataset"
	"github.com/ironforge/footylab/internal/store"
)

// Service coordinates job queuing, execution, and status reporting. One
// worker drains the queue so regenerations never overlap.
type Service struct {
	db        *store.Database
	notifiers []Notifier

	historyLimit int

	mu      sync.Mutex
	active  *Job
	history []*Job
	queue   chan *Job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *log.Logger
}

// NewService constructs a Service. Call Start to launch the worker.
func NewService(db *store.Database, logger *log.Logger, notifiers ...Notifier) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	if logger == nil {
		logger = log.New(log.Writer(), "[genjob] ", log.LstdFlags)
	}

	return &Service{
		db:           db,
		notifiers:    notifiers,
		historyLimit: 10,
		queue:        make(chan *Job, 16),
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
	}
}

// Start launches the background worker loop.
func (s *Service) Start() {
	s.wg.Add(1)
	go s.worker()
}

// Shutdown stops the worker and waits for the in-flight job to finish.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Enqueue creates a new job from the provided request.
func (s *Service) Enqueue(req Request) (*Job, error) {
	if req.NumClubs < 2 {
		return nil, fmt.Errorf("regeneration requires at least 2 clubs, got %d", req.NumClubs)
	}
	if req.Season == "" {
		return nil, fmt.Errorf("regeneration requires a season")
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}

	job := &Job{
		JobID:         uuid.New().String(),
		Seed:          req.Seed,
		NumClubs:      req.NumClubs,
		Season:        req.Season,
		Status:        JobStatusQueued,
		StatusMessage: "Queued",
		CreatedAt:     time.Now().UTC(),
	}

	// Snapshot before the job is visible to the worker; after the queue
	// send the worker may mutate it at any time.
	snapshot := job.Copy()

	select {
	case s.queue <- job:
	default:
		return nil, fmt.Errorf("regeneration queue is full")
	}

	s.mu.Lock()
	s.history = append([]*Job{job}, s.history...)
	if len(s.history) > s.historyLimit {
		s.history = s.history[:s.historyLimit]
	}
	s.mu.Unlock()

	return snapshot, nil
}

// GetStatus returns the currently running job plus recent history.
func (s *Service) GetStatus() *StatusSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]*Job, 0, len(s.history))
	for _, j := range s.history {
		history = append(history, j.Copy())
	}

	return &StatusSummary{
		ActiveJob: s.active.Copy(),
		History:   history,
	}
}

// RunNow generates and loads a dataset synchronously, bypassing the queue.
// It is used at boot when the store is empty.
func (s *Service) RunNow(ctx context.Context, req Request) (*dataset.Dataset, error) {
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(req.Seed))
	ds, err := dataset.Generate(dataset.Params{
		NumClubs: req.NumClubs,
		Season:   req.Season,
		Seed:     req.Seed,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("generating dataset: %w", err)
	}

	if err := s.db.LoadDataset(ctx, ds); err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	return ds, nil
}

func (s *Service) worker() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case job := <-s.queue:
			s.executeJob(job)
		}
	}
}

func (s *Service) executeJob(job *Job) {
	now := time.Now().UTC()

	s.mu.Lock()
	job.Status = JobStatusRunning
	job.StatusMessage = "Generating dataset"
	job.StartedAt = &now
	s.active = job
	s.mu.Unlock()

	s.logger.Printf("job %s: generating %d clubs for %s (seed %d)",
		job.JobID, job.NumClubs, job.Season, job.Seed)

	ds, err := s.RunNow(s.ctx, Request{Seed: job.Seed, NumClubs: job.NumClubs, Season: job.Season})

	done := time.Now().UTC()
	s.mu.Lock()
	job.CompletedAt = &done
	s.active = nil
	if err != nil {
		job.Status = JobStatusFailed
		job.StatusMessage = err.Error()
		s.mu.Unlock()
		s.logger.Printf("job %s failed: %v", job.JobID, err)
		return
	}
	job.Status = JobStatusCompleted
	job.StatusMessage = "Dataset loaded"
	job.RunID = ds.RunID
	s.mu.Unlock()

	s.logger.Printf("✓ job %s completed (run %s)", job.JobID, ds.RunID)

	for _, n := range s.notifiers {
		n.DatasetGenerated(job.JobID, ds.RunID, ds.Season, ds.Seed,
			len(ds.Clubs), len(ds.Players)+len(ds.Youth))
	}
}
