package genjob

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEnqueueValidatesRequest(t *testing.T) {
	s := NewService(nil, nil)

	_, err := s.Enqueue(Request{NumClubs: 1, Season: "2024/25"})
	require.Error(t, err)

	_, err = s.Enqueue(Request{NumClubs: 8})
	require.Error(t, err)
}

func TestEnqueueAssignsSeedAndHistory(t *testing.T) {
	s := NewService(nil, nil)

	job, err := s.Enqueue(Request{NumClubs: 8, Season: "2024/25"})
	require.NoError(t, err)
	require.NotEmpty(t, job.JobID)
	require.NotZero(t, job.Seed)
	require.Equal(t, JobStatusQueued, job.Status)

	status := s.GetStatus()
	require.Nil(t, status.ActiveJob)
	require.Len(t, status.History, 1)
	require.Equal(t, job.JobID, status.History[0].JobID)
}

func TestHistoryIsBounded(t *testing.T) {
	s := NewService(nil, nil)

	for i := 0; i < s.historyLimit+5; i++ {
		_, err := s.Enqueue(Request{Seed: int64(i + 1), NumClubs: 4, Season: "2024/25"})
		require.NoError(t, err)
	}

	status := s.GetStatus()
	require.Len(t, status.History, s.historyLimit)
}

func TestEnqueueReturnIsImmuneToWorkerWrites(t *testing.T) {
	s := NewService(nil, nil)

	job, err := s.Enqueue(Request{Seed: 7, NumClubs: 4, Season: "2024/25"})
	require.NoError(t, err)

	// Mutate the queued job the way executeJob does; the value Enqueue
	// handed back must be a snapshot taken before the job was published.
	queued := <-s.queue
	now := time.Now().UTC()
	s.mu.Lock()
	queued.Status = JobStatusRunning
	queued.StatusMessage = "Generating dataset"
	queued.StartedAt = &now
	s.mu.Unlock()

	require.Equal(t, JobStatusQueued, job.Status)
	require.Equal(t, "Queued", job.StatusMessage)
	require.Nil(t, job.StartedAt)
}

func TestStatusCopiesAreIndependent(t *testing.T) {
	s := NewService(nil, nil)

	job, err := s.Enqueue(Request{Seed: 42, NumClubs: 6, Season: "2023/24"})
	require.NoError(t, err)

	status := s.GetStatus()
	status.History[0].Status = JobStatusFailed

	again := s.GetStatus()
	require.Equal(t, JobStatusQueued, again.History[0].Status)
	require.Equal(t, job.Seed, again.History[0].Seed)
}
