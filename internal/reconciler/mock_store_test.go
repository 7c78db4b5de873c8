package reconciler

import (
	"context"
	"sync"

	"github.com/giantswarm/dbterra/internal/jobs"
)

// mockJobStore is an in-memory JobStore that records every call.
type mockJobStore struct {
	mu sync.Mutex

	remote map[int64][]jobs.Job
	nextID int64

	listErr   error
	createErr error
	updateErr error

	listCalls   []int64
	createCalls []jobs.Job
	updateCalls []jobs.Job
}

func newMockJobStore() *mockJobStore {
	return &mockJobStore{remote: map[int64][]jobs.Job{}, nextID: 1000}
}

func (m *mockJobStore) List(ctx context.Context, projectID int64) ([]jobs.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls = append(m.listCalls, projectID)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]jobs.Job(nil), m.remote[projectID]...), nil
}

func (m *mockJobStore) Create(ctx context.Context, job jobs.Job) (jobs.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls = append(m.createCalls, job)
	if m.createErr != nil {
		return jobs.Job{}, m.createErr
	}
	m.nextID++
	id := m.nextID
	job.ID = &id
	return job, nil
}

func (m *mockJobStore) Update(ctx context.Context, job jobs.Job) (jobs.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls = append(m.updateCalls, job)
	if m.updateErr != nil {
		return jobs.Job{}, m.updateErr
	}
	return job, nil
}

func (m *mockJobStore) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.createCalls) + len(m.updateCalls)
}
