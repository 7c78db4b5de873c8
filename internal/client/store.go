package client

import (
	"context"
	"fmt"

	"github.com/giantswarm/dbterra/internal/jobs"
)

// JobStore is the remote side of a reconciliation: the job definitions held
// by dbt Cloud, or a stand-in for it.
//
// Implementations:
//   - DBTCloudClient talks to the dbt Cloud v2 API
//   - FilesystemClient keeps jobs as YAML files for offline runs and tests
type JobStore interface {
	// List returns every job that belongs to projectID.
	List(ctx context.Context, projectID int64) ([]jobs.Job, error)

	// Create stores a new job and returns it with its assigned id.
	Create(ctx context.Context, job jobs.Job) (jobs.Job, error)

	// Update replaces the job addressed by job.ID.
	Update(ctx context.Context, job jobs.Job) (jobs.Job, error)
}

// APIError is returned when dbt Cloud answers with an unsuccessful status.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the status code reported inside the response envelope.
	Code int64
	// UserMessage is the human readable failure reported by dbt Cloud.
	UserMessage string
	// DeveloperMessage carries additional detail, when present.
	DeveloperMessage string
}

func (e *APIError) Error() string {
	msg := e.UserMessage
	if msg == "" {
		msg = "request failed"
	}
	if e.DeveloperMessage != "" {
		msg += " (" + e.DeveloperMessage + ")"
	}
	return fmt.Sprintf("dbt Cloud API error (HTTP %d): %s", e.StatusCode, msg)
}

func errMissingID(job jobs.Job) error {
	return fmt.Errorf("job %q has no id and cannot be updated", job.Name)
}
