package reconciler

import (
	"github.com/giantswarm/dbterra/internal/jobs"
)

// ChangeOperation represents the kind of change planned for a job.
type ChangeOperation string

const (
	// OperationCreate indicates a desired job that does not exist remotely.
	OperationCreate ChangeOperation = "Create"

	// OperationUpdate indicates a desired job that exists remotely under the same name.
	OperationUpdate ChangeOperation = "Update"

	// OperationDelete indicates a remote job that is no longer desired.
	OperationDelete ChangeOperation = "Delete"
)

// Action is what a reconciliation plans to do with one job. It is one of
// Create, Update or Delete.
type Action interface {
	// Operation returns the kind of change.
	Operation() ChangeOperation

	// JobName returns the name the job is matched by.
	JobName() string

	isAction()
}

// Create adds Desired as a new job.
type Create struct {
	Desired jobs.Job
}

// Update replaces Remote with Merged. Merged carries Remote's id.
type Update struct {
	Merged jobs.Job
	Remote jobs.Job
}

// Delete reports that Remote is not in the desired state. Deletes are only
// displayed; the job is never removed.
type Delete struct {
	Remote jobs.Job
}

func (Create) Operation() ChangeOperation { return OperationCreate }
func (Update) Operation() ChangeOperation { return OperationUpdate }
func (Delete) Operation() ChangeOperation { return OperationDelete }

func (a Create) JobName() string { return a.Desired.Name }
func (a Update) JobName() string { return a.Remote.Name }
func (a Delete) JobName() string { return a.Remote.Name }

func (Create) isAction() {}
func (Update) isAction() {}
func (Delete) isAction() {}
