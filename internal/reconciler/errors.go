package reconciler

import (
	"fmt"
)

// RemoteFetchError is returned when the remote jobs of a project cannot be listed.
type RemoteFetchError struct {
	ProjectKey string
	ProjectID  int64
	Err        error
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("failed to list jobs of project %s (%d): %v", e.ProjectKey, e.ProjectID, e.Err)
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}

// RemoteWriteError is returned when creating or updating a job fails.
type RemoteWriteError struct {
	Operation ChangeOperation
	JobName   string
	Err       error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("failed to %s job %q: %v", verb(e.Operation), e.JobName, e.Err)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}

// MissingIdentifierError is returned when an update or delete targets a
// remote job without an id.
type MissingIdentifierError struct {
	Operation ChangeOperation
	JobName   string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("cannot %s job %q: remote job has no id", verb(e.Operation), e.JobName)
}

func verb(op ChangeOperation) string {
	switch op {
	case OperationCreate:
		return "create"
	case OperationUpdate:
		return "update"
	case OperationDelete:
		return "delete"
	default:
		return string(op)
	}
}
