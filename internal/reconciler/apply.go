package reconciler

import (
	"context"
	"fmt"
	"io"

	"github.com/giantswarm/dbterra/internal/client"
	"github.com/giantswarm/dbterra/pkg/logging"
)

// Apply writes every changed create and update of p to store, printing one
// line per job to w. Deletes are reported but never sent. Jobs without
// changes are skipped.
//
// The first failed write stops the run. Writes made before it, including
// those of earlier projects, stay in place. A job's progress line is printed
// before its request is sent, so a failure writing to w stops the run ahead
// of that request.
func (p *Plan) Apply(ctx context.Context, store client.JobStore, w io.Writer) error {
	for _, project := range p.Projects {
		for _, job := range project.Jobs {
			if !job.HasChanges() {
				continue
			}
			if err := applyJob(ctx, project, job, store, w); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyJob(ctx context.Context, project ProjectPlan, job JobPlan, store client.JobStore, w io.Writer) error {
	switch a := job.Action.(type) {
	case Create:
		if _, err := fmt.Fprintf(w, "creating job: %s\n", a.Desired.Name); err != nil {
			return err
		}
		created, err := store.Create(ctx, a.Desired)
		id, _ := created.Identifier()
		audit("job_create", a.Desired.Name, project.ProjectID, id, err)
		if err != nil {
			return &RemoteWriteError{Operation: OperationCreate, JobName: a.Desired.Name, Err: err}
		}

	case Update:
		id, ok := a.Merged.Identifier()
		if !ok {
			return &MissingIdentifierError{Operation: OperationUpdate, JobName: a.JobName()}
		}
		if _, err := fmt.Fprintf(w, "updating job: %d\n", id); err != nil {
			return err
		}
		_, err := store.Update(ctx, a.Merged)
		audit("job_update", a.JobName(), project.ProjectID, id, err)
		if err != nil {
			return &RemoteWriteError{Operation: OperationUpdate, JobName: a.JobName(), Err: err}
		}

	case Delete:
		if _, err := fmt.Fprintf(w, "deleting job: %s (%s) skipped, deletes are not applied\n", a.Remote.Name, idString(a.Remote.ID)); err != nil {
			return err
		}
		logging.Info("Apply", "Job %q in project %d is not declared and was left in place", a.Remote.Name, project.ProjectID)
	}
	return nil
}

func audit(action, target string, projectID, jobID int64, err error) {
	event := logging.AuditEvent{
		Action:    action,
		Outcome:   "success",
		Target:    target,
		ProjectID: projectID,
		JobID:     jobID,
	}
	if err != nil {
		event.Outcome = "failure"
		event.Error = err.Error()
	}
	logging.Audit(event)
}
