package reconciler

import (
	"context"
	"sort"

	"github.com/giantswarm/dbterra/internal/client"
	"github.com/giantswarm/dbterra/internal/config"
	"github.com/giantswarm/dbterra/internal/diff"
	"github.com/giantswarm/dbterra/internal/jobs"
	"github.com/giantswarm/dbterra/pkg/logging"
)

// RunContext holds the run-level identifiers that are not part of the
// desired state itself.
type RunContext struct {
	AccountID int64
}

// JobPlan is the planned action for one job together with its field changes.
type JobPlan struct {
	Action  Action
	Changes []diff.Change
}

// Name returns the job name the plan is keyed by.
func (p JobPlan) Name() string {
	return p.Action.JobName()
}

// HasChanges reports whether any field differs.
func (p JobPlan) HasChanges() bool {
	return diff.HasChanges(p.Changes)
}

// ProjectPlan holds the job plans of one project, ordered by job name.
type ProjectPlan struct {
	Key       string
	ProjectID int64
	Jobs      []JobPlan
}

// HasChanges reports whether any job of the project has changes.
func (p ProjectPlan) HasChanges() bool {
	for _, j := range p.Jobs {
		if j.HasChanges() {
			return true
		}
	}
	return false
}

// Plan is the full set of project plans of a run, ordered by project key.
type Plan struct {
	Projects []ProjectPlan
}

// HasChanges reports whether applying the plan would change anything.
func (p *Plan) HasChanges() bool {
	for _, project := range p.Projects {
		if project.HasChanges() {
			return true
		}
	}
	return false
}

// Build fetches the remote jobs of every project in desired and plans the
// changes needed to match it. Projects are handled one at a time in key
// order, and the first error aborts the build.
func Build(ctx context.Context, desired config.Root, store client.JobStore, run RunContext) (*Plan, error) {
	envs := desired.EnvironmentIDs()

	keys := make([]string, 0, len(desired.Projects))
	for key := range desired.Projects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	plan := &Plan{Projects: make([]ProjectPlan, 0, len(keys))}
	for _, key := range keys {
		project := desired.Projects[key]
		projectPlan, err := buildProject(ctx, key, project, store, jobs.Scope{
			AccountID:    run.AccountID,
			ProjectID:    project.ID,
			Environments: envs,
		})
		if err != nil {
			return nil, err
		}
		plan.Projects = append(plan.Projects, projectPlan)
	}

	return plan, nil
}

func buildProject(ctx context.Context, key string, project config.Project, store client.JobStore, scope jobs.Scope) (ProjectPlan, error) {
	remote, err := store.List(ctx, project.ID)
	if err != nil {
		return ProjectPlan{}, &RemoteFetchError{ProjectKey: key, ProjectID: project.ID, Err: err}
	}
	logging.Debug("Plan", "Fetched %d remote jobs for project %s (%d)", len(remote), key, project.ID)

	jobKeys := make([]string, 0, len(project.Jobs))
	for jobKey := range project.Jobs {
		jobKeys = append(jobKeys, jobKey)
	}
	sort.Strings(jobKeys)

	projected := make([]jobs.Job, 0, len(jobKeys))
	for _, jobKey := range jobKeys {
		job, err := jobs.Project(jobKey, project.Jobs[jobKey], scope)
		if err != nil {
			return ProjectPlan{}, err
		}
		projected = append(projected, job)
	}

	actions := Classify(projected, remote)
	plans := make([]JobPlan, 0, len(actions))
	for _, action := range actions {
		changes, err := changesFor(action)
		if err != nil {
			return ProjectPlan{}, err
		}
		plans = append(plans, JobPlan{Action: action, Changes: changes})
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Name() < plans[j].Name()
	})

	return ProjectPlan{Key: key, ProjectID: project.ID, Jobs: plans}, nil
}

// changesFor diffs an action against its baseline: an update against the
// remote job, a create against an empty job, and a delete towards an empty job.
func changesFor(action Action) ([]diff.Change, error) {
	switch a := action.(type) {
	case Create:
		return diff.Records(jobs.Job{}, a.Desired, true)
	case Update:
		if a.Remote.ID == nil {
			return nil, &MissingIdentifierError{Operation: OperationUpdate, JobName: a.JobName()}
		}
		return diff.Records(a.Remote, a.Merged, false)
	case Delete:
		if a.Remote.ID == nil {
			return nil, &MissingIdentifierError{Operation: OperationDelete, JobName: a.JobName()}
		}
		return diff.Records(a.Remote, jobs.Job{}, false)
	default:
		panic("unknown action type")
	}
}
