package jobs

import (
	"github.com/giantswarm/dbterra/internal/config"
)

// Scope carries the identifiers a projected job inherits from the run.
type Scope struct {
	AccountID    int64
	ProjectID    int64
	Environments map[string]int64
}

// Project converts the desired job declared under key into its canonical
// shape. The result never carries an id; ids only come from remote jobs.
func Project(key string, desired config.Job, scope Scope) (Job, error) {
	envID, ok := scope.Environments[desired.Environment]
	if !ok {
		return Job{}, &ConfigReferenceError{JobKey: key, Environment: desired.Environment}
	}

	cron := DefaultCron
	if desired.Schedule != nil {
		cron = desired.Schedule.Cron
	}

	job := Job{
		AccountID:     scope.AccountID,
		ProjectID:     scope.ProjectID,
		EnvironmentID: envID,
		Name:          config.JobName(key, desired),
		Triggers: Triggers{
			Schedule: desired.Schedule != nil,
		},
		ExecuteSteps: append([]string(nil), desired.Steps...),
		Settings: Settings{
			Threads:    valueOr(desired.Threads, DefaultThreads),
			TargetName: desired.Target,
		},
		State:                    StateActive,
		GenerateDocs:             valueOr(desired.GenerateDocs, false),
		DeferringJobDefinitionID: clonePtr(desired.DeferToJobID),
		DeferringEnvironmentID:   clonePtr(desired.DeferToEnvID),
		Schedule:                 NewCronSchedule(cron),
		Execution: Execution{
			TimeoutSeconds: valueOr(desired.Timeout, 0),
		},
	}

	if desired.CI != nil {
		job.Triggers.GithubWebhook = valueOr(desired.CI.RunOnPR, false)
		job.Triggers.CustomBranchOnly = clonePtr(desired.CI.CustomBranchOnly)
	}

	return job, nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
