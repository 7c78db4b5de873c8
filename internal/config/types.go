package config

// Root is the desired state as declared in dbt_cloud.yml.
type Root struct {
	// Account optionally pins the dbt Cloud account; it overrides DBT_CLOUD_ACCOUNT_ID.
	Account *Account `yaml:"account,omitempty"`
	// Projects maps a human-readable project key to its declaration.
	Projects map[string]Project `yaml:"projects"`
	// Environments maps the environment names referenced by jobs to their ids.
	Environments map[string]Environment `yaml:"environments"`
}

// Account identifies the dbt Cloud account.
type Account struct {
	ID int64 `yaml:"id"`
}

// Project declares the jobs managed in a single dbt Cloud project.
type Project struct {
	ID   int64          `yaml:"id"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Job is a desired job definition. The map key it is declared under is used
// to derive a display name when Name is not set.
type Job struct {
	Name         *string   `yaml:"name,omitempty"`
	Environment  string    `yaml:"environment"`
	Target       string    `yaml:"target"`
	Timeout      *int64    `yaml:"timeout,omitempty"`
	Threads      *int64    `yaml:"threads,omitempty"`
	CI           *CI       `yaml:"ci,omitempty"`
	Schedule     *Schedule `yaml:"schedule,omitempty"`
	Steps        []string  `yaml:"steps"`
	GenerateDocs *bool     `yaml:"generate_docs,omitempty"`
	DeferToJobID *int64    `yaml:"defer_to_job_id,omitempty"`
	DeferToEnvID *int64    `yaml:"defer_to_env_id,omitempty"`
}

// CI holds the pull request trigger flags of a job.
type CI struct {
	RunOnPR          *bool `yaml:"run_on_pr,omitempty"`
	CustomBranchOnly *bool `yaml:"custom_branch_only,omitempty"`
}

// Schedule is a single cron expression.
type Schedule struct {
	Cron string `yaml:"cron"`
}

// Environment maps an environment name to its dbt Cloud id.
type Environment struct {
	ID int64 `yaml:"id"`
}

// EnvironmentIDs flattens Environments into a name -> id lookup.
func (r Root) EnvironmentIDs() map[string]int64 {
	ids := make(map[string]int64, len(r.Environments))
	for name, env := range r.Environments {
		ids[name] = env.ID
	}
	return ids
}
