package jobs

const (
	// DefaultCron is encoded for jobs that do not declare a schedule.
	DefaultCron = "0/10 * * * *"

	// DefaultThreads is used when a job does not set threads.
	DefaultThreads int64 = 4

	// StateActive marks a job definition as active in dbt Cloud.
	StateActive int64 = 1

	scheduleDateCustomCron = "custom_cron"
	scheduleTimeEveryHour  = "every_hour"
)

// Job is a dbt Cloud job definition in its wire shape.
type Job struct {
	ID                       *int64    `json:"id"`
	AccountID                int64     `json:"account_id"`
	ProjectID                int64     `json:"project_id"`
	EnvironmentID            int64     `json:"environment_id"`
	Name                     string    `json:"name"`
	DbtVersion               *string   `json:"dbt_version"`
	Triggers                 Triggers  `json:"triggers"`
	ExecuteSteps             []string  `json:"execute_steps"`
	Settings                 Settings  `json:"settings"`
	State                    int64     `json:"state"`
	GenerateDocs             bool      `json:"generate_docs"`
	DeferringJobDefinitionID *int64    `json:"deferring_job_definition_id"`
	DeferringEnvironmentID   *int64    `json:"deferring_environment_id"`
	Schedule                 Schedule  `json:"schedule"`
	Execution                Execution `json:"execution"`
}

// Triggers controls what starts a job run.
type Triggers struct {
	GithubWebhook      bool  `json:"github_webhook"`
	GitProviderWebhook bool  `json:"git_provider_webhook"`
	Schedule           bool  `json:"schedule"`
	CustomBranchOnly   *bool `json:"custom_branch_only"`
}

// Settings are the dbt invocation settings of a job.
type Settings struct {
	Threads    int64  `json:"threads"`
	TargetName string `json:"target_name"`
}

// Schedule is the redundant three-part schedule encoding used by dbt Cloud.
type Schedule struct {
	Cron string       `json:"cron"`
	Date ScheduleDate `json:"date"`
	Time ScheduleTime `json:"time"`
}

// ScheduleDate is the day rule of a schedule.
type ScheduleDate struct {
	Type string  `json:"type"`
	Days []int64 `json:"days,omitempty"`
	Cron *string `json:"cron,omitempty"`
}

// ScheduleTime is the time-of-day rule of a schedule. Interval is always
// encoded, as null when unset.
type ScheduleTime struct {
	Type     string  `json:"type"`
	Interval *int64  `json:"interval"`
	Hours    []int64 `json:"hours,omitempty"`
}

// Execution holds run limits.
type Execution struct {
	TimeoutSeconds int64 `json:"timeout_seconds"`
}

// NewCronSchedule builds the schedule dbt Cloud stores for a custom cron
// expression. All three parts carry expr.
func NewCronSchedule(expr string) Schedule {
	cron := expr
	interval := int64(1)
	return Schedule{
		Cron: expr,
		Date: ScheduleDate{
			Type: scheduleDateCustomCron,
			Cron: &cron,
		},
		Time: ScheduleTime{
			Type:     scheduleTimeEveryHour,
			Interval: &interval,
		},
	}
}

// Identifier returns the job id and whether it is set.
func (j Job) Identifier() (int64, bool) {
	if j.ID == nil {
		return 0, false
	}
	return *j.ID, true
}

// Clone returns a deep copy of j.
func (j Job) Clone() Job {
	c := j
	c.ID = clonePtr(j.ID)
	c.DbtVersion = clonePtr(j.DbtVersion)
	c.Triggers.CustomBranchOnly = clonePtr(j.Triggers.CustomBranchOnly)
	c.ExecuteSteps = cloneSlice(j.ExecuteSteps)
	c.DeferringJobDefinitionID = clonePtr(j.DeferringJobDefinitionID)
	c.DeferringEnvironmentID = clonePtr(j.DeferringEnvironmentID)
	c.Schedule = j.Schedule.Clone()
	return c
}

// Clone returns a deep copy of s.
func (s Schedule) Clone() Schedule {
	c := s
	c.Date.Days = cloneSlice(s.Date.Days)
	c.Date.Cron = clonePtr(s.Date.Cron)
	c.Time.Interval = clonePtr(s.Time.Interval)
	c.Time.Hours = cloneSlice(s.Time.Hours)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
