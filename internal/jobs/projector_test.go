package jobs

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/dbterra/internal/config"
)

func ptr[T any](v T) *T { return &v }

func testScope() Scope {
	return Scope{
		AccountID:    123,
		ProjectID:    456,
		Environments: map[string]int64{"test": 789},
	}
}

func minimalJob() config.Job {
	return config.Job{
		Environment: "test",
		Target:      "production",
		Steps:       []string{"dbt run"},
	}
}

func TestProject_Defaults(t *testing.T) {
	job, err := Project("test", minimalJob(), testScope())
	require.NoError(t, err)

	expected := Job{
		AccountID:     123,
		ProjectID:     456,
		EnvironmentID: 789,
		Name:          "Test",
		ExecuteSteps:  []string{"dbt run"},
		Settings:      Settings{Threads: 4, TargetName: "production"},
		State:         1,
		Schedule:      NewCronSchedule("0/10 * * * *"),
	}
	assert.Equal(t, expected, job)
	assert.Nil(t, job.ID)
	assert.Nil(t, job.DbtVersion)
	assert.False(t, job.Triggers.Schedule)
}

func TestProject_Naming(t *testing.T) {
	tests := []struct {
		key      string
		name     *string
		expected string
	}{
		{key: "test_some_snake_case_thing", expected: "Test Some Snake Case Thing"},
		{key: "ml_features", expected: "ML Features"},
		{key: "nightly-refresh", expected: "Nightly Refresh"},
		{key: "test_some_snake_case_thing", name: ptr("My Test Job"), expected: "My Test Job"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			desired := minimalJob()
			desired.Name = tt.name

			job, err := Project(tt.key, desired, testScope())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, job.Name)
		})
	}
}

func TestProject_AllFields(t *testing.T) {
	desired := config.Job{
		Environment:  "test",
		Target:       "prod",
		Timeout:      ptr(int64(3600)),
		Threads:      ptr(int64(8)),
		CI:           &config.CI{RunOnPR: ptr(true), CustomBranchOnly: ptr(false)},
		Schedule:     &config.Schedule{Cron: "0 3 * * *"},
		Steps:        []string{"dbt seed", "dbt run"},
		GenerateDocs: ptr(true),
		DeferToJobID: ptr(int64(11)),
		DeferToEnvID: ptr(int64(12)),
	}

	job, err := Project("full", desired, testScope())
	require.NoError(t, err)

	assert.Equal(t, Triggers{
		GithubWebhook:      true,
		GitProviderWebhook: false,
		Schedule:           true,
		CustomBranchOnly:   ptr(false),
	}, job.Triggers)
	assert.Equal(t, int64(8), job.Settings.Threads)
	assert.Equal(t, "prod", job.Settings.TargetName)
	assert.Equal(t, int64(3600), job.Execution.TimeoutSeconds)
	assert.True(t, job.GenerateDocs)
	assert.Equal(t, ptr(int64(11)), job.DeferringJobDefinitionID)
	assert.Equal(t, ptr(int64(12)), job.DeferringEnvironmentID)
	assert.Equal(t, NewCronSchedule("0 3 * * *"), job.Schedule)
	assert.Equal(t, []string{"dbt seed", "dbt run"}, job.ExecuteSteps)
}

func TestProject_UnknownEnvironment(t *testing.T) {
	desired := minimalJob()
	desired.Environment = "staging"

	_, err := Project("nightly", desired, testScope())
	require.Error(t, err)

	var refErr *ConfigReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "nightly", refErr.JobKey)
	assert.Equal(t, "staging", refErr.Environment)
	assert.Contains(t, err.Error(), `"staging"`)
}

func TestProject_DoesNotAliasDesired(t *testing.T) {
	desired := minimalJob()
	job, err := Project("test", desired, testScope())
	require.NoError(t, err)

	job.ExecuteSteps[0] = "dbt build"
	assert.Equal(t, "dbt run", desired.Steps[0])
}

func TestNewCronSchedule_WireShape(t *testing.T) {
	data, err := json.Marshal(NewCronSchedule("0 3 * * *"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"cron": "0 3 * * *",
		"date": {"type": "custom_cron", "cron": "0 3 * * *"},
		"time": {"type": "every_hour", "interval": 1}
	}`, string(data))
}

func TestJob_WireShape(t *testing.T) {
	job, err := Project("test", minimalJob(), testScope())
	require.NoError(t, err)

	data, err := json.Marshal(job)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": null,
		"account_id": 123,
		"project_id": 456,
		"environment_id": 789,
		"name": "Test",
		"dbt_version": null,
		"triggers": {
			"github_webhook": false,
			"git_provider_webhook": false,
			"schedule": false,
			"custom_branch_only": null
		},
		"execute_steps": ["dbt run"],
		"settings": {"threads": 4, "target_name": "production"},
		"state": 1,
		"generate_docs": false,
		"deferring_job_definition_id": null,
		"deferring_environment_id": null,
		"schedule": {
			"cron": "0/10 * * * *",
			"date": {"type": "custom_cron", "cron": "0/10 * * * *"},
			"time": {"type": "every_hour", "interval": 1}
		},
		"execution": {"timeout_seconds": 0}
	}`, string(data))
}

func TestJob_DecodesAPIPayload(t *testing.T) {
	payload := `{
		"id": 42,
		"account_id": 1,
		"project_id": 2,
		"environment_id": 3,
		"name": "Nightly",
		"dbt_version": "1.7.0",
		"triggers": {"github_webhook": false, "git_provider_webhook": false, "schedule": true},
		"execute_steps": ["dbt build"],
		"settings": {"threads": 4, "target_name": "default"},
		"state": 1,
		"generate_docs": true,
		"schedule": {
			"cron": "0 0 * * *",
			"date": {"type": "every_day"},
			"time": {"type": "at_exact_hours", "interval": null, "hours": [0]}
		},
		"execution": {"timeout_seconds": 0},
		"created_at": "2023-01-01T00:00:00Z"
	}`

	var job Job
	require.NoError(t, json.Unmarshal([]byte(payload), &job))

	id, ok := job.Identifier()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, ptr("1.7.0"), job.DbtVersion)
	assert.Nil(t, job.Schedule.Time.Interval)
	assert.Equal(t, []int64{0}, job.Schedule.Time.Hours)
	assert.Nil(t, job.Schedule.Date.Cron)
}
