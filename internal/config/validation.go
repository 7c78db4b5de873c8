package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robfig/cron/v3"

	dbtstrings "github.com/giantswarm/dbterra/pkg/strings"
)

// cronParser accepts the five-field expressions dbt Cloud schedules use,
// plus descriptors such as @daily.
var cronParser = cron.NewParser(cron.Minute | cron.Hour |
	cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(ve.Messages(), "; "))
}

// Messages returns one message per validation error.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return messages
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateRequired checks if a required string field is not empty
func ValidateRequired(field, value, entityType string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("is required for %s", entityType),
		}
	}
	return nil
}

// ValidateCron checks that expr is a cron expression dbt Cloud will accept.
func ValidateCron(field, expr string) error {
	if _, err := cronParser.Parse(expr); err != nil {
		return ValidationError{
			Field:   field,
			Value:   expr,
			Message: fmt.Sprintf("invalid cron expression: %v", err),
		}
	}
	return nil
}

// JobName returns the display name a job is reconciled under: the explicit
// name when set, otherwise a title derived from its key.
func JobName(key string, job Job) string {
	if job.Name != nil {
		return *job.Name
	}
	return dbtstrings.TitleFromKey(key)
}

// Validate checks the desired state for mistakes that would otherwise only
// surface halfway through a run. Environment references are not checked here;
// the projection step reports them.
func Validate(root Root) ValidationErrors {
	var errs ValidationErrors

	if len(root.Projects) == 0 {
		errs.Add("projects", "must declare at least one project")
		return errs
	}
	if root.Account != nil && root.Account.ID <= 0 {
		errs.Add("account.id", "must be a positive number", root.Account.ID)
	}

	for _, projectKey := range sortedKeys(root.Projects) {
		project := root.Projects[projectKey]
		prefix := "projects." + projectKey

		if project.ID <= 0 {
			errs.Add(prefix+".id", "must be a positive number", project.ID)
		}

		names := make(map[string]string, len(project.Jobs))
		for _, jobKey := range sortedKeys(project.Jobs) {
			job := project.Jobs[jobKey]
			validateJob(&errs, prefix+".jobs."+jobKey, job)

			name := JobName(jobKey, job)
			if other, exists := names[name]; exists {
				errs.Add(prefix+".jobs."+jobKey,
					fmt.Sprintf("job name %q is already used by job %q", name, other), name)
				continue
			}
			names[name] = jobKey
		}
	}

	return errs
}

func validateJob(errs *ValidationErrors, field string, job Job) {
	if err := ValidateRequired(field+".environment", job.Environment, "job"); err != nil {
		*errs = append(*errs, err.(ValidationError))
	}
	if err := ValidateRequired(field+".target", job.Target, "job"); err != nil {
		*errs = append(*errs, err.(ValidationError))
	}
	if len(job.Steps) == 0 {
		errs.Add(field+".steps", "must have at least one step")
	}
	for i, step := range job.Steps {
		if strings.TrimSpace(step) == "" {
			errs.Add(fmt.Sprintf("%s.steps.%d", field, i), "must not be empty")
		}
	}
	if job.Name != nil && strings.TrimSpace(*job.Name) == "" {
		errs.Add(field+".name", "must not be empty when set")
	}
	if job.Threads != nil && *job.Threads <= 0 {
		errs.Add(field+".threads", "must be a positive number", *job.Threads)
	}
	if job.Timeout != nil && *job.Timeout < 0 {
		errs.Add(field+".timeout", "must not be negative", *job.Timeout)
	}
	if job.Schedule != nil {
		if err := ValidateCron(field+".schedule.cron", job.Schedule.Cron); err != nil {
			*errs = append(*errs, err.(ValidationError))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
