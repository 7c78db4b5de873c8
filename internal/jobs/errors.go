package jobs

import "fmt"

// ConfigReferenceError is returned when a job refers to an environment that
// is not declared in the environment mapping.
type ConfigReferenceError struct {
	JobKey      string
	Environment string
}

func (e *ConfigReferenceError) Error() string {
	return fmt.Sprintf("job %q references undeclared environment %q", e.JobKey, e.Environment)
}
