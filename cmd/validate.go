package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/giantswarm/dbterra/internal/cli"
	"github.com/giantswarm/dbterra/internal/config"
	"github.com/giantswarm/dbterra/internal/jobs"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check dbt_cloud.yml without contacting dbt Cloud",
		Long: `Renders, parses and validates the desired state file and checks that
every job refers to a declared environment. No credentials are needed.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	desired, err := config.LoadConfig(globalFlags.ConfigPath)
	if err != nil {
		return err
	}

	count, err := projectAll(desired)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s is valid: %d projects, %d jobs",
		globalFlags.ConfigPath, len(desired.Projects), count)))
	return nil
}

// projectAll projects every declared job so that unresolvable references
// are reported, and returns the number of jobs.
func projectAll(desired config.Root) (int, error) {
	envs := desired.EnvironmentIDs()

	projectKeys := make([]string, 0, len(desired.Projects))
	for key := range desired.Projects {
		projectKeys = append(projectKeys, key)
	}
	sort.Strings(projectKeys)

	count := 0
	for _, projectKey := range projectKeys {
		project := desired.Projects[projectKey]
		jobKeys := make([]string, 0, len(project.Jobs))
		for key := range project.Jobs {
			jobKeys = append(jobKeys, key)
		}
		sort.Strings(jobKeys)

		for _, jobKey := range jobKeys {
			if _, err := jobs.Project(jobKey, project.Jobs[jobKey], jobs.Scope{
				ProjectID:    project.ID,
				Environments: envs,
			}); err != nil {
				return 0, err
			}
			count++
		}
	}
	return count, nil
}
