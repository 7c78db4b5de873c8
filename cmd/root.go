package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/dbterra/internal/cli"
	"github.com/giantswarm/dbterra/internal/client"
	"github.com/giantswarm/dbterra/internal/config"
	"github.com/giantswarm/dbterra/internal/jobs"
	"github.com/giantswarm/dbterra/internal/reconciler"
	"github.com/giantswarm/dbterra/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeInvalidConfig indicates the desired state or run settings are invalid.
	ExitCodeInvalidConfig = 2
	// ExitCodeRemote indicates dbt Cloud could not be read from or written to.
	ExitCodeRemote = 3
)

// globalFlags holds the flag values of the running command.
var globalFlags cli.CommandFlags

// rootCmd represents the base command for the dbterra application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dbterra",
	Short: "Plan and apply dbt Cloud job definitions",
	Long: `dbterra keeps the jobs of your dbt Cloud projects in line with the
definitions in dbt_cloud.yml. Run 'dbterra plan' to review the changes, then
'dbterra apply' to create and update jobs in dbt Cloud.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	// Errors are printed by Execute so configuration errors can be shown in full.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitForCLI(globalFlags.LogLevel(), os.Stderr)
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dbterra version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(getExitCode(err))
	}
}

// describeError renders err for the terminal. Configuration errors are shown
// with their details and suggestions.
func describeError(err error) string {
	var configErr config.ConfigurationError
	if errors.As(err, &configErr) {
		return configErr.DetailedError()
	}
	return cli.FormatError(err)
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var configErr config.ConfigurationError
	var validationErrs config.ValidationErrors
	var refErr *jobs.ConfigReferenceError
	if errors.As(err, &configErr) || errors.As(err, &validationErrs) || errors.As(err, &refErr) {
		return ExitCodeInvalidConfig
	}

	var fetchErr *reconciler.RemoteFetchError
	var writeErr *reconciler.RemoteWriteError
	var apiErr *client.APIError
	var connErr *cli.ConnectionError
	if errors.As(err, &fetchErr) || errors.As(err, &writeErr) ||
		errors.As(err, &apiErr) || errors.As(err, &connErr) {
		return ExitCodeRemote
	}

	return ExitCodeError
}

func init() {
	cli.RegisterGlobalFlags(rootCmd, &globalFlags)

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
