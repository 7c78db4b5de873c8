package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/giantswarm/dbterra/internal/cli"
)

var applyAutoApprove bool

// confirm asks for approval before changes are applied.
var confirm = cli.Confirm

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create and update dbt Cloud jobs to match dbt_cloud.yml",
		Long: `Plans the changes like 'dbterra plan', asks for confirmation and then
creates and updates jobs in dbt Cloud.

Jobs planned for deletion are reported but never deleted.`,
		Args: cobra.NoArgs,
		RunE: runApply,
	}

	cmd.Flags().BoolVar(&applyAutoApprove, "auto-approve", false, "Apply without asking for confirmation")
	cmd.Flags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "Suppress non-essential output")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()

	r, err := prepareRun()
	if err != nil {
		return err
	}

	plan, err := r.buildPlan(ctx, globalFlags.Quiet)
	if err != nil {
		return err
	}

	if !plan.HasChanges() {
		fmt.Fprintln(out, colorize(text.FgRed, "no changes detected for any project, exiting..."))
		return nil
	}

	if err := renderPlan(out, plan); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if !applyAutoApprove {
		ok, err := confirm("do you want to apply the above changes?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "apply cancelled, no changes applied")
			return nil
		}
	}

	fmt.Fprintln(out, "applying changes...")
	if err := plan.Apply(ctx, r.store, out); err != nil {
		return cli.ExplainRemoteError(err, r.endpoint)
	}

	if !globalFlags.Quiet {
		fmt.Fprintln(out, cli.FormatSuccess("apply complete"))
	}
	return nil
}
