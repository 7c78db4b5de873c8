package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/giantswarm/dbterra/internal/cli"
	"github.com/giantswarm/dbterra/internal/config"
	"github.com/giantswarm/dbterra/internal/formatting"
	"github.com/giantswarm/dbterra/internal/reconciler"
)

const applyHint = "no changes applied. to apply changes, run `dbterra apply`"

var planWatch bool

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the changes needed to match dbt_cloud.yml",
		Long: `Fetches the jobs of every project declared in dbt_cloud.yml and shows
which jobs would be created, updated or deleted. Nothing is changed in dbt Cloud.

Deletes are shown for jobs that exist in dbt Cloud but are no longer declared;
they are never applied.`,
		Args: cobra.NoArgs,
		RunE: runPlan,
	}

	cli.RegisterOutputFlags(cmd, &globalFlags)
	cmd.Flags().BoolVarP(&planWatch, "watch", "w", false, "Re-plan whenever the desired state file changes")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	format, err := globalFlags.Format()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if !planWatch {
		return planOnce(ctx, out, format)
	}

	if err := planOnce(ctx, out, format); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), describeError(err))
	}
	watcher := config.NewWatcher(globalFlags.ConfigPath, 0)
	return watcher.Run(ctx, func() {
		fmt.Fprintf(out, "\n%s changed, planning again\n\n", globalFlags.ConfigPath)
		if err := planOnce(ctx, out, format); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), describeError(err))
		}
	})
}

func planOnce(ctx context.Context, out io.Writer, format formatting.OutputFormat) error {
	r, err := prepareRun()
	if err != nil {
		return err
	}

	// Spinners would end up in structured output.
	quiet := globalFlags.Quiet || format != formatting.FormatConsole
	plan, err := r.buildPlan(ctx, quiet)
	if err != nil {
		return err
	}

	return printPlan(out, plan, format)
}

func printPlan(out io.Writer, plan *reconciler.Plan, format formatting.OutputFormat) error {
	factory := formatting.NewFactory()
	opts := formatting.Options{
		Format: format,
		Quiet:  globalFlags.Quiet,
		Color:  !globalFlags.NoColor,
		Writer: out,
	}

	switch format {
	case formatting.FormatJSON, formatting.FormatYAML:
		return factory.CreateFormatter(opts).FormatData(plan.Document())
	case formatting.FormatTable:
		return factory.CreateFormatter(opts).FormatData(plan.Summary())
	}

	if err := renderPlan(out, plan); err != nil {
		return err
	}
	if globalFlags.Quiet {
		return nil
	}

	if plan.HasChanges() {
		opts.Format = formatting.FormatTable
		if err := factory.CreateFormatter(opts).FormatData(plan.Summary()); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, cli.FormatSuccess("no changes detected for any project"))
	}
	fmt.Fprintf(out, "\n%s\n", applyHint)
	return nil
}
