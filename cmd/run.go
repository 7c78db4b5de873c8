package cmd

import (
	"context"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/giantswarm/dbterra/internal/cli"
	"github.com/giantswarm/dbterra/internal/client"
	"github.com/giantswarm/dbterra/internal/config"
	"github.com/giantswarm/dbterra/internal/reconciler"
)

// run holds what a plan or apply invocation works with.
type run struct {
	desired  config.Root
	settings config.Settings
	store    client.JobStore
	endpoint string
}

// prepareRun loads the desired state and settings and opens the job store.
// No API token is needed when the filesystem store is used.
func prepareRun() (*run, error) {
	desired, err := config.LoadConfig(globalFlags.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(desired, globalFlags.StoreDir == "")
	if err != nil {
		return nil, err
	}

	store, endpoint := cli.OpenStore(&globalFlags, settings, GetVersion())
	return &run{desired: desired, settings: settings, store: store, endpoint: endpoint}, nil
}

// buildPlan fetches the remote jobs and plans the changes, showing a spinner
// unless quiet is set.
func (r *run) buildPlan(ctx context.Context, quiet bool) (*reconciler.Plan, error) {
	var plan *reconciler.Plan
	err := cli.RunWithSpinner(quiet, "Fetching jobs from dbt Cloud...", func() error {
		var err error
		plan, err = reconciler.Build(ctx, r.desired, r.store, reconciler.RunContext{AccountID: r.settings.AccountID})
		return err
	})
	if err != nil {
		return nil, cli.ExplainRemoteError(err, r.endpoint)
	}
	return plan, nil
}

// renderPlan prints the human-readable plan to w.
func renderPlan(w io.Writer, plan *reconciler.Plan) error {
	return reconciler.NewRenderer(w, reconciler.WithColor(!globalFlags.NoColor)).Render(plan)
}

// colorize applies c unless colors are disabled.
func colorize(c text.Color, s string) string {
	if globalFlags.NoColor {
		return s
	}
	return c.Sprint(s)
}
