// Package reconciler plans and applies the changes that bring the dbt Cloud
// jobs of each project in line with the desired state.
//
// # Overview
//
// A run goes through these steps for every project, in project key order:
//
//  1. List the remote jobs of the project through a client.JobStore.
//  2. Project every desired job into its canonical shape (jobs.Project).
//  3. Classify desired and remote jobs by name into Create, Update and
//     Delete actions. Updates carry the merged job (jobs.Merge).
//  4. Diff each action against its baseline: an update against the remote
//     job, a create against an empty job, a delete towards an empty job.
//
// The result is a Plan. Plan.Render prints it, Plan.Document converts it for
// JSON or YAML output, and Plan.Apply writes the creates and updates.
//
// # Deletes
//
// Remote jobs that are no longer declared are planned and displayed as
// deletes, but Apply never removes them.
//
// # Failure contract
//
// Everything runs sequentially and the first error ends the run. There is
// no rollback: writes applied to earlier jobs or projects before a failure
// remain in dbt Cloud.
//
// # Usage
//
//	plan, err := reconciler.Build(ctx, root, store, reconciler.RunContext{AccountID: 123})
//	if err != nil {
//	    return err
//	}
//	if err := plan.Render(os.Stdout); err != nil {
//	    return err
//	}
//	if plan.HasChanges() {
//	    err = plan.Apply(ctx, store, os.Stdout)
//	}
package reconciler
