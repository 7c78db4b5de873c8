// Package logging provides the structured logging used across dbterra.
//
// It is a thin layer over Go's standard slog package that adds a subsystem
// attribute to every entry and printf-style message formatting.
//
// # Log Levels
//   - **Debug**: request/response details and per-job decisions
//   - **Info**: progress of a run (projects fetched, jobs written)
//   - **Warn**: recoverable oddities such as jobs filtered from an API page
//   - **Error**: failures that abort the run
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Info("Config", "Loaded desired state from %s", path)
//	logging.Debug("DBTCloud", "GET %s", url)
//	logging.Error("Apply", err, "Failed to update job %d", id)
//
// # Subsystems
//
//   - **Config**: loading, templating and validation of dbt_cloud.yml
//   - **DBTCloud**: HTTP calls against the dbt Cloud API
//   - **FilesystemStore**: the offline job store
//   - **Reconciler**: plan building and apply
//   - **Watcher**: `plan --watch` file notifications
//
// # Audit Logging
//
// Every write against the job store is recorded as an audit event:
//
//	logging.Audit(logging.AuditEvent{
//	    Action:  "job_update",
//	    Outcome: "success",
//	    Target:  "Daily Run",
//	    JobID:   42,
//	})
//
// Audit events are logged at INFO level with an [AUDIT] prefix.
package logging
