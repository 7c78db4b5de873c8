package cli

import (
	"fmt"
	"time"

	"github.com/giantswarm/dbterra/internal/client"
	"github.com/giantswarm/dbterra/internal/config"
	"github.com/giantswarm/dbterra/pkg/logging"
)

// apiTimeout bounds a single dbt Cloud API request.
const apiTimeout = 30 * time.Second

// OpenStore returns the job store a run works against, together with a
// description of where it lives for error messages. A store directory selects
// the offline filesystem store; otherwise the dbt Cloud API is used.
func OpenStore(flags *CommandFlags, settings config.Settings, version string) (client.JobStore, string) {
	if flags.StoreDir != "" {
		logging.Info("CLI", "Using filesystem store at %s", flags.StoreDir)
		return client.NewFilesystemClient(flags.StoreDir), flags.StoreDir
	}

	return client.NewDBTCloudClient(settings.AccountID, settings.Token,
		client.WithBaseURL(settings.BaseURL),
		client.WithTimeout(apiTimeout),
		client.WithUserAgent("dbterra/"+version),
		client.WithLogger(logging.Logger()),
	), settings.BaseURL
}

// FormatError formats an error message for CLI output
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("✓ %s", msg)
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return fmt.Sprintf("⚠ %s", msg)
}
