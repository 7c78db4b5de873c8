package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/dbterra/internal/config"
	"github.com/giantswarm/dbterra/internal/formatting"
	"github.com/giantswarm/dbterra/pkg/logging"
)

// EnvStoreDir sets the default of --store-dir.
const EnvStoreDir = "DBTERRA_STORE_DIR"

// CommandFlags holds the flag values shared by the dbterra commands.
type CommandFlags struct {
	// ConfigPath is the desired state file
	ConfigPath string
	// StoreDir selects the offline filesystem store instead of the dbt Cloud API
	StoreDir string
	// Debug enables debug logging on stderr
	Debug bool
	// NoColor disables ANSI colors in plan output
	NoColor bool
	// Quiet suppresses progress indicators and non-essential output
	Quiet bool
	// OutputFormat specifies the desired output format (console, table, json, yaml)
	OutputFormat string
}

// RegisterGlobalFlags registers the flags every command accepts as persistent
// flags of cmd.
//
// The registered flags are:
//   - --config/-c: Desired state file, default: "dbt_cloud.yml"
//   - --store-dir: Filesystem store directory (env: DBTERRA_STORE_DIR)
//   - --debug: Enable debug logging
//   - --no-color: Disable colored output
func RegisterGlobalFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", config.DefaultConfigFile, "Desired state file")
	cmd.PersistentFlags().StringVar(&flags.StoreDir, "store-dir", os.Getenv(EnvStoreDir), "Read and write jobs in this directory instead of dbt Cloud (env: "+EnvStoreDir+")")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
}

// RegisterOutputFlags registers the output flags of commands that print a plan.
//
// The registered flags are:
//   - --output/-o: Output format (console, table, json, yaml), default: "console"
//   - --quiet/-q: Suppress non-essential output
func RegisterOutputFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", string(formatting.FormatConsole), "Output format (console, table, json, yaml)")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-essential output")
}

// Format validates and returns the selected output format.
func (f *CommandFlags) Format() (formatting.OutputFormat, error) {
	return formatting.ParseOutputFormat(f.OutputFormat)
}

// LogLevel returns the level logs are filtered at.
func (f *CommandFlags) LogLevel() logging.LogLevel {
	if f.Debug {
		return logging.LevelDebug
	}
	return logging.LevelWarn
}

// FormatterOptions converts the flags into formatter options.
func (f *CommandFlags) FormatterOptions() (formatting.Options, error) {
	format, err := f.Format()
	if err != nil {
		return formatting.Options{}, err
	}
	return formatting.Options{
		Format: format,
		Quiet:  f.Quiet,
		Color:  !f.NoColor,
	}, nil
}
