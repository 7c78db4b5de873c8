package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionShort bool

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print the version of dbterra",
		Long: `Prints the dbterra version together with the Go runtime, the platform
and the User-Agent sent to the dbt Cloud API.

Use --short to print the bare version, for example in release scripts.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().BoolVar(&versionShort, "short", false, "Print only the version")
	return c
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	v := displayVersion(rootCmd.Version)

	if versionShort {
		_, err := fmt.Fprintln(out, v)
		return err
	}

	_, err := fmt.Fprintf(out, "dbterra version %s\n  go:         %s\n  platform:   %s/%s\n  user agent: dbterra/%s\n",
		v, runtime.Version(), runtime.GOOS, runtime.GOARCH, rootCmd.Version)
	return err
}

// isDevelopmentVersion reports whether v was left unset at build time.
func isDevelopmentVersion(v string) bool {
	return v == "" || v == "dev"
}

func displayVersion(v string) string {
	if isDevelopmentVersion(v) {
		return "dev (development build)"
	}
	return v
}
